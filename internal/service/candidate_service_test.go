package service

import (
	"strconv"
	"strings"
	"testing"
	"time"
)

func TestNewRegistrationNumber(t *testing.T) {
	before := time.Now().UnixMilli()
	reg := newRegistrationNumber()
	after := time.Now().UnixMilli()

	if !strings.HasPrefix(reg, "REG") {
		t.Fatalf("registration number %q lacks REG prefix", reg)
	}

	millis, err := strconv.ParseInt(strings.TrimPrefix(reg, "REG"), 10, 64)
	if err != nil {
		t.Fatalf("registration number %q suffix is not numeric: %v", reg, err)
	}
	if millis < before || millis > after {
		t.Errorf("registration timestamp %d outside [%d, %d]", millis, before, after)
	}
}
