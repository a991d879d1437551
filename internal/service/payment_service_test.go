package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"
)

func signPayment(orderID, paymentID, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

func TestVerifySignature(t *testing.T) {
	const secret = "test_secret"

	tests := []struct {
		name      string
		orderID   string
		paymentID string
		signature string
		want      bool
	}{
		{
			name:      "valid signature",
			orderID:   "order_1",
			paymentID: "pay_1",
			signature: signPayment("order_1", "pay_1", secret),
			want:      true,
		},
		{
			name:      "signature for different order",
			orderID:   "order_2",
			paymentID: "pay_1",
			signature: signPayment("order_1", "pay_1", secret),
			want:      false,
		},
		{
			name:      "signature with wrong secret",
			orderID:   "order_1",
			paymentID: "pay_1",
			signature: signPayment("order_1", "pay_1", "other_secret"),
			want:      false,
		},
		{
			name:      "empty signature",
			orderID:   "order_1",
			paymentID: "pay_1",
			signature: "",
			want:      false,
		},
		{
			name:      "swapped order and payment ids",
			orderID:   "pay_1",
			paymentID: "order_1",
			signature: signPayment("order_1", "pay_1", secret),
			want:      false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := VerifySignature(tc.orderID, tc.paymentID, tc.signature, secret)
			if got != tc.want {
				t.Errorf("VerifySignature() = %v, want %v", got, tc.want)
			}
		})
	}
}
