package service

import (
	"testing"

	"exam_admin_backend/internal/util"
)

func TestValidateQuestion(t *testing.T) {
	four := []string{"a", "b", "c", "d"}

	tests := []struct {
		name     string
		req      QuestionRequest
		wantKind util.ErrorKind
	}{
		{
			name: "valid",
			req:  QuestionRequest{Prompt: "p", Options: four, CorrectIndex: intPtr(0)},
		},
		{
			name:     "blank prompt",
			req:      QuestionRequest{Prompt: "  ", Options: four, CorrectIndex: intPtr(0)},
			wantKind: util.KindMissingField,
		},
		{
			name:     "three options",
			req:      QuestionRequest{Prompt: "p", Options: four[:3], CorrectIndex: intPtr(0)},
			wantKind: util.KindInvalidFormat,
		},
		{
			name:     "five options",
			req:      QuestionRequest{Prompt: "p", Options: append([]string{"x"}, four...), CorrectIndex: intPtr(0)},
			wantKind: util.KindInvalidFormat,
		},
		{
			name:     "missing correct index",
			req:      QuestionRequest{Prompt: "p", Options: four},
			wantKind: util.KindMissingField,
		},
		{
			name:     "correct index out of range high",
			req:      QuestionRequest{Prompt: "p", Options: four, CorrectIndex: intPtr(4)},
			wantKind: util.KindInvalidFormat,
		},
		{
			name:     "correct index negative",
			req:      QuestionRequest{Prompt: "p", Options: four, CorrectIndex: intPtr(-1)},
			wantKind: util.KindInvalidFormat,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := validateQuestion(tc.req)
			if tc.wantKind == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			ae, ok := util.AsAppError(err)
			if !ok {
				t.Fatalf("expected an app error, got %v", err)
			}
			if ae.Kind != tc.wantKind {
				t.Errorf("error kind = %q, want %q", ae.Kind, tc.wantKind)
			}
		})
	}
}
