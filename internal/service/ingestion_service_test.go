package service

import (
	"encoding/json"
	"testing"
)

func TestNormalizeQuestionID(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"5", "Q5"},
		{"Q5", "Q5"},
		{"Q12", "Q12"},
		{"12", "Q12"},
		{" 7 ", "Q7"},
		{"Q", "Q"},
	}

	for _, tc := range tests {
		if got := NormalizeQuestionID(tc.in); got != tc.want {
			t.Errorf("NormalizeQuestionID(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestNormalizeQuestionIDIdempotent(t *testing.T) {
	once := NormalizeQuestionID("31")
	twice := NormalizeQuestionID(once)
	if once != twice {
		t.Errorf("normalization not idempotent: %q != %q", once, twice)
	}
}

func TestParseAnswerIndex(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    int
		wantErr bool
	}{
		{name: "plain number", raw: `2`, want: 2},
		{name: "zero is valid", raw: `0`, want: 0},
		{name: "numeric string", raw: `"3"`, want: 3},
		{name: "padded numeric string", raw: `" 1 "`, want: 1},
		{name: "non-numeric string", raw: `"abc"`, wantErr: true},
		{name: "object", raw: `{"a":1}`, wantErr: true},
		{name: "boolean", raw: `true`, wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := parseAnswerIndex(json.RawMessage(tc.raw))
			if tc.wantErr {
				if err == nil {
					t.Fatalf("parseAnswerIndex(%s) expected error, got %d", tc.raw, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseAnswerIndex(%s) unexpected error: %v", tc.raw, err)
			}
			if got != tc.want {
				t.Errorf("parseAnswerIndex(%s) = %d, want %d", tc.raw, got, tc.want)
			}
		})
	}
}

func TestAttemptedOnly(t *testing.T) {
	tests := []struct {
		name string
		sub  AnswerSubmission
		want bool
	}{
		{name: "answered", sub: AnswerSubmission{Answer: json.RawMessage(`1`)}, want: true},
		{name: "zero index answered", sub: AnswerSubmission{Answer: json.RawMessage(`0`)}, want: true},
		{name: "skipped flag", sub: AnswerSubmission{Answer: json.RawMessage(`1`), Skipped: true}, want: false},
		{name: "null answer", sub: AnswerSubmission{Answer: json.RawMessage(`null`)}, want: false},
		{name: "absent answer", sub: AnswerSubmission{}, want: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := AttemptedOnly(tc.sub); got != tc.want {
				t.Errorf("AttemptedOnly() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestToAnswerSkipSemantics(t *testing.T) {
	svc := &IngestionService{}

	// explicit null records a skip, not an error
	a, err := svc.toAnswer(AnswerSubmission{
		RegistrationNumber: "REG1",
		QuestionID:         "4",
		Answer:             json.RawMessage(`null`),
		ExamName:           "Math101",
		Order:              4,
	}, "individual")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !a.Skipped || a.AnswerIndex != nil {
		t.Errorf("null answer should record a skip, got %+v", a)
	}
	if a.QuestionKey != "Q4" {
		t.Errorf("QuestionKey = %q, want Q4", a.QuestionKey)
	}

	// zero index is stored as a real answer
	a, err = svc.toAnswer(AnswerSubmission{
		RegistrationNumber: "REG1",
		QuestionID:         "Q5",
		Answer:             json.RawMessage(`0`),
		ExamName:           "Math101",
		Order:              5,
	}, "individual")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.Skipped || a.AnswerIndex == nil || *a.AnswerIndex != 0 {
		t.Errorf("zero answer should be stored, got %+v", a)
	}
}

func TestSaveIndividualValidation(t *testing.T) {
	svc := &IngestionService{}

	tests := []struct {
		name string
		sub  AnswerSubmission
	}{
		{name: "missing registration", sub: AnswerSubmission{QuestionID: "1", Answer: json.RawMessage(`1`), ExamName: "e"}},
		{name: "missing question", sub: AnswerSubmission{RegistrationNumber: "REG1", Answer: json.RawMessage(`1`), ExamName: "e"}},
		{name: "missing answer field", sub: AnswerSubmission{RegistrationNumber: "REG1", QuestionID: "1", ExamName: "e"}},
		{name: "missing exam name", sub: AnswerSubmission{RegistrationNumber: "REG1", QuestionID: "1", Answer: json.RawMessage(`1`)}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.SaveIndividual(tc.sub); err == nil {
				t.Error("expected a validation error")
			}
		})
	}
}
