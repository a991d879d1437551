package service

import (
	"testing"

	"exam_admin_backend/internal/model"
)

func intPtr(v int) *int { return &v }

func question(order, correct int) model.Question {
	return model.Question{
		ExamTitle:    "Math101",
		Prompt:       "q",
		Options:      []string{"a", "b", "c", "d"},
		CorrectIndex: correct,
		Order:        order,
	}
}

func TestScore(t *testing.T) {
	tests := []struct {
		name      string
		questions []model.Question
		answers   []model.Answer
		want      ScoreCounts
	}{
		{
			name: "mixed correct skipped wrong",
			questions: []model.Question{
				question(1, 2),
				question(2, 0),
				question(3, 1),
			},
			answers: []model.Answer{
				{Order: 1, AnswerIndex: intPtr(2)},
				{Order: 2, Skipped: true},
				{Order: 3, AnswerIndex: intPtr(3)},
			},
			want: ScoreCounts{Total: 3, Correct: 1, Skipped: 1, Wrong: 1},
		},
		{
			name: "no answers at all",
			questions: []model.Question{
				question(1, 0), question(2, 1), question(3, 2),
				question(4, 3), question(5, 0),
			},
			answers: nil,
			want:    ScoreCounts{Total: 5, Correct: 0, Skipped: 5, Wrong: 0},
		},
		{
			name:      "zero index answer is a real answer",
			questions: []model.Question{question(1, 0)},
			answers:   []model.Answer{{Order: 1, AnswerIndex: intPtr(0)}},
			want:      ScoreCounts{Total: 1, Correct: 1, Skipped: 0, Wrong: 0},
		},
		{
			name:      "nil index counts as skipped",
			questions: []model.Question{question(1, 0)},
			answers:   []model.Answer{{Order: 1}},
			want:      ScoreCounts{Total: 1, Correct: 0, Skipped: 1, Wrong: 0},
		},
		{
			name: "stale answers for removed questions are ignored",
			questions: []model.Question{
				question(1, 1),
				question(3, 2),
			},
			answers: []model.Answer{
				{Order: 1, AnswerIndex: intPtr(1)},
				{Order: 2, AnswerIndex: intPtr(0)},
				{Order: 3, AnswerIndex: intPtr(2)},
				{Order: 9, AnswerIndex: intPtr(1)},
			},
			want: ScoreCounts{Total: 2, Correct: 2, Skipped: 0, Wrong: 0},
		},
		{
			name:      "empty exam",
			questions: nil,
			answers:   []model.Answer{{Order: 1, AnswerIndex: intPtr(1)}},
			want:      ScoreCounts{Total: 0, Correct: 0, Skipped: 0, Wrong: 0},
		},
		{
			name: "all wrong",
			questions: []model.Question{
				question(1, 0), question(2, 1),
			},
			answers: []model.Answer{
				{Order: 1, AnswerIndex: intPtr(3)},
				{Order: 2, AnswerIndex: intPtr(3)},
			},
			want: ScoreCounts{Total: 2, Correct: 0, Skipped: 0, Wrong: 2},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Score(tc.questions, tc.answers)
			if got != tc.want {
				t.Errorf("Score() = %+v, want %+v", got, tc.want)
			}
			if got.Correct+got.Skipped+got.Wrong != got.Total {
				t.Errorf("counts do not add up: %+v", got)
			}
		})
	}
}

func TestScoreCountsNeverNegative(t *testing.T) {
	// answers for every question plus extras must not push wrong below zero
	questions := []model.Question{question(1, 0)}
	answers := []model.Answer{
		{Order: 1, AnswerIndex: intPtr(0)},
		{Order: 2, AnswerIndex: intPtr(1)},
		{Order: 3, AnswerIndex: intPtr(2)},
	}

	got := Score(questions, answers)
	if got.Wrong < 0 || got.Skipped < 0 || got.Correct < 0 {
		t.Fatalf("negative count in %+v", got)
	}
	if got.Total != 1 || got.Correct != 1 {
		t.Fatalf("Score() = %+v, want total=1 correct=1", got)
	}
}
