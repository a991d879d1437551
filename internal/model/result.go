package model

import "time"

// Result is a derived per-(exam, candidate) snapshot. Recomputing overwrites
// the previous snapshot in place; there is no history.
type Result struct {
	BaseModel
	ExamTitle          string    `gorm:"size:191;uniqueIndex:idx_exam_candidate" json:"examTitle"`
	RegistrationNumber string    `gorm:"size:40;uniqueIndex:idx_exam_candidate" json:"registrationNumber"`
	CandidateName      string    `gorm:"size:100" json:"candidateName"`
	Total              int       `json:"total"`
	Correct            int       `json:"correct"`
	Skipped            int       `json:"skipped"`
	Wrong              int       `json:"wrong"`
	ComputedAt         time.Time `json:"computedAt"`
}
