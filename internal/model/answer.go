package model

import "time"

// Answer provenance tags, identifying which submission path wrote a record.
const (
	SourceIndividual = "individual"
	SourceCompletion = "completion"
	SourceTimeout    = "timeout"
)

// Answer is keyed by (registration number, canonical question key). Writes
// are unconditional upserts: the write that completes last wins, regardless
// of provenance.
type Answer struct {
	BaseModel
	RegistrationNumber string    `gorm:"size:40;uniqueIndex:idx_reg_question" json:"registrationNumber"`
	QuestionKey        string    `gorm:"size:40;uniqueIndex:idx_reg_question" json:"questionId"`
	AnswerIndex        *int      `json:"answer"`
	Skipped            bool      `json:"skipped"`
	Order              int       `gorm:"column:order" json:"order"`
	ExamName           string    `gorm:"size:191" json:"examName"`
	Source             string    `gorm:"size:20" json:"source"`
	RecordedAt         time.Time `json:"recordedAt"`
}
