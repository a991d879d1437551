package model

import "time"

// Candidate is an exam-taker identified by a generated registration number
// (REG<unix-millis>). Used flips once the exam session starts and gates
// re-entry; Submitted flips once final answers are recorded.
type Candidate struct {
	BaseModel
	RegistrationNumber string     `gorm:"size:40;uniqueIndex" json:"registrationNumber"`
	Name               string     `gorm:"size:100" json:"name"`
	Email              string     `gorm:"size:191;index" json:"email"`
	Phone              string     `gorm:"size:20" json:"phone"`
	Gender             string     `gorm:"size:10" json:"gender"`
	DateOfBirth        string     `gorm:"size:10" json:"dateOfBirth"`
	Address            string     `gorm:"size:255" json:"address"`
	ExamTitle          string     `gorm:"size:191;index" json:"examTitle"`
	PhotoURL           string     `gorm:"size:512" json:"photoUrl"`
	Used               bool       `json:"used"`
	Submitted          bool       `json:"submitted"`
	SubmittedAt        *time.Time `json:"submittedAt,omitempty"`
}
