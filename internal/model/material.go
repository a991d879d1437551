package model

// Material kinds
const (
	MaterialPDF   = "pdf"
	MaterialVideo = "video"
)

// StudyMaterial is a syllabus artifact (PDF or video) stored in object
// storage. Paid materials are only served to registrations with a captured
// payment for the owning exam.
type StudyMaterial struct {
	UUIDBase
	Title       string  `gorm:"size:191" json:"title"`
	Kind        string  `gorm:"size:10" json:"kind"`
	ExamTitle   string  `gorm:"size:191;index" json:"examTitle"`
	ObjectKey   string  `gorm:"size:255" json:"-"`
	URL         string  `gorm:"size:512" json:"url"`
	SizeBytes   int64   `json:"sizeBytes"`
	DurationSec float64 `json:"durationSec,omitempty"`
	Paid        bool    `json:"paid"`
}
