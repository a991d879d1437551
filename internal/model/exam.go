package model

// Exam is identified by its human-assigned title. The scheduled date is kept
// at calendar-date granularity (YYYY-MM-DD); start/end are 12-hour clock
// strings such as "9:30 AM". At most one exam may occupy a calendar date.
type Exam struct {
	BaseModel
	Title      string  `gorm:"size:191;uniqueIndex" json:"title"`
	ExamDate   string  `gorm:"size:10;index" json:"examDate"`
	StartTime  string  `gorm:"size:10" json:"startTime"`
	EndTime    string  `gorm:"size:10" json:"endTime"`
	TotalMarks int     `json:"totalMarks"`
	Price      float64 `json:"price"`
}

// Question belongs to exactly one exam. Order is assigned as
// "question count + 1" at creation time and never renumbered, so deleting a
// question leaves a gap that every consumer must tolerate.
type Question struct {
	BaseModel
	ExamTitle    string   `gorm:"size:191;index" json:"examTitle"`
	Prompt       string   `gorm:"type:text" json:"prompt"`
	Options      []string `gorm:"serializer:json" json:"options"`
	CorrectIndex int      `json:"correctIndex"`
	Order        int      `gorm:"column:order" json:"order"`
	Image        string   `gorm:"type:mediumtext" json:"image,omitempty"`
}
