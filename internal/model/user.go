package model

type UserRole string

const (
	Admin    UserRole = "admin"
	Examiner UserRole = "examiner"
)

// User is a back-office account (exam administrators and examiners).
// Candidates are not users; they are identified by registration number only.
type User struct {
	BaseModel
	Name     string   `gorm:"size:100" json:"name"`
	Email    string   `gorm:"size:191;uniqueIndex" json:"email"`
	Password string   `gorm:"size:191" json:"-"`
	Role     UserRole `gorm:"size:20;default:examiner" json:"role"`
}
