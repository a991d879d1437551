package model

type Notification struct {
	BaseModel
	Title    string `gorm:"size:191" json:"title"`
	Message  string `gorm:"type:text" json:"message"`
	Audience string `gorm:"size:40;default:all" json:"audience"`
	Active   bool   `gorm:"default:true" json:"active"`
}
