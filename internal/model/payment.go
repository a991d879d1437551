package model

import "time"

// Payment order states
const (
	PaymentCreated  = "created"
	PaymentCaptured = "captured"
	PaymentFailed   = "failed"
)

// PaymentOrder mirrors a gateway order locally. Amount is in currency
// subunits, as the gateway expects.
type PaymentOrder struct {
	UUIDBase
	RegistrationNumber string     `gorm:"size:40;index" json:"registrationNumber"`
	ExamTitle          string     `gorm:"size:191;index" json:"examTitle"`
	Amount             int64      `json:"amount"`
	Currency           string     `gorm:"size:8" json:"currency"`
	GatewayOrderID     string     `gorm:"size:64;uniqueIndex" json:"gatewayOrderId"`
	GatewayPaymentID   string     `gorm:"size:64" json:"gatewayPaymentId,omitempty"`
	Status             string     `gorm:"size:20;default:created" json:"status"`
	VerifiedAt         *time.Time `json:"verifiedAt,omitempty"`
}
