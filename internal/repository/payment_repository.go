package repository

import (
	"exam_admin_backend/internal/model"

	"gorm.io/gorm"
)

type PaymentRepository struct {
	DB *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{DB: db}
}

func (r *PaymentRepository) Create(p *model.PaymentOrder) error {
	return r.DB.Create(p).Error
}

func (r *PaymentRepository) Save(p *model.PaymentOrder) error {
	return r.DB.Save(p).Error
}

func (r *PaymentRepository) FindByGatewayOrderID(orderID string) (*model.PaymentOrder, error) {
	var p model.PaymentOrder
	err := r.DB.Where("gateway_order_id = ?", orderID).First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// HasCapturedPayment reports whether a registration has a captured payment
// for the given exam; paid study materials are gated on this.
func (r *PaymentRepository) HasCapturedPayment(registrationNumber, examTitle string) (bool, error) {
	var count int64
	err := r.DB.Model(&model.PaymentOrder{}).
		Where("registration_number = ? AND exam_title = ? AND status = ?",
			registrationNumber, examTitle, model.PaymentCaptured).
		Count(&count).Error
	return count > 0, err
}

func (r *PaymentRepository) ListByRegistration(registrationNumber string) ([]model.PaymentOrder, error) {
	var ps []model.PaymentOrder
	err := r.DB.Where("registration_number = ?", registrationNumber).
		Order("created_at desc").Find(&ps).Error
	return ps, err
}
