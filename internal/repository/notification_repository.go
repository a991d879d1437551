package repository

import (
	"exam_admin_backend/internal/model"

	"gorm.io/gorm"
)

type NotificationRepository struct {
	DB *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{DB: db}
}

func (r *NotificationRepository) Create(n *model.Notification) error {
	return r.DB.Create(n).Error
}

func (r *NotificationRepository) FindByID(id uint) (*model.Notification, error) {
	var n model.Notification
	err := r.DB.First(&n, id).Error
	if err != nil {
		return nil, err
	}
	return &n, nil
}

func (r *NotificationRepository) Save(n *model.Notification) error {
	return r.DB.Save(n).Error
}

func (r *NotificationRepository) Delete(id uint) error {
	return r.DB.Delete(&model.Notification{}, id).Error
}

func (r *NotificationRepository) ListActive() ([]model.Notification, error) {
	var ns []model.Notification
	err := r.DB.Where("active = ?", true).Order("created_at desc").Find(&ns).Error
	return ns, err
}

func (r *NotificationRepository) ListAll() ([]model.Notification, error) {
	var ns []model.Notification
	err := r.DB.Order("created_at desc").Find(&ns).Error
	return ns, err
}
