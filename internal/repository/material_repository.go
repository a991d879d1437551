package repository

import (
	"exam_admin_backend/internal/model"

	"gorm.io/gorm"
)

type MaterialRepository struct {
	DB *gorm.DB
}

func NewMaterialRepository(db *gorm.DB) *MaterialRepository {
	return &MaterialRepository{DB: db}
}

func (r *MaterialRepository) Create(m *model.StudyMaterial) error {
	return r.DB.Create(m).Error
}

func (r *MaterialRepository) FindByID(id string) (*model.StudyMaterial, error) {
	var m model.StudyMaterial
	err := r.DB.First(&m, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *MaterialRepository) Delete(id string) error {
	return r.DB.Delete(&model.StudyMaterial{}, "id = ?", id).Error
}

func (r *MaterialRepository) ListByExam(examTitle string) ([]model.StudyMaterial, error) {
	var ms []model.StudyMaterial
	err := r.DB.Where("exam_title = ?", examTitle).Order("created_at desc").Find(&ms).Error
	return ms, err
}

func (r *MaterialRepository) ListAll() ([]model.StudyMaterial, error) {
	var ms []model.StudyMaterial
	err := r.DB.Order("created_at desc").Find(&ms).Error
	return ms, err
}
