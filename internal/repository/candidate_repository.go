package repository

import (
	"exam_admin_backend/internal/model"

	"gorm.io/gorm"
)

type CandidateRepository struct {
	DB *gorm.DB
}

func NewCandidateRepository(db *gorm.DB) *CandidateRepository {
	return &CandidateRepository{DB: db}
}

func (r *CandidateRepository) Create(c *model.Candidate) error {
	return r.DB.Create(c).Error
}

func (r *CandidateRepository) Save(c *model.Candidate) error {
	return r.DB.Save(c).Error
}

func (r *CandidateRepository) FindByRegistration(registrationNumber string) (*model.Candidate, error) {
	var c model.Candidate
	err := r.DB.Where("registration_number = ?", registrationNumber).First(&c).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CandidateRepository) ExistsByEmailAndExam(email, examTitle string) (bool, error) {
	var count int64
	err := r.DB.Model(&model.Candidate{}).
		Where("email = ? AND exam_title = ?", email, examTitle).
		Count(&count).Error
	return count > 0, err
}

func (r *CandidateRepository) ListByExam(examTitle string) ([]model.Candidate, error) {
	var cs []model.Candidate
	err := r.DB.Where("exam_title = ?", examTitle).Order("registration_number asc").Find(&cs).Error
	return cs, err
}

func (r *CandidateRepository) MarkUsed(registrationNumber string) error {
	return r.DB.Model(&model.Candidate{}).
		Where("registration_number = ?", registrationNumber).
		Update("used", true).Error
}
