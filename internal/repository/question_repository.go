package repository

import (
	"exam_admin_backend/internal/model"

	"gorm.io/gorm"
)

type QuestionRepository struct {
	DB *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) *QuestionRepository {
	return &QuestionRepository{DB: db}
}

func (r *QuestionRepository) Create(q *model.Question) error {
	return r.DB.Create(q).Error
}

func (r *QuestionRepository) FindByID(id uint) (*model.Question, error) {
	var q model.Question
	err := r.DB.First(&q, id).Error
	if err != nil {
		return nil, err
	}
	return &q, nil
}

func (r *QuestionRepository) Save(q *model.Question) error {
	return r.DB.Save(q).Error
}

// Delete removes a single question. The order sequence is never renumbered,
// so the remaining questions keep their positions and a gap appears.
func (r *QuestionRepository) Delete(id uint) error {
	return r.DB.Delete(&model.Question{}, id).Error
}

func (r *QuestionRepository) ListByExam(examTitle string) ([]model.Question, error) {
	var qs []model.Question
	err := r.DB.Where("exam_title = ?", examTitle).Order("`order` asc").Find(&qs).Error
	return qs, err
}

func (r *QuestionRepository) CountByExam(examTitle string) (int64, error) {
	var count int64
	err := r.DB.Model(&model.Question{}).Where("exam_title = ?", examTitle).Count(&count).Error
	return count, err
}
