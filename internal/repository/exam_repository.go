package repository

import (
	"exam_admin_backend/internal/model"

	"gorm.io/gorm"
)

type ExamRepository struct {
	DB *gorm.DB
}

func NewExamRepository(db *gorm.DB) *ExamRepository {
	return &ExamRepository{DB: db}
}

func (r *ExamRepository) Create(exam *model.Exam) error {
	return r.DB.Create(exam).Error
}

func (r *ExamRepository) Save(exam *model.Exam) error {
	return r.DB.Save(exam).Error
}

func (r *ExamRepository) FindByTitle(title string) (*model.Exam, error) {
	var exam model.Exam
	err := r.DB.Where("title = ?", title).First(&exam).Error
	if err != nil {
		return nil, err
	}
	return &exam, nil
}

// FindByDate returns the exam scheduled on a YYYY-MM-DD calendar date.
// At most one exists; the date is claimed at write time.
func (r *ExamRepository) FindByDate(date string) (*model.Exam, error) {
	var exam model.Exam
	err := r.DB.Where("exam_date = ?", date).First(&exam).Error
	if err != nil {
		return nil, err
	}
	return &exam, nil
}

func (r *ExamRepository) List() ([]model.Exam, error) {
	var exams []model.Exam
	err := r.DB.Order("exam_date asc").Find(&exams).Error
	return exams, err
}
