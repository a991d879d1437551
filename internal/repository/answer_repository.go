package repository

import (
	"time"

	"exam_admin_backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AnswerRepository struct {
	DB *gorm.DB
}

func NewAnswerRepository(db *gorm.DB) *AnswerRepository {
	return &AnswerRepository{DB: db}
}

var answerConflict = clause.OnConflict{
	Columns: []clause.Column{{Name: "registration_number"}, {Name: "question_key"}},
	DoUpdates: clause.AssignmentColumns([]string{
		"answer_index", "skipped", "order", "exam_name", "source", "recorded_at", "updated_at",
	}),
}

// Upsert writes one answer at its (registration, question key) slot. No
// read-before-write: concurrent writers for the same slot race on
// last-write-wins by write-completion order.
func (r *AnswerRepository) Upsert(a *model.Answer) error {
	return r.DB.Clauses(answerConflict).Create(a).Error
}

func (r *AnswerRepository) UpsertBatch(answers []model.Answer) error {
	if len(answers) == 0 {
		return nil
	}
	return r.DB.Clauses(answerConflict).Create(&answers).Error
}

// CompleteWithSubmit writes the final answer batch and flips the candidate's
// submitted flag in one transaction, so a crash cannot leave a candidate
// half-submitted.
func (r *AnswerRepository) CompleteWithSubmit(registrationNumber string, answers []model.Answer) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if len(answers) > 0 {
			if err := tx.Clauses(answerConflict).Create(&answers).Error; err != nil {
				return err
			}
		}
		now := time.Now()
		return tx.Model(&model.Candidate{}).
			Where("registration_number = ?", registrationNumber).
			Updates(map[string]interface{}{"submitted": true, "submitted_at": now}).Error
	})
}

func (r *AnswerRepository) ListByRegistration(registrationNumber string) ([]model.Answer, error) {
	var answers []model.Answer
	err := r.DB.Where("registration_number = ?", registrationNumber).
		Order("`order` asc").Find(&answers).Error
	return answers, err
}
