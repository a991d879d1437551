package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"exam_admin_backend/internal/model"
	"exam_admin_backend/pkg/logger"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ResultRepository persists result rows in MySQL and mirrors each snapshot
// into redis for low-latency reads. The row is the source of truth; the
// redis copy is best-effort.
type ResultRepository struct {
	DB  *gorm.DB
	RDB *redis.Client
}

func NewResultRepository(db *gorm.DB, rdb *redis.Client) *ResultRepository {
	return &ResultRepository{DB: db, RDB: rdb}
}

func resultCacheKey(examTitle, registrationNumber string) string {
	return fmt.Sprintf("result:%s:%s", examTitle, registrationNumber)
}

// Upsert overwrites the (exam, candidate) snapshot. Recomputing twice leaves
// exactly one row with the latest values.
func (r *ResultRepository) Upsert(res *model.Result) error {
	err := r.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "exam_title"}, {Name: "registration_number"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"candidate_name", "total", "correct", "skipped", "wrong", "computed_at", "updated_at",
		}),
	}).Create(res).Error
	if err != nil {
		return err
	}

	if r.RDB != nil {
		payload, merr := json.Marshal(res)
		if merr == nil {
			if cerr := r.RDB.Set(context.Background(), resultCacheKey(res.ExamTitle, res.RegistrationNumber), payload, 0).Err(); cerr != nil {
				logger.Log.Warn("result snapshot cache write failed", zap.Error(cerr))
			}
		}
	}

	return nil
}

// GetSnapshot reads the redis copy first and falls back to the row.
func (r *ResultRepository) GetSnapshot(examTitle, registrationNumber string) (*model.Result, error) {
	if r.RDB != nil {
		raw, err := r.RDB.Get(context.Background(), resultCacheKey(examTitle, registrationNumber)).Bytes()
		if err == nil {
			var res model.Result
			if json.Unmarshal(raw, &res) == nil {
				return &res, nil
			}
		}
	}

	var res model.Result
	err := r.DB.Where("exam_title = ? AND registration_number = ?", examTitle, registrationNumber).
		First(&res).Error
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func (r *ResultRepository) ListByExam(examTitle string) ([]model.Result, error) {
	var results []model.Result
	err := r.DB.Where("exam_title = ?", examTitle).
		Order("registration_number asc").Find(&results).Error
	return results, err
}

func (r *ResultRepository) ListAll() ([]model.Result, error) {
	var results []model.Result
	err := r.DB.Order("exam_title asc, registration_number asc").Find(&results).Error
	return results, err
}
