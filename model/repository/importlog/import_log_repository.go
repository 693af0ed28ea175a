package importlog

import (
	"time"

	"gorm.io/gorm"

	entity "biolink.GO/model/entity"
)

type ImportLogRepository struct {
	db *gorm.DB
}

func NewImportLogRepository(db *gorm.DB) *ImportLogRepository {
	return &ImportLogRepository{db: db}
}

// Start inserts a run log row in the running state and returns it.
func (r *ImportLogRepository) Start(categoryFilter, advertiserFilter, createdBy *string) (*entity.ImportLog, error) {
	l := &entity.ImportLog{
		Status:           entity.ImportStatusRunning,
		CategoryFilter:   categoryFilter,
		AdvertiserFilter: advertiserFilter,
		CreatedBy:        createdBy,
	}
	if err := r.db.Create(l).Error; err != nil {
		return nil, err
	}
	return l, nil
}

// Complete marks a running log as completed with final counters.
// A log already in a terminal state is left untouched.
func (r *ImportLogRepository) Complete(id string, imported, updated, failed int) error {
	now := time.Now()
	return r.db.Model(&entity.ImportLog{}).
		Where("id = ? AND status = ?", id, entity.ImportStatusRunning).
		Updates(map[string]interface{}{
			"status":            entity.ImportStatusCompleted,
			"products_imported": imported,
			"products_updated":  updated,
			"products_failed":   failed,
			"completed_at":      &now,
			"error_message":     nil,
		}).Error
}

// Fail marks a running log as failed with the terminal error message.
func (r *ImportLogRepository) Fail(id string, errMsg string) error {
	now := time.Now()
	return r.db.Model(&entity.ImportLog{}).
		Where("id = ? AND status = ?", id, entity.ImportStatusRunning).
		Updates(map[string]interface{}{
			"status":        entity.ImportStatusFailed,
			"completed_at":  &now,
			"error_message": errMsg,
		}).Error
}

// List returns the most recent runs, newest first.
func (r *ImportLogRepository) List(limit int) ([]entity.ImportLog, error) {
	if limit < 1 || limit > 500 {
		limit = 50
	}
	var logs []entity.ImportLog
	err := r.db.Order("started_at DESC").Limit(limit).Find(&logs).Error
	if err != nil {
		return nil, err
	}
	return logs, nil
}
