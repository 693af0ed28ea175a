package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Import run statuses. A run only moves running -> completed or running -> failed.
const (
	ImportStatusRunning   = "running"
	ImportStatusCompleted = "completed"
	ImportStatusFailed    = "failed"
)

// ImportLog records one feed ingestion run for operator visibility.
// Append-only except for the single completion update; terminal rows are immutable.
type ImportLog struct {
	ID               string     `gorm:"column:id;type:char(36);primaryKey"`
	Status           string     `gorm:"column:status;type:varchar(16);not null;default:running"`
	CategoryFilter   *string    `gorm:"column:category_filter;type:varchar(64)"`
	AdvertiserFilter *string    `gorm:"column:advertiser_filter;type:varchar(64)"`
	ProductsImported int        `gorm:"column:products_imported;default:0"`
	ProductsUpdated  int        `gorm:"column:products_updated;default:0"`
	ProductsFailed   int        `gorm:"column:products_failed;default:0"`
	ErrorMessage     *string    `gorm:"column:error_message;type:text"`
	CreatedBy        *string    `gorm:"column:created_by;type:char(36)"`
	StartedAt        time.Time  `gorm:"column:started_at;autoCreateTime"`
	CompletedAt      *time.Time `gorm:"column:completed_at"`
	CreatedAt        time.Time  `gorm:"column:created_at;autoCreateTime"`
}

func (ImportLog) TableName() string {
	return "import_logs"
}

func (l *ImportLog) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.New().String()
	}
	return nil
}
