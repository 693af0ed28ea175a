package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RoleAdmin is the only role the importer cares about.
const RoleAdmin = "admin"

// UserRole assigns an application role to a user. A user may hold several.
type UserRole struct {
	ID        string    `gorm:"column:id;type:char(36);primaryKey"`
	UserID    string    `gorm:"column:user_id;type:char(36);not null;index"`
	Role      string    `gorm:"column:role;type:varchar(32);not null"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (UserRole) TableName() string {
	return "user_roles"
}

func (r *UserRole) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	return nil
}
