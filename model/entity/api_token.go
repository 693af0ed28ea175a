package entity

import "time"

// ApiToken is a bearer credential for the authenticated /api surface.
type ApiToken struct {
	EntityID  uint      `gorm:"column:entity_id;primaryKey;autoIncrement"`
	UserID    string    `gorm:"column:user_id;type:char(36);not null;index"`
	Token     string    `gorm:"column:token;type:varchar(64);not null;uniqueIndex"`
	Revoked   uint16    `gorm:"column:revoked;not null;default:0"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (ApiToken) TableName() string {
	return "api_tokens"
}
