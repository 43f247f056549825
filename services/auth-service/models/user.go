package models

import (
	"time"

	"gorm.io/gorm"
)

// User is an account on the platform. TrustScore is the reputation
// counter adjusted by the report lifecycle engine; it stays within
// [0, 100] and every account starts at 50.
type User struct {
	ID         string         `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Email      string         `gorm:"uniqueIndex;not null" json:"email"`
	Password   string         `gorm:"not null" json:"-"`
	Name       string         `gorm:"not null" json:"name"`
	Role       string         `gorm:"default:'CITIZEN'" json:"role"`
	TrustScore int            `gorm:"default:50" json:"trust_score"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}
