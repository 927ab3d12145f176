package entity

import (
	"time"

	"gorm.io/gorm"
)

// PasswordReset is a single-use token handed to the out-of-band delivery
// channel (email). Redeeming it replaces the account password.
type PasswordReset struct {
	gorm.Model
	Token     string    `gorm:"size:36;uniqueIndex;not null" json:"-"`
	UserID    uint      `json:"userId"`
	User      User      `json:"-"`
	ExpiresAt time.Time `json:"expiresAt"`
	Used      bool      `json:"used"`
}
