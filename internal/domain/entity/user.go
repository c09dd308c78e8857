package entity

import (
	"time"
)

// User represents a registered forum member.
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"size:32;uniqueIndex;not null" json:"username"`
	Email        string    `gorm:"size:255;uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"not null" json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Claims carried by an access token.
type Claims struct {
	UserID    uint
	ExpiresAt time.Time
}
