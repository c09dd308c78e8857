package entity

import "time"

// Answer is a reply to a Question. Likes mirrors the number of Like rows
// pointing at the answer and is only changed together with those rows.
type Answer struct {
	ID         uint      `gorm:"primaryKey"`
	Content    string    `gorm:"type:text;not null"`
	UserID     uint      `gorm:"not null;index"`
	User       User      `gorm:"foreignKey:UserID"`
	QuestionID uint      `gorm:"not null;index"`
	Question   *Question `gorm:"foreignKey:QuestionID"`
	Likes      int       `gorm:"not null;default:0"`
	CreatedAt  time.Time `gorm:"index"`
}
