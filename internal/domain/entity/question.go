package entity

import "time"

// Question is a forum thread opener. Questions are never edited or deleted.
type Question struct {
	ID        uint      `gorm:"primaryKey"`
	Title     string    `gorm:"size:300;not null"`
	Content   string    `gorm:"type:text;not null"`
	UserID    uint      `gorm:"not null;index"`
	User      User      `gorm:"foreignKey:UserID"`
	Answers   []Answer  `gorm:"foreignKey:QuestionID"`
	CreatedAt time.Time `gorm:"index"`
}
