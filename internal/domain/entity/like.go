package entity

import "time"

// Like records that a user liked an answer. At most one row exists per
// (UserID, AnswerID) pair.
type Like struct {
	ID        uint      `gorm:"primaryKey"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_like_user_answer"`
	AnswerID  uint      `gorm:"not null;uniqueIndex:idx_like_user_answer;index"`
	CreatedAt time.Time
}

// LikeState is the outcome of a toggle.
type LikeState string

const (
	LikeStateLiked   LikeState = "Liked"
	LikeStateUnliked LikeState = "Unliked"
)

// LikeResult is returned by a toggle: the new state and the answer's counter after it.
type LikeResult struct {
	State LikeState
	Likes int
}

// LikeEvent is published after a toggle commits.
type LikeEvent struct {
	Type       string    `json:"type"`
	State      LikeState `json:"state"`
	UserID     uint      `json:"userId"`
	AnswerID   uint      `json:"answerId"`
	Likes      int       `json:"likes"`
	OccurredAt time.Time `json:"occurredAt"`
}

const LikeEventType = "like.toggled"
