package usecase

import "errors"

var (
	// ErrValidation wraps every input validation failure.
	ErrValidation         = errors.New("validation failed")
	ErrQuestionNotFound   = errors.New("question not found")
	ErrAnswerNotFound     = errors.New("answer not found")
	ErrSearchTermRequired = errors.New("search term required")
	// ErrLikeConflict is returned when a concurrent toggle by the same user
	// inserted the like first. Nothing was committed; the caller may retry.
	ErrLikeConflict       = errors.New("like toggled concurrently, retry")
	ErrUsernameTaken      = errors.New("username or email already taken")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
)
