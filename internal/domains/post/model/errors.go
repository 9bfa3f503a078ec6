package model

import (
	"errors"
	"fmt"
)

// Error codes
const (
	ErrCodePostNotFound  = "PST001"
	ErrCodeNoPosts       = "PST002"
	ErrCodeInvalidSort   = "PST003"
	ErrCodeInvalidMedia  = "PST004"
)

// Errors
var (
	ErrPostNotFound = errors.New("post not found")
	ErrInvalidSort  = errors.New("invalid sort field")
)

// PostError carries an error code the handler maps to a response.
type PostError struct {
	Code    string
	Message string
	Err     error
}

func (e *PostError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *PostError) Unwrap() error {
	return e.Err
}

func NewNoPostsError(username string) *PostError {
	return &PostError{
		Code:    ErrCodeNoPosts,
		Message: fmt.Sprintf("No posts found for %s", username),
		Err:     ErrPostNotFound,
	}
}
