package model

import (
	"errors"
	"fmt"
)

// Error codes
const (
	ErrCodeAccountNotFound = "ACC001"
	ErrCodeInvalidUsername = "ACC002"
	ErrCodeInvalidType     = "ACC003"
)

// Errors
var (
	ErrAccountNotFound = errors.New("account not found")
	ErrInvalidUsername = errors.New("invalid username")
)

// AccountError carries an error code the handler maps to a response.
type AccountError struct {
	Code    string
	Message string
	Err     error
}

func (e *AccountError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AccountError) Unwrap() error {
	return e.Err
}

func NewAccountNotFoundError(username string) *AccountError {
	return &AccountError{
		Code:    ErrCodeAccountNotFound,
		Message: fmt.Sprintf("Account %q not found", username),
		Err:     ErrAccountNotFound,
	}
}

func NewInvalidUsernameError(username string) *AccountError {
	return &AccountError{
		Code:    ErrCodeInvalidUsername,
		Message: fmt.Sprintf("Invalid username %q", username),
		Err:     ErrInvalidUsername,
	}
}
