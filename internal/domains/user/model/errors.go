package model

import (
	"errors"
	"fmt"
)

// Error codes
const (
	ErrCodeEmailTaken         = "USR001"
	ErrCodeInvalidCredentials = "USR002"
	ErrCodeUserNotFound       = "USR003"
	ErrCodeValidation         = "USR004"
)

// Errors
var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
)

// UserError carries an error code the handler maps to a response.
type UserError struct {
	Code    string
	Message string
	Err     error
}

func (e *UserError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *UserError) Unwrap() error {
	return e.Err
}

func NewEmailTakenError(email string) *UserError {
	return &UserError{
		Code:    ErrCodeEmailTaken,
		Message: fmt.Sprintf("Email %s is already registered", email),
		Err:     ErrEmailTaken,
	}
}

func NewInvalidCredentialsError() *UserError {
	return &UserError{
		Code:    ErrCodeInvalidCredentials,
		Message: "Invalid email or password",
		Err:     ErrInvalidCredentials,
	}
}
