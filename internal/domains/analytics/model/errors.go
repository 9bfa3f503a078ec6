package model

import (
	"errors"
	"fmt"
)

// Error codes
const (
	ErrCodeAccountNotFound = "ANL001"
	ErrCodeNoPosts         = "ANL002"
	ErrCodeInvalidMetric   = "ANL003"
	ErrCodeInvalidPeriod   = "ANL004"
	ErrCodeTooManyAccounts = "ANL005"
	ErrCodeInvalidInput    = "ANL006"
)

// Errors
var (
	ErrAccountNotFound = errors.New("account not found")
	ErrInvalidPeriod   = errors.New("invalid period")
	ErrTooManyAccounts = errors.New("too many accounts requested")
)

// AnalyticsError carries an error code the handler maps to a response.
type AnalyticsError struct {
	Code    string
	Message string
	Err     error
}

func (e *AnalyticsError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AnalyticsError) Unwrap() error {
	return e.Err
}

func NewAccountNotFoundError(username string) *AnalyticsError {
	return &AnalyticsError{
		Code:    ErrCodeAccountNotFound,
		Message: fmt.Sprintf("Account %s not found. Collect its data first.", username),
		Err:     ErrAccountNotFound,
	}
}
