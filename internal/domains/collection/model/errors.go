package model

import (
	"errors"
	"fmt"
)

// Error codes
const (
	ErrCodeScrapeFailed = "COL001"
	ErrCodeNoData       = "COL002"
)

// Errors
var (
	ErrScrapeFailed = errors.New("scrape failed")
	ErrNoData       = errors.New("provider returned no data")
)

// CollectionError carries an error code the handler maps to a response.
type CollectionError struct {
	Code    string
	Message string
	Err     error
}

func (e *CollectionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *CollectionError) Unwrap() error {
	return e.Err
}

func NewScrapeFailedError(username string, err error) *CollectionError {
	return &CollectionError{
		Code:    ErrCodeScrapeFailed,
		Message: fmt.Sprintf("Failed to collect data for %s", username),
		Err:     err,
	}
}
