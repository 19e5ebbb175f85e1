package models

import "errors"

var (
	ErrNotFound              = errors.New("not found")
	ErrInvalidInput          = errors.New("invalid input")
	ErrInsufficientTokens    = errors.New("insufficient tokens")
	ErrPaymentsNotConfigured = errors.New("payments not configured")
)
