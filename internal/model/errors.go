package model

import "errors"

var (
	// Record related errors
	ErrNotFound      = errors.New("record not found")
	ErrAlreadyExists = errors.New("record already exists")

	// Terminal related errors
	ErrSessionNotFound = errors.New("terminal session not found")
	ErrSessionClosed   = errors.New("terminal session closed")
	ErrEmptyCommand    = errors.New("empty command")

	// Settings related errors
	ErrUnknownSection = errors.New("unknown settings section")

	// Generic errors
	ErrInvalidInput = errors.New("invalid input")
)
