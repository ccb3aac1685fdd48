package services

import "errors"

// Define common service errors
var (
	ErrNotFound       = errors.New("resource not found")
	ErrConflict       = errors.New("conflict") // e.g., duplicate phone number
	ErrValidation     = errors.New("validation failed")
	ErrAlreadyClaimed = errors.New("job already claimed")
	ErrUnknownSender  = errors.New("sender not recognized as a provider")
)
