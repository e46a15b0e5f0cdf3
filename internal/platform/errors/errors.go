package apperrors

import "errors"

var (
	ErrProviderUnavailable = errors.New("progress provider unavailable")
	ErrPermissionDenied    = errors.New("permission denied")
	ErrInvalidPhase        = errors.New("invalid phase")
	ErrNotFound            = errors.New("not found")
	ErrNoCredentials       = errors.New("no credentials configured")
)
