package out

import (
	"context"

	"grindlock/internal/modules/progress/domain"
)

// SubmissionSource reads recent accepted submissions from the tracking
// provider. Implementations must wrap transport and auth failures in
// apperrors.ErrProviderUnavailable so callers can fail closed without
// touching the blocking mechanism.
type SubmissionSource interface {
	RecentAccepted(ctx context.Context, limit int) ([]domain.Submission, error)
}

// CredentialStore holds the provider session token.
type CredentialStore interface {
	SessionToken() (string, error)
	SetSessionToken(token string) error
}
