package out

import (
	"errors"
	"fmt"

	"github.com/zalando/go-keyring"

	progressout "grindlock/internal/modules/progress/port/out"
	apperrors "grindlock/internal/platform/errors"
)

const (
	keyringService = "grindlock"
	keyringUser    = "leetcode-session"
)

// KeyringCredentials stores the provider session token in the OS keychain.
type KeyringCredentials struct{}

func NewKeyringCredentials() KeyringCredentials {
	return KeyringCredentials{}
}

var _ progressout.CredentialStore = KeyringCredentials{}

func (KeyringCredentials) SessionToken() (string, error) {
	token, err := keyring.Get(keyringService, keyringUser)
	if errors.Is(err, keyring.ErrNotFound) {
		return "", apperrors.ErrNoCredentials
	}
	if err != nil {
		return "", fmt.Errorf("read keychain: %w", err)
	}
	return token, nil
}

func (KeyringCredentials) SetSessionToken(token string) error {
	if err := keyring.Set(keyringService, keyringUser, token); err != nil {
		return fmt.Errorf("write keychain: %w", err)
	}
	return nil
}
