package keystore

import (
	"errors"
	"fmt"

	"github.com/zalando/go-keyring"
)

const serviceName = "coursepilot"

// Keys under which API credentials live in the OS keystore.
const (
	KeyYouTubeAPIKey = "youtube_api_key"
	KeyGeminiAPIKey  = "gemini_api_key"
)

// Keystore stores secrets in the operating system keyring. It implements
// service.SecretStore. A missing key is reported as absent, not as an error.
type Keystore struct{}

// New creates a Keystore.
func New() *Keystore {
	return &Keystore{}
}

// Store saves a secret under the key.
func (k *Keystore) Store(key, secret string) error {
	if err := keyring.Set(serviceName, key, secret); err != nil {
		return fmt.Errorf("failed to store secret %s: %w", key, err)
	}
	return nil
}

// Retrieve loads a secret. A missing key returns ("", false, nil).
func (k *Keystore) Retrieve(key string) (string, bool, error) {
	secret, err := keyring.Get(serviceName, key)
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to retrieve secret %s: %w", key, err)
	}
	return secret, true, nil
}

// Delete removes a secret. Deleting a missing key is a no-op.
func (k *Keystore) Delete(key string) error {
	if err := keyring.Delete(serviceName, key); err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("failed to delete secret %s: %w", key, err)
	}
	return nil
}

// Exists reports whether a secret is stored under the key.
func (k *Keystore) Exists(key string) (bool, error) {
	_, found, err := k.Retrieve(key)
	return found, err
}
