package session

import (
	"crypto/rand"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/nacl/secretbox"
)

// Remember-me file names inside the state directory. The original dashboard
// cached the raw password client-side; that behavior is deliberately not
// reproduced. Instead a random token is sealed at rest under a
// machine-local key, and no password ever touches the disk.
const (
	rememberKeyFile  = "remember.key"
	rememberDataFile = "remember.bin"
)

// RememberedLogin is the sealed remember-me payload: the account email and
// an opaque client token, never a password.
type RememberedLogin struct {
	Email     string    `json:"email"`
	Token     string    `json:"token"`
	CreatedAt time.Time `json:"created_at"`
}

// Remember seals a remember-me entry for the email under the machine-local
// key and returns the generated token.
func Remember(stateDir, email string) (*RememberedLogin, error) {
	key, err := loadOrCreateKey(stateDir)
	if err != nil {
		return nil, err
	}

	entry := &RememberedLogin{
		Email:     email,
		Token:     uuid.NewString(),
		CreatedAt: time.Now().UTC(),
	}
	plaintext, err := json.Marshal(entry)
	if err != nil {
		return nil, fmt.Errorf("failed to encode remember-me entry: %w", err)
	}

	var nonce [24]byte
	if _, err := rand.Read(nonce[:]); err != nil {
		return nil, fmt.Errorf("failed to generate nonce: %w", err)
	}

	sealed := secretbox.Seal(nonce[:], plaintext, &nonce, key)
	if err := os.WriteFile(filepath.Join(stateDir, rememberDataFile), sealed, 0o600); err != nil {
		return nil, fmt.Errorf("failed to write remember-me file: %w", err)
	}
	return entry, nil
}

// Remembered opens the sealed remember-me entry, returning (nil, nil) when
// none exists.
func Remembered(stateDir string) (*RememberedLogin, error) {
	sealed, err := os.ReadFile(filepath.Join(stateDir, rememberDataFile))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read remember-me file: %w", err)
	}
	if len(sealed) < 24 {
		return nil, fmt.Errorf("remember-me file is truncated")
	}

	key, err := loadOrCreateKey(stateDir)
	if err != nil {
		return nil, err
	}

	var nonce [24]byte
	copy(nonce[:], sealed[:24])
	plaintext, ok := secretbox.Open(nil, sealed[24:], &nonce, key)
	if !ok {
		return nil, fmt.Errorf("failed to unseal remember-me entry")
	}

	var entry RememberedLogin
	if err := json.Unmarshal(plaintext, &entry); err != nil {
		return nil, fmt.Errorf("failed to parse remember-me entry: %w", err)
	}
	return &entry, nil
}

// Forget removes the remember-me entry. A missing entry is not an error.
func Forget(stateDir string) error {
	err := os.Remove(filepath.Join(stateDir, rememberDataFile))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove remember-me file: %w", err)
	}
	return nil
}

// loadOrCreateKey returns the 32-byte machine-local sealing key, creating it
// with owner-only permissions on first use.
func loadOrCreateKey(stateDir string) (*[32]byte, error) {
	path := filepath.Join(stateDir, rememberKeyFile)

	var key [32]byte
	data, err := os.ReadFile(path)
	if err == nil {
		if len(data) != 32 {
			return nil, fmt.Errorf("remember-me key file has wrong size: %d", len(data))
		}
		copy(key[:], data)
		return &key, nil
	}
	if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read remember-me key: %w", err)
	}

	if _, err := rand.Read(key[:]); err != nil {
		return nil, fmt.Errorf("failed to generate remember-me key: %w", err)
	}
	if err := os.MkdirAll(stateDir, 0o700); err != nil {
		return nil, fmt.Errorf("failed to create state dir: %w", err)
	}
	if err := os.WriteFile(path, key[:], 0o600); err != nil {
		return nil, fmt.Errorf("failed to write remember-me key: %w", err)
	}
	return &key, nil
}
