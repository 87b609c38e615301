// Package crypto provides the credential cipher for BYOK API keys. Keys are
// encrypted at rest in the chatbot registry and only decrypted at the moment
// a provider call needs them.
package crypto

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"

	"golang.org/x/crypto/chacha20poly1305"

	"pitchbot/internal/domain"
)

// Cipher seals and opens credential strings with XChaCha20-Poly1305.
type Cipher struct {
	key []byte
}

// NewCipher creates a Cipher from a base64-encoded 32-byte key.
func NewCipher(base64Key string) (*Cipher, error) {
	if base64Key == "" {
		return nil, errors.New("credential cipher key is not configured")
	}
	key, err := base64.StdEncoding.DecodeString(base64Key)
	if err != nil {
		return nil, fmt.Errorf("decoding cipher key: %w", err)
	}
	if len(key) != chacha20poly1305.KeySize {
		return nil, fmt.Errorf("cipher key must be %d bytes, got %d", chacha20poly1305.KeySize, len(key))
	}
	return &Cipher{key: key}, nil
}

// EphemeralKey returns a random base64-encoded cipher key. Credentials
// sealed with it are unreadable after a restart, so it is only suitable for
// development runs where no key is configured.
func EphemeralKey() (string, error) {
	key := make([]byte, chacha20poly1305.KeySize)
	if _, err := rand.Read(key); err != nil {
		return "", fmt.Errorf("generating cipher key: %w", err)
	}
	return base64.StdEncoding.EncodeToString(key), nil
}

// Encrypt seals plaintext and returns base64 ciphertext with the nonce
// prepended.
func (c *Cipher) Encrypt(plaintext string) (string, error) {
	aead, err := chacha20poly1305.NewX(c.key)
	if err != nil {
		return "", fmt.Errorf("creating aead: %w", err)
	}
	nonce := make([]byte, aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return "", fmt.Errorf("generating nonce: %w", err)
	}
	sealed := aead.Seal(nonce, nonce, []byte(plaintext), nil)
	return base64.StdEncoding.EncodeToString(sealed), nil
}

// Decrypt opens base64 ciphertext. It fails closed: tampered input, a wrong
// key, or an empty recovered plaintext all return ErrDecryptFailure, so a
// broken stored credential reads as missing configuration rather than as an
// empty key.
func (c *Cipher) Decrypt(encrypted string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(encrypted)
	if err != nil {
		return "", domain.ErrDecryptFailure
	}
	aead, err := chacha20poly1305.NewX(c.key)
	if err != nil {
		return "", fmt.Errorf("creating aead: %w", err)
	}
	if len(raw) < aead.NonceSize() {
		return "", domain.ErrDecryptFailure
	}
	nonce, sealed := raw[:aead.NonceSize()], raw[aead.NonceSize():]
	plaintext, err := aead.Open(nil, nonce, sealed, nil)
	if err != nil {
		return "", domain.ErrDecryptFailure
	}
	if len(plaintext) == 0 {
		return "", domain.ErrDecryptFailure
	}
	return string(plaintext), nil
}
