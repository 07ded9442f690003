package store

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// Encryptor encrypts credential bags at rest using AES-GCM with a key
// derived from the configured secret.
type Encryptor struct {
	secretKey string
}

// NewEncryptor creates an encryptor for the given secret.
func NewEncryptor(secretKey string) (*Encryptor, error) {
	if secretKey == "" {
		return nil, errors.New("encryption secret is required")
	}
	return &Encryptor{secretKey: secretKey}, nil
}

// Encrypt serializes and encrypts a credential bag.
func (e *Encryptor) Encrypt(bag map[string]string) (string, error) {
	plaintext, err := json.Marshal(bag)
	if err != nil {
		return "", fmt.Errorf("failed to marshal credentials: %w", err)
	}

	block, err := aes.NewCipher(e.deriveKey())
	if err != nil {
		return "", fmt.Errorf("failed to create cipher: %w", err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return "", fmt.Errorf("failed to create GCM: %w", err)
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("failed to generate nonce: %w", err)
	}

	ciphertext := gcm.Seal(nil, nonce, plaintext, nil)
	combined := append(nonce, ciphertext...)
	return base64.URLEncoding.EncodeToString(combined), nil
}

// Decrypt reverses Encrypt.
func (e *Encryptor) Decrypt(encrypted string) (map[string]string, error) {
	combined, err := base64.URLEncoding.DecodeString(encrypted)
	if err != nil {
		return nil, fmt.Errorf("failed to decode base64: %w", err)
	}

	block, err := aes.NewCipher(e.deriveKey())
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCM: %w", err)
	}

	if len(combined) < gcm.NonceSize() {
		return nil, errors.New("encrypted credentials too short")
	}

	nonce := combined[:gcm.NonceSize()]
	ciphertext := combined[gcm.NonceSize():]

	plaintext, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt: %w", err)
	}

	var bag map[string]string
	if err := json.Unmarshal(plaintext, &bag); err != nil {
		return nil, fmt.Errorf("failed to unmarshal credentials: %w", err)
	}

	return bag, nil
}

// deriveKey derives a 32-byte encryption key from the secret.
func (e *Encryptor) deriveKey() []byte {
	hash := sha256.Sum256([]byte(e.secretKey + "-credential-encryption-v1"))
	return hash[:]
}
