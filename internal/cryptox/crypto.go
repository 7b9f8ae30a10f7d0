// Package cryptox implements at-rest encryption for locally cached
// credentials using AES-GCM under a per-installation random key.
package cryptox

import (
	"crypto/aes"
	"crypto/cipher"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"golang.org/x/crypto/argon2"

	"github.com/provafacil/provafacil/internal/common"
)

// KeySize is the AES-256 key length used for the installation key.
const KeySize = 32

// saltSize is the length of the argon2 salt stored alongside the seed.
const saltSize = 16

var ErrCiphertextTooShort = errors.New("ciphertext too short")

// DeriveKey stretches secret into an AES-256 key with argon2id.
func DeriveKey(secret, salt []byte) []byte {
	return argon2.IDKey(secret, salt, 1, 64*1024, 4, KeySize)
}

// LoadOrCreateKey returns the installation key derived from the secret file
// at path, generating a fresh random salt+seed on first use. The file is
// created with mode 0600; the on-disk secret is never used as a key
// directly.
func LoadOrCreateKey(path string) ([]byte, error) {
	raw, err := os.ReadFile(path)
	if err == nil {
		if len(raw) != saltSize+KeySize {
			return nil, fmt.Errorf("key file %s: unexpected length %d", path, len(raw))
		}
		return DeriveKey(raw[saltSize:], raw[:saltSize]), nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("read key file: %w", err)
	}

	raw = common.GenerateRandByteArray(saltSize + KeySize)
	if err := os.WriteFile(path, raw, 0o600); err != nil {
		return nil, fmt.Errorf("write key file: %w", err)
	}
	return DeriveKey(raw[saltSize:], raw[:saltSize]), nil
}

// Seal serializes v to JSON and encrypts it with AES-GCM. The random nonce is
// prepended to the returned ciphertext.
func Seal(v any, key []byte) ([]byte, error) {
	plaintext, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	aesgcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}

	nonce := common.GenerateRandByteArray(aesgcm.NonceSize())
	return aesgcm.Seal(nonce, nonce, plaintext, nil), nil
}

// Open decrypts data produced by Seal and unmarshals the resulting JSON
// into v. The nonce is expected at the start of data.
func Open(data, key []byte, v any) error {
	block, err := aes.NewCipher(key)
	if err != nil {
		return err
	}
	aesgcm, err := cipher.NewGCM(block)
	if err != nil {
		return err
	}

	if len(data) < aesgcm.NonceSize() {
		return ErrCiphertextTooShort
	}
	nonce, ciphertext := data[:aesgcm.NonceSize()], data[aesgcm.NonceSize():]

	plaintext, err := aesgcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return err
	}
	return json.Unmarshal(plaintext, v)
}
