package cryptox

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/provafacil/provafacil/internal/common"
)

type payload struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

func TestSealOpen_Roundtrip(t *testing.T) {
	key := common.GenerateRandByteArray(KeySize)
	in := payload{Access: "aaa", Refresh: "rrr"}

	data, err := Seal(in, key)
	require.NoError(t, err)

	var out payload
	require.NoError(t, Open(data, key, &out))
	assert.Equal(t, in, out)
}

func TestOpen_WrongKey(t *testing.T) {
	key := common.GenerateRandByteArray(KeySize)
	data, err := Seal(payload{Access: "aaa"}, key)
	require.NoError(t, err)

	other := common.GenerateRandByteArray(KeySize)
	var out payload
	assert.Error(t, Open(data, other, &out))
}

func TestOpen_TooShort(t *testing.T) {
	key := common.GenerateRandByteArray(KeySize)
	var out payload
	err := Open([]byte{1, 2, 3}, key, &out)
	assert.ErrorIs(t, err, ErrCiphertextTooShort)
}

func TestLoadOrCreateKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "key.bin")

	key1, err := LoadOrCreateKey(path)
	require.NoError(t, err)
	require.Len(t, key1, KeySize)

	// Second load returns the same key.
	key2, err := LoadOrCreateKey(path)
	require.NoError(t, err)
	assert.Equal(t, key1, key2)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestLoadOrCreateKey_BadLength(t *testing.T) {
	path := filepath.Join(t.TempDir(), "key.bin")
	require.NoError(t, os.WriteFile(path, []byte("short"), 0o600))

	_, err := LoadOrCreateKey(path)
	assert.Error(t, err)
}

func TestDeriveKey_Deterministic(t *testing.T) {
	secret := []byte("installation-seed")
	salt := []byte("0123456789abcdef")

	k1 := DeriveKey(secret, salt)
	k2 := DeriveKey(secret, salt)
	require.Len(t, k1, KeySize)
	assert.Equal(t, k1, k2)

	other := DeriveKey(secret, []byte("fedcba9876543210"))
	assert.NotEqual(t, k1, other)
}
