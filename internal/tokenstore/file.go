package tokenstore

import (
	"errors"
	"fmt"
	"os"

	"github.com/provafacil/provafacil/internal/common"
	"github.com/provafacil/provafacil/internal/cryptox"
)

// File is a Store backed by a single AES-GCM encrypted file. The pair is
// loaded once at construction and kept in memory; Save and Clear write
// through to disk.
type File struct {
	path    string
	key     []byte
	access  string
	refresh string
}

// NewFile opens (or initializes) the credential file at path, decrypting it
// with key. A missing file is not an error: the store starts empty. A file
// that cannot be decrypted is treated as corrupt and discarded, which forces
// a fresh login rather than failing startup.
func NewFile(path string, key []byte) (*File, error) {
	f := &File{path: path, key: key}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return f, nil
		}
		return nil, fmt.Errorf("read credential file: %w", err)
	}

	var pair map[string]string
	if err := cryptox.Open(data, key, &pair); err != nil {
		_ = os.Remove(path)
		return f, nil
	}

	f.access = pair[common.AccessTokenKey]
	f.refresh = pair[common.RefreshTokenKey]
	return f, nil
}

func (f *File) Save(access, refresh string) error {
	pair := map[string]string{
		common.AccessTokenKey:  access,
		common.RefreshTokenKey: refresh,
	}
	data, err := cryptox.Seal(pair, f.key)
	if err != nil {
		return fmt.Errorf("seal credentials: %w", err)
	}
	if err := os.WriteFile(f.path, data, 0o600); err != nil {
		return fmt.Errorf("write credential file: %w", err)
	}
	f.access, f.refresh = access, refresh
	return nil
}

func (f *File) Access() string  { return f.access }
func (f *File) Refresh() string { return f.refresh }

func (f *File) Clear() error {
	f.access, f.refresh = "", ""
	if err := os.Remove(f.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove credential file: %w", err)
	}
	return nil
}
