// Package tokenstore persists the credential pair (access and refresh
// tokens) between runs. Storage is an injected capability so tests can use
// an in-memory implementation.
package tokenstore

// Store holds the current credential pair. Implementations do not validate
// token shape or expiry; tokens are opaque strings.
type Store interface {
	// Save persists both tokens, replacing any previous pair.
	Save(access, refresh string) error

	// Access returns the stored access token, or "" if none.
	Access() string

	// Refresh returns the stored refresh token, or "" if none.
	Refresh() string

	// Clear removes both tokens.
	Clear() error
}

// Memory is an in-memory Store used in tests and as a fallback when no
// durable storage is configured.
type Memory struct {
	access  string
	refresh string
}

func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) Save(access, refresh string) error {
	m.access, m.refresh = access, refresh
	return nil
}

func (m *Memory) Access() string  { return m.access }
func (m *Memory) Refresh() string { return m.refresh }

func (m *Memory) Clear() error {
	m.access, m.refresh = "", ""
	return nil
}
