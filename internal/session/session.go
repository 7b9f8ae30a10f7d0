// Package session holds the client-side session: the cached user profile
// and the lifecycle around it. The session is an explicitly constructed
// object created once at startup and injected into the CLI; it lives for
// the whole process.
//
// Lifecycle: the session starts Hydrating. Hydrate attempts to rebuild a
// session from a previously stored credential pair; it settles into
// Authenticated (profile fetched) or Unauthenticated (no credential, or the
// stored credential was rejected, in which case the pair is cleared). After
// that, Login, Logout, and the API client's 401 hook move the session
// between the two settled states.
//
// All methods are expected to be called from the single CLI goroutine;
// operations suspend at network boundaries but never race each other.
package session

import (
	"context"

	"github.com/provafacil/provafacil/internal/logging"
	"github.com/provafacil/provafacil/internal/models"
	"github.com/provafacil/provafacil/internal/services"
	"github.com/provafacil/provafacil/internal/tokenstore"
)

// State is the settled/unsettled condition of the session.
type State int

const (
	// Hydrating means startup restoration from stored credentials is still
	// in progress. No navigation decision may be made in this state.
	Hydrating State = iota
	// Authenticated means a user profile is present.
	Authenticated
	// Unauthenticated means hydration completed without a profile, or the
	// user logged out, or the server rejected the stored credential.
	Unauthenticated
)

func (s State) String() string {
	switch s {
	case Hydrating:
		return "hydrating"
	case Authenticated:
		return "authenticated"
	default:
		return "unauthenticated"
	}
}

// Session owns the in-memory user profile. The authenticated flag is always
// derived from profile presence; there is no separate boolean to drift out
// of sync.
type Session struct {
	auth   services.AuthService
	users  services.UserService
	tokens tokenstore.Store
	log    logging.Logger

	user      *models.UserProfile
	hydrating bool
}

// New constructs a Session in the Hydrating state. Call Hydrate before
// making any navigation decision.
func New(auth services.AuthService, users services.UserService, tokens tokenstore.Store, log logging.Logger) *Session {
	return &Session{auth: auth, users: users, tokens: tokens, log: log, hydrating: true}
}

// State reports the current lifecycle state.
func (s *Session) State() State {
	switch {
	case s.hydrating:
		return Hydrating
	case s.user != nil:
		return Authenticated
	default:
		return Unauthenticated
	}
}

// Authenticated reports whether a user profile is present.
func (s *Session) Authenticated() bool { return s.user != nil }

// Loading reports whether startup hydration is still in progress.
func (s *Session) Loading() bool { return s.hydrating }

// User returns the cached profile, or nil when unauthenticated.
func (s *Session) User() *models.UserProfile { return s.user }

// Hydrate attempts to restore the session from a stored credential pair.
// With no stored access token it settles Unauthenticated immediately. With
// one, it fetches the profile; on failure the credential pair is cleared
// and the session settles Unauthenticated. Hydrate never returns an error:
// a failed restoration is a normal cold start.
func (s *Session) Hydrate(ctx context.Context) {
	defer func() { s.hydrating = false }()

	if s.tokens.Access() == "" {
		return
	}

	profile, err := s.users.Profile(ctx)
	if err != nil {
		s.log.Warn(ctx, "stored credentials rejected, starting unauthenticated", "error", err)
		if err := s.tokens.Clear(); err != nil {
			s.log.Error(ctx, "clearing credentials failed", "error", err)
		}
		s.user = nil
		return
	}
	s.user = profile
}

// Login authenticates, persists the returned credential pair, and then
// fetches the profile. The pair must be saved before the profile fetch is
// issued: the fetch relies on the API client reading the just-saved access
// token.
func (s *Session) Login(ctx context.Context, username, password string) (*models.TokenPair, error) {
	pair, err := s.auth.Login(ctx, username, password)
	if err != nil {
		return nil, err
	}

	if err := s.tokens.Save(pair.AccessToken, pair.RefreshToken); err != nil {
		return nil, err
	}

	profile, err := s.users.Profile(ctx)
	if err != nil {
		return nil, err
	}
	s.user = profile
	return pair, nil
}

// Register creates an account. It deliberately does not establish a
// session; the caller must follow up with Login.
func (s *Session) Register(ctx context.Context, req models.RegisterRequest) (*models.Account, error) {
	return s.auth.Register(ctx, req)
}

// Logout tears the session down. Server-side revocation is best-effort
// inside the auth service; local teardown always succeeds.
func (s *Session) Logout(ctx context.Context) error {
	err := s.auth.Logout(ctx)
	s.user = nil
	return err
}

// RefreshUser re-fetches the profile to reflect server-side edits. Failure
// is logged and the prior profile is retained; no state transition occurs.
func (s *Session) RefreshUser(ctx context.Context) {
	if s.user == nil {
		return
	}
	profile, err := s.users.Profile(ctx)
	if err != nil {
		s.log.Warn(ctx, "profile refresh failed, keeping cached profile", "error", err)
		return
	}
	s.user = profile
}

// Invalidate is the API client's 401 hook: the server rejected the access
// token mid-session. Credentials are cleared and the profile dropped,
// without requiring the user to click logout.
func (s *Session) Invalidate() {
	if err := s.tokens.Clear(); err != nil {
		s.log.Error(context.Background(), "clearing credentials failed", "error", err)
	}
	s.user = nil
}
