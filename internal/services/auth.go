// Package services contains the application services of the ProvaFácil
// client: authentication, user profile, and worksheet operations. Each
// service wraps REST calls on the shared API client; none of them hold
// session state.
package services

import (
	"context"
	"net/url"

	"github.com/provafacil/provafacil/internal/api"
	"github.com/provafacil/provafacil/internal/logging"
	"github.com/provafacil/provafacil/internal/models"
	"github.com/provafacil/provafacil/internal/tokenstore"
)

// restClient is the transport surface the services need. *api.Client
// satisfies it; tests provide fakes.
type restClient interface {
	Get(ctx context.Context, path string, out any, opts ...api.RequestOption) error
	Post(ctx context.Context, path string, body, out any, opts ...api.RequestOption) error
	Patch(ctx context.Context, path string, body, out any, opts ...api.RequestOption) error
	Delete(ctx context.Context, path string, opts ...api.RequestOption) error
	Download(ctx context.Context, path string) ([]byte, string, error)
}

// AuthService defines the authentication operations.
//
// Contract:
//   - Login: exchange credentials for a token pair. The pair is NOT
//     persisted here; the session layer saves it and then fetches the
//     profile, preserving the save-before-fetch order.
//   - Register: create an account. Does not establish a session.
//   - Refresh: exchange a refresh token for a new pair. Not called by any
//     automatic path; kept for explicit re-authentication.
//   - Logout: best-effort server-side revocation, then clear the local
//     token store. Revocation failure is logged and swallowed — local
//     teardown always succeeds.
type AuthService interface {
	Login(ctx context.Context, username, password string) (*models.TokenPair, error)
	Register(ctx context.Context, req models.RegisterRequest) (*models.Account, error)
	Refresh(ctx context.Context, refreshToken string) (*models.TokenPair, error)
	Logout(ctx context.Context) error
}

type authService struct {
	client restClient
	tokens tokenstore.Store
	log    logging.Logger
}

// NewAuthService constructs an AuthService bound to the given API client and
// token store.
func NewAuthService(client restClient, tokens tokenstore.Store, log logging.Logger) AuthService {
	return &authService{client: client, tokens: tokens, log: log}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (a *authService) Login(ctx context.Context, username, password string) (*models.TokenPair, error) {
	var pair models.TokenPair
	err := a.client.Post(ctx, "/auth/login", loginRequest{Username: username, Password: password}, &pair, api.WithoutAuth())
	if err != nil {
		return nil, err
	}
	return &pair, nil
}

func (a *authService) Register(ctx context.Context, req models.RegisterRequest) (*models.Account, error) {
	// The confirm-password check (and the rest of the policy) fails locally
	// before any network call is issued.
	if err := checkStruct(req); err != nil {
		return nil, err
	}

	var account models.Account
	if err := a.client.Post(ctx, "/auth/register", req, &account, api.WithoutAuth()); err != nil {
		return nil, err
	}
	return &account, nil
}

func (a *authService) Refresh(ctx context.Context, refreshToken string) (*models.TokenPair, error) {
	var pair models.TokenPair
	path := "/auth/refresh?refreshToken=" + url.QueryEscape(refreshToken)
	if err := a.client.Get(ctx, path, &pair, api.WithoutAuth()); err != nil {
		return nil, err
	}
	return &pair, nil
}

func (a *authService) Logout(ctx context.Context) error {
	if refresh := a.tokens.Refresh(); refresh != "" {
		path := "/auth/logout?refreshToken=" + url.QueryEscape(refresh)
		if err := a.client.Post(ctx, path, nil, nil, api.WithoutAuth()); err != nil {
			a.log.Warn(ctx, "server-side token revocation failed", "error", err)
		}
	}
	return a.tokens.Clear()
}
