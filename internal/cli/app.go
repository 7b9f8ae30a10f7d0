// Package cli implements the interactive terminal front end of the
// ProvaFácil client: a read–eval–print loop over the session and the
// application services.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/provafacil/provafacil/internal/api"
	"github.com/provafacil/provafacil/internal/config"
	"github.com/provafacil/provafacil/internal/cryptox"
	"github.com/provafacil/provafacil/internal/logging"
	"github.com/provafacil/provafacil/internal/services"
	"github.com/provafacil/provafacil/internal/session"
	"github.com/provafacil/provafacil/internal/tokenstore"
)

// App wires the session and services to the interactive loop.
type App struct {
	config     *config.Config
	sess       *session.Session
	users      services.UserService
	worksheets services.WorksheetService
	reader     *bufio.Reader
	out        io.Writer
	log        logging.Logger
}

// NewApp builds the full object graph: token store (encrypted file), API
// client, services, and an explicitly constructed session. The API client's
// 401 hook is wired to the session here, in one place.
func NewApp(c *config.Config, log logging.Logger) (*App, error) {
	key, err := cryptox.LoadOrCreateKey(c.KeyFile)
	if err != nil {
		return nil, fmt.Errorf("init storage key: %w", err)
	}

	tokens, err := tokenstore.NewFile(c.TokenFile, key)
	if err != nil {
		return nil, fmt.Errorf("init token store: %w", err)
	}

	client := api.New(c.BaseURL, c.RequestTimeout, tokens, log)

	auth := services.NewAuthService(client, tokens, log)
	users := services.NewUserService(client)
	worksheets := services.NewWorksheetService(client)

	sess := session.New(auth, users, tokens, log)
	client.OnUnauthorized(sess.Invalidate)

	return &App{
		config:     c,
		sess:       sess,
		users:      users,
		worksheets: worksheets,
		reader:     bufio.NewReader(os.Stdin),
		out:        os.Stdout,
		log:        log,
	}, nil
}

// Run hydrates the session from stored credentials and enters the REPL.
// Hydration completes before any command is accepted, so the guard never
// decides on an unsettled session.
func (a *App) Run(ctx context.Context) {
	fmt.Fprintln(a.out, "ProvaFácil CLI (type 'help' for commands)")
	fmt.Fprintln(a.out, "checking stored session...")

	hctx, cancel := context.WithTimeout(ctx, a.config.RequestTimeout)
	a.sess.Hydrate(hctx)
	cancel()

	if a.sess.Authenticated() {
		fmt.Fprintf(a.out, "Welcome back, %s!\n", a.sess.User().Username)
	}

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.status, scanner)
}

// status renders the prompt suffix: the username when authenticated.
func (a *App) status() string {
	if a.sess.Loading() {
		return "(...)"
	}
	if u := a.sess.User(); u != nil {
		return fmt.Sprintf("(%s)", u.Username)
	}
	return ""
}

func (a *App) isLoggedIn() bool {
	return a.sess.Authenticated()
}

// guard is the navigation gate: commands that need a session call it first.
// While hydration is in progress no decision is made; once settled, an
// unauthenticated user is redirected to login instead of the command.
func (a *App) guard() bool {
	if a.sess.Loading() {
		fmt.Fprintln(a.out, "still checking stored session, try again in a moment")
		return false
	}
	if !a.sess.Authenticated() {
		fmt.Fprintln(a.out, "Please login first (or 'register' to create an account).")
		return false
	}
	return true
}

// opCtx bounds a single user-initiated operation.
func (a *App) opCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, a.config.RequestTimeout)
}

// fail reports a command error to the user in one line. Server-supplied
// messages (validation, authentication) are shown as-is; everything else is
// already phrased by the error taxonomy.
func (a *App) fail(err error) error {
	fmt.Fprintf(a.out, "error: %v\n", err)
	return err
}
