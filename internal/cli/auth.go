package cli

import (
	"context"
	"fmt"

	"github.com/provafacil/provafacil/internal/common"
	"github.com/provafacil/provafacil/internal/models"
)

// Input indirections used to facilitate testing. They point to interactive
// input helpers and can be swapped in tests.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
	getInt        = GetInt
	getYesNo      = GetYesNo
)

// Login prompts for credentials and establishes a session: authenticate,
// persist the token pair, fetch the profile. The password byte slice is
// wiped before returning.
func (a *App) Login(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword("Enter password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	opctx, cancel := a.opCtx(ctx)
	defer cancel()

	if _, err := a.sess.Login(opctx, username, string(password)); err != nil {
		return a.fail(err)
	}

	fmt.Fprintf(a.out, "Logged in as %s.\n", a.sess.User().Username)
	return nil
}

// Register prompts for account details and creates the account. It does not
// log the user in; a separate login is required afterwards.
func (a *App) Register(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword("Enter password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	confirm, err := getPassword("Confirm password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(confirm)

	opctx, cancel := a.opCtx(ctx)
	defer cancel()

	account, err := a.sess.Register(opctx, models.RegisterRequest{
		Username:        username,
		Email:           email,
		Password:        string(password),
		ConfirmPassword: string(confirm),
	})
	if err != nil {
		return a.fail(err)
	}

	fmt.Fprintf(a.out, "Account %s created. Use 'login' to sign in.\n", account.Username)
	return nil
}

// Logout tears the session down. Local teardown always succeeds even when
// the revocation call cannot reach the server.
func (a *App) Logout(ctx context.Context) error {
	opctx, cancel := a.opCtx(ctx)
	defer cancel()

	if err := a.sess.Logout(opctx); err != nil {
		return a.fail(err)
	}
	fmt.Fprintln(a.out, "Logged out.")
	return nil
}

// Whoami prints the cached profile after re-fetching it, so server-side
// edits show up.
func (a *App) Whoami(ctx context.Context) error {
	if !a.guard() {
		return nil
	}

	opctx, cancel := a.opCtx(ctx)
	defer cancel()
	a.sess.RefreshUser(opctx)

	u := a.sess.User()
	if u == nil {
		// The refresh ran into a rejected token and tore the session down.
		fmt.Fprintln(a.out, "Session expired, please login again.")
		return nil
	}
	fmt.Fprintf(a.out, "Username: %s\n", u.Username)
	fmt.Fprintf(a.out, "Email:    %s\n", u.Email)
	fmt.Fprintf(a.out, "Member since: %s\n", u.CreatedAt.Format("2006-01-02"))
	return nil
}

// SetName updates the profile username and refreshes the cached profile.
func (a *App) SetName(ctx context.Context) error {
	if !a.guard() {
		return nil
	}

	username, err := getSimpleText(a.reader, "Enter new username", a.out)
	if err != nil {
		return err
	}

	opctx, cancel := a.opCtx(ctx)
	defer cancel()

	profile, err := a.users.UpdateProfile(opctx, username)
	if err != nil {
		return a.fail(err)
	}
	a.sess.RefreshUser(opctx)

	fmt.Fprintf(a.out, "Username updated to %s.\n", profile.Username)
	return nil
}
