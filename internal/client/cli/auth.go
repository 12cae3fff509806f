package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/vibecli/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for a username, display name and password and creates an
// account. A successful registration also logs the user in: the server
// returns an access token which the session controller persists.
//
// The password byte slice is wiped before returning. Unexpected server
// replies come back as errors carrying the verbatim response body.
func (a *App) Register(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}

	displayName, err := getSimpleText(a.reader, "Enter display name", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.session.Register(ctx, username, displayName, string(password)); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Success! Logged in as %s\n", username)
	return nil
}

// Login prompts for credentials and authenticates against the token
// endpoint. The password byte slice is wiped before returning.
func (a *App) Login(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.session.Login(ctx, username, string(password)); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Logged in as %s\n", username)
	return nil
}

// Logout clears the stored token. Purely local: the server is not called
// and the token is not revoked remotely.
func (a *App) Logout(ctx context.Context) error {
	if err := a.session.Logout(ctx); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Logged out")
	return nil
}
