// Package session drives the client's authentication state: register,
// login, logout, and restoring a persisted session on startup.
//
// The state machine has two states, anonymous and authenticated. A
// successful Register or Login (the response carries an access_token) moves
// to authenticated; Logout moves back unconditionally and is purely local.
// An expired token is not detected client-side: authenticated calls simply
// start failing server-side until the user logs in again.
package session

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/vibecli/internal/client/api"
	"github.com/dmitrijs2005/vibecli/internal/common"
)

// Controller defines the session operations used by the CLI.
//
// Contract:
//   - Register: create an account and start a session on success.
//   - Login: obtain a token via the password grant and start a session.
//   - Logout: clear the stored token; no server call is made.
//   - Restore: adopt a token persisted by a previous run, if any.
//
// Register and Login return common.ErrUnexpectedResponse (with the verbatim
// reply in the message) when the server answers with anything that lacks an
// access_token.
type Controller interface {
	Register(ctx context.Context, username, displayName, password string) error
	Login(ctx context.Context, username, password string) error
	Logout(ctx context.Context) error
	Restore(ctx context.Context) error
	IsAuthenticated() bool
	Username() string
}

type controller struct {
	api   api.Client
	store *Store

	authenticated bool
	username      string
}

// NewController binds the session state machine to an API client and the
// durable token store.
func NewController(apiClient api.Client, store *Store) Controller {
	return &controller{api: apiClient, store: store}
}

func (c *controller) Register(ctx context.Context, username, displayName, password string) error {
	res, err := c.api.Register(ctx, username, displayName, password)
	if err != nil {
		return err
	}
	return c.adopt(ctx, res, username)
}

func (c *controller) Login(ctx context.Context, username, password string) error {
	res, err := c.api.Token(ctx, username, password)
	if err != nil {
		return err
	}
	return c.adopt(ctx, res, username)
}

// adopt inspects a register/login reply and, when it carries a token,
// persists it and flips the state to authenticated.
func (c *controller) adopt(ctx context.Context, res api.Result, username string) error {
	token, ok := res.StringField("access_token")
	if !ok || token == "" {
		return fmt.Errorf("%w: %s", common.ErrUnexpectedResponse, res.Verbatim())
	}

	if err := c.store.Save(ctx, token, username); err != nil {
		return err
	}

	c.authenticated = true
	c.username = username
	return nil
}

func (c *controller) Logout(ctx context.Context) error {
	if err := c.store.Clear(ctx); err != nil {
		return err
	}
	c.authenticated = false
	c.username = ""
	return nil
}

// Restore picks up a token persisted by a previous run. With no stored
// token the session simply stays anonymous.
func (c *controller) Restore(ctx context.Context) error {
	token, err := c.store.Token(ctx)
	if err != nil {
		return err
	}
	if token == "" {
		return nil
	}

	username, err := c.store.Username(ctx)
	if err != nil {
		return err
	}

	c.authenticated = true
	c.username = username
	return nil
}

func (c *controller) IsAuthenticated() bool { return c.authenticated }

func (c *controller) Username() string { return c.username }
