// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"flag"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/MKhiriev/go-accounts/internal/adapter"
	"github.com/MKhiriev/go-accounts/internal/logger"
	"github.com/MKhiriev/go-accounts/models"
)

// Usage lists the supported commands.
const Usage = `usage: go-accounts-client <command> [flags]

commands:
  version                                   print the server version
  register -username U -email E -password P create an account
  login    -username U -password P          check credentials, print the token in token mode
  profile  -username U -password P          print the caller's profile
  users    -username U -password P          list all users
  logout   -username U -password P          open and close a session (session mode)
`

type App struct {
	accounts adapter.AccountsClient
	out      io.Writer
	logger   *logger.Logger
}

func NewApp(accounts adapter.AccountsClient, out io.Writer, logger *logger.Logger) *App {
	return &App{
		accounts: accounts,
		out:      out,
		logger:   logger,
	}
}

// credentials are the flags shared by every command.
type credentials struct {
	username string
	email    string
	password string
}

func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return ErrNoCommand
	}

	command, rest := args[0], args[1:]
	if command == "version" {
		return a.version(ctx)
	}

	creds, err := parseCredentials(command, rest)
	if err != nil {
		return err
	}

	switch command {
	case "register":
		return a.register(ctx, creds)
	case "login":
		return a.login(ctx, creds)
	case "profile":
		return a.profile(ctx, creds)
	case "users":
		return a.users(ctx, creds)
	case "logout":
		return a.logout(ctx, creds)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownCommand, command)
	}
}

func parseCredentials(command string, args []string) (credentials, error) {
	var c credentials

	fs := flag.NewFlagSet(command, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&c.username, "username", "", "account username")
	fs.StringVar(&c.password, "password", "", "account password")
	if command == "register" {
		fs.StringVar(&c.email, "email", "", "account email")
	}

	if err := fs.Parse(args); err != nil {
		return credentials{}, fmt.Errorf("error parsing %s flags: %w", command, err)
	}

	if c.username == "" || c.password == "" || (command == "register" && c.email == "") {
		return credentials{}, fmt.Errorf("%w for %s", ErrMissingFlags, command)
	}

	return c, nil
}

func (a *App) version(ctx context.Context) error {
	v, err := a.accounts.Version(ctx)
	if err != nil {
		return fmt.Errorf("error getting server version: %w", err)
	}

	fmt.Fprintln(a.out, v)
	return nil
}

func (a *App) register(ctx context.Context, c credentials) error {
	id, err := a.accounts.Register(ctx, models.User{Username: c.username, Email: c.email, Password: c.password})
	if err != nil {
		return fmt.Errorf("error registering %s: %w", c.username, err)
	}

	a.logger.Debug().Int64("user_id", id).Msg("registered")
	fmt.Fprintf(a.out, "registered %s with id %d\n", c.username, id)
	return nil
}

func (a *App) signIn(ctx context.Context, c credentials) error {
	if err := a.accounts.Login(ctx, models.User{Username: c.username, Password: c.password}); err != nil {
		return fmt.Errorf("error logging in as %s: %w", c.username, err)
	}
	return nil
}

func (a *App) login(ctx context.Context, c credentials) error {
	if err := a.signIn(ctx, c); err != nil {
		return err
	}

	if token := a.accounts.Token(); token != "" {
		fmt.Fprintln(a.out, token)
		return nil
	}

	fmt.Fprintln(a.out, "logged in")
	return nil
}

func (a *App) profile(ctx context.Context, c credentials) error {
	if err := a.signIn(ctx, c); err != nil {
		return err
	}

	user, err := a.accounts.Profile(ctx)
	if err != nil {
		return fmt.Errorf("error getting profile: %w", err)
	}

	return a.printUsers([]models.User{user})
}

func (a *App) users(ctx context.Context, c credentials) error {
	if err := a.signIn(ctx, c); err != nil {
		return err
	}

	users, err := a.accounts.Users(ctx)
	if err != nil {
		return fmt.Errorf("error listing users: %w", err)
	}

	return a.printUsers(users)
}

func (a *App) logout(ctx context.Context, c credentials) error {
	if err := a.signIn(ctx, c); err != nil {
		return err
	}

	if err := a.accounts.Logout(ctx); err != nil {
		return fmt.Errorf("error logging out: %w", err)
	}

	fmt.Fprintln(a.out, "logged out")
	return nil
}

func (a *App) printUsers(users []models.User) error {
	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tUSERNAME\tEMAIL")
	for _, u := range users {
		fmt.Fprintf(tw, "%d\t%s\t%s\n", u.UserID, u.Username, u.Email)
	}
	return tw.Flush()
}
