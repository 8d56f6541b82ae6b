package cli

import (
	"context"
	"os"

	"github.com/dmitrijs2005/techkatta/internal/client/models"
	"github.com/dmitrijs2005/techkatta/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts the user for account details and attempts to create a
// new account. Registration does not log the user in; on success the user
// is told to log in with the new credentials.
//
// The password byte slice is securely wiped before returning. Any I/O or
// service error is returned unchanged.
func (a *App) Register(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	username, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}

	fullName, err := getSimpleText(a.reader, "Enter full name (optional)", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	data := models.RegisterRequest{
		Email:    email,
		Username: username,
		FullName: fullName,
		Password: string(password),
	}

	if err := a.session.Register(ctx, data); err != nil {
		printlnFn("Registration failed:", a.session.State().Err)
		return err
	}

	printlnFn("Account created! Use 'login' to sign in.")
	return nil
}

// Login prompts the user for credentials and tries to authenticate. On
// success the session store holds the resolved user and the stored
// credentials let later commands talk to the server.
//
// The password is securely wiped before returning.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.session.Login(ctx, email, string(password)); err != nil {
		printlnFn("Login failed:", a.session.State().Err)
		return err
	}

	st := a.session.State()
	if st.User != nil {
		printlnFn("Welcome back,", st.User.DisplayName()+"!")
	}
	return nil
}

// Logout clears the stored credentials and resets the session. It never
// fails from the user's point of view.
func (a *App) Logout(ctx context.Context) error {
	a.session.Logout(ctx)
	printlnFn("Logged out.")
	return nil
}
