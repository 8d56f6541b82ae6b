package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/techkatta/internal/client/session"
)

// Dashboard renders the protected landing view. The guard decides what the
// user sees: a "still loading" notice, a redirect to the login prompt, or
// the dashboard itself.
func (a *App) Dashboard(ctx context.Context) error {
	st := a.session.State()

	switch session.Decide(st) {
	case session.DecisionWait:
		printlnFn("Session check in progress, try again in a moment.")
		return nil

	case session.DecisionRedirectLogin:
		printlnFn("You need to log in first.")
		return a.Login(ctx)
	}

	if st.User == nil {
		// Authenticated from stored credentials but the account record has
		// not been resolved yet.
		if err := a.session.FetchUser(ctx); err != nil {
			printlnFn("Could not load your account:", a.session.State().Err)
			return err
		}
		st = a.session.State()
	}

	u := st.User
	printlnFn(fmt.Sprintf("Welcome, %s!", u.DisplayName()))
	printlnFn(fmt.Sprintf("  email:    %s", u.Email))
	printlnFn(fmt.Sprintf("  username: %s", u.Username))
	printlnFn(fmt.Sprintf("  role:     %s", u.Role))
	if !u.IsVerified {
		printlnFn("  (account not verified yet)")
	}
	return nil
}

// Whoami prints a one-line summary of the current session.
func (a *App) Whoami(ctx context.Context) error {
	st := a.session.State()
	if !st.IsAuthenticated {
		printlnFn("Not logged in.")
		return nil
	}
	if st.User == nil {
		if err := a.session.FetchUser(ctx); err != nil {
			printlnFn("Could not load your account:", a.session.State().Err)
			return err
		}
		st = a.session.State()
	}
	printlnFn(fmt.Sprintf("%s <%s> (%s)", st.User.Username, st.User.Email, st.User.Role))
	return nil
}
