package cli

import (
	"context"
	"errors"
	"os"

	"github.com/okorotkov/taskpad/internal/client/api"
	"github.com/okorotkov/taskpad/internal/client/session"
	"github.com/okorotkov/taskpad/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// printAPIError renders an API failure for the user: the taxonomy message,
// plus field-level issues when the backend supplied them.
func printAPIError(err error) {
	var apiErr *api.Error
	if errors.As(err, &apiErr) {
		printlnFn("Error: " + apiErr.Message)
		for _, issue := range apiErr.Issues {
			printlnFn("  " + issue.Field + ": " + issue.Message)
		}
		return
	}
	printlnFn("Error: " + err.Error())
}

// SignUp prompts for email, name, and password and creates an account via
// the session store. On success the store already holds the new user, so
// the prompt immediately reflects the signed-in state.
func (a *App) SignUp(ctx context.Context) error {
	sess, err := session.FromContext(ctx)
	if err != nil {
		return err
	}

	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	name, err := getSimpleText(a.reader, "Enter display name", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	u, err := sess.SignUp(ctx, email, string(password), name)
	if err != nil {
		printAPIError(err)
		return err
	}

	printlnFn("Welcome, " + u.Name + "!")
	return nil
}

// SignIn prompts for credentials and authenticates via the session store.
func (a *App) SignIn(ctx context.Context) error {
	sess, err := session.FromContext(ctx)
	if err != nil {
		return err
	}

	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	u, err := sess.SignIn(ctx, email, string(password))
	if err != nil {
		printAPIError(err)
		return err
	}

	printlnFn("Signed in as " + u.Email)
	return nil
}

// SignOut ends the session. Local state is cleared even when the network
// call fails; the failure is still reported.
func (a *App) SignOut(ctx context.Context) error {
	sess, err := session.FromContext(ctx)
	if err != nil {
		return err
	}

	if err := sess.SignOut(ctx); err != nil {
		printAPIError(err)
		return err
	}

	printlnFn("Signed out")
	return nil
}

// WhoAmI prints the signed-in user, if any.
func (a *App) WhoAmI(ctx context.Context) error {
	sess, err := session.FromContext(ctx)
	if err != nil {
		return err
	}

	u := sess.User()
	if u == nil {
		printlnFn("Not signed in")
		return nil
	}
	printlnFn(u.Name + " <" + u.Email + ">")
	return nil
}

// Refresh re-probes the backend session, resynchronizing local state.
func (a *App) Refresh(ctx context.Context) error {
	sess, err := session.FromContext(ctx)
	if err != nil {
		return err
	}

	sess.Refresh(ctx)
	if sess.IsAuthenticated() {
		printlnFn("Session is valid")
	} else {
		printlnFn("No active session")
	}
	return nil
}
