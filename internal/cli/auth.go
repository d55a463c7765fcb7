package cli

import (
	"context"
	"os"
)

// Login installs an access token for the session and pulls the user's
// documents from the remote store.
func (a *App) Login(ctx context.Context) error {
	token, err := GetSimpleText(a.reader, "Access token (empty to skip)", os.Stdout)
	if err != nil {
		return err
	}
	if token == "" {
		return nil
	}

	if err := a.auth.SignIn(token); err != nil {
		printlnFn("Login failed:", err)
		return err
	}
	a.remote.SetAccessToken(token)

	uid, _ := a.auth.CurrentUserID()
	if err := a.engine.SyncFromServer(ctx, uid); err != nil {
		a.log.Warn(ctx, "initial pull failed", "error", err)
	}

	printlnFn("Logged in as", uid)
	return nil
}

// Logout drops the access token. Local documents stay on disk.
func (a *App) Logout(ctx context.Context) error {
	a.session.Close()
	a.auth.SignOut()
	a.remote.SetAccessToken("")
	printlnFn("Logged out")
	return nil
}
