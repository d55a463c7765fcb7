package cli

import (
	"context"
	"strconv"
	"time"
)

// Sync pushes pending local changes and pulls the remote state now, without
// waiting for the engine's next pass.
func (a *App) Sync(ctx context.Context) error {
	if err := a.engine.SyncToServer(ctx); err != nil {
		printlnFn("Push failed:", err)
		return err
	}
	if uid, ok := a.auth.CurrentUserID(); ok {
		if err := a.engine.SyncFromServer(ctx, uid); err != nil {
			printlnFn("Pull failed:", err)
			return err
		}
	}
	printlnFn("Sync complete")
	return nil
}

// Status prints the session's connectivity, sync and save state.
func (a *App) Status(ctx context.Context) error {
	printlnFn("Mode:", string(a.Mode))

	if uid, ok := a.auth.CurrentUserID(); ok {
		printlnFn("User:", uid)
	} else {
		printlnFn("User: not logged in")
	}

	if cur := a.session.Current(); cur != nil {
		printlnFn("Document:", cur.Title, "v"+strconv.FormatInt(cur.VersionNumber, 10))
	} else {
		printlnFn("Document: none")
	}

	switch {
	case a.session.Saving():
		printlnFn("Save: saving...")
	default:
		if t, ok := a.session.LastSaved(); ok {
			printlnFn("Save: saved at", t.Format(time.RFC3339))
		} else {
			printlnFn("Save: not yet saved")
		}
	}

	pending, err := a.store.PendingEntries(ctx)
	if err != nil {
		printlnFn("Error:", err)
		return err
	}
	printlnFn("Pending sync entries:", len(pending))
	printlnFn("Engine running:", a.engine.Running())
	return nil
}
