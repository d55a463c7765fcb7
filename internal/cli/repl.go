package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	New(ctx context.Context) error
	Open(ctx context.Context) error
	List(ctx context.Context) error
	Edit(ctx context.Context) error
	Show(ctx context.Context) error
	Save(ctx context.Context) error
	SaveVersion(ctx context.Context) error
	Versions(ctx context.Context) error
	LoadVersion(ctx context.Context) error
	Generate(ctx context.Context) error
	Improve(ctx context.Context) error
	Analyze(ctx context.Context) error
	Sync(ctx context.Context) error
	Status(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the contractpad CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Not logged in:
//	  - help           — show available commands
//	  - login          — install an access token
//	  - status         — show session status
//	  - exit | quit    — leave the program
//
//	Logged in:
//	  - help           — show available commands
//	  - new            — create a document
//	  - open           — open a document by id
//	  - list           — list the user's documents
//	  - edit           — replace the buffer content (triggers auto-save)
//	  - show           — print the buffer content
//	  - save           — save the current document now
//	  - savev          — snapshot the buffer as a new version
//	  - versions       — list versions of the current document
//	  - loadv          — put a version's snapshot on the buffer
//	  - gen            — generate a contract from a prompt
//	  - improve        — improve a clause
//	  - analyze        — analyze the current contract
//	  - sync           — push and pull now
//	  - status         — show session status
//	  - logout         — drop the access token
//	  - exit | quit    — leave the program
//
// Any errors returned by command handlers are ignored here; handlers report
// their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("cp (%s) > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: new, open, (l)ist, edit, show, save, savev, versions, loadv, gen, improve, analyze, sync, status, logout, exit")
			} else {
				printlnFn("Available commands: login, status, exit")
			}

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "new":
			_ = a.New(ctx)

		case "open":
			_ = a.Open(ctx)

		case "l", "list":
			_ = a.List(ctx)

		case "edit":
			_ = a.Edit(ctx)

		case "show":
			_ = a.Show(ctx)

		case "save":
			_ = a.Save(ctx)

		case "savev":
			_ = a.SaveVersion(ctx)

		case "versions":
			_ = a.Versions(ctx)

		case "loadv":
			_ = a.LoadVersion(ctx)

		case "gen":
			_ = a.Generate(ctx)

		case "improve":
			_ = a.Improve(ctx)

		case "analyze":
			_ = a.Analyze(ctx)

		case "sync":
			_ = a.Sync(ctx)

		case "status":
			_ = a.Status(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
