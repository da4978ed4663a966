package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests provide a stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	Dashboard(ctx context.Context) error
	Projects(ctx context.Context) error
	Bookings(ctx context.Context) error
	Slots(ctx context.Context) error
	Book(ctx context.Context) error
	Cancel(ctx context.Context) error
	Files(ctx context.Context) error
	Recordings(ctx context.Context) error
	Requests(ctx context.Context) error
	NewRequest(ctx context.Context) error
	Download(ctx context.Context) error
}

// runREPL starts a read-eval-print loop over the portal commands.
//
// It reads a line from the scanner, parses the first token as the command,
// and dispatches to methods on 'a'. Unknown commands are reported back. The
// loop exits on scanner EOF or when the user types "exit" or "quit".
//
// Errors returned by command handlers are ignored here; handlers print
// their own errors. That keeps the loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner, w io.Writer) {
	for {
		fmt.Fprintf(w, "portal> %s > \n", statusFn())
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
				fmt.Fprintln(w, "Available commands: dashboard, projects, bookings, slots, book, cancel, files, recordings, requests, newrequest, download, whoami, logout, exit")
			} else {
				fmt.Fprintln(w, "Available commands: login, exit")
			}

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "whoami":
			_ = a.WhoAmI(ctx)

		case "d", "dashboard":
			_ = a.Dashboard(ctx)

		case "projects":
			_ = a.Projects(ctx)

		case "bookings":
			_ = a.Bookings(ctx)

		case "slots":
			_ = a.Slots(ctx)

		case "book":
			_ = a.Book(ctx)

		case "cancel":
			_ = a.Cancel(ctx)

		case "files":
			_ = a.Files(ctx)

		case "recordings":
			_ = a.Recordings(ctx)

		case "requests":
			_ = a.Requests(ctx)

		case "newrequest":
			_ = a.NewRequest(ctx)

		case "download":
			_ = a.Download(ctx)

		case "exit", "quit":
			fmt.Fprintln(w, "Bye!")
			return

		default:
			fmt.Fprintln(w, "Unknown command:", cmd)
		}
	}
}
