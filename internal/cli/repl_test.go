package cli

import (
	"bufio"
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// stubExec records which commands the REPL dispatched.
type stubExec struct {
	loggedIn bool
	calls    []string
}

func (s *stubExec) record(name string) error {
	s.calls = append(s.calls, name)
	return nil
}

func (s *stubExec) isLoggedIn() bool                   { return s.loggedIn }
func (s *stubExec) Login(context.Context) error        { return s.record("login") }
func (s *stubExec) Logout(context.Context) error       { return s.record("logout") }
func (s *stubExec) WhoAmI(context.Context) error       { return s.record("whoami") }
func (s *stubExec) Dashboard(context.Context) error    { return s.record("dashboard") }
func (s *stubExec) Projects(context.Context) error     { return s.record("projects") }
func (s *stubExec) Bookings(context.Context) error     { return s.record("bookings") }
func (s *stubExec) Slots(context.Context) error        { return s.record("slots") }
func (s *stubExec) Book(context.Context) error         { return s.record("book") }
func (s *stubExec) Cancel(context.Context) error       { return s.record("cancel") }
func (s *stubExec) Files(context.Context) error        { return s.record("files") }
func (s *stubExec) Recordings(context.Context) error   { return s.record("recordings") }
func (s *stubExec) Requests(context.Context) error     { return s.record("requests") }
func (s *stubExec) NewRequest(context.Context) error   { return s.record("newrequest") }
func (s *stubExec) Download(context.Context) error     { return s.record("download") }

func runWith(t *testing.T, exec *stubExec, input string) string {
	t.Helper()
	var out bytes.Buffer
	scanner := bufio.NewScanner(strings.NewReader(input))
	runREPL(context.Background(), exec, func() string { return "test" }, scanner, &out)
	return out.String()
}

func TestREPL_DispatchesCommands(t *testing.T) {
	exec := &stubExec{loggedIn: true}

	runWith(t, exec, "login\ndashboard\nbook\ncancel\nnewrequest\ndownload\nlogout\nexit\n")

	require.Equal(t,
		[]string{"login", "dashboard", "book", "cancel", "newrequest", "download", "logout"},
		exec.calls)
}

func TestREPL_ShortAliases(t *testing.T) {
	exec := &stubExec{loggedIn: true}

	runWith(t, exec, "d\nquit\n")

	require.Equal(t, []string{"dashboard"}, exec.calls)
}

func TestREPL_UnknownCommand(t *testing.T) {
	exec := &stubExec{}

	out := runWith(t, exec, "frobnicate\nexit\n")

	require.Contains(t, out, "Unknown command: frobnicate")
	require.Empty(t, exec.calls)
}

func TestREPL_HelpDependsOnLoginState(t *testing.T) {
	out := runWith(t, &stubExec{loggedIn: false}, "help\nexit\n")
	require.Contains(t, out, "login, exit")

	out = runWith(t, &stubExec{loggedIn: true}, "help\nexit\n")
	require.Contains(t, out, "dashboard")
	require.Contains(t, out, "logout")
}

func TestREPL_ExitsOnEOF(t *testing.T) {
	exec := &stubExec{}
	runWith(t, exec, "") // no commands at all
	require.Empty(t, exec.calls)
}

func TestREPL_SkipsBlankLines(t *testing.T) {
	exec := &stubExec{loggedIn: true}

	runWith(t, exec, "\n\nprojects\nexit\n")

	require.Equal(t, []string{"projects"}, exec.calls)
}
