package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrijs2005/postfeed/internal/client/navigation"
)

type fakeExec struct {
	screen navigation.Screen

	calls  []string
	enters int
}

func (f *fakeExec) Screen() navigation.Screen { return f.screen }

func (f *fakeExec) Enter(context.Context) error {
	f.enters++
	return nil
}

func (f *fakeExec) record(name string) error {
	f.calls = append(f.calls, name)
	return nil
}

func (f *fakeExec) Login(context.Context) error {
	f.screen = navigation.ScreenPostList
	return f.record("login")
}

func (f *fakeExec) Signup(context.Context) error {
	f.screen = navigation.ScreenRegistration
	return f.record("signup")
}

func (f *fakeExec) Register(context.Context) error {
	f.screen = navigation.ScreenLogin
	return f.record("register")
}

func (f *fakeExec) HaveAccount(context.Context) error {
	f.screen = navigation.ScreenLogin
	return f.record("have-account")
}

func (f *fakeExec) Toggle(_ context.Context, confirm bool) error {
	return f.record(fmt.Sprintf("toggle(%t)", confirm))
}

func (f *fakeExec) List(context.Context) error { return f.record("list") }

func (f *fakeExec) Open(_ context.Context, id int) error {
	f.screen = navigation.ScreenPostDetail
	return f.record(fmt.Sprintf("open(%d)", id))
}

func (f *fakeExec) Logout(context.Context) error {
	f.screen = navigation.ScreenLogin
	return f.record("logout")
}

func (f *fakeExec) Back(context.Context) error {
	f.screen = navigation.ScreenPostList
	return f.record("back")
}

func captureOutput(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	origPrint := printlnFn
	printlnFn = func(a ...any) (int, error) {
		lines = append(lines, fmt.Sprint(a...))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = origPrint })
	return &lines
}

func TestRunREPL_FullFlow(t *testing.T) {
	captureOutput(t)

	input := strings.Join([]string{
		"signup",
		"toggle",
		"toggle confirm",
		"register",
		"login",
		"refresh",
		"open 7",
		"back",
		"logout",
		"exit",
	}, "\n")

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "status" }, bufio.NewReader(strings.NewReader(input)))

	assert.Equal(t, []string{
		"signup", "toggle(false)", "toggle(true)", "register", "login",
		"list", "open(7)", "back", "logout",
	}, exec.calls)
	assert.Equal(t, 10, exec.enters)
}

func TestRunREPL_RejectsCommandsOfOtherScreens(t *testing.T) {
	out := captureOutput(t)

	input := "list\nback\nregister\nopen 1\nexit\n"
	exec := &fakeExec{screen: navigation.ScreenLogin}

	runREPL(context.Background(), exec, func() string { return "s" }, bufio.NewReader(strings.NewReader(input)))

	assert.Empty(t, exec.calls)
	assert.Contains(t, *out, "Unknown command on Login: list")
	assert.Contains(t, *out, "Unknown command on Login: back")
	assert.Equal(t, "Bye!", (*out)[len(*out)-1])
}

func TestRunREPL_OnlyExitEndsSession(t *testing.T) {
	out := captureOutput(t)

	input := "quit\nhelp\nexit\n"
	exec := &fakeExec{screen: navigation.ScreenLogin}

	runREPL(context.Background(), exec, func() string { return "s" }, bufio.NewReader(strings.NewReader(input)))

	assert.Contains(t, *out, "Unknown command on Login: quit")
	assert.Contains(t, *out, "Available commands: login, signup, toggle, help, exit")
	assert.Equal(t, 3, exec.enters)
	assert.Equal(t, "Bye!", (*out)[len(*out)-1])
}

func TestRunREPL_OpenUsage(t *testing.T) {
	out := captureOutput(t)

	input := "open\nopen abc\nopen 3\n"
	exec := &fakeExec{screen: navigation.ScreenPostList}

	runREPL(context.Background(), exec, func() string { return "s" }, bufio.NewReader(strings.NewReader(input)))

	assert.Equal(t, []string{"open(3)"}, exec.calls)
	assert.Contains(t, *out, "Usage: open <id>")
	assert.Contains(t, *out, "Invalid post id: abc")
}

func TestRunREPL_HelpPerScreen(t *testing.T) {
	out := captureOutput(t)

	exec := &fakeExec{screen: navigation.ScreenPostDetail}
	runREPL(context.Background(), exec, func() string { return "s" }, bufio.NewReader(strings.NewReader("help\n")))

	assert.Contains(t, *out, "Available commands: back, help, exit")
}

func TestRunREPL_StopsOnCancelledContext(t *testing.T) {
	captureOutput(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	exec := &fakeExec{}
	runREPL(ctx, exec, func() string { return "s" }, bufio.NewReader(strings.NewReader("login\n")))

	assert.Empty(t, exec.calls)
	assert.Zero(t, exec.enters)
}
