package cli

import (
	"bufio"
	"context"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/postfeed/internal/client/navigation"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	Screen() navigation.Screen
	Enter(ctx context.Context) error

	Login(ctx context.Context) error
	Signup(ctx context.Context) error
	Register(ctx context.Context) error
	HaveAccount(ctx context.Context) error
	Toggle(ctx context.Context, confirm bool) error

	List(ctx context.Context) error
	Open(ctx context.Context, id int) error
	Logout(ctx context.Context) error
	Back(ctx context.Context) error
}

// screenCommands lists the commands accepted on each screen.
var screenCommands = map[navigation.Screen][]string{
	navigation.ScreenLogin:        {"login", "signup", "toggle", "help", "exit"},
	navigation.ScreenRegistration: {"register", "toggle", "have-account", "help", "exit"},
	navigation.ScreenPostList:     {"list", "refresh", "open", "logout", "help", "exit"},
	navigation.ScreenPostDetail:   {"back", "help", "exit"},
}

// runREPL reads commands from reader and dispatches them to a until the user
// types "exit", input ends, or ctx is cancelled.
//
// Before each prompt the REPL lets a finish mounting the current screen
// (loading the post list or a post). The prompt shows statusFn(). Commands
// not listed for the current screen are rejected without side effects:
//
//	Login:        login, signup, toggle, help, exit
//	Registration: register, toggle [confirm], have-account, help, exit
//	PostList:     list | refresh, open <id>, logout, help, exit
//	PostDetail:   back, help, exit
//
// Errors returned by command handlers are ignored here; the handlers and
// screens report them to the user themselves.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		if ctx.Err() != nil {
			return
		}
		_ = a.Enter(ctx)

		printlnFn(fmt.Sprintf("postfeed %s> ", statusFn()))
		line, err := readLine(reader)
		if err != nil {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		if cmd == "exit" {
			printlnFn("Bye!")
			return
		}

		screen := a.Screen()
		if !slices.Contains(screenCommands[screen], cmd) {
			printlnFn(fmt.Sprintf("Unknown command on %s: %s", screen, cmd))
			continue
		}

		switch cmd {
		case "help":
			printlnFn("Available commands: " + strings.Join(screenCommands[screen], ", "))

		case "login":
			_ = a.Login(ctx)

		case "signup":
			_ = a.Signup(ctx)

		case "register":
			_ = a.Register(ctx)

		case "have-account":
			_ = a.HaveAccount(ctx)

		case "toggle":
			_ = a.Toggle(ctx, len(args) > 0 && args[0] == "confirm")

		case "list", "refresh":
			_ = a.List(ctx)

		case "open":
			if len(args) == 0 {
				printlnFn("Usage: open <id>")
				continue
			}
			id, err := strconv.Atoi(args[0])
			if err != nil {
				printlnFn("Invalid post id: " + args[0])
				continue
			}
			_ = a.Open(ctx, id)

		case "logout":
			_ = a.Logout(ctx)

		case "back":
			_ = a.Back(ctx)
		}
	}
}
