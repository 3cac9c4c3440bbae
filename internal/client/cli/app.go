package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/dmitrijs2005/postfeed/internal/client/client"
	"github.com/dmitrijs2005/postfeed/internal/client/config"
	"github.com/dmitrijs2005/postfeed/internal/client/models"
	"github.com/dmitrijs2005/postfeed/internal/client/navigation"
	"github.com/dmitrijs2005/postfeed/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/postfeed/internal/client/repositories/users"
	"github.com/dmitrijs2005/postfeed/internal/client/screens"
	"github.com/dmitrijs2005/postfeed/internal/client/services"
	"github.com/dmitrijs2005/postfeed/internal/filex"
	"github.com/dmitrijs2005/postfeed/internal/logging"
)

const logFileName = "postfeed.log"

var errWrongScreen = errors.New("command not available on this screen")

// App is the terminal front-end. It owns the navigator and mounts a fresh
// screen controller whenever the current route changes. It is driven from a
// single goroutine.
type App struct {
	log    logging.Logger
	auth   services.AuthService
	posts  services.PostService
	nav    *navigation.Navigator
	prompt screens.Prompter
	reader *bufio.Reader
	out    io.Writer

	closers []io.Closer

	session *models.Session

	login        *screens.LoginScreen
	registration *screens.RegistrationScreen
	postList     *screens.PostListScreen
	postDetail   *screens.PostDetailScreen
	parked       *screens.PostListScreen
	// pending is set when the mounted screen still has to fetch its data.
	pending bool
}

// NewApp prepares the data directory, opens the local database and wires the
// services for cfg. Logs go to a file inside the data directory.
func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	dir, err := filex.EnsureDir(cfg.DataDir)
	if err != nil {
		return nil, fmt.Errorf("error preparing data directory: %w", err)
	}

	logFile, err := os.OpenFile(filepath.Join(dir, logFileName), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, fmt.Errorf("error opening log file: %w", err)
	}

	log, err := logging.New(cfg.LogLevel, logFile)
	if err != nil {
		_ = logFile.Close()
		return nil, err
	}

	db, err := client.InitDatabase(ctx, cfg.DatabasePath())
	if err != nil {
		_ = logFile.Close()
		return nil, fmt.Errorf("error initializing database: %w", err)
	}

	store := users.NewStore(metadata.NewSQLiteRepository(db), log)
	auth := services.NewAuthService(store, log)
	posts := services.NewPostService(client.NewHTTPClient(cfg.PostsEndpoint, cfg.RequestTimeout), log)

	a := newApp(log, auth, posts, bufio.NewReader(os.Stdin), os.Stdout)
	a.closers = []io.Closer{db, logFile}
	log.Info(ctx, "started", "data_dir", dir, "posts_endpoint", cfg.PostsEndpoint)
	return a, nil
}

func newApp(log logging.Logger, auth services.AuthService, posts services.PostService, reader *bufio.Reader, out io.Writer) *App {
	a := &App{
		log:    log,
		auth:   auth,
		posts:  posts,
		reader: reader,
		out:    out,
	}
	a.prompt = newTerminalPrompter(reader, out)
	a.nav = navigation.New().OnTransition(a.onTransition)
	a.mount(navigation.Route{}, a.nav.Current())
	return a
}

// Run starts the REPL and blocks until the user exits or input ends.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	fmt.Fprintln(a.out, "Welcome to PostFeed (type 'help' for commands)")
	runREPL(ctx, a, a.status, a.reader)
}

// Close releases the database and the log file.
func (a *App) Close() {
	for _, c := range a.closers {
		_ = c.Close()
	}
	a.closers = nil
}

func (a *App) onTransition(from, to navigation.Route) {
	a.log.Info(context.Background(), "navigated", "from", from.String(), "to", to.String())
	a.mount(from, to)
}

// mount replaces the screen controller for to. The list stays parked while
// a post is open so that going back does not fetch it again.
func (a *App) mount(from, to navigation.Route) {
	parked := a.parked
	if from.Screen == navigation.ScreenPostList && to.Screen == navigation.ScreenPostDetail {
		parked = a.postList
	}

	a.login, a.registration, a.postList, a.postDetail, a.parked = nil, nil, nil, nil, nil
	a.pending = false

	switch to.Screen {
	case navigation.ScreenLogin:
		a.login = screens.NewLoginScreen(a.auth, a.nav, a.prompt, a.log, a.setSession)
	case navigation.ScreenRegistration:
		a.registration = screens.NewRegistrationScreen(a.auth, a.nav, a.prompt, a.log)
	case navigation.ScreenPostList:
		if from.Screen == navigation.ScreenPostDetail && parked != nil {
			a.postList = parked
			return
		}
		a.postList = screens.NewPostListScreen(a.posts, a.nav, a.prompt, a.log, a.clearSession)
		a.pending = true
	case navigation.ScreenPostDetail:
		a.parked = parked
		a.postDetail = screens.NewPostDetailScreen(to.PostID, a.posts, a.nav, a.prompt, a.log)
		a.pending = true
	}
}

func (a *App) setSession(s *models.Session) {
	a.session = s
	a.log.Info(context.Background(), "session started", "email", s.Email, "session_id", s.ID.String())
}

func (a *App) clearSession() {
	if a.session != nil {
		a.log.Info(context.Background(), "session ended", "session_id", a.session.ID.String())
	}
	a.session = nil
}

// Screen returns the screen currently on top of the navigation stack.
func (a *App) Screen() navigation.Screen {
	return a.nav.Current().Screen
}

func (a *App) status() string {
	s := a.nav.Current().String()
	if a.session != nil {
		s += " " + a.session.Email
	}
	return "(" + s + ")"
}

// Enter performs the on-mount work of a freshly mounted screen: the post
// list and post detail fetch their content.
func (a *App) Enter(ctx context.Context) error {
	if !a.pending {
		return nil
	}
	a.pending = false

	switch {
	case a.postList != nil:
		return a.List(ctx)
	case a.postDetail != nil:
		a.renderPostDetail()
		err := a.postDetail.Load(ctx)
		a.renderPostDetail()
		return err
	}
	return nil
}
