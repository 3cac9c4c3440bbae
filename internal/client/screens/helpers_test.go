package screens

import (
	"context"
	"database/sql"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/postfeed/internal/client/models"
	"github.com/dmitrijs2005/postfeed/internal/client/navigation"
	"github.com/dmitrijs2005/postfeed/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/postfeed/internal/client/repositories/users"
	"github.com/dmitrijs2005/postfeed/internal/client/services"
	"github.com/dmitrijs2005/postfeed/internal/logging"

	_ "modernc.org/sqlite"
)

type alert struct {
	Title   string
	Message string
}

type fakePrompter struct {
	mu       sync.Mutex
	alerts   []alert
	confirms int
	answer   bool
}

func (p *fakePrompter) Alert(title, message string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.alerts = append(p.alerts, alert{title, message})
}

func (p *fakePrompter) Confirm(string, string, string, string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.confirms++
	return p.answer
}

func (p *fakePrompter) Alerts() []alert {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]alert(nil), p.alerts...)
}

func newAuth(t *testing.T) services.AuthService {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`CREATE TABLE metadata (key TEXT PRIMARY KEY, value TEXT NOT NULL);`)
	require.NoError(t, err)
	store := users.NewStore(metadata.NewSQLiteRepository(db), logging.Discard())
	return services.NewAuthService(store, logging.Discard())
}

// navAt returns a navigator moved along by replaying events from Login.
func navAt(t *testing.T, events ...navigation.Event) *navigation.Navigator {
	t.Helper()
	n := navigation.New()
	for _, ev := range events {
		require.NoError(t, n.Dispatch(ev))
	}
	return n
}

// blockingAuth holds Login and Register until release is closed.
type blockingAuth struct {
	started chan struct{}
	release chan struct{}
	err     error
}

func newBlockingAuth() *blockingAuth {
	return &blockingAuth{started: make(chan struct{}, 1), release: make(chan struct{})}
}

func (b *blockingAuth) Login(_ context.Context, email, _ string) (*models.Session, error) {
	b.started <- struct{}{}
	<-b.release
	if b.err != nil {
		return nil, b.err
	}
	return models.NewSession(email), nil
}

func (b *blockingAuth) Register(context.Context, string, string, string) error {
	b.started <- struct{}{}
	<-b.release
	return b.err
}

// fakePosts implements services.PostService. When gate is set, calls wait
// on it before returning.
type fakePosts struct {
	list    []models.PostSummary
	listErr error
	post    *models.Post
	postErr error
	gate    chan struct{}
	lastID  int
}

func (f *fakePosts) List(context.Context) ([]models.PostSummary, error) {
	if f.gate != nil {
		<-f.gate
	}
	return f.list, f.listErr
}

func (f *fakePosts) Get(_ context.Context, id int) (*models.Post, error) {
	if f.gate != nil {
		<-f.gate
	}
	f.lastID = id
	return f.post, f.postErr
}
