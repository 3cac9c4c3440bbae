package screens

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/postfeed/internal/client/models"
	"github.com/dmitrijs2005/postfeed/internal/client/navigation"
	"github.com/dmitrijs2005/postfeed/internal/client/services"
	"github.com/dmitrijs2005/postfeed/internal/logging"
)

// ErrInvalidPostID is returned when selecting a non-positive post id.
var ErrInvalidPostID = errors.New("invalid post id")

// PostListView is what the post list renders.
type PostListView struct {
	Loading bool
	Posts   []models.PostSummary
}

// PostListScreen shows the list of posts and offers logout.
type PostListScreen struct {
	mu      sync.Mutex
	loading bool
	posts   []models.PostSummary

	svc      services.PostService
	nav      Navigator
	prompt   Prompter
	log      logging.Logger
	onLogout func()
}

// NewPostListScreen mounts the list. onLogout, if not nil, runs after the
// user confirmed logging out and before navigation happens.
func NewPostListScreen(svc services.PostService, nav Navigator, prompt Prompter, log logging.Logger, onLogout func()) *PostListScreen {
	return &PostListScreen{
		loading:  true,
		svc:      svc,
		nav:      nav,
		prompt:   prompt,
		log:      log.With("screen", navigation.ScreenPostList.String()),
		onLogout: onLogout,
	}
}

// Load fetches the list. It is called once on mount and again on refresh.
func (s *PostListScreen) Load(ctx context.Context) error {
	s.mu.Lock()
	s.loading = true
	s.mu.Unlock()

	posts, err := s.svc.List(ctx)

	s.mu.Lock()
	s.loading = false
	if err == nil {
		s.posts = posts
	}
	s.mu.Unlock()

	if err != nil {
		s.prompt.Alert("Error", "Could not load posts. Please try again.")
		return err
	}
	return nil
}

func (s *PostListScreen) View() PostListView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return PostListView{Loading: s.loading, Posts: append([]models.PostSummary(nil), s.posts...)}
}

// Select opens the detail screen for id.
func (s *PostListScreen) Select(id int) error {
	if id <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidPostID, id)
	}
	return s.nav.Dispatch(navigation.PostSelected{PostID: id})
}

// Logout asks for confirmation and, if given, ends the session and returns
// to the login screen. It reports whether the user confirmed.
func (s *PostListScreen) Logout(ctx context.Context) (bool, error) {
	if !s.prompt.Confirm("Logout", "Are you sure you want to log out?", "Cancel", "Logout") {
		s.log.Debug(ctx, "logout cancelled")
		return false, nil
	}
	if s.onLogout != nil {
		s.onLogout()
	}
	s.log.Info(ctx, "logged out")
	return true, s.nav.Dispatch(navigation.LogoutConfirmed{})
}

// PostDetailView is what the detail screen renders. While Loading is true
// nothing else is shown.
type PostDetailView struct {
	PostID  int
	Loading bool
	Failed  bool
	Title   string
	Body    string
}

// PostDetailScreen shows one post, fetched by the id from its route.
type PostDetailScreen struct {
	mu      sync.Mutex
	postID  int
	loading bool
	failed  bool
	post    *models.Post

	svc    services.PostService
	nav    Navigator
	prompt Prompter
	log    logging.Logger
}

// NewPostDetailScreen mounts the detail view for postID in the loading state.
func NewPostDetailScreen(postID int, svc services.PostService, nav Navigator, prompt Prompter, log logging.Logger) *PostDetailScreen {
	return &PostDetailScreen{
		postID:  postID,
		loading: true,
		svc:     svc,
		nav:     nav,
		prompt:  prompt,
		log:     log.With("screen", navigation.ScreenPostDetail.String(), "post_id", postID),
	}
}

// Load fetches the post.
func (s *PostDetailScreen) Load(ctx context.Context) error {
	post, err := s.svc.Get(ctx, s.postID)

	s.mu.Lock()
	s.loading = false
	s.post = post
	s.failed = err != nil
	s.mu.Unlock()

	if err != nil {
		s.prompt.Alert("Error", "Could not load the post. Please try again.")
		return err
	}
	return nil
}

func (s *PostDetailScreen) View() PostDetailView {
	s.mu.Lock()
	defer s.mu.Unlock()

	v := PostDetailView{PostID: s.postID, Loading: s.loading, Failed: s.failed}
	if !s.loading && s.post != nil {
		v.Title, v.Body = s.post.Title, s.post.Body
	}
	return v
}

// Back returns to the previous screen.
func (s *PostDetailScreen) Back() error {
	return s.nav.Dispatch(navigation.BackPressed{})
}
