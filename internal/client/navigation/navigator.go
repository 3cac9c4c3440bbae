package navigation

import (
	"errors"
	"fmt"
	"sync"
)

// ErrIllegalTransition is returned when an event is not valid for the
// current screen.
var ErrIllegalTransition = errors.New("illegal transition")

// TransitionFunc observes a completed transition.
type TransitionFunc func(from, to Route)

// Navigator is the navigation state machine. It is safe for concurrent use;
// listeners run synchronously on the dispatching goroutine, after the state
// has changed and without the lock held.
type Navigator struct {
	mu        sync.Mutex
	stack     *Stack
	listeners []TransitionFunc
}

// New returns a navigator positioned on Login.
func New() *Navigator {
	return &Navigator{stack: NewStack(LoginRoute())}
}

// OnTransition registers fn to be called after every successful transition.
func (n *Navigator) OnTransition(fn TransitionFunc) *Navigator {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.listeners = append(n.listeners, fn)
	return n
}

// Current returns the current route.
func (n *Navigator) Current() Route {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.stack.Peek()
}

// History returns the stack entries, bottom first.
func (n *Navigator) History() []Route {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.stack.Routes()
}

// Dispatch applies ev to the current route.
func (n *Navigator) Dispatch(ev Event) error {
	if ev == nil {
		return fmt.Errorf("%w: nil event", ErrIllegalTransition)
	}

	n.mu.Lock()
	from := n.stack.Peek()
	if err := n.apply(from, ev); err != nil {
		n.mu.Unlock()
		return err
	}
	to := n.stack.Peek()
	listeners := append([]TransitionFunc(nil), n.listeners...)
	n.mu.Unlock()

	for _, fn := range listeners {
		fn(from, to)
	}
	return nil
}

func (n *Navigator) apply(from Route, ev Event) error {
	switch from.Screen {
	case ScreenLogin:
		switch ev.(type) {
		case LoginSucceeded:
			n.stack.Reset(PostListRoute())
			return nil
		case SignupTapped:
			n.stack.Push(RegistrationRoute())
			return nil
		}

	case ScreenRegistration:
		switch ev.(type) {
		case RegistrationSucceeded, HaveAccountTapped:
			n.popTo(ScreenLogin)
			return nil
		}

	case ScreenPostList:
		switch e := ev.(type) {
		case PostSelected:
			n.stack.Push(PostDetailRoute(e.PostID))
			return nil
		case LogoutConfirmed:
			n.stack.Reset(LoginRoute())
			return nil
		}

	case ScreenPostDetail:
		if _, ok := ev.(BackPressed); ok {
			if _, popped := n.stack.Pop(); !popped {
				n.stack.Reset(PostListRoute())
			}
			return nil
		}
	}

	return fmt.Errorf("%w: %s on %s", ErrIllegalTransition, ev.eventName(), from)
}

// popTo pops entries until screen is on top, or resets to it when the
// history does not contain it.
func (n *Navigator) popTo(screen Screen) {
	for n.stack.Peek().Screen != screen {
		if _, ok := n.stack.Pop(); !ok {
			n.stack.Reset(Route{Screen: screen})
			return
		}
	}
}
