package navigation

// Stack holds navigation history. The top entry is the current route.
type Stack struct {
	entries []Route
}

// NewStack creates a stack holding root.
func NewStack(root Route) *Stack {
	return &Stack{entries: []Route{root}}
}

// Push adds a new entry when navigating forward.
func (s *Stack) Push(r Route) {
	s.entries = append(s.entries, r)
}

// Pop removes the top entry. The root entry is never removed; ok is false
// when only the root is left.
func (s *Stack) Pop() (Route, bool) {
	if len(s.entries) <= 1 {
		return Route{}, false
	}
	top := s.entries[len(s.entries)-1]
	s.entries = s.entries[:len(s.entries)-1]
	return top, true
}

// Peek returns the top entry.
func (s *Stack) Peek() Route {
	return s.entries[len(s.entries)-1]
}

// Len returns the number of entries in the stack.
func (s *Stack) Len() int {
	return len(s.entries)
}

// Reset replaces the whole history with root.
func (s *Stack) Reset(root Route) {
	s.entries = append(s.entries[:0], root)
}

// Routes returns a copy of the entries, bottom first.
func (s *Stack) Routes() []Route {
	return append([]Route(nil), s.entries...)
}
