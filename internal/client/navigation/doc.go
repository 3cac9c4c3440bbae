// Package navigation owns "which screen is current" for the PostFeed client.
//
// Screens never touch the stack directly. They dispatch typed events to a
// Navigator, and a single transition table decides where each event leads:
//
//	Login        --LoginSucceeded-------->  PostList     (stack reset)
//	Login        --SignupTapped---------->  Registration (push)
//	Registration --RegistrationSucceeded->  Login        (pop)
//	Registration --HaveAccountTapped----->  Login        (pop)
//	PostList     --PostSelected{id}------>  PostDetail   (push)
//	PostList     --LogoutConfirmed------->  Login        (stack reset)
//	PostDetail   --BackPressed----------->  previous entry (pop)
//
// Any other (screen, event) pair is rejected with ErrIllegalTransition and
// leaves the state untouched. The initial state is a stack holding Login.
//
// # Basic Usage
//
//	nav := navigation.New()
//	nav.OnTransition(func(from, to navigation.Route) {
//	    log.Printf("%s -> %s", from, to)
//	})
//	_ = nav.Dispatch(navigation.SignupTapped{})
//	nav.Current().Screen // Registration
package navigation
