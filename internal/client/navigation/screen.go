package navigation

import "fmt"

// Screen identifies one of the four client screens.
type Screen int

const (
	ScreenLogin Screen = iota
	ScreenRegistration
	ScreenPostList
	ScreenPostDetail
)

func (s Screen) String() string {
	switch s {
	case ScreenLogin:
		return "Login"
	case ScreenRegistration:
		return "Registration"
	case ScreenPostList:
		return "PostList"
	case ScreenPostDetail:
		return "PostDetail"
	default:
		return fmt.Sprintf("Screen(%d)", int(s))
	}
}

// Route is a screen plus its parameters. PostID is only meaningful on
// ScreenPostDetail.
type Route struct {
	Screen Screen
	PostID int
}

func (r Route) String() string {
	if r.Screen == ScreenPostDetail {
		return fmt.Sprintf("%s(%d)", r.Screen, r.PostID)
	}
	return r.Screen.String()
}

func LoginRoute() Route        { return Route{Screen: ScreenLogin} }
func RegistrationRoute() Route { return Route{Screen: ScreenRegistration} }
func PostListRoute() Route     { return Route{Screen: ScreenPostList} }

func PostDetailRoute(postID int) Route {
	return Route{Screen: ScreenPostDetail, PostID: postID}
}
