package models

import "fmt"

// PostSummary is a list item returned by GET /posts.
type PostSummary struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
}

func (p PostSummary) String() string {
	return fmt.Sprintf("%4d  %s", p.ID, p.Title)
}

// Post is the full payload returned by GET /posts/{id}.
type Post struct {
	ID     int    `json:"id"`
	UserID int    `json:"userId"`
	Title  string `json:"title"`
	Body   string `json:"body"`
}
