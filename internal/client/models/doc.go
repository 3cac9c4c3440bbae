// Package models defines client-side data models used by the PostFeed CLI.
package models
