// Package cli provides the interactive PostFeed command-line client.
//
// It wires configuration, the local SQLite user store, the posts API client
// and the navigation state machine, and drives the screens from a REPL.
// Only the commands of the current screen are accepted:
//
//   - Login: login, signup, toggle
//   - Registration: register, toggle [confirm], have-account
//   - PostList: list/refresh, open <id>, logout
//   - PostDetail: back
//
// help and exit work everywhere. Alerts are printed as "[title] message".
// Passwords are read without echo when stdin is a terminal.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
