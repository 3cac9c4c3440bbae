// Package client contains the client-side infrastructure of PostFeed.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic contract for the remote content endpoint (see
//     PostsClient) and its REST implementation (see HTTPClient), which maps
//     transport failures and HTTP statuses to *common.NetworkError values
//     wrapping the sentinels below.
//  2. Local persistence bootstrap utilities (InitDatabase, RunMigrations),
//     wiring an SQLite database and applying embedded goose migrations.
//
// # Error Handling
//
// Callers can match with errors.Is: ErrUnavailable (the endpoint could not be
// reached) and ErrNotFound (HTTP 404), as well as common.ErrNetwork for the
// whole class.
//
// Contexts
//
// All operations accept context.Context and honor cancellation; HTTPClient
// additionally applies a per-request timeout.
package client
