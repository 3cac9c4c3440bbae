// Package config loads runtime configuration for the PostFeed CLI.
//
// Sources, lowest precedence first:
//
//  1. Built-in defaults ((*Config).LoadDefaults).
//  2. A JSON file named by -c or -config.
//  3. POSTFEED_* environment variables.
//  4. Command-line flags -d, -e, -t and -l.
//
// The JSON file accepts durations as strings ("10s") or integer nanoseconds:
//
//	{
//	  "data_dir": ".postfeed",
//	  "database_file": "postfeed.db",
//	  "posts_endpoint": "https://jsonplaceholder.typicode.com",
//	  "request_timeout": "10s",
//	  "log_level": "info"
//	}
//
// Environment variables: POSTFEED_DATA_DIR, POSTFEED_DATABASE_FILE,
// POSTFEED_POSTS_ENDPOINT, POSTFEED_REQUEST_TIMEOUT (a Go duration such as
// "5s") and POSTFEED_LOG_LEVEL.
package config
