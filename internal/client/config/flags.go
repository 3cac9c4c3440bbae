package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/postfeed/internal/flagx"
)

// parseFlags overlays cfg with command-line flags:
//
//	-d string   data directory
//	-e string   base URL of the posts API
//	-t int      request timeout (seconds)
//	-l string   log level (debug, info, warn, error)
//
// Only these flags are read from os.Args; the config file flags are handled
// by parseJson.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-e", "-t", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DataDir, "d", cfg.DataDir, "data directory")
	fs.StringVar(&cfg.PostsEndpoint, "e", cfg.PostsEndpoint, "posts API base URL")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	fs.Visit(func(f *flag.Flag) {
		if f.Name == "t" {
			cfg.RequestTimeout = time.Duration(*timeout) * time.Second
		}
	})
}
