package config

import (
	"flag"
	"os"
	"time"

	"contractpad/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-d string   local SQLite database path (default from Config)
//	-r string   remote REST endpoint base URL (default from Config)
//	-i int      connectivity check interval in seconds (default from Config)
//	-l string   log file path (default from Config)
//
// Note: The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	// Filter args to include only those handled here.
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-r", "-i", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "local SQLite database path")
	fs.StringVar(&cfg.RemoteURL, "r", cfg.RemoteURL, "remote REST endpoint base URL")
	onlineCheckInterval := fs.Int("i", int(cfg.OnlineCheckInterval.Seconds()), "connectivity check interval (in seconds)")
	fs.StringVar(&cfg.LogFile, "l", cfg.LogFile, "log file path (empty logs to stderr)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.OnlineCheckInterval = time.Duration(*onlineCheckInterval) * time.Second
}
