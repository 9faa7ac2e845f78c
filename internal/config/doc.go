// Package config loads chuckle's settings.
//
// # Resolution Order
//
// Values are layered, later layers winning:
//
//  1. Built-in defaults (see Default)
//  2. ~/.config/chuckle/config.toml, or the path given with --config
//  3. CHUCKLE_* environment variables
//  4. Command-line flags the user explicitly set
//
// A missing config file is not an error. A file that exists but is not
// valid TOML fails with "parse config".
//
// # Fields
//
//	endpoint        = "https://v2.jokeapi.dev"   # CHUCKLE_ENDPOINT, --endpoint
//	category        = "Any"                      # CHUCKLE_CATEGORY, --category
//	blacklist_flags = ["nsfw", "explicit"]       # CHUCKLE_BLACKLIST_FLAGS, --blacklist
//	user_agent      = ""                         # CHUCKLE_USER_AGENT
//	log_file        = "~/.local/state/chuckle/chuckle.log"  # CHUCKLE_LOG_FILE, --log-file
//	log_level       = "info"                     # CHUCKLE_LOG_LEVEL, --log-level
//	metrics_addr    = ""                         # CHUCKLE_METRICS_ADDR, --metrics-addr
//
// A log_file of "-" sends logs to stderr. Paths starting with ~ are expanded
// to the user's home directory.
package config
