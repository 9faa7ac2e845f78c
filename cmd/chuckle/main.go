package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"runtime/debug"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/five82/chuckle/internal/app"
	"github.com/five82/chuckle/internal/config"
	"github.com/five82/chuckle/internal/prefs"
)

var exampleUsage = strings.TrimSpace(`
  chuckle
  chuckle --category Programming --blacklist nsfw,explicit
  chuckle fetch --json
  chuckle logs -n 50 --level warn
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "chuckle: %v\n", err)
		return 1
	}
	return 0
}

func newRootCmd() *cobra.Command {
	var opts app.Options

	root := &cobra.Command{
		Use:           "chuckle",
		Short:         "Random jokes in your terminal",
		Long:          "chuckle shows a random two-part joke, lets you fetch another one and keeps the ones you like for the session.",
		Example:       exampleUsage,
		Version:       fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Flags = cmd.Flags()
			return app.Run(cmd.Context(), opts)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&opts.ConfigPath, "config", "", "config file (default "+config.DefaultPath()+")")
	pf.StringVar(&opts.PrefsPath, "prefs", "", "preferences file (default "+prefs.DefaultPath()+")")
	pf.String(config.FlagEndpoint, "", "JokeAPI base URL")
	pf.String(config.FlagCategory, "", "joke category, e.g. Programming (default Any)")
	pf.StringSlice(config.FlagBlacklist, nil, "exclude jokes with these flags (nsfw,religious,political,racist,sexist,explicit)")
	pf.String(config.FlagLogLevel, "", "log level: debug, info, warn, error")
	pf.String(config.FlagLogFile, "", `log file, "-" for stderr`)
	pf.String(config.FlagMetricsAddr, "", "serve Prometheus metrics on this address, e.g. :9090")

	root.AddCommand(newFetchCmd(&opts), newLogsCmd(&opts))
	return root
}

func newFetchCmd(opts *app.Options) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Print one random joke and exit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Flags = cmd.Flags()
			return app.Fetch(cmd.Context(), *opts, cmd.OutOrStdout(), asJSON)
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the joke as JSON")
	return cmd
}

func newLogsCmd(opts *app.Options) *cobra.Command {
	var (
		lines int
		level string
	)
	cmd := &cobra.Command{
		Use:   "logs",
		Short: "Print the tail of the chuckle log file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Flags = cmd.Flags()
			return app.Logs(*opts, cmd.OutOrStdout(), lines, level)
		},
	}
	cmd.Flags().IntVarP(&lines, "lines", "n", 100, "number of lines to print, 0 for all")
	cmd.Flags().StringVar(&level, "level", "", "only print lines at or above this level")
	return cmd
}
