package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"skidoodle/spotify-badge/internal/config"
)

// Version information (set via ldflags during build)
var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

// v merges flags, the environment and defaults for every command.
var v = config.New()

var rootCmd = &cobra.Command{
	Use:   "spotify-badge",
	Short: "SVG badge of the track you are listening to on Spotify",
	Long: `spotify-badge serves an SVG card showing the track currently playing
on a Spotify account, or the last one played when nothing is on.

Point an <img> tag in a profile readme at the server to embed it.`,
	Version:      fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, buildDate),
	SilenceUsage: true,
	RunE:         runServe,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.String("port", "3000", "port to listen on (SERVER_PORT)")
	flags.String("log-level", "info", "debug, info, warn or error (LOG_LEVEL)")
	flags.String("log-format", "json", "json or text (LOG_FORMAT)")

	_ = v.BindPFlag("server_port", flags.Lookup("port"))
	_ = v.BindPFlag("log_level", flags.Lookup("log-level"))
	_ = v.BindPFlag("log_format", flags.Lookup("log-format"))
}
