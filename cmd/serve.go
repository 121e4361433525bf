package cmd

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"skidoodle/spotify-badge/internal/config"
	"skidoodle/spotify-badge/internal/logging"
	"skidoodle/spotify-badge/internal/server"
	"skidoodle/spotify-badge/internal/spotify"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the badge over HTTP",
	Long: `Serve the badge over HTTP until interrupted.

Requires SPOTIFY_CLIENT_ID, SPOTIFY_CLIENT_SECRET and SPOTIFY_REFRESH_TOKEN,
read from the environment or a .env file in the working directory.`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg := config.Load(v)
	slog.SetDefault(logging.New(os.Stderr, cfg.LogFormat, cfg.LogLevel))

	client := spotify.NewClient(spotify.Options{
		ClientID:     cfg.Spotify.ClientID,
		ClientSecret: cfg.Spotify.ClientSecret,
		RefreshToken: cfg.Spotify.RefreshToken,
		TokenURL:     cfg.Spotify.TokenURL,
		APIURL:       cfg.Spotify.APIURL,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := server.NewServer(":"+cfg.ServerPort, client).Run(ctx); err != nil {
		slog.Error("server failed", logging.Err(err))
		return err
	}
	return nil
}
