package config

import (
	"log/slog"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	defaultTokenURL = "https://accounts.spotify.com/api/token"
	defaultAPIURL   = "https://api.spotify.com/v1"
)

// Config holds the application configuration.
type Config struct {
	ServerPort string
	LogLevel   slog.Level
	LogFormat  string
	Spotify    struct {
		ClientID     string
		ClientSecret string
		RefreshToken string
		TokenURL     string
		APIURL       string
	}
}

// New returns a viper instance reading the process environment, with the
// defaults every key falls back to. Callers may bind flags onto it before
// calling Load.
func New() *viper.Viper {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("server_port", "3000")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "json")
	v.SetDefault("spotify_token_url", defaultTokenURL)
	v.SetDefault("spotify_api_url", defaultAPIURL)

	return v
}

// Load loads the configuration from a .env file, if present, and the environment.
func Load(v *viper.Viper) *Config {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg := &Config{}

	cfg.Spotify.ClientID = v.GetString("spotify_client_id")
	cfg.Spotify.ClientSecret = v.GetString("spotify_client_secret")
	cfg.Spotify.RefreshToken = v.GetString("spotify_refresh_token")
	cfg.Spotify.TokenURL = v.GetString("spotify_token_url")
	cfg.Spotify.APIURL = strings.TrimSuffix(v.GetString("spotify_api_url"), "/")

	// Missing credentials show up as a token exchange failure on the first request.
	if cfg.Spotify.ClientID == "" || cfg.Spotify.ClientSecret == "" || cfg.Spotify.RefreshToken == "" {
		slog.Warn("spotify credentials are not fully set")
	}

	cfg.ServerPort = v.GetString("server_port")
	cfg.LogLevel = ParseLevel(v.GetString("log_level"))
	cfg.LogFormat = strings.ToLower(v.GetString("log_format"))

	return cfg
}

// ParseLevel maps a level name to a slog.Level, defaulting to info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
