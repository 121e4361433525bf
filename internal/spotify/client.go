package spotify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"golang.org/x/oauth2"
)

const (
	currentlyPlayingPath = "/me/player/currently-playing"
	recentlyPlayedPath   = "/me/player/recently-played"
)

// ErrTokenExchange is returned when the refresh token cannot be traded for an access token.
var ErrTokenExchange = errors.New("token exchange failed")

// Options configures a Client.
type Options struct {
	ClientID     string
	ClientSecret string
	RefreshToken string
	TokenURL     string
	APIURL       string
}

// Client talks to the Spotify Web API on behalf of a single account.
// It keeps no per-request state and is safe for concurrent use.
type Client struct {
	conf         *oauth2.Config
	refreshToken string
	apiURL       string
}

// NewClient creates a new Spotify API client using the refresh token flow.
func NewClient(opts Options) *Client {
	return &Client{
		conf: &oauth2.Config{
			ClientID:     opts.ClientID,
			ClientSecret: opts.ClientSecret,
			Endpoint: oauth2.Endpoint{
				TokenURL:  opts.TokenURL,
				AuthStyle: oauth2.AuthStyleInHeader,
			},
		},
		refreshToken: opts.RefreshToken,
		apiURL:       opts.APIURL,
	}
}

// Token exchanges the refresh token for a fresh access token. Tokens are not
// cached; every call hits the token endpoint.
func (c *Client) Token(ctx context.Context) (*oauth2.Token, error) {
	src := c.conf.TokenSource(ctx, &oauth2.Token{RefreshToken: c.refreshToken})
	tok, err := src.Token()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTokenExchange, err)
	}
	return tok, nil
}

// CurrentlyPlaying fetches the user's currently playing track. It returns
// nil when Spotify answers 204, any status >= 400, or a body without a track.
func (c *Client) CurrentlyPlaying(ctx context.Context, tok *oauth2.Token) (*Playback, error) {
	resp, err := c.get(ctx, tok, c.apiURL+currentlyPlayingPath)
	if err != nil {
		return nil, err
	}
	defer closeBody(resp)

	if resp.StatusCode == http.StatusNoContent || resp.StatusCode >= http.StatusBadRequest {
		slog.Debug("no currently playing data", "status", resp.StatusCode)
		return nil, nil
	}

	var cp CurrentlyPlaying
	if err := json.NewDecoder(resp.Body).Decode(&cp); err != nil {
		return nil, fmt.Errorf("decode currently playing: %w", err)
	}
	if cp.Item == nil {
		return nil, nil
	}

	return &Playback{Track: cp.Item, IsPlaying: cp.IsPlaying}, nil
}

// RecentlyPlayed fetches the most recently played track. Anything but a 200
// with at least one item yields nil. The result is never live.
func (c *Client) RecentlyPlayed(ctx context.Context, tok *oauth2.Token) (*Playback, error) {
	q := url.Values{}
	q.Set("limit", "1")

	resp, err := c.get(ctx, tok, c.apiURL+recentlyPlayedPath+"?"+q.Encode())
	if err != nil {
		return nil, err
	}
	defer closeBody(resp)

	if resp.StatusCode != http.StatusOK {
		slog.Debug("no recently played data", "status", resp.StatusCode)
		return nil, nil
	}

	var rp RecentlyPlayed
	if err := json.NewDecoder(resp.Body).Decode(&rp); err != nil {
		return nil, fmt.Errorf("decode recently played: %w", err)
	}
	if len(rp.Items) == 0 || rp.Items[0].Track == nil {
		return nil, nil
	}

	return &Playback{Track: rp.Items[0].Track, IsPlaying: false}, nil
}

// Latest resolves what the badge should show: the live track if one is
// playing, otherwise the last played one. A nil result means neither lookup
// had data.
func (c *Client) Latest(ctx context.Context) (*Playback, error) {
	tok, err := c.Token(ctx)
	if err != nil {
		return nil, err
	}

	now, err := c.CurrentlyPlaying(ctx, tok)
	if err != nil {
		return nil, err
	}
	if now != nil && now.IsPlaying {
		return now, nil
	}

	return c.RecentlyPlayed(ctx, tok)
}

func (c *Client) get(ctx context.Context, tok *oauth2.Token, rawURL string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}

	httpClient := oauth2.NewClient(ctx, oauth2.StaticTokenSource(tok))
	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("spotify request %s: %w", req.URL.Path, err)
	}
	return resp, nil
}

func closeBody(resp *http.Response) {
	if err := resp.Body.Close(); err != nil {
		slog.Warn("failed to close spotify api response body", "error", err)
	}
}
