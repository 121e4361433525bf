// Package badge renders the now-playing SVG card.
package badge

import (
	"bytes"
	"encoding/xml"
	"strings"
	"text/template"

	"skidoodle/spotify-badge/internal/spotify"
)

const (
	// MaxTitleLen is the number of characters of the track name shown before truncation.
	MaxTitleLen = 30
	// MaxArtistLen is the number of characters of the artist line shown before truncation.
	MaxArtistLen = 35

	placeholderTitle  = "Not Playing"
	placeholderArtist = "Spotify"
	ellipsis          = "..."
)

type view struct {
	Title     string
	Artist    string
	AlbumArt  string
	IsPlaying bool
}

var badgeTemplate = template.Must(template.New("badge").Parse(badgeSVG))

// Render builds the SVG for track, which may be nil. It never fails.
func Render(track *spotify.TrackItem, isPlaying bool) []byte {
	v := view{
		Title:     escape(placeholderTitle),
		Artist:    escape(placeholderArtist),
		IsPlaying: isPlaying,
	}

	if track != nil {
		if track.Name != "" {
			v.Title = escape(Truncate(track.Name, MaxTitleLen))
		}
		if artists := track.ArtistNames(); artists != "" {
			v.Artist = escape(Truncate(artists, MaxArtistLen))
		}
		v.AlbumArt = escape(track.AlbumArt())
	}

	var buf bytes.Buffer
	if err := badgeTemplate.Execute(&buf, v); err != nil {
		// The template and its data are fixed; this only happens on a programming error.
		panic("badge: execute template: " + err.Error())
	}
	return buf.Bytes()
}

// Truncate cuts s to limit characters and appends "..." when it was longer.
func Truncate(s string, limit int) string {
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	return string(r[:limit]) + ellipsis
}

func escape(s string) string {
	var b strings.Builder
	// strings.Builder never returns a write error.
	_ = xml.EscapeText(&b, []byte(s))
	return b.String()
}

const badgeSVG = `<svg width="400" height="130" xmlns="http://www.w3.org/2000/svg" xmlns:xlink="http://www.w3.org/1999/xlink">
    <defs>
        <clipPath id="albumClip"><rect x="15" y="15" width="100" height="100" rx="10"/></clipPath>
        <linearGradient id="bg" x1="0%" y1="0%" x2="100%" y2="100%">
            <stop offset="0%" style="stop-color:#1a1a2e"/><stop offset="100%" style="stop-color:#16213e"/>
        </linearGradient>
    </defs>
    <rect width="400" height="130" rx="15" fill="url(#bg)"/>
    <rect x="1" y="1" width="398" height="128" rx="14" fill="none" stroke="#1DB954" stroke-opacity="0.3"/>
    {{- if .AlbumArt}}
    <image x="15" y="15" width="100" height="100" xlink:href="{{.AlbumArt}}" clip-path="url(#albumClip)" preserveAspectRatio="xMidYMid slice"/>
    {{- else}}
    <rect x="15" y="15" width="100" height="100" rx="10" fill="#282828"/><text class="note" x="65" y="70" text-anchor="middle" fill="#1DB954" font-size="40">&#9834;</text>
    {{- end}}
    <text class="title" x="130" y="40" fill="#fff" font-family="Arial" font-size="16" font-weight="600">{{.Title}}</text>
    <text class="artist" x="130" y="62" fill="#b3b3b3" font-family="Arial" font-size="13">{{.Artist}}</text>
    <g class="status" transform="translate(130, 80)">
    {{- if .IsPlaying}}
        <circle cx="6" cy="6" r="4" fill="#1DB954"><animate attributeName="opacity" values="1;0.4;1" dur="1.5s" repeatCount="indefinite"/></circle>
        <text x="16" y="10" fill="#1DB954" font-family="Arial" font-size="11">Now Playing</text>
    {{- else}}
        <circle cx="6" cy="6" r="4" fill="#b3b3b3"/><text x="16" y="10" fill="#b3b3b3" font-family="Arial" font-size="11">Recently Played</text>
    {{- end}}
    </g>
    <path transform="translate(360, 95)" d="M12 0C5.4 0 0 5.4 0 12s5.4 12 12 12 12-5.4 12-12S18.66 0 12 0zm5.521 17.34c-.24.359-.66.48-1.021.24-2.82-1.74-6.36-2.101-10.561-1.141-.418.122-.779-.179-.899-.539-.12-.421.18-.78.54-.9 4.56-1.021 8.52-.6 11.64 1.32.42.18.479.659.301 1.02zm1.44-3.3c-.301.42-.841.6-1.262.3-3.239-1.98-8.159-2.58-11.939-1.38-.479.12-1.02-.12-1.14-.6-.12-.48.12-1.021.6-1.141C9.6 9.9 15 10.561 18.72 12.84c.361.181.54.78.241 1.2zm.12-3.36C15.24 8.4 8.82 8.16 5.16 9.301c-.6.179-1.2-.181-1.38-.721-.18-.601.18-1.2.72-1.381 4.26-1.26 11.28-1.02 15.721 1.621.539.3.719 1.02.419 1.56-.299.421-1.02.599-1.559.3z" fill="#1DB954"/>
</svg>
`
