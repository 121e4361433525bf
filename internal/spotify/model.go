package spotify

import "strings"

// TrackItem represents the track object from the Spotify API.
type TrackItem struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Artists []struct {
		Name string `json:"name"`
	} `json:"artists"`
	Album struct {
		Images []struct {
			URL string `json:"url"`
		} `json:"images"`
	} `json:"album"`
}

// ArtistNames joins the artist names in the order Spotify lists them.
func (t *TrackItem) ArtistNames() string {
	names := make([]string, 0, len(t.Artists))
	for _, a := range t.Artists {
		names = append(names, a.Name)
	}
	return strings.Join(names, ", ")
}

// AlbumArt returns the URL of the first album image, or "" if there is none.
func (t *TrackItem) AlbumArt() string {
	if len(t.Album.Images) == 0 {
		return ""
	}
	return t.Album.Images[0].URL
}

// CurrentlyPlaying represents the currently playing object from the Spotify API.
// The Item field is a pointer to handle cases where nothing is playing (item is null).
type CurrentlyPlaying struct {
	IsPlaying bool       `json:"is_playing"`
	Item      *TrackItem `json:"item"`
}

// RecentlyPlayed represents the recently played object from the Spotify API.
type RecentlyPlayed struct {
	Items []struct {
		Track *TrackItem `json:"track"`
	} `json:"items"`
}

// Playback is the outcome of a lookup. A nil *Playback means Spotify had no
// data; otherwise Track is set and IsPlaying tells whether it is live.
type Playback struct {
	Track     *TrackItem
	IsPlaying bool
}
