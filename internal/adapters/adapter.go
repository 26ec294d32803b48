package adapters

import (
	"context"
	"fmt"

	"songbook/internal/config"
	"songbook/internal/playlist"
)

// Listing is a playlist as read from a source, before it becomes a Playlist.
type Listing struct {
	Name    string
	Records []playlist.Record
}

// Adapter defines the interface for reading playlists from different sources
// into a common shape that the porter can turn into library playlists.
type Adapter interface {
	Authenticate(ctx context.Context) error
	IsAuthenticated() bool
	PlatformName() string

	// GetPlaylist reads a playlist. ref is a file path, a playlist ID or a playlist URL depending on the source.
	GetPlaylist(ctx context.Context, ref string) (Listing, error)
}

// PlatformType represents the supported playlist sources
type PlatformType string

const (
	CSVPlatform     PlatformType = "csv"
	SpotifyPlatform PlatformType = "spotify"
	YoutubePlatform PlatformType = "youtube"
)

// Platforms lists the sources in the order they are offered to the user.
var Platforms = []PlatformType{CSVPlatform, SpotifyPlatform, YoutubePlatform}

// NewAdapter is a factory function that creates a new adapter for the specified platform
func NewAdapter(platform string, cfg *config.ConfigStruct) (Adapter, error) {
	if cfg == nil {
		cfg = &config.ConfigStruct{}
	}
	switch PlatformType(platform) {
	case CSVPlatform:
		return NewCSVAdapter(), nil
	case SpotifyPlatform:
		if !cfg.Spotify.IsConfigured() {
			return nil, fmt.Errorf("spotify is not configured: set SPOTIFY_CLIENT_ID and SPOTIFY_CLIENT_SECRET")
		}
		return NewSpotifyAdapter(cfg.Spotify.ClientID, cfg.Spotify.ClientSecret, cfg.Spotify.PlaylistLimit)
	case YoutubePlatform:
		if !cfg.Youtube.IsConfigured() {
			return nil, fmt.Errorf("youtube is not configured: set YOUTUBE_API_KEY")
		}
		return NewYouTubeAdapter(cfg.Youtube.APIKey, cfg.Youtube.PlaylistLimit)
	default:
		return nil, fmt.Errorf("unsupported platform: %s", platform)
	}
}

func pageLimit(limit int) int {
	if limit <= 0 || limit > 50 {
		return 50
	}
	return limit
}
