package adapters

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/zmb3/spotify/v2"
	spotifyauth "github.com/zmb3/spotify/v2/auth"
	"golang.org/x/oauth2/clientcredentials"

	"songbook/internal/playlist"
)

// SpotifyAdapter reads public Spotify playlists using the client credentials flow.
type SpotifyAdapter struct {
	BaseAdapter
	client       *spotify.Client
	clientID     string
	clientSecret string
	limit        int
}

// NewSpotifyAdapter creates a new SpotifyAdapter
func NewSpotifyAdapter(clientID, clientSecret string, limit int) (*SpotifyAdapter, error) {
	if clientID == "" || clientSecret == "" {
		return nil, fmt.Errorf("spotify client ID and secret must be set in SPOTIFY_CLIENT_ID and SPOTIFY_CLIENT_SECRET")
	}

	return &SpotifyAdapter{
		BaseAdapter:  NewBaseAdapter("Spotify"),
		clientID:     clientID,
		clientSecret: clientSecret,
		limit:        pageLimit(limit),
	}, nil
}

// Authenticate fetches an app token; no user login is needed to read public playlists.
func (a *SpotifyAdapter) Authenticate(ctx context.Context) error {
	config := &clientcredentials.Config{
		ClientID:     a.clientID,
		ClientSecret: a.clientSecret,
		TokenURL:     spotifyauth.TokenURL,
	}
	token, err := config.Token(ctx)
	if err != nil {
		return fmt.Errorf("authentication failed: %w", err)
	}

	httpClient := spotifyauth.New().Client(ctx, token)
	a.client = spotify.New(httpClient)
	a.SetAuthenticated(true)
	return nil
}

// GetPlaylist retrieves the playlist name and every track in it. Episodes and
// local files without track metadata are skipped.
func (a *SpotifyAdapter) GetPlaylist(ctx context.Context, ref string) (Listing, error) {
	if err := a.CheckAuth(); err != nil {
		return Listing{}, err
	}

	playlistID, err := parseSpotifyPlaylist(ref)
	if err != nil {
		return Listing{}, err
	}

	full, err := a.client.GetPlaylist(ctx, spotify.ID(playlistID))
	if err != nil {
		return Listing{}, fmt.Errorf("error getting playlist: %w", err)
	}

	var records []playlist.Record
	offset := 0

	for {
		playlistItems, err := a.client.GetPlaylistItems(
			ctx,
			spotify.ID(playlistID),
			spotify.Limit(a.limit),
			spotify.Offset(offset),
		)
		if err != nil {
			return Listing{}, fmt.Errorf("error getting playlist items: %w", err)
		}

		for _, item := range playlistItems.Items {
			if item.Track.Track == nil {
				continue
			}
			records = append(records, spotifyRecord(item.Track.Track))
		}

		if len(playlistItems.Items) < a.limit {
			break
		}
		offset += a.limit
	}

	a.logger.WithField("records", len(records)).Debugf("fetched playlist %s", full.Name)
	return Listing{Name: full.Name, Records: records}, nil
}

func spotifyRecord(track *spotify.FullTrack) playlist.Record {
	artistNames := make([]string, 0, len(track.Artists))
	for _, artist := range track.Artists {
		artistNames = append(artistNames, artist.Name)
	}

	album := track.Album.Name
	if album == "" {
		album = "Unknown"
	}

	// Spotify exposes genres on artists only, so tracks keep the placeholder.
	return playlist.Record{
		Title:    track.Name,
		Artist:   strings.Join(artistNames, ", "),
		Album:    album,
		Duration: int(track.Duration) / 1000,
		Genre:    "Unknown",
	}
}

// parseSpotifyPlaylist accepts a bare playlist ID, a spotify:playlist: URI or
// an open.spotify.com playlist URL.
func parseSpotifyPlaylist(ref string) (string, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return "", fmt.Errorf("empty spotify playlist reference")
	}
	if id, ok := strings.CutPrefix(ref, "spotify:playlist:"); ok {
		return id, nil
	}
	if !strings.Contains(ref, "/") {
		return ref, nil
	}

	u, err := url.Parse(ref)
	if err != nil {
		return "", fmt.Errorf("invalid spotify URL %q: %w", ref, err)
	}
	if u.Host != "open.spotify.com" {
		return "", fmt.Errorf("not a spotify URL: %s", ref)
	}
	parts := strings.Split(strings.Trim(u.Path, "/"), "/")
	if len(parts) < 2 || parts[len(parts)-2] != "playlist" || parts[len(parts)-1] == "" {
		return "", fmt.Errorf("not a spotify playlist URL: %s", ref)
	}
	return parts[len(parts)-1], nil
}
