package adapters

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"

	"songbook/internal/playlist"
)

// YouTubeAdapter reads public YouTube playlists with an API key.
type YouTubeAdapter struct {
	BaseAdapter
	service *youtube.Service
	apiKey  string
	limit   int
	opts    []option.ClientOption
}

// NewYouTubeAdapter creates a new YouTubeAdapter. Extra client options are
// appended after the API key.
func NewYouTubeAdapter(apiKey string, limit int, opts ...option.ClientOption) (*YouTubeAdapter, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("youtube API key must be set in YOUTUBE_API_KEY")
	}

	return &YouTubeAdapter{
		BaseAdapter: NewBaseAdapter("YouTube"),
		apiKey:      apiKey,
		limit:       pageLimit(limit),
		opts:        opts,
	}, nil
}

// Authenticate creates the API service.
func (a *YouTubeAdapter) Authenticate(ctx context.Context) error {
	opts := append([]option.ClientOption{option.WithAPIKey(a.apiKey)}, a.opts...)
	service, err := youtube.NewService(ctx, opts...)
	if err != nil {
		return fmt.Errorf("error creating YouTube client: %w", err)
	}
	a.service = service
	a.SetAuthenticated(true)
	return nil
}

// GetPlaylist retrieves the playlist title and its videos. The channel that
// uploaded each video stands in for the artist.
func (a *YouTubeAdapter) GetPlaylist(ctx context.Context, ref string) (Listing, error) {
	if err := a.CheckAuth(); err != nil {
		return Listing{}, err
	}

	playlistID, err := parseYouTubePlaylist(ref)
	if err != nil {
		return Listing{}, err
	}

	meta, err := a.service.Playlists.List([]string{"snippet"}).Id(playlistID).Context(ctx).Do()
	if err != nil {
		return Listing{}, fmt.Errorf("error fetching playlist: %w", err)
	}
	if len(meta.Items) == 0 {
		return Listing{}, fmt.Errorf("playlist %s not found", playlistID)
	}

	var records []playlist.Record
	var nextPageToken string

	for {
		call := a.service.PlaylistItems.List([]string{"snippet", "contentDetails"}).
			PlaylistId(playlistID).
			MaxResults(int64(a.limit)).
			Context(ctx)

		if nextPageToken != "" {
			call = call.PageToken(nextPageToken)
		}

		response, err := call.Do()
		if err != nil {
			return Listing{}, fmt.Errorf("error fetching playlist items: %w", err)
		}

		videoIDs := make([]string, 0, len(response.Items))
		page := make([]playlist.Record, 0, len(response.Items))
		for _, item := range response.Items {
			if item.ContentDetails == nil || item.Snippet == nil {
				continue
			}
			videoIDs = append(videoIDs, item.ContentDetails.VideoId)
			artist := item.Snippet.VideoOwnerChannelTitle
			if artist == "" {
				artist = "Unknown"
			}
			page = append(page, playlist.Record{
				Title:  item.Snippet.Title,
				Artist: artist,
				Album:  "Unknown",
				Genre:  "Unknown",
			})
		}

		durations, err := a.videoDurations(ctx, videoIDs)
		if err != nil {
			return Listing{}, err
		}
		for i := range page {
			page[i].Duration = durations[videoIDs[i]]
		}
		records = append(records, page...)

		nextPageToken = response.NextPageToken
		if nextPageToken == "" {
			break
		}
	}

	name := meta.Items[0].Snippet.Title
	a.logger.WithField("records", len(records)).Debugf("fetched playlist %s", name)
	return Listing{Name: name, Records: records}, nil
}

// videoDurations looks up durations in seconds in a single batch request.
func (a *YouTubeAdapter) videoDurations(ctx context.Context, videoIDs []string) (map[string]int, error) {
	durations := make(map[string]int, len(videoIDs))
	if len(videoIDs) == 0 {
		return durations, nil
	}

	response, err := a.service.Videos.List([]string{"contentDetails"}).Id(videoIDs...).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("error getting video details: %w", err)
	}
	for _, item := range response.Items {
		if item.ContentDetails == nil {
			continue
		}
		durations[item.Id] = parseDuration(item.ContentDetails.Duration)
	}
	return durations, nil
}

// parseDuration converts an ISO 8601 duration such as PT1H2M3S to seconds.
// Unparseable parts count as zero.
func parseDuration(duration string) int {
	duration = strings.TrimPrefix(duration, "P")

	var seconds int
	if idx := strings.Index(duration, "D"); idx != -1 {
		d, _ := strconv.Atoi(duration[:idx])
		seconds += d * 86400
		duration = duration[idx+1:]
	}
	duration = strings.TrimPrefix(duration, "T")

	for _, unit := range []struct {
		suffix string
		scale  int
	}{{"H", 3600}, {"M", 60}, {"S", 1}} {
		if idx := strings.Index(duration, unit.suffix); idx != -1 {
			n, _ := strconv.Atoi(duration[:idx])
			seconds += n * unit.scale
			duration = duration[idx+1:]
		}
	}

	return seconds
}

// parseYouTubePlaylist accepts a bare playlist ID or any youtube.com URL carrying a list parameter.
func parseYouTubePlaylist(ref string) (string, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return "", fmt.Errorf("empty youtube playlist reference")
	}
	if !strings.Contains(ref, "/") {
		return ref, nil
	}

	u, err := url.Parse(ref)
	if err != nil {
		return "", fmt.Errorf("invalid youtube URL %q: %w", ref, err)
	}
	host := strings.TrimPrefix(u.Host, "www.")
	if host != "youtube.com" && host != "music.youtube.com" && host != "m.youtube.com" {
		return "", fmt.Errorf("not a youtube URL: %s", ref)
	}
	id := u.Query().Get("list")
	if id == "" {
		return "", fmt.Errorf("youtube URL has no playlist: %s", ref)
	}
	return id, nil
}
