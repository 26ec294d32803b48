package porter

import (
	"context"
	"fmt"
	"reflect"
	"strings"

	log "github.com/sirupsen/logrus"

	"songbook/internal/adapters"
	"songbook/internal/config"
	"songbook/internal/logging"
	"songbook/internal/playlist"
	"songbook/internal/utils"
)

// Porter moves playlists between a source adapter, a library and CSV files.
type Porter struct {
	adapter adapters.Adapter
	library *playlist.Library
	logger  *log.Entry
}

// NewPorter creates a new Porter reading from adapter into library
func NewPorter(adapter adapters.Adapter, library *playlist.Library) *Porter {
	return &Porter{
		adapter: adapter,
		library: library,
		logger:  logging.Module("porter"),
	}
}

// NewPorterWithPlatform creates a new Porter for the named platform
func NewPorterWithPlatform(platform string, cfg *config.ConfigStruct, library *playlist.Library) (*Porter, error) {
	adapter, err := adapters.NewAdapter(platform, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create adapter for platform %s: %w", platform, err)
	}
	return NewPorter(adapter, library), nil
}

// Authenticate delegates authentication to the adapter
func (s *Porter) Authenticate(ctx context.Context) error {
	return s.adapter.Authenticate(ctx)
}

// IsAuthenticated checks if the porter's adapter is authenticated
func (s *Porter) IsAuthenticated() bool {
	return s.adapter.IsAuthenticated()
}

// Load reads ref from the source and builds a playlist in the library that
// owns one new song per record. An empty name keeps the source's name.
func (s *Porter) Load(ctx context.Context, ref, name string, opts ...playlist.Option) (*playlist.Playlist, error) {
	listing, err := s.adapter.GetPlaylist(ctx, ref)
	if err != nil {
		return nil, fmt.Errorf("failed to get playlist %s from %s: %w", ref, s.adapter.PlatformName(), err)
	}

	if name == "" {
		name = listing.Name
	}
	p := s.library.NewPlaylist(name, opts...)
	for _, record := range listing.Records {
		if err := p.Add(s.library.SongFromRecord(record)); err != nil {
			_ = s.library.ReleasePlaylist(p)
			return nil, fmt.Errorf("failed to add %q: %w", record.Title, err)
		}
	}

	s.logger.WithFields(log.Fields{
		"source": s.adapter.PlatformName(),
		"songs":  p.Len(),
	}).Debugf("loaded playlist %s", p.Name())
	return p, nil
}

// ExportPlaylistToCSV writes every entry of p to a CSV file, adding the .csv
// extension when it is missing. It returns the path written.
func ExportPlaylistToCSV(p *playlist.Playlist, filepath string) (string, error) {
	if p == nil {
		return "", playlist.ErrNilEntry
	}

	// Ensure filepath has .csv extension
	if !strings.HasSuffix(filepath, ".csv") {
		filepath += ".csv"
	}

	headers := utils.StructToCsvHeader(reflect.TypeOf(playlist.Record{}))
	if err := utils.WriteToCsvFile(filepath, headers, p.Records()); err != nil {
		return "", fmt.Errorf("error writing CSV file: %w", err)
	}
	return filepath, nil
}
