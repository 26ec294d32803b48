package adapters

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"songbook/internal/playlist"
	"songbook/internal/utils"
)

// CSVAdapter reads playlists from CSV files with a title,artist,album,duration,genre header.
type CSVAdapter struct {
	BaseAdapter
}

// NewCSVAdapter creates a new CSVAdapter
func NewCSVAdapter() *CSVAdapter {
	return &CSVAdapter{BaseAdapter: NewBaseAdapter("CSV")}
}

// Authenticate has nothing to negotiate for local files.
func (a *CSVAdapter) Authenticate(ctx context.Context) error {
	a.SetAuthenticated(true)
	return nil
}

// GetPlaylist reads the file at ref. The playlist is named after the file.
func (a *CSVAdapter) GetPlaylist(ctx context.Context, ref string) (Listing, error) {
	if err := a.CheckAuth(); err != nil {
		return Listing{}, err
	}
	if err := ctx.Err(); err != nil {
		return Listing{}, err
	}

	records, err := utils.ReadCsvFile[playlist.Record](ref)
	if err != nil {
		return Listing{}, fmt.Errorf("error reading CSV file %s: %w", ref, err)
	}

	name := strings.TrimSuffix(filepath.Base(ref), filepath.Ext(ref))
	a.logger.WithField("records", len(records)).Debugf("read playlist %s", name)
	return Listing{Name: name, Records: records}, nil
}
