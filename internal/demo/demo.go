// Package demo contains the scripted walkthroughs printed by the demo command.
package demo

import (
	"fmt"
	"io"

	"songbook/internal/playlist"
)

// Run walks through the decorator, the annotated playlist and both ways of
// adding songs, then releases everything and prints the remaining counts.
func Run(w io.Writer, lib *playlist.Library) error {
	special := playlist.NewFavorite(
		lib.NewSong("Blinding Lights", "The Weeknd", "After Hours", 200, "Synthwave"), true)
	if err := playlist.Display(w, special); err != nil {
		return err
	}

	vip := lib.NewPlaylist("Exclusive Hits",
		playlist.WithPremium(true),
		playlist.WithExclusive("VIP Concert Footage"),
	)

	rhapsody := lib.NewSong("Bohemian Rhapsody", "Queen", "A Night at the Opera", 354, "Rock")
	if err := vip.Add(playlist.NewFavorite(rhapsody, false)); err != nil {
		return fmt.Errorf("failed to add %s: %w", rhapsody.Title(), err)
	}
	if _, err := vip.AddNew("Hotel California", "Eagles", "Hotel California", 391, "Rock"); err != nil {
		return fmt.Errorf("failed to add Hotel California: %w", err)
	}

	if err := vip.Display(w); err != nil {
		return err
	}

	if err := lib.ReleaseSong(special); err != nil {
		return err
	}
	if err := lib.ReleasePlaylist(vip); err != nil {
		return err
	}

	return summary(w, lib)
}

// Scenario builds a two-song playlist, displays it and releases it.
func Scenario(w io.Writer, lib *playlist.Library) error {
	favorites := lib.NewPlaylist("My Favorite Songs")
	songs := []*playlist.Song{
		lib.NewSong("Shape of You", "Ed Sheeran", "Divide", 233, "Pop"),
		lib.NewSong("Blinding Lights", "The Weeknd", "After Hours", 200, "Synthwave"),
	}
	for _, s := range songs {
		if err := favorites.Add(s); err != nil {
			return fmt.Errorf("failed to add %s: %w", s.Title(), err)
		}
	}

	if err := favorites.Display(w); err != nil {
		return err
	}
	if err := lib.ReleasePlaylist(favorites); err != nil {
		return err
	}

	return summary(w, lib)
}

func summary(w io.Writer, lib *playlist.Library) error {
	_, err := fmt.Fprintf(w, "\nAfter cleanup:\n%s", lib.Ledger().Summary())
	return err
}
