package playlist

import (
	"io"
	"strings"
)

const (
	untitled = "Untitled Playlist"
	divider  = "---------------------------"
)

// Annotations are the optional premium and exclusive-content markers of a playlist.
// A nil field means the annotation is absent.
type Annotations struct {
	Premium   *bool
	Exclusive *string
}

// Option sets an annotation on a new playlist.
type Option func(*Annotations)

// WithPremium marks the playlist with a premium status.
func WithPremium(premium bool) Option {
	return func(a *Annotations) {
		a.Premium = &premium
	}
}

// WithExclusive attaches exclusive content to the playlist.
func WithExclusive(content string) Option {
	return func(a *Annotations) {
		a.Exclusive = &content
	}
}

type slot struct {
	entry Entry
	owned bool
}

// Playlist is an ordered collection of entries. Entries added with Add are
// owned and released together with the playlist; entries added with Reference
// are only observed.
type Playlist struct {
	id          string
	name        string
	slots       []slot
	annotations Annotations
	library     *Library
	released    bool
}

func (p *Playlist) ID() string               { return p.id }
func (p *Playlist) Name() string             { return p.name }
func (p *Playlist) SetName(name string)      { p.name = name }
func (p *Playlist) Len() int                 { return len(p.slots) }
func (p *Playlist) Released() bool           { return p.released }
func (p *Playlist) Annotations() Annotations { return p.annotations }

// Entries returns the playlist's entries in insertion order.
func (p *Playlist) Entries() []Entry {
	entries := make([]Entry, len(p.slots))
	for i, s := range p.slots {
		entries[i] = s.entry
	}
	return entries
}

// Owned returns the number of entries the playlist owns.
func (p *Playlist) Owned() int {
	n := 0
	for _, s := range p.slots {
		if s.owned {
			n++
		}
	}
	return n
}

// Add appends e and takes exclusive ownership of it.
func (p *Playlist) Add(e Entry) error {
	if err := p.checkAppend(e); err != nil {
		return err
	}
	if song := songOf(e); song != nil {
		if song.library != p.library {
			return ErrForeignSong
		}
		if song.owner != nil {
			return ErrAlreadyOwned
		}
		song.owner = p
	}
	p.slots = append(p.slots, slot{entry: e, owned: true})
	return nil
}

// Reference appends e without taking ownership. Releasing the playlist leaves e alive.
func (p *Playlist) Reference(e Entry) error {
	if err := p.checkAppend(e); err != nil {
		return err
	}
	p.slots = append(p.slots, slot{entry: e})
	return nil
}

// AddNew creates a song from the given attributes through the playlist's
// library, wraps it as a non-favorite and appends it as owned.
func (p *Playlist) AddNew(title, artist, album string, duration int, genre string) (Entry, error) {
	if p.released {
		return nil, ErrReleased
	}
	if p.library == nil {
		return nil, ErrNoLibrary
	}
	song := p.library.NewSong(title, artist, album, duration, genre)
	entry := NewFavorite(song, false)
	if err := p.Add(entry); err != nil {
		return nil, err
	}
	return entry, nil
}

func (p *Playlist) checkAppend(e Entry) error {
	if isNil(e) {
		return ErrNilEntry
	}
	if p.released {
		return ErrReleased
	}
	if song := songOf(e); song != nil && song.released {
		return ErrReleased
	}
	return nil
}

// Records returns a flat record per entry, in order. Entries without an
// underlying song contribute only their title.
func (p *Playlist) Records() []Record {
	records := make([]Record, 0, len(p.slots))
	for _, s := range p.slots {
		if song := songOf(s.entry); song != nil {
			records = append(records, song.Record())
			continue
		}
		records = append(records, Record{Title: s.entry.Title()})
	}
	return records
}

// Render returns the playlist name, every entry followed by a divider, and any annotations.
func (p *Playlist) Render() string {
	var b strings.Builder
	b.WriteString("Playlist: ")
	b.WriteString(p.name)
	b.WriteString("\n")
	for _, s := range p.slots {
		b.WriteString(s.entry.Render())
		b.WriteString(divider)
		b.WriteString("\n")
	}
	if p.annotations.Premium != nil {
		b.WriteString("Premium Status: ")
		b.WriteString(yesNo(*p.annotations.Premium))
		b.WriteString("\n")
	}
	if p.annotations.Exclusive != nil {
		b.WriteString("Exclusive Content: ")
		b.WriteString(*p.annotations.Exclusive)
		b.WriteString("\n")
	}
	return b.String()
}

// Display writes the rendered playlist to w.
func (p *Playlist) Display(w io.Writer) error {
	_, err := io.WriteString(w, p.Render())
	return err
}
