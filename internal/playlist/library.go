package playlist

import (
	"fmt"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// Ledger holds the live song and playlist counts of a Library.
type Ledger struct {
	Songs     int
	Playlists int
}

// Summary renders the counts the way the cleanup report prints them.
func (l Ledger) Summary() string {
	return fmt.Sprintf("Total number of songs created: %d\nTotal Playlists Remaining: %d\n", l.Songs, l.Playlists)
}

// Library creates and releases songs and playlists and keeps their live counts.
// A Library is not safe for concurrent use.
type Library struct {
	ledger Ledger
	logger *log.Entry
}

// NewLibrary creates an empty library. A nil logger falls back to the standard logrus logger.
func NewLibrary(logger *log.Entry) *Library {
	if logger == nil {
		logger = log.NewEntry(log.StandardLogger())
	}
	return &Library{
		logger: logger.WithFields(log.Fields{
			"module": "library",
		}),
	}
}

// Ledger returns a snapshot of the live counts.
func (l *Library) Ledger() Ledger {
	return l.ledger
}

// DefaultSong creates a song whose attributes are all placeholders.
func (l *Library) DefaultSong() *Song {
	s := l.newSong(unknown, unknown, unknown, 0, unknown)
	l.event("song.created", s.title).Info("default constructor: creating a song with default values")
	return s
}

// NewSong creates a song with the given attributes. Values are accepted as-is.
func (l *Library) NewSong(title, artist, album string, duration int, genre string) *Song {
	s := l.newSong(title, artist, album, duration, genre)
	l.event("song.created", s.title).Info("parameterized constructor: creating a song")
	return s
}

// SongFromRecord creates a song from a flat record.
func (l *Library) SongFromRecord(r Record) *Song {
	return l.NewSong(r.Title, r.Artist, r.Album, r.Duration, r.Genre)
}

// CopySong creates an independent song carrying the same attributes as src.
func (l *Library) CopySong(src *Song) (*Song, error) {
	if src == nil {
		return nil, ErrNilEntry
	}
	if src.released {
		return nil, ErrReleased
	}
	s := l.newSong(src.title, src.artist, src.album, src.duration, src.genre)
	l.event("song.copied", s.title).Info("copy constructor: creating a copy of an existing song")
	return s, nil
}

// ReleaseSong releases a song that no playlist owns. Decorated entries are
// unwrapped to their underlying song.
func (l *Library) ReleaseSong(e Entry) error {
	if isNil(e) {
		return ErrNilEntry
	}
	s := songOf(e)
	if s == nil {
		return ErrNilEntry
	}
	if s.library != l {
		return ErrForeignSong
	}
	if s.released {
		return ErrReleased
	}
	if s.owner != nil {
		return ErrOwned
	}
	l.releaseSong(s)
	return nil
}

// NewPlaylist creates a named playlist with optional annotations.
func (l *Library) NewPlaylist(name string, opts ...Option) *Playlist {
	p := l.newPlaylist(name, opts)
	l.event("playlist.created", name).Infof("parameterized constructor: creating a playlist named %s", name)
	return p
}

// DefaultPlaylist creates an untitled playlist.
func (l *Library) DefaultPlaylist(opts ...Option) *Playlist {
	p := l.newPlaylist(untitled, opts)
	l.event("playlist.created", p.name).Info("default constructor: creating an untitled playlist")
	return p
}

// ReleasePlaylist releases p together with every song it owns. Referenced
// songs are left alive.
func (l *Library) ReleasePlaylist(p *Playlist) error {
	if p == nil {
		return ErrNilEntry
	}
	if p.released {
		return ErrReleased
	}
	if p.library != l {
		return ErrForeignPlaylist
	}
	for _, s := range p.slots {
		if !s.owned {
			continue
		}
		if song := songOf(s.entry); song != nil && !song.released {
			song.owner = nil
			l.releaseSong(song)
		}
	}
	p.released = true
	l.ledger.Playlists--
	l.event("playlist.released", p.name).Infof("destructor: deleting playlist %q", p.name)
	return nil
}

func (l *Library) newSong(title, artist, album string, duration int, genre string) *Song {
	l.ledger.Songs++
	return &Song{
		id:       uuid.NewString(),
		library:  l,
		title:    title,
		artist:   artist,
		album:    album,
		duration: duration,
		genre:    genre,
	}
}

func (l *Library) releaseSong(s *Song) {
	s.released = true
	l.ledger.Songs--
	l.event("song.released", s.title).Info("destructor: deleting a song")
}

func (l *Library) newPlaylist(name string, opts []Option) *Playlist {
	p := &Playlist{
		id:      uuid.NewString(),
		name:    name,
		library: l,
	}
	for _, opt := range opts {
		opt(&p.annotations)
	}
	l.ledger.Playlists++
	return p
}

func (l *Library) event(event, name string) *log.Entry {
	return l.logger.WithFields(log.Fields{
		"event": event,
		"name":  name,
	})
}
