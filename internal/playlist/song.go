package playlist

import (
	"fmt"
	"strings"
)

const unknown = "Unknown"

// Song represents a single music track. Songs are created through a Library so
// that the live-song count stays accurate.
type Song struct {
	id       string
	title    string
	artist   string
	album    string
	duration int // seconds
	genre    string

	library  *Library
	owner    *Playlist
	released bool
}

func (s *Song) ID() string     { return s.id }
func (s *Song) Title() string  { return s.title }
func (s *Song) Artist() string { return s.artist }
func (s *Song) Album() string  { return s.album }
func (s *Song) Genre() string  { return s.genre }

// Duration returns the song length in seconds.
func (s *Song) Duration() int { return s.duration }

func (s *Song) SetTitle(title string)    { s.title = title }
func (s *Song) SetArtist(artist string)  { s.artist = artist }
func (s *Song) SetAlbum(album string)    { s.album = album }
func (s *Song) SetDuration(duration int) { s.duration = duration }
func (s *Song) SetGenre(genre string)    { s.genre = genre }

// Released reports whether the song has been released by its library or owner.
func (s *Song) Released() bool { return s.released }

// Length returns the duration formatted as m:ss.
func (s *Song) Length() string {
	d := s.duration
	sign := ""
	if d < 0 {
		sign = "-"
		d = -d
	}
	return fmt.Sprintf("%s%d:%02d", sign, d/60, d%60)
}

// Render returns the song's attributes, one per line.
func (s *Song) Render() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Title: %s\n", s.title)
	fmt.Fprintf(&b, "Artist: %s\n", s.artist)
	fmt.Fprintf(&b, "Album: %s\n", s.album)
	fmt.Fprintf(&b, "Duration: %d seconds\n", s.duration)
	fmt.Fprintf(&b, "Genre: %s\n", s.genre)
	return b.String()
}

// Record returns the flat CSV representation of the song.
func (s *Song) Record() Record {
	return Record{
		Title:    s.title,
		Artist:   s.artist,
		Album:    s.album,
		Duration: s.duration,
		Genre:    s.genre,
		Length:   s.Length(),
	}
}
