package playlist

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestPlaylist_InsertionOrder(t *testing.T) {
	for _, n := range []int{0, 1, 2, 7, 25} {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			lib, _ := newTestLibrary(t)
			p := lib.NewPlaylist("ordered")
			for i := 0; i < n; i++ {
				s := lib.NewSong(fmt.Sprintf("song-%02d", i), "artist", "album", i, "genre")
				if err := p.Add(s); err != nil {
					t.Fatalf("Add() error = %v", err)
				}
			}

			if p.Len() != n {
				t.Fatalf("Len() = %d; want %d", p.Len(), n)
			}
			out := p.Render()
			if got := strings.Count(out, divider+"\n"); got != n {
				t.Errorf("divider count = %d; want %d", got, n)
			}
			last := -1
			for i := 0; i < n; i++ {
				idx := strings.Index(out, fmt.Sprintf("Title: song-%02d\n", i))
				if idx <= last {
					t.Fatalf("song-%02d rendered out of order", i)
				}
				last = idx
			}
		})
	}
}

func TestPlaylist_FavoriteSongsScenario(t *testing.T) {
	lib, _ := newTestLibrary(t)
	p := lib.NewPlaylist("My Favorite Songs")
	_ = p.Add(lib.NewSong("Shape of You", "Ed Sheeran", "Divide", 233, "Pop"))
	_ = p.Add(lib.NewSong("Blinding Lights", "The Weeknd", "After Hours", 200, "Synthwave"))

	want := "Playlist: My Favorite Songs\n" +
		"Title: Shape of You\nArtist: Ed Sheeran\nAlbum: Divide\nDuration: 233 seconds\nGenre: Pop\n" +
		"---------------------------\n" +
		"Title: Blinding Lights\nArtist: The Weeknd\nAlbum: After Hours\nDuration: 200 seconds\nGenre: Synthwave\n" +
		"---------------------------\n"

	var buf bytes.Buffer
	if err := p.Display(&buf); err != nil {
		t.Fatalf("Display() error = %v", err)
	}
	if buf.String() != want {
		t.Errorf("Display() =\n%s\nwant\n%s", buf.String(), want)
	}
}

func TestPlaylist_Annotations(t *testing.T) {
	tests := []struct {
		name string
		opts []Option
		tail string
	}{
		{"plain", nil, "Playlist: Exclusive Hits\n"},
		{"premium", []Option{WithPremium(true)}, "Premium Status: Yes\n"},
		{"not_premium", []Option{WithPremium(false)}, "Premium Status: No\n"},
		{"vip", []Option{WithPremium(true), WithExclusive("VIP Concert Footage")}, "Premium Status: Yes\nExclusive Content: VIP Concert Footage\n"},
		{"exclusive_only", []Option{WithExclusive("Backstage")}, "---------------------------\nExclusive Content: Backstage\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lib, _ := newTestLibrary(t)
			p := lib.NewPlaylist("Exclusive Hits", tt.opts...)
			if tt.opts != nil {
				_ = p.Add(lib.DefaultSong())
			}
			if got := p.Render(); !strings.HasSuffix(got, tt.tail) {
				t.Errorf("Render() = %q; want suffix %q", got, tt.tail)
			}
		})
	}
}

func TestPlaylist_AddErrors(t *testing.T) {
	lib, _ := newTestLibrary(t)
	p := lib.NewPlaylist("p")
	q := lib.NewPlaylist("q")
	s := lib.DefaultSong()

	var nilSong *Song
	if err := p.Add(nilSong); !errors.Is(err, ErrNilEntry) {
		t.Errorf("Add(nil *Song) error = %v; want ErrNilEntry", err)
	}
	if err := p.Add(nil); !errors.Is(err, ErrNilEntry) {
		t.Errorf("Add(nil) error = %v; want ErrNilEntry", err)
	}
	if err := p.Reference(NewFavorite(nil, true)); !errors.Is(err, ErrNilEntry) {
		t.Errorf("Reference(empty favorite) error = %v; want ErrNilEntry", err)
	}
	if err := p.Add(s); err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if err := q.Add(s); !errors.Is(err, ErrAlreadyOwned) {
		t.Errorf("Add() to second playlist error = %v; want ErrAlreadyOwned", err)
	}
	if err := p.Add(NewFavorite(s, true)); !errors.Is(err, ErrAlreadyOwned) {
		t.Errorf("Add() of decorated owned song error = %v; want ErrAlreadyOwned", err)
	}
	if err := q.Reference(s); err != nil {
		t.Errorf("Reference() of owned song error = %v", err)
	}

	released := lib.DefaultSong()
	_ = lib.ReleaseSong(released)
	if err := p.Add(released); !errors.Is(err, ErrReleased) {
		t.Errorf("Add(released) error = %v; want ErrReleased", err)
	}
	if err := p.Reference(released); !errors.Is(err, ErrReleased) {
		t.Errorf("Reference(released) error = %v; want ErrReleased", err)
	}

	_ = lib.ReleasePlaylist(q)
	if err := q.Add(lib.DefaultSong()); !errors.Is(err, ErrReleased) {
		t.Errorf("Add() on released playlist error = %v; want ErrReleased", err)
	}
	if _, err := q.AddNew("t", "a", "al", 1, "g"); !errors.Is(err, ErrReleased) {
		t.Errorf("AddNew() on released playlist error = %v; want ErrReleased", err)
	}
}

func TestPlaylist_AddNew(t *testing.T) {
	lib, _ := newTestLibrary(t)
	p := lib.NewPlaylist("p")

	e, err := p.AddNew("Hotel California", "Eagles", "Hotel California", 391, "Rock")
	if err != nil {
		t.Fatalf("AddNew() error = %v", err)
	}
	fav, ok := e.(*Favorite)
	if !ok {
		t.Fatalf("AddNew() returned %T; want *Favorite", e)
	}
	if fav.IsFavorite() {
		t.Error("AddNew() entry should not be a favorite")
	}
	if p.Owned() != 1 || lib.Ledger().Songs != 1 {
		t.Errorf("Owned() = %d, Songs = %d; want 1, 1", p.Owned(), lib.Ledger().Songs)
	}
	if !strings.HasSuffix(p.Render(), "Favorite: No\n"+divider+"\n") {
		t.Errorf("Render() = %q", p.Render())
	}
}

func TestPlaylist_NameAndRecords(t *testing.T) {
	lib, _ := newTestLibrary(t)
	p := lib.DefaultPlaylist()
	if p.Name() != "Untitled Playlist" {
		t.Errorf("Name() = %q; want Untitled Playlist", p.Name())
	}
	p.SetName("Road Trip")
	if p.Name() != "Road Trip" {
		t.Errorf("Name() = %q; want Road Trip", p.Name())
	}

	_ = p.Add(NewFavorite(lib.NewSong("Africa", "Toto", "Toto IV", 295, "Rock"), true))
	_ = p.Reference(titleOnly("Interlude"))

	records := p.Records()
	want := []Record{
		{Title: "Africa", Artist: "Toto", Album: "Toto IV", Duration: 295, Genre: "Rock", Length: "4:55"},
		{Title: "Interlude"},
	}
	if len(records) != len(want) {
		t.Fatalf("Records() len = %d; want %d", len(records), len(want))
	}
	for i := range want {
		if records[i] != want[i] {
			t.Errorf("Records()[%d] = %+v; want %+v", i, records[i], want[i])
		}
	}
}

type titleOnly string

func (t titleOnly) Title() string  { return string(t) }
func (t titleOnly) Render() string { return "Title: " + string(t) + "\n" }

func TestPlaylist_ZeroValue(t *testing.T) {
	var p Playlist
	if _, err := p.AddNew("Hotel California", "Eagles", "Hotel California", 391, "Rock"); !errors.Is(err, ErrNoLibrary) {
		t.Errorf("AddNew() on zero playlist error = %v; want ErrNoLibrary", err)
	}

	lib, _ := newTestLibrary(t)
	if err := p.Add(lib.DefaultSong()); !errors.Is(err, ErrForeignSong) {
		t.Errorf("Add() on zero playlist error = %v; want ErrForeignSong", err)
	}
	if p.Len() != 0 {
		t.Errorf("Len() = %d; want 0", p.Len())
	}
}

type pointerEntry struct{ title string }

func (e *pointerEntry) Title() string  { return e.title }
func (e *pointerEntry) Render() string { return "Title: " + e.title + "\n" }

func TestPlaylist_TypedNilEntries(t *testing.T) {
	lib, _ := newTestLibrary(t)
	p := lib.NewPlaylist("p")
	var custom *pointerEntry

	tests := []struct {
		name  string
		entry Entry
	}{
		{"custom", custom},
		{"favorite_of_custom", NewFavorite(custom, true)},
		{"nested_favorite", NewFavorite(NewFavorite(custom, false), true)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := p.Reference(tt.entry); !errors.Is(err, ErrNilEntry) {
				t.Errorf("Reference() error = %v; want ErrNilEntry", err)
			}
			if err := p.Add(tt.entry); !errors.Is(err, ErrNilEntry) {
				t.Errorf("Add() error = %v; want ErrNilEntry", err)
			}
			var buf bytes.Buffer
			if err := Display(&buf, tt.entry); !errors.Is(err, ErrNilEntry) {
				t.Errorf("Display() error = %v; want ErrNilEntry", err)
			}
		})
	}
	if err := p.Reference(&pointerEntry{title: "Interlude"}); err != nil {
		t.Errorf("Reference() of a live custom entry error = %v", err)
	}
	if p.Len() != 1 {
		t.Errorf("Len() = %d; want 1", p.Len())
	}
}
