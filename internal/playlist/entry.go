package playlist

import (
	"io"
	"reflect"
	"strings"
)

// Entry is anything a playlist can hold and display: it exposes a title and
// renders itself as text.
type Entry interface {
	Title() string
	Render() string
}

// Favorite decorates an Entry with a favorite flag. The wrapped entry is never modified.
type Favorite struct {
	Entry
	favorite bool
}

// NewFavorite wraps e with the given favorite flag.
func NewFavorite(e Entry, favorite bool) *Favorite {
	return &Favorite{Entry: e, favorite: favorite}
}

// IsFavorite reports the flag.
func (f *Favorite) IsFavorite() bool { return f.favorite }

// Unwrap returns the decorated entry.
func (f *Favorite) Unwrap() Entry { return f.Entry }

// Render returns the wrapped entry's output followed by the favorite line.
func (f *Favorite) Render() string {
	var b strings.Builder
	b.WriteString(f.Entry.Render())
	b.WriteString("Favorite: ")
	b.WriteString(yesNo(f.favorite))
	b.WriteString("\n")
	return b.String()
}

// Display writes the rendered entry to w.
func Display(w io.Writer, e Entry) error {
	if isNil(e) {
		return ErrNilEntry
	}
	_, err := io.WriteString(w, e.Render())
	return err
}

// songOf walks decorators down to the underlying Song, if there is one.
func songOf(e Entry) *Song {
	for e != nil {
		switch v := e.(type) {
		case *Song:
			return v
		case interface{ Unwrap() Entry }:
			e = v.Unwrap()
		default:
			return nil
		}
	}
	return nil
}

func isNil(e Entry) bool {
	switch v := e.(type) {
	case nil:
		return true
	case *Song:
		return v == nil
	case *Favorite:
		return v == nil || isNil(v.Entry)
	}
	rv := reflect.ValueOf(e)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
