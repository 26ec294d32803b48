package playlist

import "errors"

var (
	// ErrNilEntry is returned when a nil song or entry is passed where a value is required.
	ErrNilEntry = errors.New("playlist: nil entry")
	// ErrReleased is returned when a released song or playlist is used again.
	ErrReleased = errors.New("playlist: already released")
	// ErrAlreadyOwned is returned when a song that a playlist owns is added as owned a second time.
	ErrAlreadyOwned = errors.New("playlist: song already owned by a playlist")
	// ErrOwned is returned when releasing a song directly while a playlist still owns it.
	ErrOwned = errors.New("playlist: song is owned by a playlist")
	// ErrForeignPlaylist is returned when a playlist is released through a library that did not create it.
	ErrForeignPlaylist = errors.New("playlist: playlist belongs to another library")
	// ErrForeignSong is returned when a song is released or owned through a library that did not create it.
	ErrForeignSong = errors.New("playlist: song belongs to another library")
	// ErrNoLibrary is returned when a playlist that was not created by a library is asked to create songs.
	ErrNoLibrary = errors.New("playlist: playlist has no library")
)
