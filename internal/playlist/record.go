package playlist

// Record is the flat row shape used when songs are read from or written to CSV.
type Record struct {
	Title    string `csv:"title"`
	Artist   string `csv:"artist"`
	Album    string `csv:"album"`
	Duration int    `csv:"duration"`
	Genre    string `csv:"genre"`
	// Length is the m:ss form of Duration, written for readers of exported files.
	// It is ignored when songs are created from a record.
	Length string `csv:"length"`
}
