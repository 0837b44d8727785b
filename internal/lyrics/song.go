package lyrics

// UnknownArtist is displayed and serialized wherever a song has no recorded
// artist.
const UnknownArtist = "Unknown"

// Song is the read-only value the formatting functions operate on. Storage
// owns the canonical record; callers convert their rows into this shape.
type Song struct {
	Title    string
	Artist   string // empty means unknown
	Language string
	Lyrics   string
}

// ArtistOrUnknown returns the artist, or the placeholder when none is set.
func (s Song) ArtistOrUnknown() string {
	if s.Artist == "" {
		return UnknownArtist
	}
	return s.Artist
}
