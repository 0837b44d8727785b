package db

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/kofidarko/nnwombot/internal/lyrics"
)

const songColumns = "id, title, artist, language, lyrics, verified, added_by, added_at"

// Song is a catalog row. Artist and AddedBy are nullable; the *_norm search
// columns never leave the database.
type Song struct {
	ID       int64
	Title    string
	Artist   sql.NullString
	Language string
	Lyrics   string
	Verified bool
	AddedBy  sql.NullString
	AddedAt  time.Time
}

// ToLyrics converts the row into the value the formatting core consumes.
func (s Song) ToLyrics() lyrics.Song {
	artist := ""
	if s.Artist.Valid {
		artist = s.Artist.String
	}
	return lyrics.Song{
		Title:    s.Title,
		Artist:   artist,
		Language: s.Language,
		Lyrics:   s.Lyrics,
	}
}

// FormatSongName renders a song for lists and keyboards.
func FormatSongName(s Song) string {
	artist := lyrics.UnknownArtist
	if s.Artist.Valid {
		artist = s.Artist.String
	}
	return strings.TrimSpace(fmt.Sprintf("%s - %s", s.Title, artist))
}

// FindSongByID looks a song up by its id. The second return value reports
// whether it exists.
func FindSongByID(id int64) (Song, bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	row := Database.QueryRowContext(ctx,
		"SELECT "+songColumns+" FROM songs WHERE id = ?", id)

	song, err := scanSong(row)
	if err == sql.ErrNoRows {
		return Song{}, false, nil
	}
	if err != nil {
		return Song{}, false, fmt.Errorf("failed to fetch song %d: %w", id, err)
	}
	return song, true, nil
}

// SearchSongs matches the query against the normalized title and lyrics
// columns, so a plain-keyboard query finds songs spelled with ɛ, ɔ and ŋ.
// Verified songs sort first.
func SearchSongs(query string) ([]Song, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	pattern := "%" + lyrics.Normalize(strings.TrimSpace(query)) + "%"
	rows, err := Database.QueryContext(ctx,
		"SELECT "+songColumns+` FROM songs
		 WHERE title_norm LIKE ? OR lyrics_norm LIKE ?
		 ORDER BY verified DESC, title
		 LIMIT 50`,
		pattern, pattern)
	if err != nil {
		return nil, fmt.Errorf("search query failed: %w", err)
	}
	defer rows.Close()

	return collectSongs(rows)
}

// InsertSong stores a submission. Every insert lands unverified; an admin
// flips the flag later. Returns the new song id.
func InsertSong(title, artist, language, lyricsText, addedBy string) (int64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	artistVal := sql.NullString{String: artist, Valid: artist != ""}
	addedByVal := sql.NullString{String: addedBy, Valid: addedBy != ""}

	result, err := Database.ExecContext(ctx,
		`INSERT INTO songs (title, artist, language, lyrics, title_norm, lyrics_norm, verified, added_by, added_at)
		 VALUES (?, ?, ?, ?, ?, ?, 0, ?, ?)`,
		title, artistVal, language, lyricsText,
		lyrics.Normalize(title), lyrics.Normalize(lyricsText),
		addedByVal, time.Now())
	if err != nil {
		return 0, fmt.Errorf("failed to insert song: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read inserted song id: %w", err)
	}
	return id, nil
}

// ListUnverified returns submissions awaiting admin review, oldest first.
func ListUnverified() ([]Song, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	rows, err := Database.QueryContext(ctx,
		"SELECT "+songColumns+" FROM songs WHERE verified = 0 ORDER BY added_at LIMIT 25")
	if err != nil {
		return nil, fmt.Errorf("failed to list unverified songs: %w", err)
	}
	defer rows.Close()

	return collectSongs(rows)
}

// SetVerified marks a song as reviewed.
func SetVerified(id int64) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	result, err := Database.ExecContext(ctx, "UPDATE songs SET verified = 1 WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to verify song: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("no song found with id: %d", id)
	}
	return nil
}

// DeleteSong removes a rejected submission.
func DeleteSong(id int64) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := Database.ExecContext(ctx, "DELETE FROM songs WHERE id = ?", id); err != nil {
		return fmt.Errorf("failed to delete song: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSong(row rowScanner) (Song, error) {
	var song Song
	err := row.Scan(&song.ID, &song.Title, &song.Artist, &song.Language,
		&song.Lyrics, &song.Verified, &song.AddedBy, &song.AddedAt)
	return song, err
}

func collectSongs(rows *sql.Rows) ([]Song, error) {
	var songs []Song
	for rows.Next() {
		song, err := scanSong(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning song row: %w", err)
		}
		songs = append(songs, song)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error during rows iteration: %w", err)
	}
	return songs, nil
}
