package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/kofidarko/nnwombot/internal/db"
	"github.com/kofidarko/nnwombot/internal/lyrics"
)

func main() {
	var (
		songID     int64
		inputFile  string
		title      string
		artist     string
		language   string
		mode       string
		slides     string
		outputFile string
	)

	flag.Int64Var(&songID, "id", 0, "Song id to export from the catalog")
	flag.StringVar(&inputFile, "file", "", "Plain-text lyrics file to export instead of a catalog song")
	flag.StringVar(&title, "title", "", "Song title (required with -file)")
	flag.StringVar(&artist, "artist", "", "Artist (optional)")
	flag.StringVar(&language, "language", "Twi", "Language tag")
	flag.StringVar(&mode, "mode", "openlyrics", "Output mode: openlyrics or projection")
	flag.StringVar(&slides, "slides", "full", "Slide format for projection mode: two, four or full")
	flag.StringVar(&outputFile, "output", "", "Output file name (defaults to song.xml / song.txt)")
	flag.Parse()

	song, err := loadSong(songID, inputFile, title, artist, language)
	if err != nil {
		log.Fatalf("Error loading song: %v", err)
	}

	var payload, defaultName string
	switch mode {
	case "openlyrics":
		payload = lyrics.GenerateOpenLyricsXML(song)
		defaultName = "song.xml"
	case "projection":
		payload = lyrics.FormatForProjection(song, slideFormat(slides))
		defaultName = "song.txt"
	default:
		log.Fatalf("Unknown mode: %s (want openlyrics or projection)", mode)
	}

	if outputFile == "" {
		outputFile = defaultName
	}

	if err := os.WriteFile(outputFile, []byte(payload), 0644); err != nil {
		log.Fatalf("Error saving file: %v", err)
	}

	fmt.Printf("Exported %q (%s) to %s\n", song.Title, mode, outputFile)
}

func loadSong(songID int64, inputFile, title, artist, language string) (lyrics.Song, error) {
	if songID != 0 {
		if err := db.Init(); err != nil {
			return lyrics.Song{}, err
		}
		defer db.Close()

		song, found, err := db.FindSongByID(songID)
		if err != nil {
			return lyrics.Song{}, err
		}
		if !found {
			return lyrics.Song{}, fmt.Errorf("no song with id %d", songID)
		}
		return song.ToLyrics(), nil
	}

	if inputFile == "" {
		flag.Usage()
		return lyrics.Song{}, fmt.Errorf("either -id or -file is required")
	}
	if title == "" {
		return lyrics.Song{}, fmt.Errorf("-title is required with -file")
	}

	text, err := os.ReadFile(inputFile)
	if err != nil {
		return lyrics.Song{}, err
	}

	return lyrics.Song{
		Title:    title,
		Artist:   artist,
		Language: language,
		Lyrics:   string(text),
	}, nil
}

func slideFormat(s string) lyrics.SlideFormat {
	switch s {
	case "two":
		return lyrics.FormatTwoLines
	case "four":
		return lyrics.FormatFourLines
	default:
		return lyrics.FormatFullVerse
	}
}
