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
		selector   string
		outputFile string
		save       bool
		title      string
		artist     string
		language   string
	)

	flag.StringVar(&selector, "selector", "", "CSS selector of the lyrics body (default: WordPress entry content)")
	flag.StringVar(&outputFile, "output", "", "Write cleaned lyrics to this file instead of stdout")
	flag.BoolVar(&save, "save", false, "Insert the imported song into the catalog (unverified)")
	flag.StringVar(&title, "title", "", "Song title (defaults to the page heading)")
	flag.StringVar(&artist, "artist", "", "Artist (optional)")
	flag.StringVar(&language, "language", "Twi", "Language tag")
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] <URL>\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		os.Exit(1)
	}

	url := args[0]

	service := lyrics.NewImportService(selector)
	result, err := service.ImportLyrics(url)
	if err != nil {
		log.Fatalf("Error importing lyrics: %v", err)
	}

	if title == "" {
		title = result.Title
	}
	if title == "" {
		log.Fatal("No title found on the page; pass one with -title")
	}

	fmt.Printf("Imported %q (%d chars) from %s\n", title, len(result.Text), url)

	if save {
		if err := db.Init(); err != nil {
			log.Fatalf("Error opening catalog: %v", err)
		}
		defer db.Close()

		id, err := db.InsertSong(title, artist, language, result.Text, "lyrics-import")
		if err != nil {
			log.Fatalf("Error saving song: %v", err)
		}
		fmt.Printf("Saved to the catalog as song #%d (unverified)\n", id)
		return
	}

	if outputFile != "" {
		if err := os.WriteFile(outputFile, []byte(result.Text), 0644); err != nil {
			log.Fatalf("Error saving file: %v", err)
		}
		fmt.Printf("Lyrics saved to: %s\n", outputFile)
		return
	}

	fmt.Println()
	fmt.Println(result.Text)
}
