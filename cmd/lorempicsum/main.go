package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/levizillow/lorempicsum/internal/config"
	"github.com/levizillow/lorempicsum/internal/gallery"
	"github.com/levizillow/lorempicsum/internal/picsum"
	"github.com/levizillow/lorempicsum/internal/tui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	if os.Getenv("LOREMPICSUM_DEBUG") != "" {
		f, err := tea.LogToFile("lorempicsum.log", "debug")
		if err != nil {
			log.Fatalf("open log file: %v", err)
		}
		defer f.Close()
	}

	client := &picsum.Client{
		BaseURL: cfg.API.BaseURL,
		HC:      &http.Client{Timeout: time.Duration(cfg.API.TimeoutSeconds) * time.Second},
	}
	fetcher := gallery.NewFetcher(client, cfg.Gallery.BatchSize)

	p := tea.NewProgram(tui.New(cfg, fetcher), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "lorempicsum: %v\n", err)
		os.Exit(1)
	}
}
