package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/levizillow/lorempicsum/internal/config"
	"github.com/levizillow/lorempicsum/internal/gallery"
)

const appName = "Lorem Picsum"

// Model is the gallery screen state. It is copied through Update; all
// mutation happens on the copy a handler returns.
type Model struct {
	cfg     config.Config
	fetcher *gallery.Fetcher
	keys    *KeyRegistry
	cmds    *CommandRegistry

	width  int
	height int

	// committed filter and the list fetched under it
	filter gallery.Filter
	items  []gallery.Item
	cursor int
	scroll int

	// fetch lifecycle; generation guards against stale batch results
	loading    bool
	generation int

	status    string
	statusErr bool
	spin      spinner.Model

	sheet   filterSheet
	palette *paletteState
}

// batchDoneMsg carries one finished batch. generation identifies which
// launch it belongs to; results from superseded launches are dropped.
type batchDoneMsg struct {
	generation int
	items      []gallery.Item
	err        error
}

func New(cfg config.Config, fetcher *gallery.Fetcher) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(colorAccent)

	m := Model{
		cfg:     cfg,
		fetcher: fetcher,
		keys:    NewKeyRegistry(),
		spin:    sp,
		filter: gallery.Filter{
			Width:  cfg.Gallery.Width,
			Height: cfg.Gallery.Height,
			Blur:   gallery.ClampBlur(cfg.Gallery.Blur),
			Grey:   cfg.Gallery.Greyscale,
		},
	}
	m.cmds = NewCommandRegistry()

	// The initial batch is launched from Init, which cannot return a new
	// model, so the first generation is staged here.
	m.generation = 1
	m.loading = true
	return m
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(fetchCmd(m.fetcher, m.filter, m.generation), m.spin.Tick)
}

// startFetch launches a batch for the committed filter. Every launch bumps
// the generation so late results from an earlier launch cannot land.
func (m Model) startFetch() (Model, tea.Cmd) {
	m.generation++
	m.loading = true
	m.items = nil
	m.cursor = 0
	m.scroll = 0
	m.status = ""
	m.statusErr = false
	return m, tea.Batch(fetchCmd(m.fetcher, m.filter, m.generation), m.spin.Tick)
}

func fetchCmd(f *gallery.Fetcher, flt gallery.Filter, generation int) tea.Cmd {
	return func() tea.Msg {
		items, err := f.FetchBatch(context.Background(), flt)
		return batchDoneMsg{generation: generation, items: items, err: err}
	}
}

func (m *Model) setError(s string) {
	m.status = s
	m.statusErr = true
}

func (m *Model) setStatus(s string) {
	m.status = s
	m.statusErr = false
}
