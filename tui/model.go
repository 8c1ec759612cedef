package tui

import (
	"context"
	"io"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/hsbacot/breeds/gallery"
)

type focus int

const (
	focusInput focus = iota
	focusImages
)

// maxFilterKeys is the number of groups reachable with the 1-9 keys
const maxFilterKeys = 9

// Options contains configuration for the Model
type Options struct {
	Context  context.Context // cancels in-flight searches; defaults to Background
	Query    string
	Searcher *gallery.Searcher
	Logger   *log.Logger
}

// Model is the Bubble Tea model for the breed gallery
type Model struct {
	// State
	gallery gallery.State
	focus   focus
	filter  string // active group filter, empty when unfiltered
	notice  string

	// UI Components
	input   textinput.Model
	spinner spinner.Model
	images  imageListModel
	width   int

	// Services
	ctx      context.Context
	searcher *gallery.Searcher
	logger   *log.Logger
}

// NewModel creates a new Bubble Tea model
func NewModel(opts Options) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	ti := textinput.New()
	ti.Placeholder = "Dog breed e.g. poodle AND corgi"
	ti.Prompt = "🔍 "
	ti.CharLimit = 120
	ti.Width = 50
	ti.SetValue(opts.Query)
	ti.Focus()

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	m := Model{
		ctx:      ctx,
		input:    ti,
		spinner:  s,
		images:   newImageList(),
		searcher: opts.Searcher,
		logger:   logger,
		width:    80,
	}
	m.gallery.SetQuery(opts.Query)
	return m
}

// State returns a copy of the gallery state
func (m Model) State() gallery.State {
	return m.gallery
}
