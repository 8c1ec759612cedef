package tui

import (
	"errors"
	"strconv"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/hsbacot/breeds/gallery"
)

// Init initializes the model
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink, m.spinner.Tick}
	if m.gallery.Query != "" {
		cmds = append(cmds, func() tea.Msg { return startSearchMsg{} })
	}
	return tea.Batch(cmds...)
}

// Update handles messages and state transitions
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.images.setSize(msg.Width, msg.Height-10)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "ctrl+o":
			return m.startSearch(true)
		case "tab", "shift+tab":
			return m.toggleFocus(), nil
		}

		if m.focus == focusImages {
			return m.updateImages(msg)
		}
		return m.updateInput(msg)

	case startSearchMsg:
		return m.startSearch(msg.preset)

	case searchCompleteMsg:
		if !m.gallery.Complete(msg.result) {
			m.logger.Debug("Dropping stale search result", "generation", msg.result.Generation)
			return m, nil
		}
		m.filter = ""
		m.images.setImages(m.gallery.Images)
		if !m.canFocusImages() && m.focus == focusImages {
			m = m.toggleFocus()
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		return m.startSearch(false)
	case "esc":
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != m.gallery.Query {
		m.gallery.SetQuery(m.input.Value())
	}
	return m, cmd
}

func (m Model) updateImages(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	switch key {
	case "x", "delete", "backspace", "enter":
		if err := m.gallery.Delete(m.images.index()); err != nil {
			m.logger.Debug("Nothing to delete", "error", err)
			return m, nil
		}
		m.images.setImages(m.gallery.Images)
		return m, nil
	case "a", "0":
		return m.applyFilter(gallery.AllGroups), nil
	case "esc":
		return m.toggleFocus(), nil
	case "q":
		return m, tea.Quit
	}

	if n, err := strconv.Atoi(key); err == nil && n >= 1 && n <= min(len(m.gallery.Groups), maxFilterKeys) {
		return m.applyFilter(m.gallery.Groups[n-1].Name), nil
	}

	var cmd tea.Cmd
	m.images, cmd = m.images.Update(msg)
	return m, cmd
}

func (m Model) startSearch(preset bool) (Model, tea.Cmd) {
	req, ok := m.gallery.Begin(preset)
	if !ok {
		return m, nil
	}
	m.notice = ""

	if preset {
		m.logger.Info("Fetching one image per breed", "breeds", len(gallery.PresetBreeds))
	} else {
		m.logger.Info("Fetching dogs", "breeds", req.Tokens)
	}

	return m, tea.Batch(m.spinner.Tick, m.search(req))
}

func (m Model) applyFilter(target string) Model {
	if len(m.gallery.Groups) == 0 {
		return m
	}

	if err := m.gallery.Filter(target); err != nil {
		if errors.Is(err, gallery.ErrGroupNotFound) {
			m.notice = err.Error()
		}
		m.logger.Warn("Filter failed", "target", target, "error", err)
		return m
	}

	m.filter = target
	m.images.setImages(m.gallery.Images)
	return m
}

// canFocusImages reports whether the image pane has anything to act on. The
// filter keys live there, so it stays reachable while groups exist.
func (m Model) canFocusImages() bool {
	return len(m.gallery.Images) > 0 || len(m.gallery.Groups) > 0
}

func (m Model) toggleFocus() Model {
	if m.focus == focusInput && m.canFocusImages() {
		m.focus = focusImages
		m.input.Blur()
		return m
	}
	m.focus = focusInput
	m.input.Focus()
	return m
}

// Command functions (run async)

func (m Model) search(req gallery.Request) tea.Cmd {
	return func() tea.Msg {
		return searchCompleteMsg{
			result: m.searcher.Search(m.ctx, req),
		}
	}
}
