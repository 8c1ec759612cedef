package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type imageItem struct {
	url      string
	position int
}

func (i imageItem) Title() string       { return fmt.Sprintf("%2d. %s", i.position+1, i.url) }
func (i imageItem) Description() string { return "" }
func (i imageItem) FilterValue() string { return i.url }

type imageListModel struct {
	list list.Model
}

func newImageList() imageListModel {
	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = false
	delegate.SetSpacing(0)
	delegate.SetHeight(1)

	l := list.New(nil, delegate, 80, 14)
	l.Title = "Images"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	l.SetShowPagination(true)
	l.Styles.Title = lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")).
		Bold(true)

	return imageListModel{list: l}
}

// setImages replaces the rendered images, keeping the cursor in range
func (m *imageListModel) setImages(images []string) {
	items := make([]list.Item, len(images))
	for i, img := range images {
		items[i] = imageItem{url: img, position: i}
	}

	cursor := m.list.Index()
	m.list.SetItems(items)
	m.list.Title = fmt.Sprintf("Images (%d)", len(images))

	if cursor >= len(items) {
		cursor = len(items) - 1
	}
	if cursor >= 0 {
		m.list.Select(cursor)
	}
}

func (m *imageListModel) setSize(width, height int) {
	if height < 5 {
		height = 5
	}
	m.list.SetSize(width, height)
}

func (m imageListModel) index() int {
	return m.list.Index()
}

func (m imageListModel) count() int {
	return len(m.list.Items())
}

func (m imageListModel) Update(msg tea.Msg) (imageListModel, tea.Cmd) {
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m imageListModel) View() string {
	return m.list.View()
}
