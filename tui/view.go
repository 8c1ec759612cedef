package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/hsbacot/breeds/gallery"
)

var (
	titleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	spinnerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	helpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))

	buttonStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240"))
	activeButtonStyle = buttonStyle.
				BorderForeground(lipgloss.Color("205")).
				Foreground(lipgloss.Color("205"))
)

// View renders the UI based on the current state
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("🐶 Dog Breeds"))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.helpLine()))
	b.WriteString("\n")

	if len(m.gallery.Groups) > 0 {
		b.WriteString("\n")
		b.WriteString(m.filterBar())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	switch {
	case m.gallery.Loading:
		b.WriteString(fmt.Sprintf("%s Loading...\n", spinnerStyle.Render(m.spinner.View())))
	case m.gallery.ShowEmpty():
		b.WriteString(infoStyle.Render(fmt.Sprintf("We found no results for %q :(", m.gallery.Query)))
		b.WriteString("\n")
	case m.images.count() > 0:
		b.WriteString(m.images.View())
		b.WriteString("\n")
	}

	if m.notice != "" {
		b.WriteString(errorStyle.Render("✗ " + m.notice))
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) helpLine() string {
	if m.focus == focusImages {
		help := "↑/↓ move • x delete • tab back to search • q quit"
		if len(m.gallery.Groups) > 0 {
			help = "0 all • 1-" + fmt.Sprint(min(len(m.gallery.Groups), maxFilterKeys)) + " one breed • " + help
		}
		return help
	}
	return "enter fetch dogs • ctrl+o fetch 1 image per dog • tab images • esc quit"
}

// filterBar renders one button per group plus "show all"
func (m Model) filterBar() string {
	buttons := make([]string, 0, len(m.gallery.Groups)+1)

	style := buttonStyle
	if m.filter == gallery.AllGroups {
		style = activeButtonStyle
	}
	buttons = append(buttons, style.Render("0 Show all dogs"))

	groups := m.gallery.Groups
	if len(groups) > maxFilterKeys {
		groups = groups[:maxFilterKeys]
	}
	for i, g := range groups {
		style := buttonStyle
		if m.filter == g.Name {
			style = activeButtonStyle
		}
		buttons = append(buttons, style.Render(fmt.Sprintf("%d Show only %s dogs", i+1, g.Name)))
	}

	if hidden := len(m.gallery.Groups) - len(groups); hidden > 0 {
		buttons = append(buttons, buttonStyle.Render(fmt.Sprintf("+%d more", hidden)))
	}

	return lipgloss.NewStyle().MaxWidth(m.width).Render(
		lipgloss.JoinHorizontal(lipgloss.Top, buttons...),
	)
}
