package tui

import "github.com/hsbacot/breeds/gallery"

// Message types for Bubble Tea state transitions

type searchCompleteMsg struct {
	result gallery.Result
}

type startSearchMsg struct {
	preset bool
}
