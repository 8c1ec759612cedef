package ui

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/hsbacot/breeds/gallery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupLabel(t *testing.T) {
	assert.Equal(t, "Show only pug dogs (none)", GroupLabel(gallery.Group{Name: "pug"}))
	assert.Equal(t, "Show only pug dogs (1 image)", GroupLabel(gallery.Group{Name: "pug", Images: []string{"a"}}))
	assert.Equal(t, "Show only pug dogs (2 images)", GroupLabel(gallery.Group{Name: "pug", Images: []string{"a", "b"}}))
}

func TestSelectGroupRequiresGroups(t *testing.T) {
	_, err := SelectGroup(nil)
	require.Error(t, err)
}

func TestNewLoggerLevels(t *testing.T) {
	var buf bytes.Buffer

	quiet := NewLogger(&buf, false)
	assert.Equal(t, log.InfoLevel, quiet.GetLevel())
	quiet.Debug("hidden")
	assert.Empty(t, buf.String())

	verbose := NewLogger(&buf, true)
	assert.Equal(t, log.DebugLevel, verbose.GetLevel())
	verbose.Debug("shown", "breed", "pug")
	assert.Contains(t, buf.String(), "breed=pug")
}
