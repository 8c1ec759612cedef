package ui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/hsbacot/breeds/gallery"
)

// SelectGroup presents an interactive menu for narrowing a multi-breed
// result to one breed. It returns gallery.AllGroups for "show all".
func SelectGroup(groups []gallery.Group) (string, error) {
	if len(groups) == 0 {
		return "", errors.New("no groups to select from")
	}

	selected := gallery.AllGroups
	options := make([]huh.Option[string], 0, len(groups)+1)
	options = append(options, huh.NewOption("Show all dogs", gallery.AllGroups))
	for _, g := range groups {
		options = append(options, huh.NewOption(GroupLabel(g), g.Name))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Multiple breeds found - choose which to show:").
				Options(options...).
				Value(&selected),
		),
	)

	if err := form.Run(); err != nil {
		return "", err
	}

	return selected, nil
}

// PromptQuery asks for a breed query when none was given on the command line
func PromptQuery() (string, error) {
	var query string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Dog breed").
				Placeholder("poodle AND corgi").
				Value(&query).
				Validate(func(s string) error {
					if len(gallery.ParseQuery(s)) == 0 {
						return errors.New("enter at least one breed")
					}
					return nil
				}),
		),
	)

	if err := form.Run(); err != nil {
		return "", err
	}

	return strings.TrimSpace(query), nil
}

// GroupLabel describes a group for menus and headings
func GroupLabel(g gallery.Group) string {
	switch len(g.Images) {
	case 0:
		return fmt.Sprintf("Show only %s dogs (none)", g.Name)
	case 1:
		return fmt.Sprintf("Show only %s dogs (1 image)", g.Name)
	default:
		return fmt.Sprintf("Show only %s dogs (%d images)", g.Name, len(g.Images))
	}
}
