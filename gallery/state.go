package gallery

import (
	"fmt"
	"strings"
)

// State holds everything the gallery displays. Transitions are methods so
// they can be tested without a terminal.
type State struct {
	Query   string
	Images  []string
	Groups  []Group
	Loading bool
	Started bool

	generation uint64
}

// SetQuery updates the query text. Editing hides the empty-result message
// until the next search.
func (s *State) SetQuery(text string) {
	s.Query = text
	s.Started = false
}

// Begin starts a search. It returns false and leaves the state untouched
// for a typed search without usable breeds.
func (s *State) Begin(preset bool) (Request, bool) {
	var tokens []string
	if !preset {
		if strings.TrimSpace(s.Query) == "" {
			return Request{}, false
		}
		tokens = ParseQuery(s.Query)
		if len(tokens) == 0 {
			return Request{}, false
		}
	}

	s.generation++
	s.Loading = true
	s.Started = true

	return Request{
		Tokens:     tokens,
		Preset:     preset,
		Generation: s.generation,
	}, true
}

// Complete applies a finished search. Results of a search that has since
// been superseded are dropped and false is returned.
func (s *State) Complete(result Result) bool {
	if result.Generation != s.generation {
		return false
	}

	s.Images = result.Images
	if s.Images == nil {
		s.Images = []string{}
	}
	s.Groups = result.Groups
	s.Loading = false
	return true
}

// Delete removes the displayed image at index i
func (s *State) Delete(i int) error {
	images, err := DeleteAt(s.Images, i)
	if err != nil {
		return err
	}
	s.Images = images
	return nil
}

// Filter narrows the display to one group, or to all groups for AllGroups
func (s *State) Filter(target string) error {
	images, err := ApplyFilter(s.Groups, target)
	if err != nil {
		return err
	}
	s.Images = images
	return nil
}

// ShowEmpty reports whether the no-results message should be displayed
func (s *State) ShowEmpty() bool {
	return s.Started && !s.Loading && s.Query != "" && len(s.Images) == 0
}

// DeleteAt returns a copy of images without the element at index i
func DeleteAt(images []string, i int) ([]string, error) {
	if i < 0 || i >= len(images) {
		return nil, fmt.Errorf("%w: %d of %d", ErrIndexOutOfRange, i, len(images))
	}

	out := make([]string, 0, len(images)-1)
	out = append(out, images[:i]...)
	out = append(out, images[i+1:]...)
	return out, nil
}

// ApplyFilter returns the images of the named group, or every group's
// images concatenated for AllGroups.
func ApplyFilter(groups []Group, target string) ([]string, error) {
	if target == AllGroups {
		images := []string{}
		for _, g := range groups {
			images = append(images, g.Images...)
		}
		return images, nil
	}

	for _, g := range groups {
		if g.Name == target {
			return append([]string{}, g.Images...), nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrGroupNotFound, target)
}
