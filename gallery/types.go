package gallery

import "errors"

// AllGroups is the filter target that shows every group again
const AllGroups = "all"

// PresetBreeds are queried by the one-image-per-breed search
var PresetBreeds = []string{"poodle", "hound-afghan", "labrador", "bulldog", "beagle"}

var (
	// ErrGroupNotFound is returned when filtering on a breed that has no group
	ErrGroupNotFound = errors.New("group not found")

	// ErrIndexOutOfRange is returned when deleting a position that is not displayed
	ErrIndexOutOfRange = errors.New("image index out of range")
)

// Group holds the images of one breed from a multi-breed search
type Group struct {
	Name   string   `json:"name"`
	Images []string `json:"images"`
}

// Request describes one search run
type Request struct {
	Tokens     []string
	Preset     bool
	Generation uint64
}

// Outcome is the result of fetching a single breed. A non-nil Err marks a
// hole that aggregation skips.
type Outcome struct {
	Breed  string
	Images []string
	Err    error
}

// Result is the aggregated output of a search
type Result struct {
	Images     []string
	Groups     []Group
	Outcomes   []Outcome
	Generation uint64
}
