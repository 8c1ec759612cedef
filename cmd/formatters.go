package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/hsbacot/breeds/gallery"
)

// printHeader prints a styled header
func printHeader(w io.Writer, title string) {
	fmt.Fprintln(w, title)
	fmt.Fprintln(w, strings.Repeat("━", len([]rune(title))))
	fmt.Fprintln(w)
}

// printJSON marshals data to JSON and prints it
func printJSON(w io.Writer, data interface{}) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

// printImages prints a numbered image list
func printImages(w io.Writer, images []string) {
	for i, img := range images {
		fmt.Fprintf(w, "%3d. %s\n", i+1, img)
	}
}

// printResult prints a search result, one section per group when grouped
func printResult(w io.Writer, query string, images []string, groups []gallery.Group) {
	if len(images) == 0 {
		fmt.Fprintf(w, "No results found for %q\n", query)
		return
	}

	if len(groups) == 0 {
		printHeader(w, fmt.Sprintf("%s (%d images)", query, len(images)))
		printImages(w, images)
		return
	}

	for _, g := range groups {
		printHeader(w, fmt.Sprintf("%s (%d images)", g.Name, len(g.Images)))
		if len(g.Images) == 0 {
			fmt.Fprintln(w, "  no images")
		}
		printImages(w, g.Images)
		fmt.Fprintln(w)
	}
	fmt.Fprintf(w, "Total: %d images across %d breeds\n", len(images), len(groups))
}
