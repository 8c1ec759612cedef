package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/hsbacot/breeds/client"
	"github.com/hsbacot/breeds/gallery"
	"github.com/hsbacot/breeds/ui"
)

// Env carries the services commands run against
type Env struct {
	Client   *client.Client
	Searcher *gallery.Searcher
	Logger   *log.Logger
	Out      io.Writer
}

// searchOutput is the --json shape of a search
type searchOutput struct {
	Query  string          `json:"query,omitempty"`
	Images []string        `json:"images"`
	Groups []gallery.Group `json:"groups,omitempty"`
}

// RunFetchCommand runs a typed breed search
func RunFetchCommand(ctx context.Context, env Env, args []string) int {
	fs := flag.NewFlagSet("fetch", flag.ExitOnError)
	jsonOutput := fs.Bool("json", false, "Output in JSON format")
	only := fs.String("only", "", "Show only the images of this breed")
	interactive := fs.Bool("i", false, "Choose which breed to show")
	fs.BoolVar(interactive, "interactive", false, "Choose which breed to show")
	fs.Parse(args)

	query := strings.Join(fs.Args(), " ")
	if strings.TrimSpace(query) == "" && *interactive {
		prompted, err := ui.PromptQuery()
		if err != nil {
			env.Logger.Error("Prompt failed", "error", err)
			return 1
		}
		query = prompted
	}
	if strings.TrimSpace(query) == "" {
		fmt.Fprintln(os.Stderr, "Error: breed query required")
		fmt.Fprintln(os.Stderr, "Usage: breeds fetch [--json] [--only <breed>] [-i] <breed> [AND <breed>...]")
		return 1
	}

	state := &gallery.State{}
	state.SetQuery(query)
	req, ok := state.Begin(false)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: no breeds in query %q\n", query)
		return 1
	}

	env.Logger.Info("Fetching dogs", "breeds", strings.Join(req.Tokens, ", "))
	state.Complete(env.Searcher.Search(ctx, req))

	target := strings.ToLower(strings.TrimSpace(*only))
	if target == "" && *interactive && len(state.Groups) > 0 {
		selected, err := ui.SelectGroup(state.Groups)
		if err != nil {
			env.Logger.Error("Selection failed", "error", err)
			return 1
		}
		target = selected
	}

	// A single-breed search has no groups, so there is nothing to narrow.
	groups := state.Groups
	if target != "" && len(groups) > 0 {
		if err := state.Filter(target); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		if target != gallery.AllGroups {
			groups = nil
		}
	} else if target != "" {
		env.Logger.Debug("Ignoring breed filter without groups", "only", target)
	}

	if *jsonOutput {
		if err := printJSON(env.Out, searchOutput{Query: query, Images: state.Images, Groups: groups}); err != nil {
			fmt.Fprintf(os.Stderr, "Error encoding JSON: %v\n", err)
			return 1
		}
		return 0
	}

	printResult(env.Out, query, state.Images, groups)
	return 0
}

// RunPresetCommand runs the one-image-per-breed search
func RunPresetCommand(ctx context.Context, env Env, args []string) int {
	fs := flag.NewFlagSet("preset", flag.ExitOnError)
	jsonOutput := fs.Bool("json", false, "Output in JSON format")
	fs.Parse(args)

	state := &gallery.State{}
	req, _ := state.Begin(true)

	env.Logger.Info("Fetching one image per breed", "breeds", strings.Join(gallery.PresetBreeds, ", "))
	state.Complete(env.Searcher.Search(ctx, req))

	if *jsonOutput {
		if err := printJSON(env.Out, searchOutput{Images: state.Images}); err != nil {
			fmt.Fprintf(os.Stderr, "Error encoding JSON: %v\n", err)
			return 1
		}
		return 0
	}

	printResult(env.Out, strings.Join(gallery.PresetBreeds, ", "), state.Images, nil)
	return 0
}

// RunListCommand lists every breed the API knows about
func RunListCommand(ctx context.Context, env Env, args []string) int {
	fs := flag.NewFlagSet("list", flag.ExitOnError)
	jsonOutput := fs.Bool("json", false, "Output in JSON format")
	fs.Parse(args)

	breeds, err := env.Client.ListBreeds(ctx)
	if err != nil {
		env.Logger.Error("Listing breeds failed", "error", err)
		return 1
	}

	if *jsonOutput {
		if err := printJSON(env.Out, breeds); err != nil {
			fmt.Fprintf(os.Stderr, "Error encoding JSON: %v\n", err)
			return 1
		}
		return 0
	}

	printHeader(env.Out, fmt.Sprintf("Breeds (%d)", len(breeds)))
	for _, b := range breeds {
		fmt.Fprintln(env.Out, b)
	}
	return 0
}
