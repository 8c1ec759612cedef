package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/hsbacot/breeds/client"
	"github.com/hsbacot/breeds/cmd"
	"github.com/hsbacot/breeds/config"
	"github.com/hsbacot/breeds/gallery"
	"github.com/hsbacot/breeds/tui"
	"github.com/hsbacot/breeds/ui"
)

func usage() {
	fmt.Fprintln(os.Stderr, "Usage: breeds [OPTIONS] [<breed> [AND <breed>...]]")
	fmt.Fprintln(os.Stderr, "       breeds [OPTIONS] <command> [ARGS]")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Commands:")
	fmt.Fprintln(os.Stderr, "  fetch <query>        Print images for a query (--json, --only <breed>, -i)")
	fmt.Fprintln(os.Stderr, "  preset               Print one image for each preset breed (--json)")
	fmt.Fprintln(os.Stderr, "  list                 List all known breeds (--json)")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Options:")
	fmt.Fprintln(os.Stderr, "  -c, --config <path>  Config file (default "+config.DefaultPath()+")")
	fmt.Fprintln(os.Stderr, "  -v, --verbose        Show detailed logs")
	fmt.Fprintln(os.Stderr, "      --log-file <p>   Write logs to a file while the gallery is open")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Example:")
	fmt.Fprintln(os.Stderr, "  breeds poodle AND corgi")
	fmt.Fprintln(os.Stderr, "  breeds fetch -i poodle AND corgi")
}

func main() {
	// Parse command-line flags
	flag.Usage = usage
	configPath := flag.String("c", config.DefaultPath(), "config file")
	flag.StringVar(configPath, "config", config.DefaultPath(), "config file")
	verbose := flag.Bool("v", false, "verbose mode - show detailed logs")
	flag.BoolVar(verbose, "verbose", false, "verbose mode - show detailed logs")
	logFile := flag.String("log-file", "", "write logs to this file in gallery mode")
	flag.Parse()

	// Initialize logger
	logger := ui.InitLogger(*verbose)

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("Loading config failed", "path", *configPath, "error", err)
		os.Exit(1)
	}
	logger.Debug("Config loaded", "api_url", cfg.APIURL, "timeout", cfg.Timeout(), "max_parallel", cfg.MaxParallel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// Create API client
	apiClient := client.NewClient(
		client.WithBaseURL(cfg.APIURL),
		client.WithTimeout(cfg.Timeout()),
	)

	args := flag.Args()
	if len(args) > 0 {
		env := cmd.Env{
			Client:   apiClient,
			Searcher: gallery.NewSearcher(apiClient, gallery.WithLogger(logger), gallery.WithMaxParallel(cfg.MaxParallel)),
			Logger:   logger,
			Out:      os.Stdout,
		}

		switch args[0] {
		case "fetch":
			os.Exit(cmd.RunFetchCommand(ctx, env, args[1:]))
		case "preset":
			os.Exit(cmd.RunPresetCommand(ctx, env, args[1:]))
		case "list":
			os.Exit(cmd.RunListCommand(ctx, env, args[1:]))
		}
	}

	// Gallery mode: keep logs off the terminal the UI draws on
	var logOut io.Writer = io.Discard
	if *logFile != "" {
		f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			logger.Error("Opening log file failed", "path", *logFile, "error", err)
			os.Exit(1)
		}
		defer f.Close()
		logOut = f
	}
	tuiLogger := ui.NewLogger(logOut, *verbose)

	model := tui.NewModel(tui.Options{
		Context:  ctx,
		Query:    strings.Join(args, " "),
		Searcher: gallery.NewSearcher(apiClient, gallery.WithLogger(tuiLogger), gallery.WithMaxParallel(cfg.MaxParallel)),
		Logger:   tuiLogger,
	})

	if _, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run(); err != nil {
		logger.Error("Gallery failed", "error", err)
		os.Exit(1)
	}
}
