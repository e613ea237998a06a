// Package main provides the volpick command: a full-screen picker that
// prints the confirmed file or directory path to stdout.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/Cyclone1070/volpick/internal/config"
	"github.com/Cyclone1070/volpick/internal/fsutil"
	"github.com/Cyclone1070/volpick/internal/logging"
	"github.com/Cyclone1070/volpick/internal/pathutil"
	"github.com/Cyclone1070/volpick/internal/picker"
	"github.com/Cyclone1070/volpick/internal/selection"
	"github.com/Cyclone1070/volpick/internal/ui"
	"github.com/Cyclone1070/volpick/internal/ui/services"
	"github.com/Cyclone1070/volpick/internal/ui/views"
	"github.com/Cyclone1070/volpick/internal/volume"
)

// Exit codes
const (
	exitOK        = 0
	exitError     = 1
	exitUsage     = 2
	exitCancelled = 3
)

// cliFlags holds command-line overrides. Nil pointers mean "not given".
type cliFlags struct {
	start  *string
	filter *string
	ext    *string
	hidden *bool
	once   bool
}

func parseFlags(args []string, stderr io.Writer) (cliFlags, error) {
	fs := flag.NewFlagSet("volpick", flag.ContinueOnError)
	fs.SetOutput(stderr)

	start := fs.String("start", "", "directory whose volume is focused first")
	filter := fs.String("filter", "", "selection filter: all, directory or file")
	ext := fs.String("ext", "", "comma-separated extension allow-list")
	hidden := fs.Bool("hidden", false, "show dot files")
	once := fs.Bool("once", false, "open the picker immediately and exit after confirm or cancel")

	if err := fs.Parse(args); err != nil {
		return cliFlags{}, err
	}
	if fs.NArg() > 0 {
		return cliFlags{}, fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}

	out := cliFlags{once: *once}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "start":
			out.start = start
		case "filter":
			out.filter = filter
		case "ext":
			out.ext = ext
		case "hidden":
			out.hidden = hidden
		}
	})
	return out, nil
}

// applyFlags overrides config values with the flags that were given.
func applyFlags(cfg *config.Config, f cliFlags) error {
	if f.start != nil {
		cfg.Picker.StartingDirectory = *f.start
	}
	if f.filter != nil {
		cfg.Picker.SelectionFilter = *f.filter
	}
	if f.ext != nil {
		cfg.Picker.Extensions = splitExtensions(*f.ext)
	}
	if f.hidden != nil {
		cfg.Picker.ShowHidden = *f.hidden
	}
	return cfg.Validate()
}

func splitExtensions(s string) []string {
	exts := []string{}
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			exts = append(exts, part)
		}
	}
	return exts
}

// Dependencies holds the components required to run the application.
type Dependencies struct {
	Config *config.Config
	Logger *logging.Logger
	UI     interface {
		Run(ctx context.Context) (*picker.Result, error)
	}
}

func createDependencies(cfg *config.Config, once bool) (*Dependencies, error) {
	views.Configure(cfg.UI)

	logger, err := logging.New(cfg.Log)
	if err != nil {
		return nil, err
	}

	if cfg.Picker.StartingDirectory == "" {
		if wd, err := os.Getwd(); err == nil {
			cfg.Picker.StartingDirectory = wd
		}
	}
	// Only used to choose the focused volume, so a bad value is not fatal
	start, err := pathutil.NewResolver().CanonicaliseDir(cfg.Picker.StartingDirectory)
	if err != nil {
		logger.Warn().Err(err).Msg("starting directory ignored")
		start = ""
	}
	cfg.Picker.StartingDirectory = start

	enumerator := volume.NewEnumerator(volume.NewSystemProber(), logger.WithComponent("volume"))
	userInterface, err := ui.NewUI(cfg, ui.Deps{
		Store:    selection.NewStore(),
		Volumes:  enumerator,
		Lister:   fsutil.NewOSFileSystem(),
		Renderer: services.NewGlamourRenderer(),
		Logger:   logger,
		Once:     once,
	})
	if err != nil {
		_ = logger.Close()
		return nil, err
	}

	return &Dependencies{Config: cfg, Logger: logger, UI: userInterface}, nil
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	flags, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitUsage
	}

	// Load configuration (from defaults + ~/.config/volpick/config.json)
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "Warning: failed to load config: %v\n", err)
		fmt.Fprintf(stderr, "Using default configuration.\n")
		cfg = config.DefaultConfig()
	}
	if err := applyFlags(cfg, flags); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitUsage
	}

	deps, err := createDependencies(cfg, flags.once)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitError
	}
	defer deps.Logger.Close()

	return runInteractive(ctx, deps, stdout, stderr)
}

func runInteractive(ctx context.Context, deps *Dependencies, stdout, stderr io.Writer) int {
	deps.Logger.Info().Msg("volpick started")

	res, err := deps.UI.Run(ctx)
	if err != nil {
		deps.Logger.Error().Err(err).Msg("ui exited with error")
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitError
	}
	if res == nil || res.Action != picker.ActionConfirm {
		deps.Logger.Info().Msg("nothing confirmed")
		return exitCancelled
	}

	// An empty confirmed path is still a confirmation
	deps.Logger.Info().Str("path", res.Path).Msg("selection confirmed")
	fmt.Fprintln(stdout, res.Path)
	return exitOK
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
