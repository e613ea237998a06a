// Package ui runs the picker as a modal screen stack on top of a small
// host application.
package ui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Cyclone1070/volpick/internal/config"
	"github.com/Cyclone1070/volpick/internal/gitutil"
	"github.com/Cyclone1070/volpick/internal/logging"
	"github.com/Cyclone1070/volpick/internal/picker"
	"github.com/Cyclone1070/volpick/internal/selection"
	"github.com/Cyclone1070/volpick/internal/tree"
	"github.com/Cyclone1070/volpick/internal/ui/services"
)

// Deps holds the collaborators of the UI.
type Deps struct {
	Store    *selection.Store
	Volumes  picker.VolumeSource
	Lister   tree.Lister
	Renderer services.MarkdownRenderer
	Logger   *logging.Logger // nil discards

	// Once opens the picker immediately and exits after the first dispatch.
	Once bool

	// Input and Output override the terminal. Output defaults to stderr so
	// the confirmed path can be piped from stdout.
	Input  io.Reader
	Output io.Writer
}

// UI runs the screen stack.
type UI struct {
	cfg   *config.Config
	deps  Deps
	home  *HomeScreen
	stack *Stack
}

// NewUI builds the home screen and the stack from the configuration.
func NewUI(cfg *config.Config, deps Deps) (*UI, error) {
	if deps.Store == nil {
		return nil, errors.New("selection store is required")
	}
	mode, err := selection.ParseMode(cfg.Picker.SelectionFilter)
	if err != nil {
		return nil, fmt.Errorf("invalid picker config: %w", err)
	}
	if deps.Renderer == nil {
		deps.Renderer = services.NewGlamourRenderer()
	}
	if deps.Logger == nil {
		deps.Logger = logging.Nop()
	}

	treeOpts := []tree.Option{tree.WithShowHidden(cfg.Picker.ShowHidden)}
	if cfg.Picker.RespectGitignore {
		treeOpts = append(treeOpts, tree.WithGitignore(gitutil.NewLoader()))
	}

	opts := picker.Options{
		StartingDirectory: cfg.Picker.StartingDirectory,
		Extensions:        cfg.Picker.Extensions,
		Filter:            mode,
	}
	pickerDeps := picker.Deps{
		Store:         deps.Store,
		Volumes:       deps.Volumes,
		Lister:        deps.Lister,
		Logger:        deps.Logger.WithComponent("picker"),
		Tree:          treeOpts,
		EnforceFilter: cfg.Picker.EnforceFilter,
	}

	home := NewHomeScreen(opts, pickerDeps, deps.Renderer, deps.Once)
	return &UI{
		cfg:   cfg,
		deps:  deps,
		home:  home,
		stack: NewStack(home, deps.Logger.WithComponent("stack")),
	}, nil
}

// Home returns the base screen.
func (u *UI) Home() *HomeScreen { return u.home }

// Stack returns the program model.
func (u *UI) Stack() *Stack { return u.stack }

// Run blocks until the program exits and returns the outcome of the
// selection screens, nil when none was closed.
func (u *UI) Run(ctx context.Context) (*picker.Result, error) {
	output := u.deps.Output
	if output == nil {
		output = os.Stderr
	}
	opts := []tea.ProgramOption{
		tea.WithContext(ctx),
		tea.WithOutput(output),
	}
	if u.deps.Input != nil {
		opts = append(opts, tea.WithInput(u.deps.Input))
	}
	if u.cfg.UI.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}

	program := tea.NewProgram(u.stack, opts...)
	if _, err := program.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("ui failed: %w", err)
	}
	return u.home.Outcome(), nil
}
