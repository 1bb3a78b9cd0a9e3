// Package app holds the process-wide application state and dispatches the
// commands a front-end can invoke.
package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"

	"github.com/logandonley/fontlist/internal/logging"
	"github.com/logandonley/fontlist/pkg/fontlist"
)

// ListInstalledFonts is the command that returns the installed fonts
const ListInstalledFonts = "list_installed_fonts"

var (
	// ErrUnknownCommand is returned when invoking a command that was never registered
	ErrUnknownCommand = errors.New("unknown command")

	// ErrDuplicateCommand is returned when registering a name twice
	ErrDuplicateCommand = errors.New("command already registered")
)

// Handler runs one command. args holds the raw JSON arguments and may be
// empty.
type Handler func(ctx context.Context, args json.RawMessage) (any, error)

// App owns the font catalog for the lifetime of the process and the set of
// invokable commands. It is safe for concurrent use.
type App struct {
	catalog fontlist.Source
	logger  *slog.Logger

	mu       sync.RWMutex
	handlers map[string]Handler
}

// New creates an App around an opened catalog and registers the built-in
// commands.
func New(catalog fontlist.Source, logger *slog.Logger) (*App, error) {
	if catalog == nil {
		return nil, errors.New("app requires a font catalog")
	}
	if logger == nil {
		logger = logging.NewNop()
	}

	a := &App{
		catalog:  catalog,
		logger:   logger,
		handlers: make(map[string]Handler),
	}
	if err := a.Register(ListInstalledFonts, a.listInstalledFonts); err != nil {
		return nil, err
	}
	return a, nil
}

// Catalog returns the font catalog held by the app
func (a *App) Catalog() fontlist.Source {
	return a.catalog
}

// Register adds a command handler. It may be called while other goroutines
// invoke commands.
func (a *App) Register(name string, handler Handler) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("cannot register command with empty name")
	}
	if handler == nil {
		return fmt.Errorf("cannot register nil handler for %q", name)
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	if _, exists := a.handlers[name]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateCommand, name)
	}
	a.handlers[name] = handler
	return nil
}

// Commands returns the registered command names in sorted order
func (a *App) Commands() []string {
	a.mu.RLock()
	names := make([]string, 0, len(a.handlers))
	for name := range a.handlers {
		names = append(names, name)
	}
	a.mu.RUnlock()
	sort.Strings(names)
	return names
}

// Invoke runs the named command
func (a *App) Invoke(ctx context.Context, name string, args json.RawMessage) (any, error) {
	a.mu.RLock()
	handler, ok := a.handlers[name]
	a.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCommand, name)
	}

	result, err := handler(ctx, args)
	if err != nil {
		a.logger.Warn("command failed", slog.String("command", name), logging.Error(err))
		return nil, fmt.Errorf("running %s: %w", name, err)
	}
	a.logger.Debug("command completed", slog.String("command", name))
	return result, nil
}

func (a *App) listInstalledFonts(_ context.Context, _ json.RawMessage) (any, error) {
	return fontlist.ListFonts(a.catalog), nil
}
