package fontlist

import (
	"context"
	"fmt"
	"iter"
	"log/slog"
	"slices"

	"github.com/logandonley/fontlist/internal/platform"
)

// Catalog is a read-only snapshot of the installed fonts. It is safe for
// concurrent use once returned by Open.
type Catalog struct {
	faces   []Face
	dirs    []string
	skipped int
}

type options struct {
	platform     platform.Manager
	platformDirs bool
	extraDirs    []string
	logger       *slog.Logger
}

// Option configures Open
type Option func(*options)

// WithPlatform overrides the platform used to discover font directories
func WithPlatform(p platform.Manager) Option {
	return func(o *options) {
		o.platform = p
	}
}

// WithExtraDirs adds directories that must exist and be readable
func WithExtraDirs(dirs ...string) Option {
	return func(o *options) {
		o.extraDirs = append(o.extraDirs, dirs...)
	}
}

// WithoutPlatformDirs restricts the catalog to the extra directories
func WithoutPlatformDirs() Option {
	return func(o *options) {
		o.platformDirs = false
	}
}

// WithLogger sets the logger used while scanning
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// Open scans the font directories and returns the resulting catalog.
// Unreadable platform directories are skipped; an unreadable extra
// directory is an error.
func Open(ctx context.Context, opts ...Option) (*Catalog, error) {
	o := options{
		platformDirs: true,
		logger:       slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(&o)
	}

	s := newScanner(o.logger)

	if o.platformDirs {
		if o.platform == nil {
			o.platform = platform.New()
		}
		paths, err := o.platform.GetFontPaths()
		if err != nil {
			return nil, fmt.Errorf("getting font paths: %w", err)
		}
		for _, dir := range paths.All() {
			if err := s.scanDir(ctx, dir, false); err != nil {
				return nil, err
			}
		}
	}

	for _, dir := range o.extraDirs {
		if err := s.scanDir(ctx, dir, true); err != nil {
			return nil, err
		}
	}

	o.logger.Info("font catalog opened",
		slog.Int("faces", len(s.faces)),
		slog.Int("directories", len(s.dirs)),
		slog.Int("skipped_files", s.skipped))

	return &Catalog{
		faces:   s.faces,
		dirs:    s.dirs,
		skipped: s.skipped,
	}, nil
}

// NewStatic returns a catalog over a fixed set of faces. Faces without a
// family or style are dropped.
func NewStatic(faces ...Face) *Catalog {
	c := &Catalog{faces: make([]Face, 0, len(faces))}
	for _, face := range faces {
		if face.Family == "" || face.Style == "" {
			c.skipped++
			continue
		}
		c.faces = append(c.faces, face)
	}
	return c
}

// All returns a sequence over the catalog's faces. Each call starts over.
func (c *Catalog) All() iter.Seq[Face] {
	return func(yield func(Face) bool) {
		for _, face := range c.faces {
			if !yield(face) {
				return
			}
		}
	}
}

// Len returns the number of faces in the catalog
func (c *Catalog) Len() int {
	return len(c.faces)
}

// Dirs returns the directories that were scanned
func (c *Catalog) Dirs() []string {
	return slices.Clone(c.dirs)
}

// Skipped returns how many font files or faces could not be read
func (c *Catalog) Skipped() int {
	return c.skipped
}
