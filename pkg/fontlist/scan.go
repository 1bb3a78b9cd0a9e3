package fontlist

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/font/sfnt"
)

type scanner struct {
	logger  *slog.Logger
	faces   []Face
	dirs    []string
	seen    map[string]struct{}
	skipped int
	buf     sfnt.Buffer
}

func newScanner(logger *slog.Logger) *scanner {
	return &scanner{
		logger: logger,
		seen:   make(map[string]struct{}),
	}
}

// scanDir walks dir and indexes every font file under it. A missing or
// unreadable dir is an error only when required is set.
func (s *scanner) scanDir(ctx context.Context, dir string, required bool) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	root, err := filepath.EvalSymlinks(dir)
	if err == nil {
		var info os.FileInfo
		if info, err = os.Stat(root); err == nil && !info.IsDir() {
			err = fmt.Errorf("%s is not a directory", dir)
		}
	}
	if err != nil {
		if required {
			return fmt.Errorf("opening font directory %s: %w", dir, err)
		}
		if !errors.Is(err, fs.ErrNotExist) {
			s.logger.Debug("skipping font directory", slog.String("dir", dir), slog.Any("error", err))
		}
		return nil
	}

	if _, ok := s.seen[root]; ok {
		return nil
	}
	s.seen[root] = struct{}{}

	err = s.walk(ctx, root)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return err
		}
		if required {
			return fmt.Errorf("walking directory %s: %w", dir, err)
		}
		s.logger.Debug("skipping font directory", slog.String("dir", dir), slog.Any("error", err))
		return nil
	}

	s.dirs = append(s.dirs, dir)
	return nil
}

// walk indexes the font files under root, descending into symlinked
// directories once per resolved target.
func (s *scanner) walk(ctx context.Context, root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return err
			}
			// Unreadable subdirectories are not fatal
			s.logger.Debug("skipping unreadable path", slog.String("path", path), slog.Any("error", err))
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		hidden := path != root && strings.HasPrefix(d.Name(), ".")
		if d.IsDir() {
			if hidden {
				return filepath.SkipDir
			}
			return nil
		}

		if d.Type()&fs.ModeSymlink != 0 {
			target, err := filepath.EvalSymlinks(path)
			if err != nil {
				s.logger.Debug("skipping broken symlink", slog.String("path", path), slog.Any("error", err))
				return nil
			}
			info, err := os.Stat(target)
			if err != nil {
				s.logger.Debug("skipping unreadable path", slog.String("path", path), slog.Any("error", err))
				return nil
			}
			if info.IsDir() {
				if hidden {
					return nil
				}
				return s.walkLinked(ctx, path, target)
			}
		}

		if !isFontFile(d.Name()) {
			return nil
		}

		s.addFile(path)
		return nil
	})
}

func (s *scanner) walkLinked(ctx context.Context, link, target string) error {
	if _, ok := s.seen[target]; ok {
		return nil
	}
	s.seen[target] = struct{}{}

	if err := s.walk(ctx, target); err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return err
		}
		s.logger.Debug("skipping linked font directory", slog.String("path", link), slog.Any("error", err))
	}
	return nil
}

func (s *scanner) addFile(path string) {
	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		s.skip(path, err)
		return
	}
	if _, ok := s.seen[resolved]; ok {
		return
	}
	s.seen[resolved] = struct{}{}

	data, err := os.ReadFile(resolved)
	if err != nil {
		s.skip(path, err)
		return
	}

	faces, invalid, err := s.parseFaces(path, data)
	if err != nil {
		s.skip(path, err)
		return
	}
	s.skipped += invalid
	s.faces = append(s.faces, faces...)
}

func (s *scanner) skip(path string, err error) {
	s.skipped++
	s.logger.Debug("skipping font file", slog.String("path", path), slog.Any("error", err))
}

// parseFaces reads every face of a font or font collection. It returns the
// faces that carry both a family and a style plus the number that did not.
func (s *scanner) parseFaces(path string, data []byte) ([]Face, int, error) {
	collection, err := sfnt.ParseCollection(data)
	if err != nil {
		return nil, 0, fmt.Errorf("parsing font data: %w", err)
	}

	var (
		faces   = make([]Face, 0, collection.NumFonts())
		invalid int
	)
	for i := 0; i < collection.NumFonts(); i++ {
		f, err := collection.Font(i)
		if err != nil {
			invalid++
			s.logger.Debug("skipping font face", slog.String("path", path), slog.Int("index", i), slog.Any("error", err))
			continue
		}

		face := Face{
			Family:         s.name(f, sfnt.NameIDTypographicFamily, sfnt.NameIDFamily),
			Style:          s.name(f, sfnt.NameIDTypographicSubfamily, sfnt.NameIDSubfamily),
			FullName:       s.name(f, sfnt.NameIDFull),
			PostScriptName: s.name(f, sfnt.NameIDPostScript),
			Path:           path,
			Index:          i,
		}
		if face.Family == "" || face.Style == "" {
			invalid++
			continue
		}
		faces = append(faces, face)
	}

	return faces, invalid, nil
}

// name returns the first non-empty name table entry among ids
func (s *scanner) name(f *sfnt.Font, ids ...sfnt.NameID) string {
	for _, id := range ids {
		value, err := f.Name(&s.buf, id)
		if err != nil {
			continue
		}
		value = strings.TrimSpace(strings.TrimRight(value, "\x00"))
		if value != "" {
			return value
		}
	}
	return ""
}

func isFontFile(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".ttf", ".otf", ".ttc", ".otc":
		return true
	}
	return false
}
