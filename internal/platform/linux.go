package platform

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

type linuxManager struct{}

func newLinuxManager() Manager {
	return &linuxManager{}
}

func (m *linuxManager) GetFontPaths() (FontPaths, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return FontPaths{}, fmt.Errorf("getting user home directory: %w", err)
	}

	paths := FontPaths{
		SystemDirs: []string{"/usr/share/fonts", "/usr/local/share/fonts"},
	}

	// XDG_DATA_DIRS usually repeats /usr/share and /usr/local/share
	for _, dir := range filepath.SplitList(os.Getenv("XDG_DATA_DIRS")) {
		dir = strings.TrimSpace(dir)
		if dir == "" {
			continue
		}
		paths.SystemDirs = appendUnique(paths.SystemDirs, filepath.Join(dir, "fonts"))
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		dataHome = filepath.Join(homeDir, ".local/share")
	}
	paths.UserDirs = appendUnique(paths.UserDirs, filepath.Join(dataHome, "fonts"))
	paths.UserDirs = appendUnique(paths.UserDirs, filepath.Join(homeDir, ".fonts"))

	return paths, nil
}

func appendUnique(dirs []string, dir string) []string {
	dir = filepath.Clean(dir)
	for _, existing := range dirs {
		if existing == dir {
			return dirs
		}
	}
	return append(dirs, dir)
}
