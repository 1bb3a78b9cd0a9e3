package platform

import (
	"fmt"
	"os"
	"path/filepath"
)

type windowsManager struct{}

func newWindowsManager() Manager {
	return &windowsManager{}
}

func (m *windowsManager) GetFontPaths() (FontPaths, error) {
	winDir := os.Getenv("WINDIR")
	if winDir == "" {
		winDir = `C:\Windows`
	}

	paths := FontPaths{
		SystemDirs: []string{filepath.Join(winDir, "Fonts")},
	}

	// Per-user installs land under LOCALAPPDATA since Windows 10 1809
	localAppData := os.Getenv("LOCALAPPDATA")
	if localAppData == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return FontPaths{}, fmt.Errorf("getting user home directory: %w", err)
		}
		localAppData = filepath.Join(homeDir, "AppData", "Local")
	}
	paths.UserDirs = []string{filepath.Join(localAppData, "Microsoft", "Windows", "Fonts")}

	return paths, nil
}
