package platform

import (
	"runtime"
)

// FontPaths represents the directories the host keeps installed fonts in
type FontPaths struct {
	SystemDirs []string // System-wide font directories
	UserDirs   []string // User-specific font directories
}

// All returns system directories followed by user directories
func (p FontPaths) All() []string {
	dirs := make([]string, 0, len(p.SystemDirs)+len(p.UserDirs))
	dirs = append(dirs, p.SystemDirs...)
	dirs = append(dirs, p.UserDirs...)
	return dirs
}

// Manager handles platform-specific operations
type Manager interface {
	// GetFontPaths returns the system and user font directories
	GetFontPaths() (FontPaths, error)
}

// New returns the manager for the running operating system
func New() Manager {
	return NewFor(runtime.GOOS)
}

// NewFor returns the manager for the given GOOS value
func NewFor(goos string) Manager {
	switch goos {
	case "darwin":
		return newDarwinManager()
	case "windows":
		return newWindowsManager()
	}
	return newLinuxManager()
}
