package config

import (
	"fmt"
	"strings"
)

// Normalize expands paths and fills in blank values with defaults. Callers
// that modify a loaded config (for example from flags) run it again.
func (c *Config) Normalize() error {
	if err := c.normalizeFonts(); err != nil {
		return err
	}
	c.normalizeBridge()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizeFonts() error {
	dirs := make([]string, 0, len(c.Fonts.ExtraDirs))
	seen := make(map[string]struct{}, len(c.Fonts.ExtraDirs))
	for _, dir := range c.Fonts.ExtraDirs {
		if strings.TrimSpace(dir) == "" {
			continue
		}
		expanded, err := expandPath(strings.TrimSpace(dir))
		if err != nil {
			return fmt.Errorf("fonts.extra_dirs: %w", err)
		}
		if _, ok := seen[expanded]; ok {
			continue
		}
		seen[expanded] = struct{}{}
		dirs = append(dirs, expanded)
	}
	c.Fonts.ExtraDirs = dirs
	return nil
}

func (c *Config) normalizeBridge() {
	c.Bridge.Bind = strings.TrimSpace(c.Bridge.Bind)
	if c.Bridge.Bind == "" {
		c.Bridge.Bind = defaultBridgeBind
	}
	origins := c.Bridge.AllowOrigins[:0]
	for _, origin := range c.Bridge.AllowOrigins {
		origin = strings.TrimRight(strings.TrimSpace(origin), "/")
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	c.Bridge.AllowOrigins = origins
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
