package config

import (
	"errors"
	"fmt"
	"net"
	"strings"
)

// Validate reports configuration values that cannot work.
func (c *Config) Validate() error {
	var errs []error

	if !c.Fonts.IncludeSystem && len(c.Fonts.ExtraDirs) == 0 {
		errs = append(errs, errors.New("fonts: include_system is false and no extra_dirs are configured"))
	}

	if _, _, err := net.SplitHostPort(c.Bridge.Bind); err != nil {
		errs = append(errs, fmt.Errorf("bridge.bind %q: %w", c.Bridge.Bind, err))
	}

	for _, origin := range c.Bridge.AllowOrigins {
		if origin != "*" && !strings.HasPrefix(origin, "http://") && !strings.HasPrefix(origin, "https://") {
			errs = append(errs, fmt.Errorf("bridge.allow_origins: %q must be \"*\" or start with http:// or https://", origin))
		}
	}

	switch c.Logging.Format {
	case "console", "json":
	default:
		errs = append(errs, fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format))
	}

	switch c.Logging.Level {
	case "debug", "info", "warn", "warning", "error":
	default:
		errs = append(errs, fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level))
	}

	return errors.Join(errs...)
}
