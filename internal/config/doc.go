// Package config loads, normalizes, and validates fontlist configuration.
//
// Settings come from a TOML file (by default ~/.config/fontlist/config.toml,
// falling back to ./fontlist.toml). A missing file yields the defaults.
package config
