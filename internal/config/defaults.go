package config

const (
	defaultBridgeBind    = "127.0.0.1:7878"
	defaultLogFormat     = "console"
	defaultLogLevel      = "info"
	defaultIncludeSystem = true
	defaultConfigPath    = "~/.config/fontlist/config.toml"
	defaultProjectConfig = "fontlist.toml"
)

var defaultAllowOrigins = []string{
	"http://localhost:1420",
	"http://localhost:3000",
	"http://localhost:5173",
	"http://127.0.0.1:1420",
	"http://127.0.0.1:3000",
	"http://127.0.0.1:5173",
}

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Fonts: Fonts{
			IncludeSystem: defaultIncludeSystem,
		},
		Bridge: Bridge{
			Bind:         defaultBridgeBind,
			AllowOrigins: append([]string(nil), defaultAllowOrigins...),
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
