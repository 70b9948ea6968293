package config

// Config holds runtime settings for the projectboard CLI.
//
// Fields:
//   - ServerBaseURL: root URL of the HTTP API, e.g. http://127.0.0.1:3000.
//   - StorePath: SQLite file holding the sealed access token, or ":memory:".
//   - DeviceKeyPath: file with the device secret the token is sealed with.
//   - LogLevel: debug, info, warn or error.
//   - LogFormat: text or json.
type Config struct {
	ServerBaseURL string `env:"PROJECTBOARD_SERVER_URL"`
	StorePath     string `env:"PROJECTBOARD_STORE_PATH"`
	DeviceKeyPath string `env:"PROJECTBOARD_DEVICE_KEY"`
	LogLevel      string `env:"PROJECTBOARD_LOG_LEVEL"`
	LogFormat     string `env:"PROJECTBOARD_LOG_FORMAT"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "http://127.0.0.1:3000"
	c.StorePath = "projectboard.db"
	c.DeviceKeyPath = "projectboard.key"
	c.LogLevel = "info"
	c.LogFormat = "text"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present), the environment and command-line flags. Later sources
// take precedence over earlier ones. args excludes the program name.
func LoadConfig(args []string) *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg, args)
	parseEnv(cfg)
	parseFlags(cfg, args)
	return cfg
}
