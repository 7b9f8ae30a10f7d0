package config

import "time"

// Config holds runtime settings for the ProvaFácil CLI.
//
// Fields:
//   - BaseURL: base URL of the backend REST API.
//   - RequestTimeout: per-request deadline for API calls.
//   - TokenFile: path of the encrypted credential file.
//   - KeyFile: path of the per-installation encryption key.
//   - DownloadDir: directory where exported PDFs are saved.
type Config struct {
	BaseURL        string
	RequestTimeout time.Duration
	TokenFile      string
	KeyFile        string
	DownloadDir    string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.BaseURL = "http://127.0.0.1:8080/api"
	c.RequestTimeout = 30 * time.Second
	c.TokenFile = "tokens.bin"
	c.KeyFile = "storage.key"
	c.DownloadDir = "downloads"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
