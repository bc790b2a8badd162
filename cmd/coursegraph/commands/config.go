package commands

import (
	"fmt"
	"time"

	"coursegraph/internal/banner"
	"coursegraph/internal/telemetry"
	"coursegraph/lib/configutil"
	"coursegraph/lib/restyutil"
)

const defaultBaseUrl = "https://wl11gp.neu.edu/udcprod8/"

type Config struct {
	BaseUrl           string           `json:"base_url"`
	Endpoints         banner.Endpoints `json:"endpoints"`
	TimeoutSeconds    int              `json:"timeout_seconds"`
	RequestsPerSecond float64          `json:"requests_per_second"`
	UserAgent         string           `json:"user_agent"`
	CloudflareBypass  bool             `json:"cloudflare_bypass"`
	// DumpDir is where every http exchange is written to, empty disables it.
	DumpDir string `json:"dump_dir"`
}

func defaultConfig() Config {
	return Config{
		BaseUrl:           defaultBaseUrl,
		Endpoints:         banner.DefaultEndpoints(),
		TimeoutSeconds:    30,
		RequestsPerSecond: 2,
	}
}

func readConfig(path string) (Config, error) {
	cfg, err := configutil.ReadConfigWithDefaults(path, defaultConfig())
	if err != nil {
		return Config{}, fmt.Errorf("read config '%s': %w", path, err)
	}
	if dumpDir != "" {
		cfg.DumpDir = dumpDir
	}
	return cfg, nil
}

// newScraper builds the banner client and scraper described by the config.
func newScraper(cfg Config, tel telemetry.API) (banner.Scraper, error) {
	opts := banner.ClientOptions{
		BaseUrl:           cfg.BaseUrl,
		Timeout:           time.Duration(cfg.TimeoutSeconds) * time.Second,
		RequestsPerSecond: cfg.RequestsPerSecond,
		UserAgent:         cfg.UserAgent,
		CloudflareBypass:  cfg.CloudflareBypass,
	}
	if cfg.DumpDir != "" {
		output, err := restyutil.NewFilesystemOutput(cfg.DumpDir)
		if err != nil {
			return banner.Scraper{}, err
		}
		opts.Dump = output
	}

	client, err := banner.NewClient(opts, tel)
	if err != nil {
		return banner.Scraper{}, fmt.Errorf("create client: %w", err)
	}
	return banner.NewScraper(client, cfg.Endpoints, tel), nil
}
