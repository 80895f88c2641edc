package launcher

import (
	"errors"
	"fmt"
	"net/url"

	"gopkg.in/urfave/cli.v1"

	"github.com/rony4d/issuance-audit/flags"
)

// Config aggregates everything the launcher needs to run an audit.
type Config struct {
	// URL is the node's JSON-RPC endpoint.
	URL     string
	Logging LoggingConfig
}

type LoggingConfig struct {
	Verbosity int
	Format    string
	Color     bool
	SentryDSN string
}

var errMissingURL = errors.New("no node endpoint, set --url or " + flags.URLFlag.EnvVar)

func defaultConfig() Config {
	return Config{
		Logging: LoggingConfig{
			Verbosity: flags.LogVerbosityFlag.Value,
			Format:    flags.LogFormatFlag.Value,
		},
	}
}

// MakeConfig merges defaults with CLI overrides and validates the result.
func MakeConfig(ctx *cli.Context) (Config, error) {
	cfg := defaultConfig()
	applyCLIOverrides(ctx, &cfg)
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func applyCLIOverrides(ctx *cli.Context, cfg *Config) {
	// env vars populate these too
	cfg.URL = ctx.String(flags.URLFlag.Name)
	cfg.Logging.SentryDSN = ctx.String(flags.SentryDSNFlag.Name)

	if ctx.IsSet(flags.LogVerbosityFlag.Name) {
		cfg.Logging.Verbosity = ctx.Int(flags.LogVerbosityFlag.Name)
	}
	if ctx.IsSet(flags.LogFormatFlag.Name) {
		cfg.Logging.Format = ctx.String(flags.LogFormatFlag.Name)
	}
	if ctx.IsSet(flags.LogColorFlag.Name) {
		cfg.Logging.Color = ctx.Bool(flags.LogColorFlag.Name)
	}
}

func (c *Config) validate() error {
	if c.URL == "" {
		return errMissingURL
	}
	u, err := url.Parse(c.URL)
	if err != nil {
		return fmt.Errorf("invalid --url: %w", err)
	}
	switch u.Scheme {
	case "http", "https", "ws", "wss":
	default:
		return fmt.Errorf("invalid --url %q: unsupported scheme %q", c.URL, u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("invalid --url %q: missing host", c.URL)
	}

	if c.Logging.Verbosity < 0 || c.Logging.Verbosity >= len(verbosityLevels) {
		return fmt.Errorf("invalid --log.verbosity %d, want 0..%d", c.Logging.Verbosity, len(verbosityLevels)-1)
	}
	switch c.Logging.Format {
	case "text", "json":
	default:
		return fmt.Errorf("invalid --log.format %q, want text or json", c.Logging.Format)
	}
	return nil
}
