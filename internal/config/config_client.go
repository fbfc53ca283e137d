package config

import (
	"errors"
	"flag"
	"fmt"
	"net/url"
	"strings"
	"time"

	"dario.cat/mergo"
)

const (
	defaultClientServerURL = "http://localhost:8080"
	defaultClientTimeout   = 15 * time.Second
)

// ClientConfig holds the settings of the command-line API client.
type ClientConfig struct {
	// ServerURL is the base URL of the HTTP API.
	// Env: CLIENT_SERVER_URL
	ServerURL string `env:"CLIENT_SERVER_URL"`

	// Token is a bearer token from an earlier register or login call.
	// Env: CLIENT_TOKEN
	Token string `env:"CLIENT_TOKEN"`

	// RequestTimeout bounds every outbound request.
	// Env: CLIENT_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"CLIENT_REQUEST_TIMEOUT"`
}

// GetClientConfig merges defaults, environment variables and flags from args
// (later sources win) and returns the config together with the positional
// arguments left after flag parsing.
func GetClientConfig(args []string) (*ClientConfig, []string, error) {
	envCfg := &ClientConfig{}
	if err := parseEnv(envCfg); err != nil {
		return nil, nil, err
	}

	flagsCfg, rest, err := parseClientFlags(args)
	if err != nil {
		return nil, nil, err
	}

	cfg := &ClientConfig{
		ServerURL:      defaultClientServerURL,
		RequestTimeout: defaultClientTimeout,
	}
	for _, src := range []*ClientConfig{envCfg, flagsCfg} {
		if err = mergo.Merge(cfg, src, mergo.WithOverride); err != nil {
			return nil, nil, fmt.Errorf("error merging client configs: %w", err)
		}
	}

	if err = cfg.validate(); err != nil {
		return nil, nil, err
	}

	return cfg, rest, nil
}

func parseClientFlags(args []string) (*ClientConfig, []string, error) {
	cfg := &ClientConfig{}

	fs := flag.NewFlagSet("client", flag.ContinueOnError)
	fs.StringVar(&cfg.ServerURL, "s", "", "Server base URL")
	fs.StringVar(&cfg.Token, "t", "", "Bearer token")
	fs.DurationVar(&cfg.RequestTimeout, "timeout", 0, "Request timeout (e.g., 15s)")

	if err := fs.Parse(args); err != nil {
		return nil, nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return cfg, fs.Args(), nil
}

func (cfg *ClientConfig) validate() error {
	u, err := url.Parse(strings.TrimSpace(cfg.ServerURL))
	if err != nil {
		return errors.Join(ErrInvalidClientConfigs, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: server URL must be http(s)://host[:port]", ErrInvalidClientConfigs)
	}

	if cfg.RequestTimeout < 0 {
		return fmt.Errorf("%w: negative request timeout", ErrInvalidClientConfigs)
	}

	return nil
}
