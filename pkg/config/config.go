package config

import (
	"errors"
	"io/fs"
	"os"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/xerrors"
	"gopkg.in/yaml.v2"

	"github.com/aquasecurity/ghsa-feed/pkg/github"
	"github.com/aquasecurity/ghsa-feed/pkg/types"
)

// TokenEnv holds the GitHub access token.
const TokenEnv = "GH_ACCESS_TOKEN"

type Config struct {
	Token     string        `yaml:"-"`
	Endpoint  string        `yaml:"endpoint"`
	UserAgent string        `yaml:"user_agent"`
	Timeout   time.Duration `yaml:"timeout"`
	Format    string        `yaml:"format"`
}

func Default() Config {
	return Config{
		Endpoint:  github.DefaultEndpoint,
		UserAgent: github.DefaultUserAgent,
		Timeout:   github.DefaultTimeout,
		Format:    "text",
	}
}

// Load reads a YAML config file on top of the defaults. The token is never
// read from the file.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, &types.ConfigurationError{Err: xerrors.Errorf("failed to read config file: %w", err)}
	}
	if err = yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, &types.ConfigurationError{Err: xerrors.Errorf("failed to parse config file %s: %w", path, err)}
	}
	return cfg, nil
}

// LoadDotEnv exports the variables of a dotenv file. Variables that are
// already set win, and a missing file is not an error.
func LoadDotEnv(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return &types.ConfigurationError{Err: xerrors.Errorf("failed to load %s: %w", path, err)}
	}
	return nil
}

// Merge overrides c with the non-zero fields of o.
func (c Config) Merge(o Config) Config {
	if o.Token != "" {
		c.Token = o.Token
	}
	if o.Endpoint != "" {
		c.Endpoint = o.Endpoint
	}
	if o.UserAgent != "" {
		c.UserAgent = o.UserAgent
	}
	if o.Timeout != 0 {
		c.Timeout = o.Timeout
	}
	if o.Format != "" {
		c.Format = o.Format
	}
	return c
}

func (c Config) Validate() error {
	if c.Token == "" {
		return &types.ConfigurationError{Err: xerrors.Errorf("%s is not set", TokenEnv)}
	}
	if c.Timeout <= 0 {
		return &types.ConfigurationError{Err: xerrors.Errorf("invalid timeout: %s", c.Timeout)}
	}
	return nil
}
