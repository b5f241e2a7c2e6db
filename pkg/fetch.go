package pkg

import (
	"context"
	"time"

	"github.com/briandowns/spinner"
	"github.com/urfave/cli"
	"golang.org/x/xerrors"

	"github.com/aquasecurity/ghsa-feed/pkg/config"
	"github.com/aquasecurity/ghsa-feed/pkg/ghsa"
	"github.com/aquasecurity/ghsa-feed/pkg/github"
	"github.com/aquasecurity/ghsa-feed/pkg/log"
	"github.com/aquasecurity/ghsa-feed/pkg/report"
)

func (ac AppConfig) fetch(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	// Fail on a bad format before spending a request
	w, err := report.NewWriter(cfg.Format, ac.Stdout)
	if err != nil {
		return err
	}

	client := github.NewClient(cfg.Token,
		github.WithEndpoint(cfg.Endpoint),
		github.WithUserAgent(cfg.UserAgent),
		github.WithTimeout(cfg.Timeout),
		github.WithClock(ac.Clock),
	)
	fetcher := ghsa.Fetcher{
		Clock:  ac.Clock,
		Client: client,
	}

	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(ac.Stderr))
	s.Suffix = " Fetching security advisories..."
	if !c.Bool("no-progress") {
		s.Start()
	}
	batch, err := fetcher.Fetch(context.Background())
	s.Stop()
	if err != nil {
		return xerrors.Errorf("fetch error: %w", err)
	}

	if err = w.Write(batch); err != nil {
		return xerrors.Errorf("failed to write advisories: %w", err)
	}
	return nil
}

// loadConfig layers the config file and then the command line flags over
// the defaults.
func loadConfig(c *cli.Context) (config.Config, error) {
	cfg := config.Default()
	if path := c.String("config"); path != "" {
		log.Debug("Loading config file", log.FilePath(path))
		var err error
		if cfg, err = config.Load(path); err != nil {
			return config.Config{}, err
		}
	}

	cfg = cfg.Merge(config.Config{
		Token:     c.String("token"),
		Endpoint:  c.String("endpoint"),
		UserAgent: c.String("user-agent"),
		Timeout:   c.Duration("timeout"),
		Format:    c.String("format"),
	})
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}
