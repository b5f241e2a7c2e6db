package pkg

import (
	"io"
	"os"
	"strings"

	"github.com/urfave/cli"
	"k8s.io/utils/clock"

	"github.com/aquasecurity/ghsa-feed/pkg/config"
	"github.com/aquasecurity/ghsa-feed/pkg/log"
	"github.com/aquasecurity/ghsa-feed/pkg/report"
)

type AppConfig struct {
	Clock  clock.Clock
	Stdout io.Writer
	Stderr io.Writer
}

func (ac AppConfig) NewApp(version string) *cli.App {
	if ac.Clock == nil {
		ac.Clock = clock.RealClock{}
	}
	if ac.Stdout == nil {
		ac.Stdout = os.Stdout
	}
	if ac.Stderr == nil {
		ac.Stderr = os.Stderr
	}

	app := cli.NewApp()
	app.Name = "ghsa-feed"
	app.Version = version
	app.Usage = "List GitHub security advisories published in the last day"
	app.Writer = ac.Stdout
	app.ErrWriter = ac.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "debug",
			Usage: "enable debug logging",
		},
		cli.StringFlag{
			Name:  "env-file",
			Usage: "dotenv file to load before reading the environment",
			Value: ".env",
		},
	}
	app.Before = func(c *cli.Context) error {
		log.Configure(ac.Stderr, c.Bool("debug"))
		return config.LoadDotEnv(c.String("env-file"))
	}

	app.Commands = []cli.Command{
		{
			Name:   "fetch",
			Usage:  "fetch and print advisories",
			Action: ac.fetch,
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:   "token",
					Usage:  "GitHub access token",
					EnvVar: config.TokenEnv,
				},
				cli.StringFlag{
					Name:  "endpoint",
					Usage: "GraphQL endpoint (default: " + config.Default().Endpoint + ")",
				},
				cli.StringFlag{
					Name:  "user-agent",
					Usage: "User-Agent header (default: " + config.Default().UserAgent + ")",
				},
				cli.DurationFlag{
					Name:  "timeout",
					Usage: "request timeout (default: " + config.Default().Timeout.String() + ")",
				},
				cli.StringFlag{
					Name:  "format",
					Usage: "output format (" + strings.Join(report.Formats, ", ") + ")",
				},
				cli.StringFlag{
					Name:  "config",
					Usage: "YAML config file",
				},
				cli.BoolFlag{
					Name:  "no-progress",
					Usage: "suppress the progress spinner",
				},
			},
		},
		{
			Name:   "query",
			Usage:  "print the GraphQL query for the current window",
			Action: ac.query,
		},
	}

	return app
}
