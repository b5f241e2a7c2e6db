package pkg

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/aquasecurity/ghsa-feed/pkg/ghsa"
)

func (ac AppConfig) query(_ *cli.Context) error {
	doc, err := ghsa.BuildQuery(ghsa.PublishedSince(ac.Clock))
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(ac.Stdout, doc)
	return err
}
