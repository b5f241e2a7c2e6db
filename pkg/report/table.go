package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/table"
	"github.com/samber/lo"

	"github.com/aquasecurity/ghsa-feed/pkg/ghsa"
	"github.com/aquasecurity/ghsa-feed/pkg/types"
)

const maxSummaryWords = 8

type TableWriter struct {
	Output io.Writer
}

func (w TableWriter) Write(batch types.AdvisoryBatch) error {
	t := table.NewWriter()
	t.AppendHeader(table.Row{"#", "ID", "Severity", "Score", "Vector", "Summary"})

	for i, adv := range batch {
		score := notApplicable
		if s, ok := cvssScore(lo.FromPtr(adv.CVSSVector)); ok {
			score = fmt.Sprintf("%.1f", s)
		}
		t.AppendRow(table.Row{
			i + 1,
			adv.ID,
			ghsa.SeverityFromThreat(adv.Severity).Colorize(adv.Severity),
			score,
			lo.FromPtrOr(adv.CVSSVector, notApplicable),
			shorten(adv.Summary),
		})
	}
	t.AppendFooter(table.Row{"", "", "", "", "Total", len(batch)})

	_, err := fmt.Fprintln(w.Output, t.Render())
	return err
}

func shorten(summary string) string {
	words := strings.Fields(summary)
	if len(words) <= maxSummaryWords {
		return summary
	}
	return strings.Join(words[:maxSummaryWords], " ") + " ..."
}
