package report

import (
	"fmt"
	"io"

	"github.com/samber/lo"

	"github.com/aquasecurity/ghsa-feed/pkg/types"
)

const separator = "+------------------------------+"

// TextWriter prints one block per advisory: ID, summary, CVSS vector and
// severity, each block closed by a separator line.
type TextWriter struct {
	Output io.Writer
}

func (w TextWriter) Write(batch types.AdvisoryBatch) error {
	if _, err := fmt.Fprintln(w.Output, separator); err != nil {
		return err
	}
	for _, adv := range batch {
		_, err := fmt.Fprintf(w.Output, "%s\n%s\n%s\n%s\n%s\n",
			adv.ID, adv.Summary, lo.FromPtrOr(adv.CVSSVector, notApplicable), adv.Severity, separator)
		if err != nil {
			return err
		}
	}
	return nil
}
