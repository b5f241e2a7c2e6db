package report

import (
	"io"

	"golang.org/x/xerrors"

	"github.com/aquasecurity/ghsa-feed/pkg/types"
)

const (
	FormatText  = "text"
	FormatTable = "table"
	FormatJSON  = "json"

	// printed when an advisory has no CVSS vector
	notApplicable = "N/A"
)

var Formats = []string{FormatText, FormatTable, FormatJSON}

type Writer interface {
	Write(batch types.AdvisoryBatch) error
}

func NewWriter(format string, output io.Writer) (Writer, error) {
	switch format {
	case FormatText:
		return TextWriter{Output: output}, nil
	case FormatTable:
		return TableWriter{Output: output}, nil
	case FormatJSON:
		return JSONWriter{Output: output}, nil
	}
	return nil, &types.ConfigurationError{Err: xerrors.Errorf("unknown format %q, expected one of %v", format, Formats)}
}
