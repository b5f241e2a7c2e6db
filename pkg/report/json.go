package report

import (
	"encoding/json"
	"io"

	"github.com/aquasecurity/ghsa-feed/pkg/types"
)

type JSONWriter struct {
	Output io.Writer
}

func (w JSONWriter) Write(batch types.AdvisoryBatch) error {
	if batch == nil {
		batch = types.AdvisoryBatch{}
	}

	enc := json.NewEncoder(w.Output)
	enc.SetIndent("", "  ")

	type output struct {
		Count      int                 `json:"count"`
		Advisories types.AdvisoryBatch `json:"advisories"`
	}
	return enc.Encode(output{
		Count:      len(batch),
		Advisories: batch,
	})
}
