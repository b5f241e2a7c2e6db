package ghsa

import (
	"encoding/json"
	"strings"

	"github.com/samber/lo"
	"golang.org/x/xerrors"

	"github.com/aquasecurity/ghsa-feed/pkg/types"
)

// Parse maps a securityAdvisories response body to an AdvisoryBatch.
// Either every edge is mapped or a DeserializationError is returned.
func Parse(body []byte) (types.AdvisoryBatch, error) {
	var res Response
	if err := json.Unmarshal(body, &res); err != nil {
		return nil, &types.DeserializationError{Err: xerrors.Errorf("json decode error: %w", err)}
	}

	edges, err := res.edges()
	if err != nil {
		if len(res.Errors) > 0 {
			err = xerrors.Errorf("%v (upstream errors: %s)", err, upstreamMessages(res.Errors))
		}
		return nil, &types.DeserializationError{Err: err}
	}

	batch := lo.Map(edges, func(e Edge, _ int) types.Advisory {
		return types.Advisory{
			ID:         *e.Node.GhsaID,
			Summary:    *e.Node.Summary,
			Severity:   *e.Node.Severity,
			CVSSVector: e.Node.CVSS.VectorString,
		}
	})
	return batch, nil
}

// edges returns the advisory edges once every required field is present.
func (r Response) edges() ([]Edge, error) {
	switch {
	case r.Data == nil:
		return nil, xerrors.New("missing field: data")
	case r.Data.SecurityAdvisories == nil:
		return nil, xerrors.New("missing field: data.securityAdvisories")
	case r.Data.SecurityAdvisories.Edges == nil:
		return nil, xerrors.New("missing field: data.securityAdvisories.edges")
	}

	edges := r.Data.SecurityAdvisories.Edges
	if len(edges) > PageSize {
		return nil, xerrors.Errorf("got %d advisories, more than the requested %d", len(edges), PageSize)
	}

	for i, e := range edges {
		if field := missingField(e.Node); field != "" {
			return nil, xerrors.Errorf("edge %d: missing field: %s", i, field)
		}
	}
	return edges, nil
}

func missingField(n *Node) string {
	switch {
	case n == nil:
		return "node"
	case n.GhsaID == nil:
		return "node.ghsaId"
	case n.Summary == nil:
		return "node.summary"
	case n.Severity == nil:
		return "node.severity"
	case n.CVSS == nil:
		return "node.cvss"
	}
	return ""
}

func upstreamMessages(errs []GraphQLError) string {
	return strings.Join(lo.Map(errs, func(e GraphQLError, _ int) string {
		return e.Message
	}), "; ")
}
