package ghsa

import (
	"context"

	"golang.org/x/xerrors"
	"k8s.io/utils/clock"

	"github.com/aquasecurity/ghsa-feed/pkg/log"
	"github.com/aquasecurity/ghsa-feed/pkg/types"
)

// Querier sends a GraphQL document and returns the raw response body.
type Querier interface {
	Query(ctx context.Context, document string) ([]byte, error)
}

type Fetcher struct {
	Clock  clock.Clock
	Client Querier
}

// Fetch retrieves the advisories published since yesterday with a single
// request. Any failure aborts the fetch; there is no retry.
func (f Fetcher) Fetch(ctx context.Context) (types.AdvisoryBatch, error) {
	logger := log.WithPrefix("ghsa")

	window := PublishedSince(f.Clock)
	query, err := BuildQuery(window)
	if err != nil {
		return nil, xerrors.Errorf("failed to build query: %w", err)
	}

	logger.Debug("Querying security advisories", log.String("published_since", window), log.Int("first", PageSize))
	body, err := f.Client.Query(ctx, query)
	if err != nil {
		return nil, xerrors.Errorf("failed to query advisories: %w", err)
	}

	batch, err := Parse(body)
	if err != nil {
		return nil, xerrors.Errorf("failed to parse advisories: %w", err)
	}
	logger.Info("Fetched security advisories", log.String("published_since", window), log.Int("count", len(batch)))

	return batch, nil
}

// SeverityFromThreat maps the GitHub advisory severity onto the common scale.
func SeverityFromThreat(urgency string) types.Severity {
	switch urgency {
	case "LOW":
		return types.SeverityLow
	case "MODERATE":
		return types.SeverityMedium
	case "HIGH":
		return types.SeverityHigh
	case "CRITICAL":
		return types.SeverityCritical
	default:
		return types.SeverityUnknown
	}
}
