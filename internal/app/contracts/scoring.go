package contracts

import (
	"context"

	"github.com/cperault/clinical-screener-backend/internal/pkg/dto/requests"
)

// ScoringService maps a validated answer set to the list of triggered
// follow-up assessments. The returned slice is deduplicated, never nil, and
// deterministically ordered.
type ScoringService interface {
	CalculateResults(ctx context.Context, answers []requests.ScreenerAnswer) ([]string, error)
}
