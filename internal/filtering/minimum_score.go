package filtering

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spigell/resume-analyzer/internal/matching"
	"go.uber.org/zap"
)

type minimumScoreFilter struct {
	toggle
	minimum float64
	logger  *zap.Logger
}

// NewMinimumScore creates a filter that drops matches scoring below minimum.
func NewMinimumScore(minimum float64, logger *zap.Logger) Filter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &minimumScoreFilter{minimum: minimum, logger: logger}
}

func (f *minimumScoreFilter) Name() string { return "minimum_score" }

func (f *minimumScoreFilter) Validate() error {
	if f.minimum < 0 || f.minimum > 100 {
		return fmt.Errorf("minimum score must be within 0-100, got %v", f.minimum)
	}
	return nil
}

func (f *minimumScoreFilter) Apply(_ context.Context, m *matching.Matches) (*matching.Matches, Step, error) {
	initial := m.Len()
	if f.minimum <= 0 {
		return m, Step{Initial: initial, Dropped: 0, Left: m.Len()}, nil
	}

	dropped := m.Keep(func(match *matching.JobMatch) bool {
		return match.MatchScore >= f.minimum
	})
	if len(dropped) > 0 {
		f.logger.Info("excluding postings below minimum score",
			zap.Float64("minimum_score", f.minimum),
			zap.Strings("excluded_postings", dropped),
			zap.Int("postings_left", m.Len()),
		)
	}

	return m, Step{Initial: initial, Dropped: len(dropped), Left: m.Len()}, nil
}

func (f *minimumScoreFilter) Status() Status {
	return Status{
		Name:    f.Name(),
		Enabled: f.IsEnabled(),
		Reason:  f.reason,
		Details: map[string]string{"minimum_score": strconv.FormatFloat(f.minimum, 'f', 1, 64)},
	}
}
