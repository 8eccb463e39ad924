package filtering

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spigell/resume-analyzer/internal/matching"
	"go.uber.org/zap"
)

type topNFilter struct {
	toggle
	n      int
	logger *zap.Logger
}

// NewTopN creates a filter that keeps the first n matches. Zero keeps all.
func NewTopN(n int, logger *zap.Logger) Filter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &topNFilter{n: n, logger: logger}
}

func (f *topNFilter) Name() string { return "top_n" }

func (f *topNFilter) Validate() error {
	if f.n < 0 {
		return fmt.Errorf("top n must not be negative, got %d", f.n)
	}
	return nil
}

func (f *topNFilter) Apply(_ context.Context, m *matching.Matches) (*matching.Matches, Step, error) {
	initial := m.Len()
	if f.n > 0 && f.n < initial {
		dropped := make([]string, 0, initial-f.n)
		for _, match := range m.Items[f.n:] {
			dropped = append(dropped, match.ID)
		}
		m.Items = m.Items[:f.n]

		f.logger.Debug("cutting matches to top n",
			zap.Int("top_n", f.n),
			zap.Strings("excluded_postings", dropped),
		)
	}
	return m, Step{Initial: initial, Dropped: initial - m.Len(), Left: m.Len()}, nil
}

func (f *topNFilter) Status() Status {
	return Status{
		Name:    f.Name(),
		Enabled: f.IsEnabled(),
		Reason:  f.reason,
		Details: map[string]string{"top_n": strconv.Itoa(f.n)},
	}
}
