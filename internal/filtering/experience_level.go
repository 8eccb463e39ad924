package filtering

import (
	"context"
	"strings"

	"github.com/spigell/resume-analyzer/internal/matching"
	"go.uber.org/zap"
)

type experienceLevelFilter struct {
	toggle
	levels map[string]struct{}
	names  []string
	logger *zap.Logger
}

// NewExperienceLevel creates a filter that keeps only postings of the given levels.
// An empty list keeps everything.
func NewExperienceLevel(levels []string, logger *zap.Logger) Filter {
	if logger == nil {
		logger = zap.NewNop()
	}
	f := &experienceLevelFilter{levels: make(map[string]struct{}, len(levels)), logger: logger}
	for _, level := range levels {
		level = strings.ToLower(strings.TrimSpace(level))
		if level == "" {
			continue
		}
		f.levels[level] = struct{}{}
		f.names = append(f.names, level)
	}
	return f
}

func (f *experienceLevelFilter) Name() string { return "experience_level" }

func (f *experienceLevelFilter) Validate() error { return nil }

func (f *experienceLevelFilter) Apply(_ context.Context, m *matching.Matches) (*matching.Matches, Step, error) {
	initial := m.Len()
	if len(f.levels) == 0 {
		return m, Step{Initial: initial, Dropped: 0, Left: m.Len()}, nil
	}

	dropped := m.Keep(func(match *matching.JobMatch) bool {
		_, ok := f.levels[strings.ToLower(match.ExperienceLevel)]
		return ok
	})
	if len(dropped) > 0 {
		f.logger.Info("excluding postings by experience level",
			zap.Strings("wanted_levels", f.names),
			zap.Strings("excluded_postings", dropped),
			zap.Int("postings_left", m.Len()),
		)
	}

	return m, Step{Initial: initial, Dropped: len(dropped), Left: m.Len()}, nil
}

func (f *experienceLevelFilter) Status() Status {
	details := map[string]string{}
	if len(f.names) > 0 {
		details["levels"] = strings.Join(f.names, ",")
	}
	return Status{Name: f.Name(), Enabled: f.IsEnabled(), Reason: f.reason, Details: details}
}
