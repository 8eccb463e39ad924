package filtering

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/spigell/resume-analyzer/internal/catalog"
	"github.com/spigell/resume-analyzer/internal/matching"
	"go.uber.org/zap"
)

type excludeFileFilter struct {
	toggle
	path   string
	logger *zap.Logger
}

// NewExcludeFile creates a filter that removes postings listed in the exclude file.
// A missing file excludes nothing.
func NewExcludeFile(path string, logger *zap.Logger) Filter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &excludeFileFilter{path: strings.TrimSpace(path), logger: logger}
}

func (f *excludeFileFilter) Name() string { return "exclude_file" }

func (f *excludeFileFilter) Validate() error { return nil }

func (f *excludeFileFilter) Apply(_ context.Context, m *matching.Matches) (*matching.Matches, Step, error) {
	initial := m.Len()
	if f.path == "" {
		return m, Step{Initial: initial, Dropped: 0, Left: m.Len()}, nil
	}

	excluded, err := catalog.GetExcludedFromFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		f.logger.Debug("exclude file does not exist yet", zap.String("path", f.path))
		return m, Step{Initial: initial, Dropped: 0, Left: m.Len()}, nil
	}
	if err != nil {
		return m, Step{}, fmt.Errorf("getting excluded postings from file: %w", err)
	}

	removed := m.Exclude(catalog.PostingIDField, excluded.IDs())
	if len(removed) > 0 {
		f.logger.Info("excluding postings based on exclude file",
			zap.String("path", f.path),
			zap.Strings("excluded_postings", removed),
			zap.Int("postings_left", m.Len()),
		)
	}

	return m, Step{Initial: initial, Dropped: len(removed), Left: m.Len()}, nil
}

func (f *excludeFileFilter) Status() Status {
	details := map[string]string{}
	if f.path != "" {
		details["path"] = f.path
	}
	return Status{Name: f.Name(), Enabled: f.IsEnabled(), Reason: f.reason, Details: details}
}
