package filtering

import (
	"context"
	"strings"

	"github.com/spigell/resume-analyzer/internal/catalog"
	"github.com/spigell/resume-analyzer/internal/matching"
	"go.uber.org/zap"
)

type companiesFilter struct {
	toggle
	companies []string
	logger    *zap.Logger
}

// NewExcludedCompanies creates a filter that removes postings of the given companies.
func NewExcludedCompanies(companies []string, logger *zap.Logger) Filter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &companiesFilter{companies: companies, logger: logger}
}

func (f *companiesFilter) Name() string { return "companies" }

func (f *companiesFilter) Validate() error { return nil }

func (f *companiesFilter) Apply(_ context.Context, m *matching.Matches) (*matching.Matches, Step, error) {
	initial := m.Len()
	if len(f.companies) == 0 {
		return m, Step{Initial: initial, Dropped: 0, Left: m.Len()}, nil
	}

	excluded := m.Exclude(catalog.PostingCompanyField, f.companies)
	if len(excluded) > 0 {
		f.logger.Info("excluding postings by companies",
			zap.Strings("excluded_companies", f.companies),
			zap.Strings("excluded_postings", excluded),
			zap.Int("postings_left", m.Len()),
		)
	}

	return m, Step{Initial: initial, Dropped: len(excluded), Left: m.Len()}, nil
}

func (f *companiesFilter) Status() Status {
	details := map[string]string{}
	if len(f.companies) > 0 {
		details["companies"] = strings.Join(f.companies, ",")
	}
	return Status{Name: f.Name(), Enabled: f.IsEnabled(), Reason: f.reason, Details: details}
}
