package ai

import (
	"context"

	"github.com/spigell/resume-analyzer/internal/resume"
	"go.uber.org/zap"
)

// Guarded answers with the fallback whenever the primary assessor is
// missing or fails. Its Assess never returns an error.
type Guarded struct {
	primary  Assessor
	fallback Assessor
	logger   *zap.Logger
}

func Guard(primary, fallback Assessor, logger *zap.Logger) *Guarded {
	if fallback == nil {
		fallback = Fallback{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Guarded{primary: primary, fallback: fallback, logger: logger}
}

func (g *Guarded) Assess(ctx context.Context, record *resume.Record) (*AssessmentResult, error) {
	if g.primary == nil {
		g.logger.Debug("no assessment provider configured, using fallback")
		return g.useFallback(ctx, record)
	}

	result, err := g.primary.Assess(ctx, record)
	if err != nil {
		g.logger.Warn("assessment provider failed, using fallback", zap.Error(err))
		return g.useFallback(ctx, record)
	}
	if result == nil {
		g.logger.Warn("assessment provider returned no result, using fallback")
		return g.useFallback(ctx, record)
	}

	return result, nil
}

func (g *Guarded) useFallback(ctx context.Context, record *resume.Record) (*AssessmentResult, error) {
	result, err := g.fallback.Assess(ctx, record)
	if err != nil || result == nil {
		return Fallback{}.Assess(ctx, record)
	}
	return result, nil
}
