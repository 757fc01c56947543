package app

import (
	"context"
	"time"

	"go.uber.org/zap"

	"toolbox/internal/domain"
	"toolbox/internal/infra/telemetry"
)

// Session is one opened tool. It may be run any number of times.
type Session struct {
	descriptor domain.ToolDescriptor
	tool       domain.Tool
	metrics    domain.Metrics
	logger     *zap.Logger
}

func newSession(descriptor domain.ToolDescriptor, tool domain.Tool, metrics domain.Metrics, logger *zap.Logger) *Session {
	return &Session{
		descriptor: descriptor,
		tool:       tool,
		metrics:    metrics,
		logger:     logger.With(telemetry.SlugField(descriptor.Slug)),
	}
}

func (s *Session) Descriptor() domain.ToolDescriptor {
	return s.descriptor
}

// Run executes the tool. Errors that do not already carry a code are
// reported as INTERNAL.
func (s *Session) Run(ctx context.Context, req domain.ToolRequest) (domain.ToolResult, error) {
	start := time.Now()
	result, err := s.tool.Run(ctx, req)
	duration := time.Since(start)

	if err != nil {
		if _, ok := domain.CodeFrom(err); !ok {
			err = domain.Wrap(domain.CodeInternal, "workspace.run", err)
		}
		s.metrics.ObserveToolRun(s.descriptor.Slug, domain.RunStatusError, duration)
		s.logger.Info("tool run failed",
			telemetry.EventField(telemetry.EventToolRunFailed),
			telemetry.DurationField(duration),
			zap.Error(err),
		)
		return domain.ToolResult{}, err
	}

	s.metrics.ObserveToolRun(s.descriptor.Slug, domain.RunStatusSuccess, duration)
	s.logger.Debug("tool run finished",
		telemetry.EventField(telemetry.EventToolRun),
		telemetry.DurationField(duration),
		zap.Int("attachmentBytes", len(result.Attachment)),
	)
	return result, nil
}
