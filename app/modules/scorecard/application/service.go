package scorecardservice

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	coursedb "github.com/fairway-crew/tripbot/app/modules/course/infrastructure/repositories"
	scorecardevents "github.com/fairway-crew/tripbot/app/modules/scorecard/domain/events"
	scorecarddb "github.com/fairway-crew/tripbot/app/modules/scorecard/infrastructure/repositories"
	"github.com/fairway-crew/tripbot/app/eventbus"
	"github.com/fairway-crew/tripbot/app/shared/attr"
)

// holesPerRound is fixed at a full 18; the course seed guarantees it.
const holesPerRound = 18

// ScorecardService implements the Service interface.
type ScorecardService struct {
	repo     scorecarddb.Repository
	courses  coursedb.Repository
	eventBus eventbus.EventBus
	logger   *slog.Logger
	metrics  Metrics
	tracer   trace.Tracer
}

var _ Service = (*ScorecardService)(nil)

// NewScorecardService creates a new ScorecardService.
func NewScorecardService(
	repo scorecarddb.Repository,
	courses coursedb.Repository,
	eventBus eventbus.EventBus,
	logger *slog.Logger,
	metrics Metrics,
	tracer trace.Tracer,
) *ScorecardService {
	return &ScorecardService{
		repo:     repo,
		courses:  courses,
		eventBus: eventBus,
		logger:   logger,
		metrics:  metrics,
		tracer:   tracer,
	}
}

// withTelemetry wraps a service operation with tracing, metrics, and panic recovery.
func withTelemetry[T any](
	s *ScorecardService,
	ctx context.Context,
	operationName string,
	op func(ctx context.Context) (T, error),
	attrs ...attribute.KeyValue,
) (result T, err error) {
	ctx, span := s.tracer.Start(ctx, operationName, trace.WithAttributes(
		append(attrs, attribute.String("operation", operationName))...,
	))
	defer span.End()

	s.metrics.RecordOperationAttempt(ctx, operationName)

	startTime := time.Now()
	defer func() {
		s.metrics.RecordOperationDuration(ctx, operationName, time.Since(startTime))
	}()

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic in %s: %v", operationName, r)
			s.logger.ErrorContext(ctx, "Critical panic recovered",
				attr.String("operation", operationName),
				attr.ExtractCorrelationID(ctx),
				attr.Error(err),
			)
			s.metrics.RecordOperationFailure(ctx, operationName)
			span.RecordError(err)
		}
	}()

	result, err = op(ctx)
	if err != nil {
		wrappedErr := fmt.Errorf("%s: %w", operationName, err)
		s.logger.ErrorContext(ctx, "Operation failed",
			attr.ExtractCorrelationID(ctx),
			attr.String("operation", operationName),
			attr.Error(wrappedErr),
		)
		s.metrics.RecordOperationFailure(ctx, operationName)
		span.RecordError(wrappedErr)
		return result, wrappedErr
	}

	s.metrics.RecordOperationSuccess(ctx, operationName)
	return result, nil
}

// publishHoleScoreUpdated emits a refresh hint. Publishing is best-effort: scoring
// must not fail because the in-process bus is shutting down.
func (s *ScorecardService) publishHoleScoreUpdated(ctx context.Context, scorecard *scorecarddb.Scorecard, payload scorecardevents.HoleScoreUpdatedPayload) {
	if s.eventBus == nil {
		return
	}
	if err := s.eventBus.Publish(scorecardevents.TopicHoleScoreUpdated, payload); err != nil {
		s.logger.WarnContext(ctx, "Failed to publish hole score update",
			attr.ScorecardID("scorecard_id", scorecard.ID),
			attr.ExtractCorrelationID(ctx),
			attr.Error(err),
		)
	}
}
