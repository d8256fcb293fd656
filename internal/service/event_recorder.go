package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"oecd_explorer/internal/config"
	"oecd_explorer/internal/model"
	"oecd_explorer/internal/repository"
	"oecd_explorer/internal/util"
	"oecd_explorer/pkg/logger"
	"oecd_explorer/pkg/monitoring"
	"oecd_explorer/pkg/tracing"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// EventRecorder builds learning statements, appends them to the local log and
// forwards them to the configured record store without waiting for the outcome.
type EventRecorder struct {
	store   *StateStore
	events  repository.EventLogRepository
	emitter TelemetryEmitter
	cfg     config.TelemetryConfig

	now   func() time.Time
	newID func() string

	inflight sync.WaitGroup
}

func NewEventRecorder(store *StateStore, events repository.EventLogRepository, emitter TelemetryEmitter, cfg config.TelemetryConfig) *EventRecorder {
	return &EventRecorder{
		store:   store,
		events:  events,
		emitter: emitter,
		cfg:     cfg,
		now:     time.Now,
		newID:   func() string { return uuid.New().String() },
	}
}

func (r *EventRecorder) CourseActivity() model.Activity {
	return model.NewActivity(r.cfg.ActivityBase, r.cfg.CourseName)
}

func (r *EventRecorder) ModuleActivity(m model.CatalogModule) model.Activity {
	return model.NewActivity(
		fmt.Sprintf("%s/chapter/%d", r.cfg.ActivityBase, m.ID),
		fmt.Sprintf("Chapter %d: %s", m.ID, m.Title),
	)
}

func (r *EventRecorder) QuizActivity(m model.CatalogModule) model.Activity {
	return model.NewActivity(
		fmt.Sprintf("%s/chapter/%d/quiz", r.cfg.ActivityBase, m.ID),
		fmt.Sprintf("Chapter %d Quiz", m.ID),
	)
}

// BuildStatement 构建标准化语句；仅在提供分数时附带 result
func (r *EventRecorder) BuildStatement(actor model.Identity, verb model.Verb, object model.Activity, score *float64) model.Statement {
	stmt := model.Statement{
		ID:      r.newID(),
		Version: model.StatementVersion,
		Actor: model.Actor{
			Mbox:       fmt.Sprintf("mailto:%s@%s", util.MailboxLocalPart(actor.Name), r.cfg.MailboxDomain),
			Name:       actor.Name,
			ObjectType: model.ObjectTypeAgent,
		},
		Verb:   verb,
		Object: object,
	}
	if score != nil {
		stmt.Result = &model.Result{Score: model.Score{Raw: *score, Min: 0, Max: 100}}
	}
	return stmt
}

// Record is a no-op without an actor. Local append and remote emission failures are
// logged and never returned.
func (r *EventRecorder) Record(ctx context.Context, actor *model.Identity, verb model.Verb, object model.Activity, score *float64) {
	if actor == nil {
		return
	}

	stmt := r.BuildStatement(*actor, verb, object, score)
	record := model.EventRecord{RecordedAt: r.now().UTC(), Statement: stmt}

	if err := r.events.Append(ctx, record); err != nil {
		logger.Log.Warn("Unable to write telemetry record", zap.String("verb", verb.Label()), zap.Error(err))
	} else {
		monitoring.EventsRecorded.WithLabelValues(verb.Label()).Inc()
	}

	integration := r.store.Integration()
	if !integration.EmissionEnabled() || r.emitter == nil {
		monitoring.TelemetryEmissions.WithLabelValues("simulated", "skipped").Inc()
		logger.Log.Info("Statement recorded (emission disabled)",
			zap.String("verb", verb.Label()),
			zap.String("object", object.ID),
		)
		return
	}

	// 请求结束后仍需发送，只继承追踪上下文
	emitCtx := trace.ContextWithSpanContext(context.Background(), trace.SpanContextFromContext(ctx))
	r.inflight.Add(1)
	go func() {
		defer r.inflight.Done()
		r.emit(emitCtx, integration, stmt)
	}()
}

func (r *EventRecorder) emit(ctx context.Context, integration model.IntegrationConfig, stmt model.Statement) {
	ctx, cancel := context.WithTimeout(ctx, r.cfg.Timeout)
	defer cancel()

	ctx, span := tracing.Tracer.Start(ctx, "lrs.emit")
	span.SetAttributes(
		attribute.String("xapi.verb", stmt.Verb.ID),
		attribute.String("xapi.object", stmt.Object.ID),
	)
	defer span.End()

	if err := r.emitter.Emit(ctx, integration, stmt); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		monitoring.TelemetryEmissions.WithLabelValues("remote", "error").Inc()
		logger.Log.Warn("Statement emission failed",
			zap.String("statement", stmt.ID),
			zap.String("endpoint", integration.Endpoint),
			zap.Error(err),
		)
		return
	}
	monitoring.TelemetryEmissions.WithLabelValues("remote", "ok").Inc()
	logger.Log.Debug("Statement emitted", zap.String("statement", stmt.ID))
}

// Wait blocks until every in-flight emission has finished.
func (r *EventRecorder) Wait() {
	r.inflight.Wait()
}

func (r *EventRecorder) Events(ctx context.Context) ([]model.EventRecord, error) {
	return r.events.List(ctx)
}

func (r *EventRecorder) ReplaceLog(ctx context.Context, records []model.EventRecord) error {
	return r.events.Replace(ctx, records)
}
