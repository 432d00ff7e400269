package service

import (
	"context"
	"io"
	"log/slog"
	"time"
)

// UseCaseEvent describes one completed service call: what ran, how long
// it took, and whether it returned an error. Fields carry call-specific
// detail such as the tier a check-in resolved to.
type UseCaseEvent struct {
	Name      string
	StartedAt time.Time
	Duration  time.Duration
	Success   bool
	Err       error
	Fields    map[string]any
}

// UseCaseObserver is notified after every service call.
type UseCaseObserver interface {
	ObserveUseCase(ctx context.Context, event UseCaseEvent)
}

// NoopUseCaseObserver discards events. It is the default when no
// observer is supplied.
type NoopUseCaseObserver struct{}

func (NoopUseCaseObserver) ObserveUseCase(context.Context, UseCaseEvent) {}

// NewLogUseCaseObserver returns an observer that emits one slog line
// per event to w. A nil writer yields the noop observer.
func NewLogUseCaseObserver(w io.Writer) UseCaseObserver {
	if w == nil {
		return NoopUseCaseObserver{}
	}
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo})
	return &slogUseCaseObserver{logger: slog.New(handler)}
}

type slogUseCaseObserver struct {
	logger *slog.Logger
}

func (o *slogUseCaseObserver) ObserveUseCase(ctx context.Context, event UseCaseEvent) {
	attrs := []any{
		"use_case", event.Name,
		"duration_ms", event.Duration.Milliseconds(),
		"success", event.Success,
	}
	for k, v := range event.Fields {
		attrs = append(attrs, k, v)
	}
	if event.Err != nil {
		o.logger.ErrorContext(ctx, "use_case", append(attrs, "error", event.Err.Error())...)
		return
	}
	o.logger.InfoContext(ctx, "use_case", attrs...)
}

func useCaseObserverOrNoop(observers []UseCaseObserver) UseCaseObserver {
	for _, obs := range observers {
		if obs != nil {
			return obs
		}
	}
	return NoopUseCaseObserver{}
}
