package observability

import (
	"context"
	"log/slog"

	"github.com/aretw0/markov/pkg/domain"
)

// LogHooks logs walk boundaries at Info and every step at Debug.
func LogHooks(logger *slog.Logger) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnWalkStart: func(ctx context.Context, e *domain.WalkEvent) {
			logger.InfoContext(ctx, "walk_start", "walk_id", e.WalkID, "max_length", e.MaxLength)
		},
		OnStep: func(ctx context.Context, e *domain.StepEvent) {
			logger.DebugContext(ctx, "step",
				"walk_id", e.WalkID,
				"step", e.Step,
				"index", e.Index,
				"terminal", e.Terminal,
			)
		},
		OnWalkEnd: func(ctx context.Context, e *domain.WalkEvent) {
			logger.InfoContext(ctx, "walk_end",
				"walk_id", e.WalkID,
				"length", e.Length,
				"reason", e.Reason,
			)
		},
	}
}

// Merge returns hooks that call each of the given hooks in order.
// Nil callbacks are skipped.
func Merge(hooks ...domain.LifecycleHooks) domain.LifecycleHooks {
	var merged domain.LifecycleHooks
	for _, h := range hooks {
		merged.OnWalkStart = chainWalk(merged.OnWalkStart, h.OnWalkStart)
		merged.OnStep = chainStep(merged.OnStep, h.OnStep)
		merged.OnWalkEnd = chainWalk(merged.OnWalkEnd, h.OnWalkEnd)
	}
	return merged
}

func chainWalk(a, b func(context.Context, *domain.WalkEvent)) func(context.Context, *domain.WalkEvent) {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	return func(ctx context.Context, e *domain.WalkEvent) {
		a(ctx, e)
		b(ctx, e)
	}
}

func chainStep(a, b func(context.Context, *domain.StepEvent)) func(context.Context, *domain.StepEvent) {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	return func(ctx context.Context, e *domain.StepEvent) {
		a(ctx, e)
		b(ctx, e)
	}
}
