package handlers

import (
	"context"

	"go.uber.org/zap"
)

func NewFireAndForgetHandler[T any](
	ctx context.Context,
	bufferSize int,
	handleFn func(context.Context, T),
	teardown func(),
) FireAndForgetHandler[T] {
	return FireAndForgetHandler[T]{
		effectScope: newEffectScope(
			ctx,
			func(ctx context.Context) WorkerDispatcher[T] {
				return NewSingleQueue(ctx, bufferSize, handleFn)
			},
			teardown,
		),
	}
}

type FireAndForgetHandler[T any] struct {
	*effectScope[T]
}

// FireAndForgetEffect enqueues payload without waiting for it to be handled.
// Payloads that cannot be enqueued are dropped.
func (ffh FireAndForgetHandler[T]) FireAndForgetEffect(ctx context.Context, payload T) {
	if err := ffh.send(ctx, payload); err != nil {
		zap.L().Debug(
			"dropped fire-and-forget effect",
			zap.String("effectId", ffh.EffectId),
			zap.Error(err),
		)
	}
}
