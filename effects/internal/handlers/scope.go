package handlers

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrScopeClosed is reported to callers that perform an effect on a handler
// whose scope has already ended.
var ErrScopeClosed = errors.New("effect scope closed")

// effectScope owns the dispatcher goroutines of one handler registration.
//
// Close is meant to be called once, by the goroutine that registered the
// handler. Performing effects from many goroutines is fine; closing is not.
type effectScope[T any] struct {
	EffectId   string
	dispatcher WorkerDispatcher[T]
	done       <-chan struct{}
	closeFn    func()
	closed     bool
}

func (es *effectScope[T]) Close() {
	if !es.closed {
		es.closeFn()
		es.closed = true
		zap.L().Debug("effect scope closed", zap.String("effectId", es.EffectId))
	}
}

// send enqueues msg unless the caller or the scope is done first.
func (es *effectScope[T]) send(ctx context.Context, msg T) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-es.done:
		return ErrScopeClosed
	default:
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-es.done:
		return ErrScopeClosed
	case es.dispatcher.GetChannelOf(msg) <- msg:
		return nil
	}
}

// newEffectScope derives the scope context from ctx and starts the dispatcher
// built by newDispatcher on it. Closing the scope cancels that context before
// running teardown.
func newEffectScope[T any](
	ctx context.Context,
	newDispatcher func(context.Context) WorkerDispatcher[T],
	teardown func(),
) *effectScope[T] {
	scopeCtx, cancelFn := context.WithCancel(ctx)
	return &effectScope[T]{
		EffectId:   uuid.New().String(),
		dispatcher: newDispatcher(scopeCtx),
		done:       scopeCtx.Done(),
		closeFn: func() {
			cancelFn()
			teardown()
		},
		closed: false,
	}
}
