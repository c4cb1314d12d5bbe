package handlers

import (
	"context"
	"sync"

	effectmodel "github.com/on-the-ground/advent_ive_go/effects/internal/model"
)

// WorkerDispatcher hands out the queue a message has to be sent on.
type WorkerDispatcher[T any] interface {
	GetChannelOf(msg T) chan T
}

// queues is a set of buffered channels, each drained by its own worker.
// route picks the channel of a message among n.
type queues[T any] struct {
	chs   []chan T
	route func(msg T, n int) int
}

func (q queues[T]) GetChannelOf(msg T) chan T {
	return q.chs[q.route(msg, len(q.chs))]
}

// NewSingleQueue starts one worker; messages are handled in send order.
func NewSingleQueue[T any](
	ctx context.Context,
	bufferSize int,
	handleFn func(context.Context, T),
) WorkerDispatcher[T] {
	return startQueues(ctx, 1, bufferSize, handleFn, func(T, int) int { return 0 })
}

// NewPartitionedQueue starts numWorkers workers. Messages sharing a
// PartitionKey always land on the same worker and are handled in send order.
func NewPartitionedQueue[T effectmodel.Partitionable](
	ctx context.Context,
	numWorkers, bufferSize int,
	handleFn func(context.Context, T),
) WorkerDispatcher[T] {
	return startQueues(ctx, numWorkers, bufferSize, handleFn, func(msg T, n int) int {
		return getIndexByHash(msg, n)
	})
}

// startQueues returns once every worker is running. Workers stop when ctx is
// done; whatever is still buffered then is left unhandled.
func startQueues[T any](
	ctx context.Context,
	numWorkers, bufferSize int,
	handleFn func(context.Context, T),
	route func(T, int) int,
) queues[T] {
	q := queues[T]{chs: make([]chan T, numWorkers), route: route}

	var running sync.WaitGroup
	running.Add(numWorkers)
	for i := range q.chs {
		q.chs[i] = make(chan T, bufferSize)
		go func(ch <-chan T) {
			running.Done()
			work(ctx, ch, handleFn)
		}(q.chs[i])
	}
	running.Wait()
	return q
}

func work[T any](ctx context.Context, ch <-chan T, handleFn func(context.Context, T)) {
	for {
		select {
		case <-ctx.Done():
			return
		case msg := <-ch:
			handleFn(ctx, msg)
		}
	}
}
