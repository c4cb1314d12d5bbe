package concurrency

import (
	"context"
	"fmt"
	"sync"

	"github.com/on-the-ground/advent_ive_go/effects"
	"github.com/on-the-ground/advent_ive_go/effects/log"
)

const EffectConcurrency effects.EffectEnum = "advent_ive_go_effect_enum_concurrency"

// Payload is a batch of routines to start together.
type Payload []func(context.Context)

// WithEffectHandler installs a concurrency effect handler.
//
// Routines started through Effect run on contexts derived from ctx, so they
// see every handler registered before this one and are cancelled with ctx.
// The returned end function blocks until every started routine has returned.
func WithEffectHandler(
	ctx context.Context,
	bufferSize int,
) (context.Context, func() context.Context) {
	sv := &supervisor{parent: ctx}
	return effects.WithResumableEffectHandler(
		ctx,
		bufferSize,
		EffectConcurrency,
		sv.spawn,
		sv.wait,
	)
}

// Effect starts fns concurrently and returns once they are all running.
// It does not wait for them to finish; ending the handler does.
func Effect(ctx context.Context, fns ...func(context.Context)) error {
	_, err := effects.AwaitResumableEffect[Payload, int](ctx, EffectConcurrency, fns)
	return err
}

// supervisor tracks the routines spawned by one handler.
type supervisor struct {
	parent context.Context
	wg     sync.WaitGroup
}

func (s *supervisor) spawn(_ context.Context, fns Payload) (int, error) {
	var started sync.WaitGroup
	for _, fn := range fns {
		s.wg.Add(1)
		started.Add(1)
		go func(f func(context.Context)) {
			defer s.wg.Done()
			defer func() {
				if r := recover(); r != nil {
					log.Effect(s.parent, log.LogError, "panic in child routine", map[string]interface{}{
						"error": fmt.Sprint(r),
					})
				}
			}()
			started.Done()

			childCtx, cancel := context.WithCancel(s.parent)
			defer cancel()
			f(childCtx)
		}(fn)
	}
	started.Wait()
	return len(fns), nil
}

func (s *supervisor) wait() {
	log.Effect(s.parent, log.LogDebug, "waiting for all routines to finish", nil)
	s.wg.Wait()
	log.Effect(s.parent, log.LogDebug, "all routines finished", nil)
}
