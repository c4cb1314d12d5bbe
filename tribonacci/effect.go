package tribonacci

import (
	"context"
	"strconv"

	"github.com/on-the-ground/advent_ive_go/effects"
)

// EffectTribonacci is the enum the tribonacci handler is registered under.
const EffectTribonacci effects.EffectEnum = "advent_ive_go_effect_enum_tribonacci"

// Payload is the index requested through the tribonacci effect.
type Payload uint64

// PartitionKey routes every request for the same index to the same worker.
func (p Payload) PartitionKey() string {
	return strconv.FormatUint(uint64(p), 10)
}

// WithEffectHandler registers a resumable, partitionable handler answering
// tribonacci effects from ev. The end function closes the handler and returns
// the parent context; ev and its cache outlive the handler.
func WithEffectHandler(
	ctx context.Context,
	config effects.EffectScopeConfig,
	ev *Evaluator,
) (context.Context, func() context.Context) {
	return effects.WithResumablePartitionableEffectHandler(
		ctx,
		config,
		EffectTribonacci,
		func(_ context.Context, p Payload) (uint64, error) {
			return ev.Evaluate(uint64(p))
		},
	)
}

// Effect asks the handler in ctx for value(n) and waits for the answer.
// Panics if no handler is registered.
func Effect(ctx context.Context, n uint64) (uint64, error) {
	return effects.AwaitResumableEffect[Payload, uint64](ctx, EffectTribonacci, Payload(n))
}

// Resolve uses the handler in ctx when there is one and ev otherwise.
func Resolve(ctx context.Context, ev *Evaluator, n uint64) (uint64, error) {
	if effects.HasEffectHandler(ctx, EffectTribonacci) {
		return Effect(ctx, n)
	}
	return ev.Evaluate(n)
}
