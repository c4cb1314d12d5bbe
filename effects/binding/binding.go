package binding

import (
	"context"
	"errors"
	"fmt"

	"github.com/on-the-ground/advent_ive_go/effects"
	effectmodel "github.com/on-the-ground/advent_ive_go/effects/internal/model"
)

// Payload defines a key-based lookup payload.
// Used as input to the Binding effect.
type Payload string

func (bp Payload) PartitionKey() string {
	return string(bp)
}

// ErrNoSuchKey is returned when neither this scope nor any upper scope binds the key.
var ErrNoSuchKey = errors.New("key not found")

// WithEffectHandler registers a resumable, partitionable effect handler for bindings.
//
//   - Accepts a key-value map used for lookups.
//   - Allows fallback to upper scopes if a key is not found locally.
//   - Returns a context with the effect handler registered.
//   - The end function closes the handler and returns the parent context.
func WithEffectHandler(
	ctx context.Context,
	config effectmodel.EffectScopeConfig,
	bindingMap map[string]any,
) (context.Context, func() context.Context) {
	bindingHandler := &bindingHandler{
		bindingMap: normalizeBindingMap(bindingMap),
	}
	return effects.WithResumablePartitionableEffectHandler(
		ctx,
		config,
		effectmodel.EffectBinding,
		bindingHandler.handle,
	)
}

// Effect performs a key-based lookup using the Binding effect handler.
//
// Returns either the value found or an error if the key is not found and no upper scope provides it.
func Effect(ctx context.Context, key string) (any, error) {
	return effects.AwaitResumableEffect[Payload, any](ctx, effectmodel.EffectBinding, Payload(key))
}

// normalizeBindingMap copies bm so later mutation by the caller is not observed.
func normalizeBindingMap(bm map[string]any) map[string]any {
	out := make(map[string]any, len(bm))
	for k, v := range bm {
		out[k] = v
	}
	return out
}

// delegateBindingEffect asks the handler of the upper scope, if there is one.
func delegateBindingEffect(upperCtx context.Context, key string) (res any, err error) {
	defer func() {
		if r := recover(); r != nil {
			if r, ok := r.(error); ok && errors.Is(r, effectmodel.ErrNoEffectHandler) {
				res = nil
				err = fmt.Errorf("%w: %s", ErrNoSuchKey, key)
				return
			}
			panic(r)
		}
	}()

	return Effect(upperCtx, key)
}

type bindingHandler struct {
	bindingMap map[string]any
}

// handle looks up the key in the local bindingMap.
// - If found: returns the value.
// - If not found: attempts to delegate the effect to an upper handler (if available).
// - Otherwise: returns a key-not-found error.
func (bh bindingHandler) handle(ctx context.Context, payload Payload) (any, error) {
	key := string(payload)
	v, ok := bh.bindingMap[key]
	if !ok {
		return delegateBindingEffect(ctx, key)
	}
	return v, nil
}
