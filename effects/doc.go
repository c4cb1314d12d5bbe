// Package effects provides the small effect system the puzzle runner is built on.
//
// Side effects such as logging, configuration lookup and shared caches are
// delegated to handlers registered in a context.Context, so solvers stay pure
// and testable: a test installs the handlers it needs and nothing else.
//
// # How does it work?
//
// Handlers are registered via `WithXxxEffectHandler(ctx)` and perform effects
// through `PerformResumableEffect`, `FireAndForgetEffect`, etc.
// Every registration returns the extended context and an end function that
// closes the handler and hands back the parent context.
//
// Resumable handlers answer each payload on its own result channel.
// Partitionable handlers spread payloads over several workers by the xxhash of
// the payload's PartitionKey, so payloads sharing a key are handled in order.
//
// Example:
//
//	func run(ctx context.Context) {
//	    ctx, end := log.WithZapEffectHandler(ctx, 16, zap.NewExample())
//	    defer end()
//
//	    log.Effect(ctx, log.LogInfo, "hello", nil)
//	}
package effects
