package effects

import effectmodel "github.com/on-the-ground/advent_ive_go/effects/internal/model"

// EffectEnum identifies an effect; handlers are registered in the context under it.
type EffectEnum = effectmodel.EffectEnum

// EffectScopeConfig sizes the queues and worker count of a partitionable handler.
type EffectScopeConfig = effectmodel.EffectScopeConfig

// Partitionable payloads are routed to a worker by the hash of their PartitionKey.
type Partitionable = effectmodel.Partitionable

var ErrNoEffectHandler = effectmodel.ErrNoEffectHandler

func NewEffectScopeConfig(bufferSize, numWorkers int) EffectScopeConfig {
	return effectmodel.NewEffectScopeConfig(bufferSize, numWorkers)
}
