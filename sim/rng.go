package sim

import (
	"fmt"
	"math/rand"
)

// === SimulationKey ===

// SimulationKey uniquely identifies a reproducible workload.
// Two workloads generated from the same SimulationKey and parameters
// MUST produce identical burst sequences.
type SimulationKey int64

// NewSimulationKey creates a SimulationKey from a seed value.
func NewSimulationKey(seed int64) SimulationKey {
	return SimulationKey(seed)
}

// === Subsystem Constants ===

const (
	// SubsystemWorkload is the RNG subsystem for burst generation.
	// Uses master seed directly.
	SubsystemWorkload = "workload"
)

// === PartitionedRNG ===

// PartitionedRNG provides deterministic RNG instances per subsystem.
// SubsystemWorkload is seeded with the master seed directly, so a workload
// seed alone reproduces its bursts.
//
// Thread-safety: NOT thread-safe. Must be called from single goroutine.
type PartitionedRNG struct {
	key        SimulationKey
	subsystems map[string]*rand.Rand
}

// NewPartitionedRNG creates a PartitionedRNG from a SimulationKey.
func NewPartitionedRNG(key SimulationKey) *PartitionedRNG {
	return &PartitionedRNG{
		key:        key,
		subsystems: make(map[string]*rand.Rand),
	}
}

// ForSubsystem returns a deterministically-seeded RNG for the named subsystem.
// The same subsystem name always returns the same *rand.Rand instance (cached).
// Panics on an unknown subsystem name; never returns nil.
func (p *PartitionedRNG) ForSubsystem(name string) *rand.Rand {
	if rng, ok := p.subsystems[name]; ok {
		return rng
	}
	if name != SubsystemWorkload {
		panic(fmt.Sprintf("ForSubsystem: unknown subsystem %q", name))
	}

	rng := rand.New(rand.NewSource(int64(p.key)))
	p.subsystems[name] = rng
	return rng
}

// Key returns the SimulationKey used to create this PartitionedRNG.
func (p *PartitionedRNG) Key() SimulationKey {
	return p.key
}
