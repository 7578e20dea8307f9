// Package workload loads YAML workload specifications and resolves them into
// concrete burst sequences, either listed explicitly or generated from a seed.
package workload

import (
	"bytes"
	"fmt"
	"math"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/procsim/procsim/sim"
)

// WorkloadSpec is the top-level workload configuration.
// Loaded from YAML via LoadWorkloadSpec(path).
type WorkloadSpec struct {
	Version    string        `yaml:"version"`
	Seed       int64         `yaml:"seed"`
	Algorithms []string      `yaml:"algorithms"`
	Quantum    int64         `yaml:"quantum,omitempty"`
	Bursts     []int64       `yaml:"bursts,omitempty"`
	Generate   *GenerateSpec `yaml:"generate,omitempty"`
}

// GenerateSpec draws Count bursts uniformly from [MinBurst, MaxBurst].
type GenerateSpec struct {
	Count    int   `yaml:"count"`
	MinBurst int64 `yaml:"min_burst"`
	MaxBurst int64 `yaml:"max_burst"`
}

var validVersions = map[string]bool{"": true, "1": true}

// maxGenerateCount caps generate.count; larger workloads belong in an explicit bursts list.
const maxGenerateCount = 1 << 20

// LoadWorkloadSpec reads and parses a YAML workload specification file.
// Uses strict parsing: unrecognized keys (typos) are rejected.
func LoadWorkloadSpec(path string) (*WorkloadSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading workload spec: %w", err)
	}
	var spec WorkloadSpec
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&spec); err != nil {
		return nil, fmt.Errorf("parsing workload spec: %w", err)
	}
	if spec.Version == "" {
		spec.Version = "1"
	}
	return &spec, nil
}

// Validate checks that all fields in the spec are valid.
// Every failure wraps sim.ErrInvalidInput.
func (s *WorkloadSpec) Validate() error {
	if !validVersions[s.Version] {
		return fmt.Errorf("%w: unknown workload version %q", sim.ErrInvalidInput, s.Version)
	}
	if len(s.Algorithms) == 0 {
		return fmt.Errorf("%w: at least one algorithm required", sim.ErrInvalidInput)
	}
	for i, name := range s.Algorithms {
		if !sim.IsValidScheduler(name) {
			return fmt.Errorf("%w: algorithms[%d]: unknown scheduler %q; valid: fcfs, rr", sim.ErrInvalidInput, i, name)
		}
		if name != "fcfs" && s.Quantum <= 0 {
			return fmt.Errorf("%w: quantum must be positive for %s, got %d", sim.ErrInvalidInput, name, s.Quantum)
		}
	}
	hasBursts := len(s.Bursts) > 0
	if hasBursts == (s.Generate != nil) {
		return fmt.Errorf("%w: exactly one of bursts or generate is required", sim.ErrInvalidInput)
	}
	if s.Generate != nil {
		return s.Generate.validate()
	}
	return nil
}

func (g *GenerateSpec) validate() error {
	if g.Count <= 0 || g.Count > maxGenerateCount {
		return fmt.Errorf("%w: generate.count must be in [1, %d], got %d", sim.ErrInvalidInput, maxGenerateCount, g.Count)
	}
	if g.MinBurst < 0 {
		return fmt.Errorf("%w: generate.min_burst must be non-negative, got %d", sim.ErrInvalidInput, g.MinBurst)
	}
	if g.MaxBurst < g.MinBurst {
		return fmt.Errorf("%w: generate.max_burst (%d) must be >= min_burst (%d)", sim.ErrInvalidInput, g.MaxBurst, g.MinBurst)
	}
	// MinBurst >= 0, so the difference cannot overflow; the inclusive span must fit Int63n.
	if g.MaxBurst-g.MinBurst >= math.MaxInt64 {
		return fmt.Errorf("%w: generate range [%d, %d] is too wide", sim.ErrInvalidInput, g.MinBurst, g.MaxBurst)
	}
	return nil
}

// Resolve validates the spec and returns its concrete burst sequence.
// Explicit bursts are returned as a copy; otherwise they are generated from Seed.
func (s *WorkloadSpec) Resolve() ([]int64, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	if len(s.Bursts) > 0 {
		bursts := make([]int64, len(s.Bursts))
		copy(bursts, s.Bursts)
		return bursts, nil
	}
	rng := sim.NewPartitionedRNG(sim.NewSimulationKey(s.Seed))
	bursts := GenerateBursts(rng.ForSubsystem(sim.SubsystemWorkload), *s.Generate)
	logrus.Debugf("generated %d bursts from seed %d: %v", len(bursts), s.Seed, bursts)
	return bursts, nil
}

// SimConfigs resolves the spec into one SimConfig per listed algorithm,
// all sharing the same burst sequence.
func (s *WorkloadSpec) SimConfigs() ([]sim.SimConfig, error) {
	bursts, err := s.Resolve()
	if err != nil {
		return nil, err
	}
	configs := make([]sim.SimConfig, 0, len(s.Algorithms))
	for _, name := range s.Algorithms {
		configs = append(configs, sim.NewSimConfig(name, s.Quantum, bursts))
	}
	return configs, nil
}
