// Package producer defines the boundary contract between the registry and
// the numeric components that feed it. The registry never schedules or
// orders producers; an external orchestrator checks dependencies, runs the
// producer, writes its results, and checks its outputs.
package producer

import (
	"context"

	"github.com/vk/theoryreg/internal/deps"
	"github.com/vk/theoryreg/internal/registry"
)

// Producer is one opaque computation that reads and writes the registry.
// Implementations declare their contract up front so the dependency tracker
// and schema validator can check a run without understanding the numerics.
type Producer interface {
	// Name identifies the producer; it is used as the write source for
	// non-established parameters.
	Name() string
	// RequiredInputs lists the parameter paths that must exist before Run.
	RequiredInputs() []deps.Input
	// OutputParams lists the parameter paths Run promises to produce.
	OutputParams() []string
	// OutputFormulas lists the formula ids Run promises to register.
	OutputFormulas() []string
	// Run performs the computation, writing through the registry, and
	// returns the produced values keyed by path for output checking.
	Run(ctx context.Context, reg *registry.Registry) (map[string]any, error)
}
