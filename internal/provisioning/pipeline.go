package provisioning

import (
	"fmt"
	"time"
)

// Phase defines the interface for a deployment phase.
type Phase interface {
	// Name returns the human-readable name of this phase.
	Name() string

	// Provision executes the phase against the shared context.
	Provision(ctx *Context) error
}

// Pipeline runs phases sequentially, stopping at the first fatal error.
type Pipeline struct {
	Phases []Phase
}

// NewPipeline creates a pipeline from the given phases.
func NewPipeline(phases ...Phase) *Pipeline {
	return &Pipeline{Phases: phases}
}

// DeployPhases returns the standard deployment sequence.
func DeployPhases() []Phase {
	return []Phase{
		ResourceGroupPhase{},
		InfrastructurePhase{},
		ClusterPhase{},
		ControllerPhase{},
		WorkloadPhase{},
		ConvergencePhase{},
		AuthorizationPhase{},
		AnnotationPhase{},
		SummaryPhase{},
	}
}

// Run executes all phases sequentially.
func (p *Pipeline) Run(ctx *Context) error {
	start := time.Now()
	ctx.Observer.Printf("Starting deployment with %d phases...", len(p.Phases))

	for i, phase := range p.Phases {
		phaseStart := time.Now()
		name := fmt.Sprintf("%s (%d/%d)", phase.Name(), i+1, len(p.Phases))

		LogPhaseStart(ctx.Observer, name)

		if err := phase.Provision(ctx); err != nil {
			LogPhaseFailed(ctx.Observer, name, err)
			return fmt.Errorf("%s phase failed: %w", phase.Name(), err)
		}

		LogPhaseComplete(ctx.Observer, name, time.Since(phaseStart))
	}

	ctx.Observer.Printf("Deployment completed in %v", time.Since(start).Round(time.Millisecond))
	return nil
}
