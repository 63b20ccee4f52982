package provisioning

import (
	"context"
	"errors"
	"time"

	"github.com/albctl/albctl/internal/alb"
	"github.com/albctl/albctl/internal/util/retry"
)

// ConvergencePhase polls the load balancer resource until its status carries
// the provisioned resource ID. Running out of the polling budget degrades the
// run with a warning instead of failing it; the follow-up phases skip the
// steps that need the ID.
type ConvergencePhase struct{}

// Name implements Phase.
func (ConvergencePhase) Name() string { return "convergence" }

// Provision implements Phase.
func (p ConvergencePhase) Provision(ctx *Context) error {
	cfg := ctx.Config

	source := ctx.Status
	if source == nil {
		source = NewClusterStatusSource(ctx.State.Kube, cfg.Workload.Namespace, cfg.Workload.Name)
	}

	var controllerID string
	probe := func(probeCtx context.Context) (bool, error) {
		conditions, err := source.Conditions(probeCtx)
		if err != nil {
			return false, err
		}
		id, ok := ctx.Extractor.Extract(conditions)
		if !ok {
			return false, nil
		}
		controllerID = id
		return true, nil
	}

	cfgPoll := retry.PollConfig{Iterations: ctx.PollIterations, Interval: ctx.PollInterval}
	err := retry.Poll(ctx, cfgPoll, probe, pollObserver{ctx: ctx, phase: p.Name()})
	if err != nil {
		if errors.Is(err, retry.ErrExhausted) {
			budget := time.Duration(ctx.PollIterations) * ctx.PollInterval
			ctx.Warnf(p.Name(), "the load balancer did not report its resource ID within %v; continuing without it", budget)
			return nil
		}
		return err
	}

	ctx.State.ControllerID = controllerID
	ctx.State.Converged = true
	if parsed, err := alb.ParseControllerID(controllerID); err == nil {
		ctx.State.ControllerName = parsed.Name
	}

	ctx.Observer.Event(Event{
		Type:     EventResourceCreated,
		Phase:    p.Name(),
		Message:  "load balancer converged",
		Resource: controllerID,
	})
	return nil
}

// pollObserver adapts polling callbacks onto the pipeline observer.
type pollObserver struct {
	ctx   *Context
	phase string
}

func (o pollObserver) PollAttempt(iteration, total int) {
	o.ctx.Observer.Progress(o.phase, iteration, total)
}

func (o pollObserver) PollError(iteration int, err error) {
	o.ctx.Observer.Printf("[%s] probe %d failed: %v", o.phase, iteration, err)
}
