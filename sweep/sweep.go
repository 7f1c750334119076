// Package sweep is the external, non-core candidate-sweep driver spec.md
// §5/§9 anticipates: "If a caller wants parallel sweeps over candidate
// shapes, it partitions the shape space externally and calls the
// Feasibility Oracle on each partition independently." The core
// (packages alphabet..solve) stays single-threaded and pure; this
// package is the only place in the module that starts goroutines.
package sweep

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/anchorcipher/k4wheel/alphabet"
	"github.com/anchorcipher/k4wheel/anchor"
	"github.com/anchorcipher/k4wheel/partition"
	"github.com/anchorcipher/k4wheel/solve"
	"github.com/anchorcipher/k4wheel/wheel"
)

// Candidate is one point in the shape space a sweep evaluates.
type Candidate struct {
	Label  string
	Shapes [partition.NumClasses]wheel.Shape
}

// Outcome pairs a Candidate with solve.Feasible's verdict for it.
type Outcome struct {
	Candidate Candidate
	Schedule  *wheel.Schedule
	Err       error
}

// Run evaluates every candidate against ciphertext and anchors, fanning
// out across at most concurrency goroutines (concurrency <= 0 means
// "one per candidate, unbounded"). Each candidate's solve.Feasible call
// is independent and pure, so no locking is needed — this mirrors
// spec.md §5's ordering guarantee: two runs over the same inputs produce
// byte-for-byte identical outcomes, in the same candidate order,
// regardless of how many goroutines actually ran concurrently.
//
// Run itself never returns an error: a failing candidate is recorded in
// its own Outcome.Err, not propagated, so one infeasible candidate does
// not abort the sweep. The context is only honored as a cancellation
// signal between candidates; solve.Feasible itself has no suspension
// points to cancel.
func Run(ctx context.Context, ciphertext []alphabet.Letter, anchors []anchor.Anchor, candidates []Candidate, concurrency int) []Outcome {
	outcomes := make([]Outcome, len(candidates))

	g, ctx := errgroup.WithContext(ctx)
	if concurrency > 0 {
		g.SetLimit(concurrency)
	}

	for i, cand := range candidates {
		i, cand := i, cand
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				outcomes[i] = Outcome{Candidate: cand, Err: err}
				return nil
			}
			sch, err := solve.Feasible(ciphertext, anchors, cand.Shapes)
			outcomes[i] = Outcome{Candidate: cand, Schedule: sch, Err: err}
			return nil
		})
	}

	// g.Go never returns a non-nil error above, so Wait cannot fail;
	// the error return exists only to satisfy errgroup's API.
	_ = g.Wait()

	return outcomes
}

// FirstFeasible is a convenience over Run for the common "stop at the
// first feasible candidate" sweep shape. It still evaluates every
// candidate (the oracle is cheap and this keeps ordering reproducible),
// then scans outcomes in candidate order for the first success.
func FirstFeasible(ctx context.Context, ciphertext []alphabet.Letter, anchors []anchor.Anchor, candidates []Candidate, concurrency int) (Outcome, bool) {
	outcomes := Run(ctx, ciphertext, anchors, candidates, concurrency)
	for _, o := range outcomes {
		if o.Err == nil {
			return o, true
		}
	}
	return Outcome{}, false
}
