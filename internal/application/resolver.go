package application

import (
	"context"
	"fmt"
	"sort"

	"github.com/trailkit/regname/internal/domain"
	"github.com/trailkit/regname/internal/ports"
)

// ExecutionResolver decides which execution reference the upcoming step-1
// call should use, and rejects when the remote state makes step 1 illegal.
type ExecutionResolver struct {
	directory ports.ExecutionDirectory
}

func NewExecutionResolver(directory ports.ExecutionDirectory) *ExecutionResolver {
	return &ExecutionResolver{directory: directory}
}

// Resolve returns a latest ref when the wallet has no executions yet
// (execution creation is delegated to the service on first evaluation),
// otherwise a manual ref to the most recently updated execution. It fails
// with domain.ErrStepConflict when that execution's next eligible step is
// not 1.
func (r *ExecutionResolver) Resolve(ctx context.Context, walletAddress string) (domain.ExecutionRef, error) {
	executions, err := r.directory.ListExecutions(ctx, walletAddress)
	if err != nil {
		return domain.ExecutionRef{}, fmt.Errorf("list executions: %w", err)
	}

	if len(executions) == 0 {
		return domain.LatestRef(), nil
	}

	selected := mostRecentExecution(executions)
	if next := selected.NextStepIndex(); next != 1 {
		return domain.ExecutionRef{}, fmt.Errorf("%w: execution %s is mid-flight, next eligible step is %d", domain.ErrStepConflict, selected.ID, next)
	}

	return domain.ManualRef(selected.ID), nil
}

// mostRecentExecution picks the execution with the maximal UpdatedAt.
// Identical timestamps resolve to the lexicographically greatest ID so the
// choice does not depend on server-side response order.
func mostRecentExecution(executions []domain.Execution) domain.Execution {
	ordered := make([]domain.Execution, len(executions))
	copy(ordered, executions)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].ID < ordered[j].ID
	})

	selected := ordered[0]
	for _, execution := range ordered[1:] {
		if !execution.UpdatedAt.Before(selected.UpdatedAt) {
			selected = execution
		}
	}

	return selected
}
