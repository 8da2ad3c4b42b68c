package ports

import (
	"context"

	"github.com/trailkit/regname/internal/domain"
)

// ExecutionDirectory lists the multi-step executions the trails service
// knows for a wallet identity.
type ExecutionDirectory interface {
	ListExecutions(ctx context.Context, walletAddress string) ([]domain.Execution, error)
}

// PricingReader performs the two independent read-node calls. Both are pure
// request/response round trips with no side effects.
type PricingReader interface {
	ReadPrice(ctx context.Context, walletAddress, name string, durationSeconds int64) (domain.PriceQuote, error)
	ReadExpiry(ctx context.Context, walletAddress, name string) (domain.ExpiryInfo, error)
}

// StepEvaluator asks the trails service for the exact on-chain call of the
// next step, for the given execution reference.
type StepEvaluator interface {
	EvaluateStep(ctx context.Context, walletAddress, name string, durationSeconds int64, ref domain.ExecutionRef) (domain.StepEvaluation, error)
}

// ExecutionReporter records a broadcast transaction hash against an
// execution and node.
type ExecutionReporter interface {
	ReportExecution(ctx context.Context, walletAddress, nodeID, txHash string, ref domain.ExecutionRef) error
}
