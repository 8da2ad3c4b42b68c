package ports

import (
	"context"

	"github.com/trailkit/regname/internal/domain"
)

// Wallet is the opaque sign-and-broadcast capability. Submit returns the
// transaction hash once the payload is signed and accepted by the node;
// after that point the transaction exists on-chain (or in the pending pool)
// no matter what the caller does next.
type Wallet interface {
	Address() string
	Submit(ctx context.Context, evaluation domain.StepEvaluation) (string, error)
}
