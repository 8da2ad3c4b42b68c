package domain

import (
	"fmt"
	"math/big"
	"strings"
)

const secondsPerYear = 365 * 24 * 3600

// RegistrationRequest is the user's intent: register a name label for a
// whole number of years.
type RegistrationRequest struct {
	Name  string
	Years int
}

func NewRegistrationRequest(name string, years int) (RegistrationRequest, error) {
	trimmed := strings.ToLower(strings.TrimSpace(name))
	if trimmed == "" {
		return RegistrationRequest{}, fmt.Errorf("%w: name is empty", ErrInvalidRequest)
	}
	if strings.ContainsAny(trimmed, " .") {
		return RegistrationRequest{}, fmt.Errorf("%w: name %q must be a bare label", ErrInvalidRequest, name)
	}
	if years <= 0 {
		return RegistrationRequest{}, fmt.Errorf("%w: duration must be a positive number of years, got %d", ErrInvalidRequest, years)
	}

	return RegistrationRequest{Name: trimmed, Years: years}, nil
}

// DurationSeconds is the registration duration on the wire.
func (r RegistrationRequest) DurationSeconds() int64 {
	return int64(r.Years) * secondsPerYear
}

// StepEvaluation is the exact on-chain call the trails service computed for
// the next step: destination, calldata, required payment, and an advisory
// gas estimate. Produced fresh per evaluation; never reused.
type StepEvaluation struct {
	NodeID      string
	To          string
	CallData    []byte
	Value       *big.Int
	GasEstimate uint64
}
