package domain

import "time"

// ZeroTxHash is the reserved transaction-hash value the trails service uses
// for a step that has not been executed on-chain yet.
const ZeroTxHash = "0x0000000000000000000000000000000000000000000000000000000000000000"

type ExecutionID string

// Execution is a server-tracked multi-step transaction workflow instance
// tied to a wallet identity. The trails service owns it; clients only read
// it and append by reference through the reporter.
type Execution struct {
	ID        ExecutionID
	CreatedAt time.Time
	UpdatedAt time.Time
	Steps     []Step
}

// Step is one on-chain action within an execution. Index 0 is a sentinel
// "initial" step and never counts as completed.
type Step struct {
	Index          int
	NodeID         string
	TxHash         string
	BlockNumber    uint64
	BlockTimestamp int64
	CreatedAt      time.Time
}

// Completed reports whether the step has been executed on-chain.
func (s Step) Completed() bool {
	return s.Index > 0 && s.TxHash != "" && s.TxHash != ZeroTxHash
}

// NextStepIndex returns the index of the first step that is still eligible
// to run: 1 when nothing has completed, otherwise the maximal completed
// index plus one.
func (e Execution) NextStepIndex() int {
	maxCompleted := 0
	for _, step := range e.Steps {
		if step.Completed() && step.Index > maxCompleted {
			maxCompleted = step.Index
		}
	}

	return maxCompleted + 1
}
