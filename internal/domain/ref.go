package domain

import (
	"encoding/json"
	"fmt"
)

type RefKind string

const (
	RefLatest RefKind = "latest"
	RefNew    RefKind = "new"
	RefManual RefKind = "manual"
)

// ExecutionRef tells the trails service which execution a call applies to:
// continue the most recent one, force a fresh one, or target a specific
// identifier. The same value resolved before evaluation must flow unchanged
// into the report call; re-resolving between the two can target the wrong
// execution.
type ExecutionRef struct {
	Kind        RefKind
	ExecutionID ExecutionID
}

func LatestRef() ExecutionRef {
	return ExecutionRef{Kind: RefLatest}
}

func NewRef() ExecutionRef {
	return ExecutionRef{Kind: RefNew}
}

func ManualRef(id ExecutionID) ExecutionRef {
	return ExecutionRef{Kind: RefManual, ExecutionID: id}
}

func (r ExecutionRef) Valid() bool {
	switch r.Kind {
	case RefLatest, RefNew:
		return true
	case RefManual:
		return r.ExecutionID != ""
	default:
		return false
	}
}

func (r ExecutionRef) String() string {
	if r.Kind == RefManual {
		return fmt.Sprintf("manual(%s)", r.ExecutionID)
	}

	return string(r.Kind)
}

type manualRefWire struct {
	Type        string `json:"type"`
	ExecutionID string `json:"executionId"`
}

// MarshalJSON encodes the reference the way the trails API expects: the
// bare literals "latest" and "new", or a {type, executionId} object.
func (r ExecutionRef) MarshalJSON() ([]byte, error) {
	switch r.Kind {
	case RefLatest, RefNew:
		return json.Marshal(string(r.Kind))
	case RefManual:
		if r.ExecutionID == "" {
			return nil, fmt.Errorf("marshal execution ref: manual ref without execution id")
		}
		return json.Marshal(manualRefWire{Type: string(RefManual), ExecutionID: string(r.ExecutionID)})
	default:
		return nil, fmt.Errorf("marshal execution ref: unknown kind %q", r.Kind)
	}
}

func (r *ExecutionRef) UnmarshalJSON(data []byte) error {
	var literal string
	if err := json.Unmarshal(data, &literal); err == nil {
		switch RefKind(literal) {
		case RefLatest, RefNew:
			*r = ExecutionRef{Kind: RefKind(literal)}
			return nil
		default:
			return fmt.Errorf("unmarshal execution ref: unknown literal %q", literal)
		}
	}

	var wire manualRefWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return fmt.Errorf("unmarshal execution ref: %w", err)
	}
	if wire.Type != string(RefManual) || wire.ExecutionID == "" {
		return fmt.Errorf("unmarshal execution ref: invalid manual ref %s", string(data))
	}

	*r = ManualRef(ExecutionID(wire.ExecutionID))
	return nil
}
