package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStepCompleted(t *testing.T) {
	tests := []struct {
		name      string
		step      Step
		completed bool
	}{
		{name: "executed step", step: Step{Index: 1, TxHash: "0xabc123"}, completed: true},
		{name: "zero hash sentinel", step: Step{Index: 1, TxHash: ZeroTxHash}, completed: false},
		{name: "empty hash", step: Step{Index: 2, TxHash: ""}, completed: false},
		{name: "initial sentinel step with hash", step: Step{Index: 0, TxHash: "0xabc123"}, completed: false},
		{name: "initial sentinel step without hash", step: Step{Index: 0, TxHash: ZeroTxHash}, completed: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.completed, tt.step.Completed())
		})
	}
}

func TestExecutionNextStepIndex(t *testing.T) {
	tests := []struct {
		name      string
		execution Execution
		next      int
	}{
		{name: "no steps", execution: Execution{}, next: 1},
		{
			name: "only initial sentinel",
			execution: Execution{Steps: []Step{
				{Index: 0, TxHash: "0xdeadbeef"},
			}},
			next: 1,
		},
		{
			name: "pending first step",
			execution: Execution{Steps: []Step{
				{Index: 0, TxHash: ZeroTxHash},
				{Index: 1, TxHash: ZeroTxHash},
			}},
			next: 1,
		},
		{
			name: "first step completed",
			execution: Execution{Steps: []Step{
				{Index: 0, TxHash: ZeroTxHash},
				{Index: 1, TxHash: "0xabc123"},
			}},
			next: 2,
		},
		{
			name: "maximal completed index wins regardless of order",
			execution: Execution{Steps: []Step{
				{Index: 3, TxHash: "0xccc"},
				{Index: 1, TxHash: "0xaaa"},
				{Index: 2, TxHash: "0xbbb"},
				{Index: 4, TxHash: ZeroTxHash},
			}},
			next: 4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.next, tt.execution.NextStepIndex())
		})
	}
}

func TestExecutionRefJSON(t *testing.T) {
	latest, err := json.Marshal(LatestRef())
	require.NoError(t, err)
	assert.Equal(t, `"latest"`, string(latest))

	fresh, err := json.Marshal(NewRef())
	require.NoError(t, err)
	assert.Equal(t, `"new"`, string(fresh))

	manual, err := json.Marshal(ManualRef("exec-42"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"manual","executionId":"exec-42"}`, string(manual))

	_, err = json.Marshal(ExecutionRef{Kind: RefManual})
	require.Error(t, err)

	var decoded ExecutionRef
	require.NoError(t, json.Unmarshal(manual, &decoded))
	assert.Equal(t, ManualRef("exec-42"), decoded)

	require.NoError(t, json.Unmarshal([]byte(`"latest"`), &decoded))
	assert.Equal(t, LatestRef(), decoded)

	require.Error(t, json.Unmarshal([]byte(`"yolo"`), &decoded))
}

func TestPriceQuoteTotal(t *testing.T) {
	quote, err := NewPriceQuote("1000000000000000000", "500000000000000000")
	require.NoError(t, err)
	assert.Equal(t, "1500000000000000000", quote.Total().String())

	zero, err := NewPriceQuote("0", "0")
	require.NoError(t, err)
	assert.Equal(t, "0", zero.Total().String())

	_, err = NewPriceQuote("not-a-number", "0")
	require.Error(t, err)

	_, err = NewPriceQuote("10", "-1")
	require.Error(t, err)
}

func TestExpiryInfo(t *testing.T) {
	assert.False(t, ExpiryInfo{}.Registered())
	assert.True(t, ExpiryInfo{ExpiresAt: 1}.Registered())

	expiry := ExpiryInfo{ExpiresAt: time.Date(2027, 3, 14, 0, 0, 0, 0, time.UTC).Unix()}
	assert.Equal(t, 2027, expiry.Time().Year())
}

func TestNewRegistrationRequest(t *testing.T) {
	req, err := NewRegistrationRequest("  Alice ", 2)
	require.NoError(t, err)
	assert.Equal(t, "alice", req.Name)
	assert.Equal(t, int64(2*365*24*3600), req.DurationSeconds())

	_, err = NewRegistrationRequest("", 1)
	require.ErrorIs(t, err, ErrInvalidRequest)

	_, err = NewRegistrationRequest("alice.eth", 1)
	require.ErrorIs(t, err, ErrInvalidRequest)

	_, err = NewRegistrationRequest("alice", 0)
	require.ErrorIs(t, err, ErrInvalidRequest)
}
