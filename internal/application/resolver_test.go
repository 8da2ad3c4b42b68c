package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/trailkit/regname/internal/domain"
	"github.com/trailkit/regname/internal/ports/mocks"
)

const testWallet = "0x00000000000000000000000000000000000000aa"

func mockAnyContext() interface{} {
	return mock.Anything
}

func TestResolveNoExecutionsReturnsLatest(t *testing.T) {
	directory := mocks.NewMockExecutionDirectory(t)
	directory.EXPECT().ListExecutions(mockAnyContext(), testWallet).Return(nil, nil)

	resolver := NewExecutionResolver(directory)

	ref, err := resolver.Resolve(context.Background(), testWallet)
	require.NoError(t, err)
	assert.Equal(t, domain.LatestRef(), ref)
}

func TestResolveDirectoryFailureIsFatal(t *testing.T) {
	listErr := errors.New("directory unavailable")
	directory := mocks.NewMockExecutionDirectory(t)
	directory.EXPECT().ListExecutions(mockAnyContext(), testWallet).Return(nil, listErr)

	resolver := NewExecutionResolver(directory)

	_, err := resolver.Resolve(context.Background(), testWallet)
	require.ErrorIs(t, err, listErr)
}

func TestResolvePicksMostRecentlyUpdatedExecution(t *testing.T) {
	base := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	executions := []domain.Execution{
		{ID: "exec-old", UpdatedAt: base.Add(-time.Hour)},
		{ID: "exec-new", UpdatedAt: base},
		{ID: "exec-older", UpdatedAt: base.Add(-2 * time.Hour)},
	}

	directory := mocks.NewMockExecutionDirectory(t)
	directory.EXPECT().ListExecutions(mockAnyContext(), testWallet).Return(executions, nil)

	resolver := NewExecutionResolver(directory)

	ref, err := resolver.Resolve(context.Background(), testWallet)
	require.NoError(t, err)
	assert.Equal(t, domain.ManualRef("exec-new"), ref)
}

func TestResolveTieOnUpdatedAtIsDeterministic(t *testing.T) {
	when := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	forward := []domain.Execution{
		{ID: "exec-a", UpdatedAt: when},
		{ID: "exec-b", UpdatedAt: when},
	}
	reversed := []domain.Execution{forward[1], forward[0]}

	for _, executions := range [][]domain.Execution{forward, reversed} {
		directory := mocks.NewMockExecutionDirectory(t)
		directory.EXPECT().ListExecutions(mockAnyContext(), testWallet).Return(executions, nil)

		ref, err := NewExecutionResolver(directory).Resolve(context.Background(), testWallet)
		require.NoError(t, err)
		assert.Equal(t, domain.ManualRef("exec-b"), ref)
	}
}

func TestResolveRejectsMidFlightExecution(t *testing.T) {
	executions := []domain.Execution{
		{
			ID:        "exec-1",
			UpdatedAt: time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC),
			Steps: []domain.Step{
				{Index: 0, TxHash: domain.ZeroTxHash},
				{Index: 1, TxHash: "0xabc123"},
			},
		},
	}

	directory := mocks.NewMockExecutionDirectory(t)
	directory.EXPECT().ListExecutions(mockAnyContext(), testWallet).Return(executions, nil)

	resolver := NewExecutionResolver(directory)

	_, err := resolver.Resolve(context.Background(), testWallet)
	require.ErrorIs(t, err, domain.ErrStepConflict)
	assert.Contains(t, err.Error(), "exec-1")
}

func TestResolveAcceptsExecutionWithOnlyPendingSteps(t *testing.T) {
	executions := []domain.Execution{
		{
			ID:        "exec-1",
			UpdatedAt: time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC),
			Steps: []domain.Step{
				{Index: 0, TxHash: domain.ZeroTxHash},
				{Index: 1, TxHash: domain.ZeroTxHash},
			},
		},
	}

	directory := mocks.NewMockExecutionDirectory(t)
	directory.EXPECT().ListExecutions(mockAnyContext(), testWallet).Return(executions, nil)

	ref, err := NewExecutionResolver(directory).Resolve(context.Background(), testWallet)
	require.NoError(t, err)
	assert.Equal(t, domain.ManualRef("exec-1"), ref)
}
