package quote

import (
	"math/big"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trailkit/regname/internal/domain"
)

func TestFormatEther(t *testing.T) {
	tests := []struct {
		wei  string
		want string
	}{
		{wei: "0", want: "0 ETH"},
		{wei: "1000000000000000000", want: "1 ETH"},
		{wei: "1500000000000000000", want: "1.5 ETH"},
		{wei: "500000000000000000", want: "0.5 ETH"},
		{wei: "1", want: "0.000000000000000001 ETH"},
		{wei: "2250000000000000000000", want: "2250 ETH"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			wei, ok := new(big.Int).SetString(tt.wei, 10)
			require.True(t, ok)
			assert.Equal(t, tt.want, FormatEther(wei))
		})
	}

	assert.Equal(t, "0 ETH", FormatEther(nil))
}

func mustQuote(t *testing.T, base, premium string) domain.PriceQuote {
	t.Helper()

	q, err := domain.NewPriceQuote(base, premium)
	require.NoError(t, err)
	return q
}

func TestRenderAvailableNameShowsCostBreakdown(t *testing.T) {
	summary := Summary{
		Name:   "alice",
		Years:  2,
		Quote:  mustQuote(t, "1000000000000000000", "500000000000000000"),
		Expiry: domain.ExpiryInfo{},
	}

	output, err := Render(summary, RenderOptions{})
	require.NoError(t, err)
	assert.Contains(t, output, "alice (2 years)")
	assert.Contains(t, output, "available")
	assert.Contains(t, output, "1 ETH")
	assert.Contains(t, output, "0.5 ETH")
	assert.Contains(t, output, "1.5 ETH")
}

func TestRenderRegisteredNameHidesCost(t *testing.T) {
	now := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	summary := Summary{
		Name:   "bob",
		Years:  1,
		Quote:  mustQuote(t, "1000000000000000000", "0"),
		Expiry: domain.ExpiryInfo{ExpiresAt: now.AddDate(1, 0, 0).Unix()},
	}

	output, err := Render(summary, RenderOptions{Now: now})
	require.NoError(t, err)
	assert.Contains(t, output, "bob (1 year)")
	assert.Contains(t, output, "registered")
	assert.Contains(t, output, "in 1y")
	assert.NotContains(t, output, "total:")
}
