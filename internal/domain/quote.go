package domain

import (
	"fmt"
	"math/big"
	"time"
)

// PriceQuote is the registration cost breakdown in the chain's smallest
// unit. Immutable once fetched; never cached across calls.
type PriceQuote struct {
	Base    *big.Int
	Premium *big.Int
}

// NewPriceQuote parses the decimal string amounts the trails service
// returns.
func NewPriceQuote(base, premium string) (PriceQuote, error) {
	baseAmount, ok := new(big.Int).SetString(base, 10)
	if !ok || baseAmount.Sign() < 0 {
		return PriceQuote{}, fmt.Errorf("invalid base price %q", base)
	}

	premiumAmount, ok := new(big.Int).SetString(premium, 10)
	if !ok || premiumAmount.Sign() < 0 {
		return PriceQuote{}, fmt.Errorf("invalid premium price %q", premium)
	}

	return PriceQuote{Base: baseAmount, Premium: premiumAmount}, nil
}

// Total is base plus premium, exact integer addition.
func (q PriceQuote) Total() *big.Int {
	total := new(big.Int)
	if q.Base != nil {
		total.Add(total, q.Base)
	}
	if q.Premium != nil {
		total.Add(total, q.Premium)
	}

	return total
}

// ExpiryInfo is the current expiry of a name in Unix seconds. Zero means
// the name has never been registered and is available.
type ExpiryInfo struct {
	ExpiresAt int64
}

func (e ExpiryInfo) Registered() bool {
	return e.ExpiresAt > 0
}

func (e ExpiryInfo) Time() time.Time {
	return time.Unix(e.ExpiresAt, 0).UTC()
}
