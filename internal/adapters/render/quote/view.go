package quote

import (
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/trailkit/regname/internal/domain"
)

// Summary is everything the status view needs for one name.
type Summary struct {
	Name   string
	Years  int
	Quote  domain.PriceQuote
	Expiry domain.ExpiryInfo
}

type RenderOptions struct {
	Now time.Time
}

var weiPerEther = new(big.Int).Exp(big.NewInt(10), big.NewInt(18), nil)

// FormatEther renders a wei amount as a decimal ether string with trailing
// zeros trimmed, keeping full precision.
func FormatEther(wei *big.Int) string {
	if wei == nil || wei.Sign() == 0 {
		return "0 ETH"
	}

	whole, frac := new(big.Int).QuoRem(wei, weiPerEther, new(big.Int))
	if frac.Sign() == 0 {
		return whole.String() + " ETH"
	}

	digits := strings.TrimRight(fmt.Sprintf("%018s", frac.String()), "0")
	return fmt.Sprintf("%s.%s ETH", whole.String(), digits)
}

func renderView(summary Summary, opts RenderOptions, s styles) string {
	lines := []string{
		s.title.Render("Name Registration Quote"),
		s.name.Render(fmt.Sprintf("%s (%s)", summary.Name, yearsLabel(summary.Years))),
		availabilityLine(summary.Expiry, opts, s),
	}

	if !summary.Expiry.Registered() {
		lines = append(lines,
			amountLine("base:", summary.Quote.Base, s.amountKey, s.amount),
			amountLine("premium:", summary.Quote.Premium, s.amountKey, s.amount),
			amountLine("total:", summary.Quote.Total(), s.amountKey, s.total),
		)
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func availabilityLine(expiry domain.ExpiryInfo, opts RenderOptions, s styles) string {
	if !expiry.Registered() {
		return s.available.Render("available")
	}

	line := s.taken.Render("registered")
	detail := fmt.Sprintf("expires %s", expiry.Time().Format("2006-01-02"))
	if !opts.Now.IsZero() {
		detail += fmt.Sprintf(" (%s)", formatExpiryRelative(expiry.Time(), opts.Now))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, line, " ", s.faint.Render(detail))
}

func amountLine(label string, wei *big.Int, keyStyle, valueStyle lipgloss.Style) string {
	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		keyStyle.Render(fmt.Sprintf("%-9s", label)),
		valueStyle.Render(FormatEther(wei)),
	)
}

func yearsLabel(years int) string {
	if years == 1 {
		return "1 year"
	}

	return fmt.Sprintf("%d years", years)
}

func formatExpiryRelative(expiresAt, now time.Time) string {
	remaining := expiresAt.Sub(now)
	if remaining <= 0 {
		return "expired"
	}

	days := int(remaining.Hours() / 24)
	switch {
	case days >= 365:
		return fmt.Sprintf("in %dy", days/365)
	case days >= 1:
		return fmt.Sprintf("in %dd", days)
	default:
		return "in <1d"
	}
}
