package ledger

import (
	"fmt"
	"math"

	"stableswap/internal/domain"

	"github.com/shopspring/decimal"
)

var (
	rateScale = decimal.NewFromInt(domain.RateScale)
	maxAmount = decimal.NewFromInt(math.MaxInt64)
)

// OutAmount returns floor(amount * rate / RateScale). The product is computed
// exactly, so the truncated remainder always stays with the custodian.
func OutAmount(amount, rate int64) (int64, error) {
	out := decimal.NewFromInt(amount).Mul(decimal.NewFromInt(rate)).Div(rateScale).Floor()
	if out.GreaterThan(maxAmount) {
		return 0, fmt.Errorf("%w: %d at rate %d overflows the output amount", domain.ErrInvalidAmount, amount, rate)
	}
	return out.IntPart(), nil
}

// RatePrice renders a scaled rate as units of output per unit of input, e.g. 250 -> "2.50".
func RatePrice(rate int64) string {
	return decimal.New(rate, 0).Div(rateScale).StringFixed(2)
}
