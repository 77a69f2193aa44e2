package calculator

import (
	"math"
	"math/big"

	"github.com/shopspring/decimal"
)

// Round2 rounds v to two decimal places. Ties are broken away from zero on the
// exact binary value of v, so 1.005 (stored as 1.00499...) rounds down to 1.
func Round2(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v == 0 {
		return v
	}
	abs := math.Abs(v)
	if abs < 1e-3 {
		return math.Copysign(0, v)
	}
	if abs >= 1e21 {
		return v
	}
	f, _ := exactDecimal(v).Round(2).Float64()
	return f
}

// exactDecimal expands v into a decimal without any loss: m*2^-k == m*5^k*10^-k.
func exactDecimal(v float64) decimal.Decimal {
	frac, exp := math.Frexp(v)
	mant := big.NewInt(int64(frac * (1 << 53)))
	exp -= 53
	if exp >= 0 {
		return decimal.NewFromBigInt(mant.Lsh(mant, uint(exp)), 0)
	}
	k := int64(-exp)
	five := new(big.Int).Exp(big.NewInt(5), big.NewInt(k), nil)
	return decimal.NewFromBigInt(mant.Mul(mant, five), int32(-k))
}
