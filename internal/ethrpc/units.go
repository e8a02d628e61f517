package ethrpc

import (
	"math/big"

	"github.com/shopspring/decimal"
)

// WeiDecimals is the scale of the native currency.
const WeiDecimals = 18

// FormatUnits renders a raw integer amount as a decimal string scaled down by
// the given number of decimals. The conversion is exact: no floating point is
// involved at any step.
func FormatUnits(raw *big.Int, decimals uint8) string {
	return decimal.NewFromBigInt(raw, -int32(decimals)).String()
}

// FormatEther renders a wei amount as an ether decimal string.
func FormatEther(wei *big.Int) string {
	return FormatUnits(wei, WeiDecimals)
}
