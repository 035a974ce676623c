package whale

import (
	"strings"

	"github.com/shopspring/decimal"
)

var largeVolume = decimal.NewFromInt(LargeVolumeThreshold)

// ParseAmount reads the numeric part of a display amount such as "500 ETH" or
// "1,200,000 USDT". Thousands separators are ignored.
func ParseAmount(amount string) (decimal.Decimal, bool) {
	fields := strings.Fields(amount)
	if len(fields) == 0 {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(strings.ReplaceAll(fields[0], ",", ""))
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}
