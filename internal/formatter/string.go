package formatter

import (
	"strconv"
	"strings"

	"github.com/nyaruka/phonenumbers"
	"github.com/shopspring/decimal"
)

// CallingCode returns the international dialling prefix for an ISO 3166-1
// alpha-2 region, e.g. "DE" -> "+49". Unknown regions yield "".
func CallingCode(alpha2 string) string {
	region := strings.ToUpper(strings.TrimSpace(alpha2))
	if len(region) != 2 {
		return ""
	}
	code := phonenumbers.GetCountryCodeForRegion(region)
	if code == 0 {
		return ""
	}
	return "+" + strconv.Itoa(code)
}

// Density returns people per square kilometre rounded to two places.
// ok is false when area is not positive.
func Density(population int64, area float64) (decimal.Decimal, bool) {
	if area <= 0 {
		return decimal.Zero, false
	}
	return decimal.NewFromInt(population).
		Div(decimal.NewFromFloat(area)).
		Round(2), true
}
