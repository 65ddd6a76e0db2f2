package countries

import (
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/joefazee/atlas/models"
)

// NotAvailable is rendered for any absent optional field.
const NotAvailable = "N/A"

// FormatPopulation groups thousands. Zero is a real value, nil is not.
func FormatPopulation(population *int64) string {
	if population == nil {
		return NotAvailable
	}
	return humanize.Comma(*population)
}

// FormatCapital returns the first capital or NotAvailable.
func FormatCapital(capitals []string) string {
	if len(capitals) == 0 || capitals[0] == "" {
		return NotAvailable
	}
	return capitals[0]
}

func orNotAvailable(s string, ok bool) string {
	if !ok {
		return NotAvailable
	}
	return s
}

func joinOrNotAvailable(items []string) string {
	if len(items) == 0 {
		return NotAvailable
	}
	return strings.Join(items, ", ")
}

// FormatNativeName renders the first native common name.
func FormatNativeName(c *models.Country) string {
	return orNotAvailable(c.FirstNativeName())
}

// FormatSubregion renders the subregion.
func FormatSubregion(c *models.Country) string {
	return orNotAvailable(c.SubregionName())
}

// FormatTopLevelDomain renders the first top level domain.
func FormatTopLevelDomain(c *models.Country) string {
	return orNotAvailable(c.FirstTLD())
}

// FormatCurrencies renders currency names joined by ", ".
func FormatCurrencies(c *models.Country) string {
	return joinOrNotAvailable(c.CurrencyNames())
}

// FormatLanguages renders language names joined by ", ".
func FormatLanguages(c *models.Country) string {
	return joinOrNotAvailable(c.LanguageNames())
}
