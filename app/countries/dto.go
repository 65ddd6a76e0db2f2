package countries

import (
	"github.com/google/uuid"
	"github.com/joefazee/atlas/internal/formatter"
	"github.com/joefazee/atlas/models"
	"github.com/shopspring/decimal"
)

// CountrySummary is a country as shown in a listing.
type CountrySummary struct {
	Code              string   `json:"code"`
	Name              string   `json:"name"`
	Region            *string  `json:"region,omitempty"`
	Population        *int64   `json:"population,omitempty"`
	PopulationDisplay string   `json:"population_display"`
	Capital           []string `json:"capital,omitempty"`
	CapitalDisplay    string   `json:"capital_display"`
	FlagURL           string   `json:"flag_url,omitempty"`
}

// BorderCountry is a resolved neighbour.
type BorderCountry struct {
	Code    string `json:"code"`
	Name    string `json:"name"`
	FlagURL string `json:"flag_url,omitempty"`
}

// CountryDetail is everything the detail page renders.
type CountryDetail struct {
	CountrySummary
	OfficialName      string           `json:"official_name"`
	NativeName        string           `json:"native_name"`
	Subregion         string           `json:"subregion"`
	TopLevelDomain    string           `json:"top_level_domain"`
	Currencies        string           `json:"currencies"`
	Languages         string           `json:"languages"`
	CallingCode       string           `json:"calling_code,omitempty"`
	PopulationDensity *decimal.Decimal `json:"population_density,omitempty"`
	Borders           []BorderCountry  `json:"borders"`
}

// SearchRequest changes a browse view's search term.
type SearchRequest struct {
	Term string `json:"term"`
}

// RegionRequest changes a browse view's region. Empty clears it.
type RegionRequest struct {
	Region string `json:"region"`
}

// BrowseViewResponse is the published state of a browse view.
type BrowseViewResponse struct {
	ID         uuid.UUID        `json:"id"`
	Generation uint64           `json:"generation"`
	SearchTerm string           `json:"search_term"`
	Region     string           `json:"region"`
	Status     Status           `json:"status"`
	Loading    bool             `json:"loading"`
	Countries  []CountrySummary `json:"countries"`
	Count      int              `json:"count"`
}

// ToCountrySummary converts a models.Country to CountrySummary
func ToCountrySummary(c *models.Country) CountrySummary {
	name, _ := c.DisplayName()
	flag, _ := c.FlagURL()
	return CountrySummary{
		Code:              c.Code,
		Name:              name,
		Region:            c.Region,
		Population:        c.Population,
		PopulationDisplay: FormatPopulation(c.Population),
		Capital:           c.Capital,
		CapitalDisplay:    FormatCapital(c.Capital),
		FlagURL:           flag,
	}
}

// ToCountrySummaries converts a slice, never returning nil.
func ToCountrySummaries(countries []models.Country) []CountrySummary {
	out := make([]CountrySummary, 0, len(countries))
	for i := range countries {
		out = append(out, ToCountrySummary(&countries[i]))
	}
	return out
}

// ToCountryDetail renders c and its already resolved neighbours.
func ToCountryDetail(c *models.Country, borders []BorderCountry) *CountryDetail {
	detail := &CountryDetail{
		CountrySummary: ToCountrySummary(c),
		NativeName:     FormatNativeName(c),
		Subregion:      FormatSubregion(c),
		TopLevelDomain: FormatTopLevelDomain(c),
		Currencies:     FormatCurrencies(c),
		Languages:      FormatLanguages(c),
		CallingCode:    formatter.CallingCode(c.Alpha2),
		Borders:        borders,
	}
	if c.Name != nil && c.Name.Official != "" {
		detail.OfficialName = c.Name.Official
	} else {
		detail.OfficialName = NotAvailable
	}

	population, hasPopulation := c.PopulationCount()
	area, hasArea := c.AreaSize()
	if hasPopulation && hasArea {
		if density, ok := formatter.Density(population, area); ok {
			detail.PopulationDensity = &density
		}
	}
	if detail.Borders == nil {
		detail.Borders = []BorderCountry{}
	}
	return detail
}

// ToBorderCountry keeps what a border link needs.
func ToBorderCountry(c *models.Country) BorderCountry {
	name, ok := c.DisplayName()
	if !ok {
		name = c.Code
	}
	flag, _ := c.FlagURL()
	return BorderCountry{Code: c.Code, Name: name, FlagURL: flag}
}

// ToBrowseViewResponse converts a coordinator snapshot.
func ToBrowseViewResponse(id uuid.UUID, s Snapshot) *BrowseViewResponse {
	countries := ToCountrySummaries(s.Countries)
	return &BrowseViewResponse{
		ID:         id,
		Generation: s.Generation,
		SearchTerm: s.SearchTerm,
		Region:     s.Region,
		Status:     s.Status,
		Loading:    s.Status == StatusLoading,
		Countries:  countries,
		Count:      len(countries),
	}
}
