package models

import (
	"sort"
	"strings"
)

// NativeName is the common/official name pair in one local language.
type NativeName struct {
	Official string `json:"official,omitempty"`
	Common   string `json:"common,omitempty"`
}

// CountryName holds the names a country record may carry.
type CountryName struct {
	Common     string                `json:"common,omitempty"`
	Official   string                `json:"official,omitempty"`
	NativeName map[string]NativeName `json:"nativeName,omitempty"`
}

// Currency is one entry of a country's currencies map, keyed by ISO 4217 code.
type Currency struct {
	Name   string `json:"name,omitempty"`
	Symbol string `json:"symbol,omitempty"`
}

// Flags holds the flag image URLs.
type Flags struct {
	PNG string `json:"png,omitempty"`
	SVG string `json:"svg,omitempty"`
	Alt string `json:"alt,omitempty"`
}

// Country is a record from the remote country source.
// Only Code is guaranteed; every other member is optional and must be read through
// the presence-checking accessors below.
type Country struct {
	Code       string              `json:"cca3"` // ISO 3166-1 alpha-3
	Alpha2     string              `json:"cca2,omitempty"`
	Name       *CountryName        `json:"name,omitempty"`
	Population *int64              `json:"population,omitempty"`
	Area       *float64            `json:"area,omitempty"`
	Region     *string             `json:"region,omitempty"`
	Subregion  *string             `json:"subregion,omitempty"`
	Capital    []string            `json:"capital,omitempty"`
	Flags      *Flags              `json:"flags,omitempty"`
	TLD        []string            `json:"tld,omitempty"`
	Currencies map[string]Currency `json:"currencies,omitempty"`
	Languages  map[string]string   `json:"languages,omitempty"`
	Borders    []string            `json:"borders,omitempty"`
}

// DisplayName returns the common name, if the record has one.
func (c *Country) DisplayName() (string, bool) {
	if c.Name == nil || c.Name.Common == "" {
		return "", false
	}
	return c.Name.Common, true
}

// RegionName returns the region, if present.
func (c *Country) RegionName() (string, bool) {
	if c.Region == nil || *c.Region == "" {
		return "", false
	}
	return *c.Region, true
}

// SubregionName returns the subregion, if present.
func (c *Country) SubregionName() (string, bool) {
	if c.Subregion == nil || *c.Subregion == "" {
		return "", false
	}
	return *c.Subregion, true
}

// PopulationCount returns the population. Zero is a present value.
func (c *Country) PopulationCount() (int64, bool) {
	if c.Population == nil {
		return 0, false
	}
	return *c.Population, true
}

// AreaSize returns the area in square kilometres, if present and positive.
func (c *Country) AreaSize() (float64, bool) {
	if c.Area == nil || *c.Area <= 0 {
		return 0, false
	}
	return *c.Area, true
}

// FirstCapital returns the first listed capital.
func (c *Country) FirstCapital() (string, bool) {
	if len(c.Capital) == 0 || c.Capital[0] == "" {
		return "", false
	}
	return c.Capital[0], true
}

// FirstTLD returns the first top level domain.
func (c *Country) FirstTLD() (string, bool) {
	if len(c.TLD) == 0 || c.TLD[0] == "" {
		return "", false
	}
	return c.TLD[0], true
}

// FlagURL prefers the SVG flag and falls back to PNG.
func (c *Country) FlagURL() (string, bool) {
	if c.Flags == nil {
		return "", false
	}
	if c.Flags.SVG != "" {
		return c.Flags.SVG, true
	}
	if c.Flags.PNG != "" {
		return c.Flags.PNG, true
	}
	return "", false
}

// FirstNativeName returns the common native name of the first language key in
// lexical order. Upstream maps carry no stable order.
func (c *Country) FirstNativeName() (string, bool) {
	if c.Name == nil || len(c.Name.NativeName) == 0 {
		return "", false
	}
	for _, key := range sortedKeys(c.Name.NativeName) {
		if n := c.Name.NativeName[key].Common; n != "" {
			return n, true
		}
	}
	return "", false
}

// CurrencyNames returns currency names ordered by currency code.
func (c *Country) CurrencyNames() []string {
	names := make([]string, 0, len(c.Currencies))
	for _, code := range sortedKeys(c.Currencies) {
		if n := c.Currencies[code].Name; n != "" {
			names = append(names, n)
		}
	}
	return names
}

// LanguageNames returns language names ordered by language key.
func (c *Country) LanguageNames() []string {
	names := make([]string, 0, len(c.Languages))
	for _, key := range sortedKeys(c.Languages) {
		if n := c.Languages[key]; n != "" {
			names = append(names, n)
		}
	}
	return names
}

// HasBorders reports whether the record lists any neighbouring countries.
func (c *Country) HasBorders() bool {
	return len(c.Borders) > 0
}

// InRegion reports whether the record's region equals region, ignoring case.
// A record without a region is in no region.
func (c *Country) InRegion(region string) bool {
	r, ok := c.RegionName()
	return ok && strings.EqualFold(r, region)
}

// NameContains reports whether the display name contains term, ignoring case.
// A record without a display name matches nothing.
func (c *Country) NameContains(term string) bool {
	name, ok := c.DisplayName()
	return ok && strings.Contains(strings.ToLower(name), strings.ToLower(term))
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
