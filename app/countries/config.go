package countries

import "time"

// Config tunes the upstream client and browse views.
type Config struct {
	BaseURL    string        `env:"RESTCOUNTRIES_BASE_URL" env-default:"https://restcountries.com/v3.1" validate:"required,url"`
	Timeout    time.Duration `env:"RESTCOUNTRIES_TIMEOUT" env-default:"10s"`
	ListFields string        `env:"RESTCOUNTRIES_LIST_FIELDS" env-default:"cca3,cca2,name,population,region,subregion,capital,flags"`
	ViewTTL    time.Duration `env:"BROWSE_VIEW_TTL" env-default:"15m"`
}
