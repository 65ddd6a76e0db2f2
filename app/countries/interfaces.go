package countries

import (
	"context"

	"github.com/joefazee/atlas/models"
)

// Client maps requests onto the remote country source.
type Client interface {
	// FetchAll returns every country. Failures are *TransportError.
	FetchAll(ctx context.Context) ([]models.Country, error)
	// FetchByName searches by partial name. Failures are logged and yield an empty result.
	FetchByName(ctx context.Context, term string) ([]models.Country, error)
	// FetchByRegion lists one region. Failures, 404 included, are *TransportError.
	FetchByRegion(ctx context.Context, region string) ([]models.Country, error)
	// FetchByCode returns the country for an alpha-3 code or a *NotFoundError.
	FetchByCode(ctx context.Context, code string) (*models.Country, error)
}

// Service backs the country endpoints.
type Service interface {
	ListCountries(ctx context.Context) ([]CountrySummary, error)
	SearchByName(ctx context.Context, term string) ([]CountrySummary, error)
	ListByRegion(ctx context.Context, region string) ([]CountrySummary, error)
	GetCountryDetail(ctx context.Context, code string) (*CountryDetail, error)
}
