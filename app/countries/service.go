package countries

import (
	"context"
	"fmt"
	"strings"

	"github.com/joefazee/atlas/internal/logger"
	"golang.org/x/sync/errgroup"
)

// maxBorderLookups bounds the border fan-out.
const maxBorderLookups = 8

// service implements the Service interface
type service struct {
	client Client
	log    logger.Logger
}

// NewService creates a new country service
func NewService(client Client, log logger.Logger) Service {
	if log == nil {
		log = logger.NewNullLogger()
	}
	return &service{
		client: client,
		log:    log,
	}
}

// ListCountries returns all countries
func (s *service) ListCountries(ctx context.Context) ([]CountrySummary, error) {
	countries, err := s.client.FetchAll(ctx)
	if err != nil {
		return nil, err
	}
	return ToCountrySummaries(countries), nil
}

// SearchByName never fails on upstream errors; they read as no results.
func (s *service) SearchByName(ctx context.Context, term string) ([]CountrySummary, error) {
	countries, err := s.client.FetchByName(ctx, term)
	if err != nil {
		return nil, err
	}
	return ToCountrySummaries(countries), nil
}

// ListByRegion returns the countries of one region
func (s *service) ListByRegion(ctx context.Context, region string) ([]CountrySummary, error) {
	countries, err := s.client.FetchByRegion(ctx, region)
	if err != nil {
		return nil, err
	}
	return ToCountrySummaries(countries), nil
}

// GetCountryDetail resolves a country and its neighbours. Any failure to
// resolve the country itself is reported as not found.
func (s *service) GetCountryDetail(ctx context.Context, code string) (*CountryDetail, error) {
	code = strings.ToUpper(strings.TrimSpace(code))

	country, err := s.client.FetchByCode(ctx, code)
	if err != nil {
		if IsValidation(err) {
			return nil, err
		}
		s.log.Error(err, map[string]interface{}{"code": code})
		return nil, fmt.Errorf("resolve %s: %w", code, &NotFoundError{Code: code})
	}

	borders, err := s.resolveBorders(ctx, country.Borders)
	if err != nil {
		return nil, err
	}
	return ToCountryDetail(country, borders), nil
}

// resolveBorders looks every code up in parallel and keeps the input order.
// A neighbour that cannot be resolved is left out.
func (s *service) resolveBorders(ctx context.Context, codes []string) ([]BorderCountry, error) {
	if len(codes) == 0 {
		return []BorderCountry{}, nil
	}

	resolved := make([]*BorderCountry, len(codes))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxBorderLookups)

	for i, code := range codes {
		g.Go(func() error {
			neighbour, err := s.client.FetchByCode(gctx, code)
			if err != nil {
				s.log.Error(err, map[string]interface{}{"border": code})
				return nil
			}
			b := ToBorderCountry(neighbour)
			resolved[i] = &b
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	out := make([]BorderCountry, 0, len(codes))
	for _, b := range resolved {
		if b != nil {
			out = append(out, *b)
		}
	}
	return out, nil
}
