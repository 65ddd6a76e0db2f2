package countries

import (
	"context"

	"github.com/joefazee/atlas/models"
	"github.com/stretchr/testify/mock"
)

// MockClient is a testify mock for Client.
type MockClient struct {
	mock.Mock
}

var _ Client = (*MockClient)(nil)

func (m *MockClient) FetchAll(ctx context.Context) ([]models.Country, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Country), args.Error(1)
}

func (m *MockClient) FetchByName(ctx context.Context, term string) ([]models.Country, error) {
	args := m.Called(ctx, term)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Country), args.Error(1)
}

func (m *MockClient) FetchByRegion(ctx context.Context, region string) ([]models.Country, error) {
	args := m.Called(ctx, region)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Country), args.Error(1)
}

func (m *MockClient) FetchByCode(ctx context.Context, code string) (*models.Country, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Country), args.Error(1)
}

// MockService is a testify mock for Service.
type MockService struct {
	mock.Mock
}

var _ Service = (*MockService)(nil)

func (m *MockService) ListCountries(ctx context.Context) ([]CountrySummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]CountrySummary), args.Error(1)
}

func (m *MockService) SearchByName(ctx context.Context, term string) ([]CountrySummary, error) {
	args := m.Called(ctx, term)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]CountrySummary), args.Error(1)
}

func (m *MockService) ListByRegion(ctx context.Context, region string) ([]CountrySummary, error) {
	args := m.Called(ctx, region)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]CountrySummary), args.Error(1)
}

func (m *MockService) GetCountryDetail(ctx context.Context, code string) (*CountryDetail, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*CountryDetail), args.Error(1)
}
