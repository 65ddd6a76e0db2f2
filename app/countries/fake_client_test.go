package countries

import (
	"context"
	"strings"
	"sync"

	"github.com/joefazee/atlas/models"
)

func ptr[T any](v T) *T { return &v }

func seedCountry(code, name, official, region string, population int64, borders ...string) models.Country {
	return models.Country{
		Code:       code,
		Name:       &models.CountryName{Common: name, Official: official},
		Region:     ptr(region),
		Population: ptr(population),
		Capital:    []string{name + " City"},
		Borders:    borders,
	}
}

func seedCountries() []models.Country {
	return []models.Country{
		seedCountry("DEU", "Germany", "Federal Republic of Germany", "Europe", 83240000, "FRA"),
		seedCountry("FRA", "France", "French Republic", "Europe", 67390000, "DEU"),
		seedCountry("JPN", "Japan", "Japan", "Asia", 126500000),
	}
}

// fakeClient serves a fixed seed the way the upstream does and records calls.
// A gate registered for a call key blocks that call until released or canceled.
type fakeClient struct {
	mu       sync.Mutex
	seed     []models.Country
	calls    []string
	gates    map[string]chan struct{}
	canceled []string
	failAll  error
	failCode map[string]error
}

func newFakeClient(seed []models.Country) *fakeClient {
	return &fakeClient{seed: seed, gates: map[string]chan struct{}{}, failCode: map[string]error{}}
}

func (f *fakeClient) gate(key string) chan struct{} {
	f.mu.Lock()
	defer f.mu.Unlock()
	ch := make(chan struct{})
	f.gates[key] = ch
	return ch
}

func (f *fakeClient) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

func (f *fakeClient) Canceled() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.canceled...)
}

func (f *fakeClient) enter(ctx context.Context, key string) error {
	f.mu.Lock()
	f.calls = append(f.calls, key)
	g := f.gates[key]
	f.mu.Unlock()

	if g == nil {
		return nil
	}
	select {
	case <-g:
		return nil
	case <-ctx.Done():
		f.mu.Lock()
		f.canceled = append(f.canceled, key)
		f.mu.Unlock()
		return ctx.Err()
	}
}

func (f *fakeClient) match(keep func(*models.Country) bool) []models.Country {
	out := []models.Country{}
	for i := range f.seed {
		if keep(&f.seed[i]) {
			out = append(out, f.seed[i])
		}
	}
	return out
}

func (f *fakeClient) FetchAll(ctx context.Context) ([]models.Country, error) {
	if err := f.enter(ctx, "all"); err != nil {
		return nil, &TransportError{Op: "all", Err: err}
	}
	if f.failAll != nil {
		return nil, f.failAll
	}
	return f.match(func(*models.Country) bool { return true }), nil
}

// FetchByName matches common or official names, like the upstream search.
func (f *fakeClient) FetchByName(ctx context.Context, term string) ([]models.Country, error) {
	if err := f.enter(ctx, "name:"+term); err != nil {
		return []models.Country{}, nil
	}
	t := strings.ToLower(term)
	return f.match(func(c *models.Country) bool {
		return c.Name != nil && (strings.Contains(strings.ToLower(c.Name.Common), t) ||
			strings.Contains(strings.ToLower(c.Name.Official), t))
	}), nil
}

func (f *fakeClient) FetchByRegion(ctx context.Context, region string) ([]models.Country, error) {
	if err := f.enter(ctx, "region:"+region); err != nil {
		return nil, &TransportError{Op: "region", Err: err}
	}
	return f.match(func(c *models.Country) bool { return c.InRegion(region) }), nil
}

func (f *fakeClient) FetchByCode(ctx context.Context, code string) (*models.Country, error) {
	if err := f.enter(ctx, "alpha:"+code); err != nil {
		return nil, &TransportError{Op: "alpha", Err: err}
	}
	f.mu.Lock()
	failErr := f.failCode[code]
	f.mu.Unlock()
	if failErr != nil {
		return nil, failErr
	}
	for i := range f.seed {
		if strings.EqualFold(f.seed[i].Code, code) {
			c := f.seed[i]
			return &c, nil
		}
	}
	return nil, &NotFoundError{Code: code}
}
