package deps

import (
	"testing"

	"github.com/joefazee/atlas/internal/cache"
	"github.com/joefazee/atlas/internal/sanitizer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type lookupClient interface{ Name() string }

type restClient struct{}

func (restClient) Name() string { return "rest" }

func newTestContainer() *Container {
	return NewContainer(nil, nil, sanitizer.NewHTMLStripper(), nil, cache.NewMemoryCache[string]())
}

func TestContainer_Services(t *testing.T) {
	c := newTestContainer()
	assert.NotNil(t, c.Logger)
	assert.Nil(t, c.GetService("countries.client"))

	c.RegisterService("countries.client", restClient{})
	assert.Equal(t, restClient{}, c.GetService("countries.client"))
}

func TestLookup(t *testing.T) {
	c := newTestContainer()
	c.RegisterService("countries.client", restClient{})
	c.RegisterService("favorites.service", 42)

	client, err := Lookup[lookupClient](c, "countries.client")
	require.NoError(t, err)
	assert.Equal(t, "rest", client.Name())

	_, err = Lookup[lookupClient](c, "missing")
	assert.ErrorContains(t, err, `no service registered as "missing"`)

	_, err = Lookup[lookupClient](c, "favorites.service")
	assert.ErrorContains(t, err, "is int")

	assert.Panics(t, func() { MustLookup[lookupClient](c, "missing") })
	assert.NotPanics(t, func() { MustLookup[lookupClient](c, "countries.client") })
}
