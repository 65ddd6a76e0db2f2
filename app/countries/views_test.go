package countries

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/joefazee/atlas/internal/cache"
	"github.com/joefazee/atlas/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestViews_Lifecycle(t *testing.T) {
	views := NewViews(newFakeClient(seedCountries()), nil, time.Minute)
	t.Cleanup(views.Stop)
	ctx := context.Background()

	id, c, gen, err := views.Open(ctx)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, id)
	assert.Equal(t, 1, views.Len())

	snap := waitFor(t, c, gen)
	assert.Len(t, snap.Countries, 3)

	got, err := views.Get(ctx, id)
	require.NoError(t, err)
	assert.Same(t, c, got)

	require.NoError(t, views.Close(ctx, id))
	assert.Equal(t, 0, views.Len())

	_, err = views.Get(ctx, id)
	assert.ErrorIs(t, err, models.ErrRecordNotFound)
	assert.ErrorIs(t, views.Close(ctx, id), models.ErrRecordNotFound)
}

func TestViews_IdleViewsExpire(t *testing.T) {
	client := newFakeClient(seedCountries())
	client.gate("all")
	store := cache.NewMemoryCacheWithOptions[*Coordinator](4, 10*time.Millisecond)
	views := newViews(client, nil, 30*time.Millisecond, store)
	t.Cleanup(views.Stop)

	_, _, _, err := views.Open(context.Background())
	require.NoError(t, err)

	assert.Eventually(t, func() bool {
		return views.Len() == 0 && len(client.Canceled()) == 1
	}, time.Second, 10*time.Millisecond)
}
