package checklist

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hostelez/internal/core"
	"hostelez/internal/store/storetest"
)

func TestMongoRepository_Toggle(t *testing.T) {
	repo := NewMongoRepository(storetest.Mongo(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, Checklist{
		ID:     "c1",
		UserID: "u1",
		Items: []Item{
			{ID: "i1", Name: "Keys", IsDefault: true},
			{ID: "i2", Name: "ID card", IsDefault: true},
		},
	}))

	cl, err := repo.Toggle(ctx, "u1", "i2")
	require.NoError(t, err)
	require.Len(t, cl.Items, 2)
	assert.False(t, cl.Items[0].IsChecked)
	assert.True(t, cl.Items[1].IsChecked)
	assert.Equal(t, "ID card", cl.Items[1].Name)

	cl, err = repo.Toggle(ctx, "u1", "i2")
	require.NoError(t, err)
	assert.False(t, cl.Items[1].IsChecked)

	_, err = repo.Toggle(ctx, "u1", "nope")
	assert.True(t, core.IsNotFound(err))

	cl, err = repo.AddItem(ctx, "u1", Item{ID: "i3", Name: "Umbrella"})
	require.NoError(t, err)
	require.Len(t, cl.Items, 3)
	_, err = repo.Toggle(ctx, "u1", "i1")
	require.NoError(t, err)
	_, err = repo.Toggle(ctx, "u1", "i3")
	require.NoError(t, err)

	at := time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC)
	n, err := repo.ResetAll(ctx, at)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	cl, err = repo.GetByUser(ctx, "u1")
	require.NoError(t, err)
	for _, it := range cl.Items {
		assert.False(t, it.IsChecked, it.Name)
	}
	assert.True(t, at.Equal(cl.LastReset))
}
