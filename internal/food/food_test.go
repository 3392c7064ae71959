package food

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNearby(t *testing.T) {
	svc := NewService(NewMemoryRepository())
	ctx := context.Background()
	closed := false

	distances := []float64{900, 50, 300, 1200, 10, 700, 450}
	for i, d := range distances {
		nv := NewVenue{Name: "venue", Type: "Cafe", Distance: d}
		if i == 4 {
			nv.IsOpen = &closed
		}
		_, err := svc.Add(ctx, nv)
		require.NoError(t, err)
	}

	got, err := svc.Nearby(ctx)
	require.NoError(t, err)
	require.Len(t, got, NearbyLimit)
	want := []float64{50, 300, 450, 700, 900}
	for i, v := range got {
		assert.Equal(t, want[i], v.Distance)
		assert.True(t, v.IsOpen)
	}
}
