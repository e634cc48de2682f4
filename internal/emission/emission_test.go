package emission

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalogDeterministic(t *testing.T) {
	a := DefaultCatalog(42)
	b := DefaultCatalog(42)
	require.Equal(t, a, b)

	c := DefaultCatalog(43)
	assert.NotEqual(t, a, c, "different seeds should jitter traffic differently")
}

func TestDefaultCatalogShape(t *testing.T) {
	sources := DefaultCatalog(1)
	require.Len(t, sources, 3+25+25+10)

	first := sources[0]
	assert.Equal(t, "factory-1", first.ID)
	assert.Equal(t, 4, first.X)
	assert.Equal(t, 5, first.Y)
	assert.InDelta(t, 250.0, first.Rate, 1e-9)

	for _, s := range sources {
		switch {
		case strings.HasPrefix(s.ID, "traffic-h-main-"):
			assert.Equal(t, 12, s.Y)
			assert.GreaterOrEqual(t, s.Rate, 80.0)
			assert.Less(t, s.Rate, 120.0)
		case strings.HasPrefix(s.ID, "traffic-v-main-"):
			assert.Equal(t, 10, s.X)
			assert.GreaterOrEqual(t, s.Rate, 90.0)
			assert.Less(t, s.Rate, 140.0)
		case strings.HasPrefix(s.ID, "traffic-h-secondary-"):
			assert.Equal(t, 3, s.Y)
			assert.InDelta(t, 60.0, s.Rate, 1e-9)
		}
	}
}

func TestBlockingAt(t *testing.T) {
	sources := DefaultCatalog(1)

	s, ok := BlockingAt(sources, 4, 5)
	require.True(t, ok)
	assert.Equal(t, Factory, s.Category)

	_, ok = BlockingAt(sources, 3, 12)
	assert.False(t, ok, "road cells accept devices")

	_, ok = BlockingAt(sources, 0, 0)
	assert.False(t, ok)
}

func TestTotal(t *testing.T) {
	assert.InDelta(t, 300.0, Total([]Source{{Rate: 100}, {Rate: 200}}), 1e-9)
	assert.Zero(t, Total(nil))
}
