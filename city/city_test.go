package city_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvdelivery/city"
)

func mustCity(t *testing.T, east, north int, sites ...city.Site) *city.City {
	t.Helper()
	c, err := city.NewCity(east, north, sites)
	require.NoError(t, err)
	return c
}

func TestNewCity_MarksOrigins(t *testing.T) {
	c := mustCity(t, 4, 3,
		city.Site{Origin: city.Block{X: 1, Y: 1}, Capacity: 2},
		city.Site{Origin: city.Block{X: 4, Y: 3}, Capacity: 0},
	)

	assert.Equal(t, 4, c.East())
	assert.Equal(t, 3, c.North())
	assert.Equal(t, []int{1, 2}, c.IDs())
	assert.Equal(t, 1, c.Owner(city.Block{X: 1, Y: 1}))
	assert.Equal(t, 2, c.Owner(city.Block{X: 4, Y: 3}))
	assert.False(t, c.IsAssignable(city.Block{X: 1, Y: 1}))
	assert.True(t, c.IsAssignable(city.Block{X: 2, Y: 2}))

	// zero capacity is satisfied from the start
	assert.Equal(t, []int{1}, c.FreeIDs())
	assert.False(t, c.IsFree(2))
	assert.True(t, c.HasFree())
}

func TestNewCity_Validation(t *testing.T) {
	one := []city.Site{{Origin: city.Block{X: 1, Y: 1}, Capacity: 1}}

	cases := []struct {
		name   string
		east   int
		north  int
		sites  []city.Site
		target error
	}{
		{"east too large", 31, 5, one, city.ErrInvalidDimension},
		{"east zero", 0, 5, one, city.ErrInvalidDimension},
		{"north too large", 5, 31, one, city.ErrInvalidDimension},
		{"no pizzerias", 5, 5, nil, city.ErrInvalidCount},
		{"too many pizzerias", 30, 30, make([]city.Site, city.MaxPizzerias+1), city.ErrInvalidCount},
		{"origin outside", 2, 2, []city.Site{{Origin: city.Block{X: 3, Y: 1}, Capacity: 1}}, city.ErrInvalidCoordinate},
		{"origin zero", 2, 2, []city.Site{{Origin: city.Block{X: 1, Y: 0}, Capacity: 1}}, city.ErrInvalidCoordinate},
		{"negative capacity", 2, 2, []city.Site{{Origin: city.Block{X: 1, Y: 1}, Capacity: -1}}, city.ErrInvalidCapacity},
		{"shared origin", 2, 2, []city.Site{
			{Origin: city.Block{X: 1, Y: 1}, Capacity: 1},
			{Origin: city.Block{X: 1, Y: 1}, Capacity: 1},
		}, city.ErrOccupiedOrigin},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, err := city.NewCity(tc.east, tc.north, tc.sites)
			assert.Nil(t, c)
			assert.ErrorIs(t, err, tc.target)
		})
	}
}

func TestIsInternal(t *testing.T) {
	c := mustCity(t, 3, 2, city.Site{Origin: city.Block{X: 2, Y: 1}, Capacity: 1})

	for _, b := range []city.Block{{1, 1}, {3, 2}, {3, 1}, {1, 2}} {
		assert.True(t, c.IsInternal(b), "%s should be internal", b)
	}
	for _, b := range []city.Block{{0, 1}, {4, 1}, {1, 0}, {1, 3}, {-1, -1}} {
		assert.False(t, c.IsInternal(b), "%s should be external", b)
		assert.False(t, c.IsAssignable(b))
		assert.Zero(t, c.Owner(b))
	}
}

func TestClaim_ExtendsRunAndUpdatesFree(t *testing.T) {
	c := mustCity(t, 5, 5, city.Site{Origin: city.Block{X: 3, Y: 3}, Capacity: 3})

	c.Claim(1, city.North, 1)
	assert.Equal(t, 1, c.Owner(city.Block{X: 3, Y: 4}))
	assert.Equal(t, 1, c.Serviced(1, city.North))
	assert.Equal(t, 2, c.Remaining(1))
	assert.True(t, c.IsFree(1))

	// a second claim in the same direction continues the run
	c.Claim(1, city.North, 1)
	assert.Equal(t, 1, c.Owner(city.Block{X: 3, Y: 5}))
	assert.Equal(t, 2, c.Serviced(1, city.North))

	c.Claim(1, city.West, 1)
	assert.Equal(t, 1, c.Owner(city.Block{X: 2, Y: 3}))
	assert.Equal(t, city.Counts{2, 0, 0, 1}, c.Counts(1))
	assert.Zero(t, c.Remaining(1))
	assert.False(t, c.IsFree(1))
	assert.False(t, c.HasFree())
	assert.Empty(t, c.FreeIDs())
}

func TestFreeIDs_KeepRegistryOrder(t *testing.T) {
	c := mustCity(t, 5, 1,
		city.Site{Origin: city.Block{X: 1, Y: 1}, Capacity: 1},
		city.Site{Origin: city.Block{X: 3, Y: 1}, Capacity: 1},
		city.Site{Origin: city.Block{X: 5, Y: 1}, Capacity: 1},
	)
	snapshot := c.FreeIDs()

	c.Claim(2, city.East, 1)
	assert.Equal(t, []int{1, 3}, c.FreeIDs())
	assert.Equal(t, []int{1, 2, 3}, snapshot, "snapshot must not alias internal state")
}

func TestBlockAt_IgnoresBounds(t *testing.T) {
	c := mustCity(t, 2, 2, city.Site{Origin: city.Block{X: 1, Y: 1}, Capacity: 1})

	assert.Equal(t, city.Block{X: 1, Y: 4}, c.BlockAt(1, city.North, 3))
	assert.Equal(t, city.Block{X: 3, Y: 1}, c.BlockAt(1, city.East, 2))
	assert.Equal(t, city.Block{X: 1, Y: -1}, c.BlockAt(1, city.South, 2))
	assert.Equal(t, city.Block{X: 0, Y: 1}, c.BlockAt(1, city.West, 1))
}

func TestPizzeriasAreCopies(t *testing.T) {
	c := mustCity(t, 3, 1, city.Site{Origin: city.Block{X: 1, Y: 1}, Capacity: 2})
	before := c.Pizzerias()

	c.Claim(1, city.East, 2)
	assert.Equal(t, 2, before[0].Remaining())
	assert.Zero(t, c.Pizzeria(1).Remaining())
	assert.Equal(t, city.Block{X: 1, Y: 1}, c.Origin(1))
	assert.Equal(t, 1, c.Len())
}

func TestDirectionOrderAndNames(t *testing.T) {
	assert.Equal(t, [4]city.Direction{city.North, city.East, city.South, city.West}, city.Directions)
	assert.Equal(t, "north", city.North.String())
	assert.Equal(t, "west", city.West.String())
	assert.Equal(t, "direction(9)", city.Direction(9).String())
	assert.Equal(t, 6, city.Counts{1, 2, 3, 0}.Total())
}
