package territory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvdelivery/city"
	"github.com/katalvlaran/lvdelivery/territory"
)

func newCity(t *testing.T, east, north int, sites ...city.Site) *city.City {
	t.Helper()
	c, err := city.NewCity(east, north, sites)
	require.NoError(t, err)
	return c
}

func site(x, y, capacity int) city.Site {
	return city.Site{Origin: city.Block{X: x, Y: y}, Capacity: capacity}
}

func TestFromCity_Snapshot(t *testing.T) {
	c := newCity(t, 3, 2, site(1, 1, 1), site(3, 2, 0))
	m := territory.FromCity(c)

	assert.Equal(t, 3, m.Width)
	assert.Equal(t, 2, m.Height)
	assert.Equal(t, [][]int{{1, 0, 0}, {0, 0, 2}}, m.Cells)
	assert.Equal(t, 4, m.Unclaimed())

	c.Claim(1, city.North, 1)
	assert.Equal(t, 1, m.Owned(1), "snapshot must not follow later claims")
	assert.Equal(t, 2, territory.FromCity(c).Owned(1))
}

func TestCoordinateAndBlock(t *testing.T) {
	m := territory.FromCity(newCity(t, 4, 3, site(1, 1, 1)))

	x, y := m.Coordinate(6)
	assert.Equal(t, 2, x)
	assert.Equal(t, 1, y)
	assert.Equal(t, city.Block{X: 3, Y: 2}, m.Block(6))
	assert.True(t, m.InBounds(3, 2))
	assert.False(t, m.InBounds(4, 0))
	assert.False(t, m.InBounds(0, -1))
}

// TestComponents_SplitByOwner checks that adjacent blocks with different
// owners form separate components.
//
//	1 1 2
func TestComponents_SplitByOwner(t *testing.T) {
	c := newCity(t, 3, 1, site(1, 1, 1), site(3, 1, 0))
	c.Claim(1, city.East, 1)

	comps := territory.FromCity(c).Components()
	require.Len(t, comps, 2)
	assert.Equal(t, territory.Component{Owner: 1, Cells: []int{0, 1}}, comps[0])
	assert.Equal(t, territory.Component{Owner: 2, Cells: []int{2}}, comps[1])
}

func TestComponents_Cross(t *testing.T) {
	c := newCity(t, 3, 3, site(2, 2, 4))
	for _, d := range city.Directions {
		c.Claim(1, d, 1)
	}

	comps := territory.FromCity(c).Components()
	require.Len(t, comps, 1)
	assert.Len(t, comps[0].Cells, 5)
}

func TestRender(t *testing.T) {
	c := newCity(t, 3, 2, site(1, 1, 1), site(3, 2, 0))
	c.Claim(1, city.North, 1)

	assert.Equal(t, "1 . 2\n1 . .\n", territory.FromCity(c).Render())
}

func TestRender_PadsWideIDs(t *testing.T) {
	sites := make([]city.Site, 11)
	for i := range sites {
		sites[i] = site(i+1, 1, 0)
	}
	c := newCity(t, 12, 1, sites...)

	assert.Equal(t, " 1  2  3  4  5  6  7  8  9 10 11  .\n", territory.FromCity(c).Render())
}

func TestVerify_Modes(t *testing.T) {
	c := newCity(t, 3, 3, site(2, 2, 2))

	assert.NoError(t, territory.Verify(c, territory.ModePartial))
	assert.ErrorIs(t, territory.Verify(c, territory.ModeComplete), territory.ErrNotConserved)

	c.Claim(1, city.North, 1)
	c.Claim(1, city.West, 1)
	assert.NoError(t, territory.Verify(c, territory.ModeComplete))
}

func TestVerify_StolenOrigin(t *testing.T) {
	c := newCity(t, 3, 1, site(1, 1, 2), site(2, 1, 1))
	// breaks the Claim precondition on purpose
	c.Claim(1, city.East, 1)

	assert.ErrorIs(t, territory.Verify(c, territory.ModePartial), territory.ErrShape)
}

func TestVerify_OverCapacity(t *testing.T) {
	c := newCity(t, 3, 1, site(1, 1, 1))
	c.Claim(1, city.East, 2)

	assert.ErrorIs(t, territory.Verify(c, territory.ModePartial), territory.ErrOverCapacity)
}
