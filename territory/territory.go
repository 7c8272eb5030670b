package territory

import "github.com/katalvlaran/lvdelivery/city"

// FromCity snapshots the ownership grid of c. Later claims on c are not
// reflected in the returned Map.
// Complexity: O(W×H) time and memory.
func FromCity(c *city.City) *Map {
	w, h := c.East(), c.North()
	cells := make([][]int, h)
	for y := 0; y < h; y++ {
		cells[y] = make([]int, w)
		for x := 0; x < w; x++ {
			cells[y][x] = c.Owner(city.Block{X: x + 1, Y: y + 1})
		}
	}
	return &Map{
		Width:           w,
		Height:          h,
		Cells:           cells,
		Owners:          c.Len(),
		neighborOffsets: defaultOffsets(),
	}
}

// InBounds reports whether the 0-based (x,y) lies within the map.
// Complexity: O(1).
func (m *Map) InBounds(x, y int) bool {
	return x >= 0 && x < m.Width && y >= 0 && y < m.Height
}

// index maps (x,y) to a row-major index: y*Width + x.
func (m *Map) index(x, y int) int {
	return y*m.Width + x
}

// Coordinate converts a row-major index back to 0-based (x,y).
// Complexity: O(1).
func (m *Map) Coordinate(idx int) (x, y int) {
	return idx % m.Width, idx / m.Width
}

// Block converts a row-major index to the 1-based city block.
func (m *Map) Block(idx int) city.Block {
	x, y := m.Coordinate(idx)
	return city.Block{X: x + 1, Y: y + 1}
}

// Owned returns the number of blocks owned by id.
func (m *Map) Owned(id int) int {
	n := 0
	for _, row := range m.Cells {
		for _, v := range row {
			if v == id {
				n++
			}
		}
	}
	return n
}

// Unclaimed returns the number of blocks nobody owns.
func (m *Map) Unclaimed() int {
	return m.Owned(0)
}
