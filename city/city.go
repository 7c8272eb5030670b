package city

import "fmt"

// unclaimed marks a block no pizzeria owns. Pizzeria ids start at 1.
const unclaimed = 0

// City is one allocation instance: a bounded grid plus its pizzerias.
// It is not safe for concurrent mutation; one allocation run owns it.
type City struct {
	east, north int
	cells       [][]int // cells[x-1][y-1] holds the owner id or unclaimed
	pizzerias   []*Pizzeria
	free        []int
}

// NewCity validates the grid bounds and sites and builds a City with every
// origin owned by its pizzeria. Pizzeria ids are assigned 1..len(sites) in
// slice order.
// Returns ErrInvalidDimension, ErrInvalidCount, ErrInvalidCoordinate,
// ErrInvalidCapacity or ErrOccupiedOrigin, wrapped with the offending value.
// Complexity: O(E×N + K) time and memory.
func NewCity(east, north int, sites []Site) (*City, error) {
	if err := ValidateBounds(east, north); err != nil {
		return nil, err
	}
	if err := ValidateCount(len(sites)); err != nil {
		return nil, err
	}

	c := &City{
		east:      east,
		north:     north,
		cells:     make([][]int, east),
		pizzerias: make([]*Pizzeria, 0, len(sites)),
		free:      make([]int, 0, len(sites)),
	}
	for x := range c.cells {
		c.cells[x] = make([]int, north)
	}

	for i, s := range sites {
		id := i + 1
		if !c.IsInternal(s.Origin) {
			return nil, fmt.Errorf("%w: pizzeria %d at %s outside %dx%d",
				ErrInvalidCoordinate, id, s.Origin, east, north)
		}
		if s.Capacity < 0 {
			return nil, fmt.Errorf("%w: pizzeria %d capacity %d", ErrInvalidCapacity, id, s.Capacity)
		}
		if owner := c.Owner(s.Origin); owner != unclaimed {
			return nil, fmt.Errorf("%w: pizzeria %d at %s, taken by %d",
				ErrOccupiedOrigin, id, s.Origin, owner)
		}

		p := newPizzeria(id, s)
		c.pizzerias = append(c.pizzerias, p)
		c.cells[s.Origin.X-1][s.Origin.Y-1] = id
		if p.IsFree() {
			c.free = append(c.free, id)
		}
	}

	return c, nil
}

// ValidateBounds checks that both grid dimensions lie in [1, MaxBound].
func ValidateBounds(east, north int) error {
	for _, v := range [2]int{east, north} {
		if v < 1 || v > MaxBound {
			return fmt.Errorf("%w = %d, must be positive and at most %d", ErrInvalidDimension, v, MaxBound)
		}
	}
	return nil
}

// ValidateCount checks that the pizzeria count lies in [1, MaxPizzerias].
func ValidateCount(k int) error {
	if k < 1 || k > MaxPizzerias {
		return fmt.Errorf("%w = %d, must be positive and at most %d", ErrInvalidCount, k, MaxPizzerias)
	}
	return nil
}

// East returns the number of blocks along the X axis.
func (c *City) East() int { return c.east }

// North returns the number of blocks along the Y axis.
func (c *City) North() int { return c.north }

// IsInternal reports whether b lies inside the grid.
// Complexity: O(1).
func (c *City) IsInternal(b Block) bool {
	return b.X >= 1 && b.X <= c.east && b.Y >= 1 && b.Y <= c.north
}

// IsUnclaimed reports whether no pizzeria owns b. b must be internal.
func (c *City) IsUnclaimed(b Block) bool {
	return c.cells[b.X-1][b.Y-1] == unclaimed
}

// IsAssignable reports whether b is inside the grid and unclaimed.
// Complexity: O(1).
func (c *City) IsAssignable(b Block) bool {
	return c.IsInternal(b) && c.IsUnclaimed(b)
}

// Owner returns the id owning b, or 0 when b is unclaimed or outside the grid.
func (c *City) Owner(b Block) int {
	if !c.IsInternal(b) {
		return unclaimed
	}
	return c.cells[b.X-1][b.Y-1]
}

// Claim extends the run of pizzeria id in direction d by count blocks and
// marks them owned. The caller guarantees that every block in the extension
// is assignable; Claim does not re-check, and breaking that guarantee
// corrupts the ownership grid.
// Complexity: O(count + K).
func (c *City) Claim(id int, d Direction, count int) {
	p := c.pizzerias[id-1]
	start := p.Serviced(d)
	for offset := start + 1; offset <= start+count; offset++ {
		b := p.origin.Offset(d, offset)
		c.cells[b.X-1][b.Y-1] = id
	}

	p.addServiced(d, count)
	if !p.IsFree() {
		c.dropFree(id)
	}
}

func (c *City) dropFree(id int) {
	for i, v := range c.free {
		if v == id {
			c.free = append(c.free[:i], c.free[i+1:]...)
			return
		}
	}
}

// BlockAt returns the block offset steps from id's origin in direction d.
// It is pure arithmetic and ignores ownership and bounds.
func (c *City) BlockAt(id int, d Direction, offset int) Block {
	return c.pizzerias[id-1].origin.Offset(d, offset)
}

// Len returns the number of pizzerias.
func (c *City) Len() int { return len(c.pizzerias) }

// IDs returns every pizzeria id in registry order.
func (c *City) IDs() []int {
	ids := make([]int, len(c.pizzerias))
	for i := range c.pizzerias {
		ids[i] = i + 1
	}
	return ids
}

// FreeIDs returns a snapshot of the free pizzeria ids in registry order.
func (c *City) FreeIDs() []int {
	out := make([]int, len(c.free))
	copy(out, c.free)
	return out
}

// HasFree reports whether any pizzeria still has capacity left.
func (c *City) HasFree() bool { return len(c.free) != 0 }

// IsFree reports whether pizzeria id still has capacity left.
func (c *City) IsFree(id int) bool { return c.pizzerias[id-1].IsFree() }

// Serviced returns the run length of pizzeria id in direction d.
func (c *City) Serviced(id int, d Direction) int { return c.pizzerias[id-1].Serviced(d) }

// Remaining returns the unserviced capacity of pizzeria id.
func (c *City) Remaining(id int) int { return c.pizzerias[id-1].Remaining() }

// Origin returns the origin block of pizzeria id.
func (c *City) Origin(id int) Block { return c.pizzerias[id-1].origin }

// Counts returns the serviced counts of pizzeria id.
func (c *City) Counts(id int) Counts { return c.pizzerias[id-1].serviced }

// Pizzeria returns a copy of pizzeria id.
func (c *City) Pizzeria(id int) Pizzeria { return *c.pizzerias[id-1] }

// Pizzerias returns copies of all pizzerias in registry order.
func (c *City) Pizzerias() []Pizzeria {
	out := make([]Pizzeria, len(c.pizzerias))
	for i, p := range c.pizzerias {
		out[i] = *p
	}
	return out
}
