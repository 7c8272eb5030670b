package territory

import (
	"fmt"

	"github.com/katalvlaran/lvdelivery/city"
)

// Verify checks the ownership invariants of c:
//
//  1. every serviced run stays inside the grid (boundedness);
//  2. each pizzeria owns exactly its origin plus its runs, so no block is
//     counted by two pizzerias (disjointness);
//  3. each territory is a single 4-connected component of that size;
//  4. no pizzeria exceeds its capacity, and under ModeComplete every one
//     meets it exactly (conservation).
//
// The first violation found is returned, wrapped with the pizzeria id.
// Complexity: O(W×H + K).
func Verify(c *city.City, mode Mode) error {
	m := FromCity(c)
	size := make([]int, m.Owners+1)
	parts := make([]int, m.Owners+1)
	for _, comp := range m.Components() {
		size[comp.Owner] += len(comp.Cells)
		parts[comp.Owner]++
	}

	for _, p := range c.Pizzerias() {
		if err := verifyRuns(c, p); err != nil {
			return err
		}
		counts := p.Counts()
		if want := 1 + counts.Total(); parts[p.ID()] != 1 || size[p.ID()] != want {
			return fmt.Errorf("%w: pizzeria %d owns %d blocks in %d parts, runs cover %d",
				ErrShape, p.ID(), size[p.ID()], parts[p.ID()], want)
		}
		if p.Remaining() < 0 {
			return fmt.Errorf("%w: pizzeria %d serviced %d of %d",
				ErrOverCapacity, p.ID(), counts.Total(), p.Capacity())
		}
		if mode == ModeComplete && p.Remaining() != 0 {
			return fmt.Errorf("%w: pizzeria %d serviced %d of %d",
				ErrNotConserved, p.ID(), counts.Total(), p.Capacity())
		}
	}
	return nil
}

func verifyRuns(c *city.City, p city.Pizzeria) error {
	if c.Owner(p.Origin()) != p.ID() {
		return fmt.Errorf("%w: pizzeria %d lost its origin %s", ErrShape, p.ID(), p.Origin())
	}
	for _, d := range city.Directions {
		for offset := 1; offset <= p.Serviced(d); offset++ {
			b := p.Origin().Offset(d, offset)
			if !c.IsInternal(b) {
				return fmt.Errorf("%w: pizzeria %d %s run at %s", ErrOutOfBounds, p.ID(), d, b)
			}
			if owner := c.Owner(b); owner != p.ID() {
				return fmt.Errorf("%w: pizzeria %d %s run at %s owned by %d",
					ErrShape, p.ID(), d, b, owner)
			}
		}
	}
	return nil
}
