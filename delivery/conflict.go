package delivery

import "github.com/katalvlaran/lvdelivery/city"

// isPotential reports whether pizzeria id could still reach b along its row
// or its column with the capacity it has left.
func isPotential(c *city.City, id int, b city.Block) bool {
	return isPotentialByX(c, id, b) || isPotentialByY(c, id, b)
}

func isPotentialByX(c *city.City, id int, b city.Block) bool {
	o := c.Origin(id)
	if b.Y != o.Y {
		return false
	}
	r := c.Remaining(id)
	minX := o.X - c.Serviced(id, city.West) - r
	maxX := o.X + c.Serviced(id, city.East) + r
	return minX <= b.X && b.X <= maxX
}

func isPotentialByY(c *city.City, id int, b city.Block) bool {
	o := c.Origin(id)
	if b.X != o.X {
		return false
	}
	r := c.Remaining(id)
	minY := o.Y - c.Serviced(id, city.South) - r
	maxY := o.Y + c.Serviced(id, city.North) + r
	return minY <= b.Y && b.Y <= maxY
}

// nextPotentialBlock returns the block id would reach by extending its run
// in d by offset more blocks.
func nextPotentialBlock(c *city.City, id int, d city.Direction, offset int) city.Block {
	return c.BlockAt(id, d, c.Serviced(id, d)+offset)
}

// conflictBlock returns the block s would take at offset beyond its run in d,
// and true, when that block is either unavailable or lies in t's potential
// territory. It returns false when s may take the block without affecting t.
// A pizzeria never conflicts with itself.
func conflictBlock(c *city.City, s, t int, d city.Direction, offset int) (city.Block, bool) {
	if s == t {
		return city.Block{}, false
	}

	b := nextPotentialBlock(c, s, d, offset)
	if !c.IsAssignable(b) {
		return b, true
	}
	if !isPotential(c, t, b) {
		return city.Block{}, false
	}
	return b, true
}
