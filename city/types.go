package city

import (
	"errors"
	"fmt"
)

// Grid and registry limits.
const (
	// MaxBound is the largest allowed East or North dimension.
	MaxBound = 30
	// MaxPizzerias is the largest allowed number of pizzerias per city.
	MaxPizzerias = 200
)

// Sentinel errors for city construction.
var (
	// ErrInvalidDimension indicates East or North lies outside [1, MaxBound].
	ErrInvalidDimension = errors.New("city: invalid count of city blocks")
	// ErrInvalidCount indicates the pizzeria count lies outside [1, MaxPizzerias].
	ErrInvalidCount = errors.New("city: invalid count of pizzerias")
	// ErrInvalidCoordinate indicates a pizzeria origin outside the grid.
	ErrInvalidCoordinate = errors.New("city: invalid coordinate of block")
	// ErrInvalidCapacity indicates a negative pizzeria capacity.
	ErrInvalidCapacity = errors.New("city: invalid pizzeria capacity")
	// ErrOccupiedOrigin indicates two pizzerias placed on the same block.
	ErrOccupiedOrigin = errors.New("city: block already hosts a pizzeria")
)

// Direction is one of the four cardinal delivery directions.
type Direction uint8

const (
	// North increases Y.
	North Direction = iota
	// East increases X.
	East
	// South decreases Y.
	South
	// West decreases X.
	West
)

// Directions lists every Direction in scan order. The order decides which
// blocks are claimed first and must not change.
var Directions = [4]Direction{North, East, South, West}

// String returns the lower-case direction name.
func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case East:
		return "east"
	case South:
		return "south"
	case West:
		return "west"
	}
	return fmt.Sprintf("direction(%d)", uint8(d))
}

// Block is a 1-based grid coordinate. Blocks compare with ==.
type Block struct {
	X, Y int
}

// Offset returns the block n steps away from b in direction d.
// Complexity: O(1).
func (b Block) Offset(d Direction, n int) Block {
	switch d {
	case North:
		return Block{b.X, b.Y + n}
	case East:
		return Block{b.X + n, b.Y}
	case South:
		return Block{b.X, b.Y - n}
	case West:
		return Block{b.X - n, b.Y}
	}
	return b
}

// String formats the block as "(x,y)".
func (b Block) String() string {
	return fmt.Sprintf("(%d,%d)", b.X, b.Y)
}

// Site describes one pizzeria before it joins a City.
type Site struct {
	Origin   Block
	Capacity int
}

// Counts holds per-direction serviced counts indexed by Direction.
type Counts [4]int

// Total returns the sum over all directions.
func (c Counts) Total() int {
	return c[North] + c[East] + c[South] + c[West]
}
