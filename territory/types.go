package territory

import (
	"errors"

	"github.com/katalvlaran/lvdelivery/city"
)

// Sentinel errors for territory verification.
var (
	// ErrOutOfBounds indicates a serviced run reaching outside the grid.
	ErrOutOfBounds = errors.New("territory: serviced block outside the city")
	// ErrShape indicates owned blocks that differ from origin plus runs.
	ErrShape = errors.New("territory: owned blocks do not match serviced runs")
	// ErrOverCapacity indicates more blocks serviced than the capacity allows.
	ErrOverCapacity = errors.New("territory: serviced blocks exceed capacity")
	// ErrNotConserved indicates a pizzeria left below its capacity.
	ErrNotConserved = errors.New("territory: serviced blocks below capacity")
)

// Mode selects how strictly Verify treats unfinished pizzerias.
type Mode int

const (
	// ModePartial accepts pizzerias below capacity (e.g. after a failed run).
	ModePartial Mode = iota
	// ModeComplete requires every pizzeria to be exactly at capacity.
	ModeComplete
)

// Component is one 4-connected set of blocks with a common owner.
// Cells holds row-major indices in BFS order.
type Component struct {
	Owner int
	Cells []int
}

// Map is an ownership snapshot of a city. Width and Height mirror the city's
// East and North bounds; Cells[y][x] holds the owner id (0 = unclaimed) of
// city block (x+1, y+1).
type Map struct {
	Width, Height   int
	Cells           [][]int
	Owners          int
	neighborOffsets [4][2]int
}

// defaultOffsets lists the Conn4 steps in city.Directions order.
func defaultOffsets() [4][2]int {
	var offs [4][2]int
	for i, d := range city.Directions {
		b := city.Block{}.Offset(d, 1)
		offs[i] = [2]int{b.X, b.Y}
	}
	return offs
}
