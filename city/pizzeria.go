package city

// Pizzeria is a capacity-bounded delivery source. Its origin never moves;
// serviced counts only grow, and never past Capacity.
type Pizzeria struct {
	id       int
	origin   Block
	capacity int
	serviced Counts
	total    int
}

func newPizzeria(id int, s Site) *Pizzeria {
	return &Pizzeria{id: id, origin: s.Origin, capacity: s.Capacity}
}

// ID returns the 1-based registry id.
func (p Pizzeria) ID() int { return p.id }

// Origin returns the block the pizzeria stands on.
func (p Pizzeria) Origin() Block { return p.origin }

// Capacity returns the total number of blocks the pizzeria must service.
func (p Pizzeria) Capacity() int { return p.capacity }

// Serviced returns the number of blocks claimed in direction d.
func (p Pizzeria) Serviced(d Direction) int { return p.serviced[d] }

// Counts returns the serviced counts for all directions.
func (p Pizzeria) Counts() Counts { return p.serviced }

// Remaining returns Capacity minus the blocks already serviced.
func (p Pizzeria) Remaining() int { return p.capacity - p.total }

// IsFree reports whether the pizzeria still has capacity left.
func (p Pizzeria) IsFree() bool { return p.Remaining() > 0 }

func (p *Pizzeria) addServiced(d Direction, count int) {
	p.serviced[d] += count
	p.total += count
}
