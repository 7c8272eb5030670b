package delivery

import "github.com/katalvlaran/lvdelivery/city"

// appointFreeBlocks repeats passes over the free pizzerias until a pass
// claims nothing or every pizzeria is full. It returns the number of passes
// and of blocks claimed.
func (m *Manager) appointFreeBlocks() (passes, claimed int) {
	for {
		passes++
		appointed := 0

		for _, id := range m.city.FreeIDs() {
			for _, d := range city.Directions {
				n := m.countFreeBlocks(id, d)
				if n == 0 {
					continue
				}
				m.claim(id, d, n)
				appointed += n
				if !m.city.IsFree(id) {
					break
				}
			}
		}

		claimed += appointed
		if !m.city.HasFree() || appointed == 0 {
			return passes, claimed
		}
	}
}

// countFreeBlocks returns the longest run id can safely claim in d.
//
// The scan stops at the first unassignable block only. A contested offset is
// skipped but does not end the scan, so a later uncontested offset wins and
// the claimed run then covers the contested block as well.
func (m *Manager) countFreeBlocks(id int, d city.Direction) int {
	best := 0
	limit := m.city.Remaining(id)

	for offset := 1; offset <= limit; offset++ {
		if !m.city.IsAssignable(nextPotentialBlock(m.city, id, d, offset)) {
			return best
		}
		if m.isUncontested(id, d, offset) {
			best = offset
		}
	}
	return best
}

// isUncontested reports whether no other pizzeria conflicts with id taking
// the block at offset in d.
func (m *Manager) isUncontested(id int, d city.Direction, offset int) bool {
	for _, other := range m.city.IDs() {
		if _, ok := conflictBlock(m.city, id, other, d, offset); ok {
			return false
		}
	}
	return true
}
