package delivery

import "github.com/katalvlaran/lvdelivery/city"

// swapCrossConflicts makes one pass over the free pizzerias and grants one
// block to each side of every cross conflict it finds. It returns the number
// of blocks granted; zero means the city cannot be completed.
func (m *Manager) swapCrossConflicts() int {
	swapped := 0
	for _, id := range m.city.FreeIDs() {
		for _, d := range city.Directions {
			swapped += m.swapByDirection(id, d)
		}
	}
	return swapped
}

// swapByDirection looks for the first free partner and partner direction
// forming a cross conflict with (id, d), swaps, and reports the blocks granted.
func (m *Manager) swapByDirection(id int, d city.Direction) int {
	for _, other := range m.city.FreeIDs() {
		for _, od := range city.Directions {
			if m.isCrossConflict(id, d, other, od) {
				m.claim(id, d, 1)
				m.claim(other, od, 1)
				return 2
			}
		}
	}
	return 0
}

// isCrossConflict reports whether id's next block in d is reserved only by
// other's potential territory, other's next block in od is reserved only by
// id's, and the two blocks differ.
func (m *Manager) isCrossConflict(id int, d city.Direction, other int, od city.Direction) bool {
	b, ok := conflictBlock(m.city, id, other, d, 1)
	if !ok || !m.city.IsAssignable(b) {
		return false
	}

	ob, ok := conflictBlock(m.city, other, id, od, 1)
	if !ok || !m.city.IsAssignable(ob) {
		return false
	}

	return b != ob
}
