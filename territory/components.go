package territory

// Components finds all 4-connected regions of owned blocks, where adjacent
// blocks belong to the same region only when they share an owner.
// Regions are returned in row-major order of their first block.
//
// Time:   O(W·H·4).
// Memory: O(W·H) for visited flags and output.
func (m *Map) Components() []Component {
	seen := make([]bool, m.Width*m.Height)
	var comps []Component

	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			owner := m.Cells[y][x]
			if owner == 0 {
				continue // unclaimed
			}
			i0 := m.index(x, y)
			if seen[i0] {
				continue
			}
			// BFS over same-owner neighbours
			queue := []int{i0}
			seen[i0] = true

			for qi := 0; qi < len(queue); qi++ {
				ux, uy := m.Coordinate(queue[qi])
				for _, d := range m.neighborOffsets {
					vx, vy := ux+d[0], uy+d[1]
					if !m.InBounds(vx, vy) || m.Cells[vy][vx] != owner {
						continue
					}
					vi := m.index(vx, vy)
					if !seen[vi] {
						seen[vi] = true
						queue = append(queue, vi)
					}
				}
			}
			comps = append(comps, Component{Owner: owner, Cells: queue})
		}
	}
	return comps
}
