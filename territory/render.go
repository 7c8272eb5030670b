package territory

import (
	"strconv"
	"strings"
)

// Render draws the map with north at the top and west on the left. Each
// block shows its owner id right-aligned to the widest id; unclaimed
// blocks show as dots.
func (m *Map) Render() string {
	width := len(strconv.Itoa(m.Owners))
	empty := strings.Repeat(" ", width-1) + "."

	var sb strings.Builder
	for y := m.Height - 1; y >= 0; y-- {
		for x := 0; x < m.Width; x++ {
			if x > 0 {
				sb.WriteByte(' ')
			}
			v := m.Cells[y][x]
			if v == 0 {
				sb.WriteString(empty)
				continue
			}
			id := strconv.Itoa(v)
			sb.WriteString(strings.Repeat(" ", width-len(id)))
			sb.WriteString(id)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
