// Package territory inspects the ownership grid of a city.City as a graph of
// blocks, enabling component analysis, invariant checks and ASCII maps.
//
// What:
//
//   - Map is an immutable snapshot of block ownership, Cells[y][x] with row 0
//     being the southern edge (city Y = 1).
//   - Components groups 4-connected blocks sharing an owner ("territories").
//   - Verify checks that every pizzeria owns exactly its origin plus one
//     contiguous run per direction, inside the grid, never exceeding its
//     capacity, and optionally that every capacity is met.
//   - Render draws the map with north at the top.
//
// Why:
//
//   - Tests: assert disjointness, boundedness and conservation after a run.
//   - CLI: optional post-run verification and visual maps.
//
// Complexity:
//
//   - FromCity:   O(W×H), Memory: O(W×H).
//   - Components: O(W×H×4), Memory: O(W×H).
//   - Verify:     O(W×H + K), Memory: O(W×H).
//
// Errors:
//
//   - ErrOutOfBounds: a serviced run leaves the grid.
//   - ErrShape: owned blocks differ from the origin-plus-runs pattern, or a
//     territory is split into several components.
//   - ErrOverCapacity: serviced blocks exceed capacity.
//   - ErrNotConserved: serviced blocks fall short of capacity (ModeComplete).
package territory
