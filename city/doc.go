// Package city models the bounded grid of city blocks and the pizzerias
// that deliver into it.
//
// What:
//
//   - Block is an immutable 1-based (X, Y) coordinate.
//   - Direction is the closed set North, East, South, West; Directions fixes
//     the scan order used everywhere for tie-breaking.
//   - Pizzeria is a capacity-bounded origin that services a contiguous run
//     of blocks in each direction.
//   - City owns the ownership grid and the pizzeria registry, and keeps the
//     list of free (under-capacity) pizzerias in registry order.
//
// Invariants:
//
//   - Every origin lies inside the grid and is owned by its pizzeria.
//   - A block is owned by at most one pizzeria.
//   - Serviced[d] equals the length of the owned run leaving the origin in d.
//   - The free list contains exactly the pizzerias with Remaining() > 0.
//
// Complexity:
//
//   - NewCity: O(E×N + K), Memory: O(E×N + K).
//   - IsAssignable, BlockAt: O(1).
//   - Claim: O(count + K) (free-list removal is linear in K).
//
// Errors:
//
//   - ErrInvalidDimension: East or North outside [1, MaxBound].
//   - ErrInvalidCount: pizzeria count outside [1, MaxPizzerias].
//   - ErrInvalidCoordinate: an origin lies outside the grid.
//   - ErrInvalidCapacity: a capacity is negative.
//   - ErrOccupiedOrigin: two pizzerias share an origin.
package city
