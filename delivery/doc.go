// Package delivery distributes city blocks among pizzerias.
//
// A Manager owns one *city.City for the length of a run and alternates two
// phases until no pizzeria has capacity left or progress becomes impossible:
//
//	FreeBlock ──always──▶ CrossConflict ──≥1 swap──▶ FreeBlock
//	    │                       │
//	    └──no free left──▶ Done ◀┘            0 swaps ──▶ Infeasible
//
// FreeBlock greedily extends every free pizzeria along N, E, S, W as far as
// no other pizzeria could ever want the blocks. CrossConflict breaks the
// deadlock where two pizzerias each wait on a block reserved by the other's
// potential territory, by granting both of them one block at once.
//
// Potential territory of a pizzeria is the cross of blocks it could still
// reach along its row and column with its remaining capacity. Both phases
// use the same conflict test against it.
//
// Determinism: registry order and the fixed direction order decide every
// tie, so equal input always yields equal output.
//
// Errors:
//
//   - ErrInfeasible (via *InfeasibleError): CrossConflict made no swap.
//   - ErrRoundLimit: WithMaxRounds cap reached.
//   - ErrOptionViolation: an invalid Option was supplied.
package delivery
