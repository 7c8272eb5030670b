// Package lvdelivery distributes the blocks of small city grids among
// pizzerias, each of which must deliver to exactly as many blocks as its
// capacity, along straight runs leaving its own block to the north, east,
// south and west.
//
// Packages:
//
//	city/      — Block, Direction, Pizzeria and City: the grid and its invariants
//	delivery/  — the allocation state machine (FreeBlock ⇄ CrossConflict)
//	territory/ — ownership components, invariant verification, ASCII maps
//	cityio/    — text input parser and text/YAML output writers
//	batch/     — runs many cities with an explicit failure policy
//	cmd/citydelivery — the command-line tool
//
// Quick ASCII example (5×5 city, pizzeria 1 at (3,3), capacity 4):
//
//	. . 1 . .
//	. . 1 1 1
//	. . . . .
//
// North is tried first and stops at the edge after two blocks; east takes
// the remaining two.
//
//	go install github.com/katalvlaran/lvdelivery/cmd/citydelivery@latest
package lvdelivery
