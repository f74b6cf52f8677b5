package planner

import (
	"antics/game"

	"golang.org/x/exp/slices"
)

// RelocateBlocker finds a move that takes blocker off path. The blocker must not have moved
// this turn; it heads for the first cell it can reach that is neither on the path nor under
// a structure, skipping cells whose planned walk is cut short at its first step by another
// unit. ok is false when no such move exists, and the path is then unusable this turn.
func RelocateBlocker(state game.State, path []game.Coord, blocker game.Unit) (move game.Move, ok bool) {
	if blocker.HasMoved {
		return game.Move{}, false
	}
	for _, cell := range state.Reachable(blocker.Coords, blocker.Movement()) {
		if slices.Contains(path, cell) {
			continue
		}
		if _, hasStructure := state.StructureAt(cell); hasStructure {
			continue
		}
		escape := Usable(state, Plan(state, blocker.Coords, cell, blocker.Movement()).Path)
		if len(escape) < 2 {
			continue
		}
		return game.NewUnitMove(escape), true
	}
	return game.Move{}, false
}

// ClearPath plans mover's path toward dest and returns a move for the first friendly
// blocker on it that can step aside.
func ClearPath(state game.State, mover game.Unit, dest game.Coord) (game.Move, bool) {
	res := Plan(state, mover.Coords, dest, mover.Movement())
	for _, blocker := range res.Blockers {
		if blocker.Owner != mover.Owner {
			continue
		}
		if move, ok := RelocateBlocker(state, res.Path, blocker); ok {
			return move, true
		}
	}
	return game.Move{}, false
}
