package planner

import (
	"antics/game"
)

// Result is a planned path, source included, and the units found on it.
type Result struct {
	Path     []game.Coord
	Blockers []game.Unit
}

// Cost is the movement spent walking the path.
func (r Result) Cost(state game.State) int {
	cost := 0
	for _, c := range r.Path[1:] {
		cost += game.MoveCost(state, c)
	}
	return cost
}

// Plan walks greedily from source toward target, one adjacent cell at a time, taking the
// first neighbour that is closer to the target and affordable with the remaining movement.
// Units of the planning side (the owner of the unit at source, else the player to move) are
// recorded and walked past; the first opposing unit is recorded and ends the path.
func Plan(state game.State, source, target game.Coord, movement int) Result {
	side := state.WhoseTurn()
	if u, ok := state.UnitAt(source); ok {
		side = u.Owner
	}

	res := Result{Path: []game.Coord{source}}
	current := source
	for movement > 0 {
		next, cost, found := step(state, current, target, movement)
		if !found {
			break
		}
		res.Path = append(res.Path, next)
		if u, ok := state.UnitAt(next); ok {
			res.Blockers = append(res.Blockers, u)
			if u.Owner != side {
				return res
			}
		}
		movement -= cost
		current = next
	}
	return res
}

func step(state game.State, current, target game.Coord, movement int) (game.Coord, int, bool) {
	dist := game.ApproxDist(current, target)
	for _, c := range state.Adjacent(current) {
		if game.ApproxDist(c, target) >= dist {
			continue
		}
		if cost := game.MoveCost(state, c); cost <= movement {
			return c, cost, true
		}
	}
	return game.Coord{}, 0, false
}

// Usable trims a path to the prefix a unit can actually walk this turn: it stops before
// the first cell holding a unit.
func Usable(state game.State, path []game.Coord) []game.Coord {
	for i := 1; i < len(path); i++ {
		if _, ok := state.UnitAt(path[i]); ok {
			return path[:i]
		}
	}
	return path
}

// PathCost totals the entry cost of every cell on the path, the source included.
// Paths shorter than three cells and closed loops cost nothing.
func PathCost(state game.State, path []game.Coord) int {
	if len(path) < 3 || path[0] == path[len(path)-1] {
		return 0
	}
	cost := 0
	for _, c := range path {
		cost += game.MoveCost(state, c)
	}
	return cost
}
