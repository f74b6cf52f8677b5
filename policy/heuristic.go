package policy

import (
	"math"

	"antics/game"
	"antics/learning"
	"antics/meta"
	"antics/planner"
)

type HeuristicOption func(h *Heuristic)

func WithDesiredWorkers(n int) HeuristicOption {
	return func(h *Heuristic) {
		if n >= 0 {
			h.desiredWorkers = n
		}
	}
}

func WithDesiredDrones(n int) HeuristicOption {
	return func(h *Heuristic) {
		if n >= 0 {
			h.desiredDrones = n
		}
	}
}

func WithMinFood(n int) HeuristicOption {
	return func(h *Heuristic) {
		if n >= 0 {
			h.minFood = n
		}
	}
}

// Heuristic is the hand-coded play: the queen clears the anthill, workers are built up to
// a target and then drones once the food reserve allows, workers shuttle food between the
// closest source and home, and fighters march on the enemy queen.
type Heuristic struct {
	player         int
	desiredWorkers int
	desiredDrones  int
	minFood        int
}

func NewHeuristic(player int, options ...HeuristicOption) *Heuristic {
	h := &Heuristic{
		player:         player,
		desiredWorkers: meta.NUM_DESIRED_WORKERS,
		desiredDrones:  meta.NUM_DESIRED_DRONES,
		minFood:        meta.MIN_DESIRED_FOOD,
	}
	for _, option := range options {
		option(h)
	}
	return h
}

func (h *Heuristic) Choose(state game.State) game.Move {
	own := state.Inventory(h.player)

	if move, ok := h.clearAnthill(state, own); ok {
		return move
	}
	if move, ok := h.build(state, own); ok {
		return move
	}
	for _, w := range own.UnitsOf(game.Worker) {
		if w.HasMoved {
			continue
		}
		if move, ok := h.travel(state, w, h.WorkerTarget(state, w)); ok {
			return move
		}
	}
	if target, ok := h.enemyTarget(state); ok {
		for _, u := range own.UnitsOf(game.Drone, game.Soldier, game.RangedSoldier) {
			if u.HasMoved {
				continue
			}
			if move, ok := h.travel(state, u, target); ok {
				return move
			}
		}
	}
	return game.NewEndTurn()
}

func (h *Heuristic) clearAnthill(state game.State, own game.Inventory) (game.Move, bool) {
	queen, alive := own.Queen()
	if !alive || queen.HasMoved || own.Anthill == nil || queen.Coords != own.Anthill.Coords {
		return game.Move{}, false
	}
	for _, cell := range state.Reachable(queen.Coords, queen.Movement()) {
		if _, hasStructure := state.StructureAt(cell); hasStructure || !cell.OnSide(h.player) {
			continue
		}
		if move, ok := h.travel(state, queen, cell); ok {
			return move, true
		}
	}
	return game.Move{}, false
}

func (h *Heuristic) build(state game.State, own game.Inventory) (game.Move, bool) {
	if own.Anthill == nil {
		return game.Move{}, false
	}
	if _, occupied := state.UnitAt(own.Anthill.Coords); occupied {
		return game.Move{}, false
	}
	switch {
	case len(own.UnitsOf(game.Worker)) < h.desiredWorkers &&
		own.FoodCount >= game.StatsOf(game.Worker).Cost:
		return game.NewBuild(own.Anthill.Coords, game.Worker), true
	case len(own.UnitsOf(game.Drone)) < h.desiredDrones &&
		own.FoodCount >= h.minFood && own.FoodCount >= game.StatsOf(game.Drone).Cost:
		return game.NewBuild(own.Anthill.Coords, game.Drone), true
	}
	return game.Move{}, false
}

// WorkerTarget is where a worker heads: home when carrying, else the closest food,
// preferring food on the player's own side.
func (h *Heuristic) WorkerTarget(state game.State, w game.Unit) game.Coord {
	var targets []game.Coord
	if w.Carrying {
		own := state.Inventory(h.player)
		for _, s := range []*game.Structure{own.Tunnel, own.Anthill} {
			if s != nil {
				targets = append(targets, s.Coords)
			}
		}
	} else {
		food := learning.FoodOnSide(state, h.player)
		if len(food) == 0 {
			food = state.Structures(game.Food)
		}
		for _, s := range food {
			targets = append(targets, s.Coords)
		}
	}
	if len(targets) == 0 {
		return w.Coords
	}
	return closest(state, w.Coords, targets)
}

func (h *Heuristic) enemyTarget(state game.State) (game.Coord, bool) {
	enemy := state.Inventory(game.Opponent(h.player))
	if queen, ok := enemy.Queen(); ok {
		return queen.Coords, true
	}
	if enemy.Anthill != nil {
		return enemy.Anthill.Coords, true
	}
	return game.Coord{}, false
}

// travel moves u as far toward target as the planned path is free, or steps a friendly
// blocker aside when u cannot move at all.
func (h *Heuristic) travel(state game.State, u game.Unit, target game.Coord) (game.Move, bool) {
	if u.Coords == target {
		return game.Move{}, false
	}
	res := planner.Plan(state, u.Coords, target, u.Movement())
	if path := planner.Usable(state, res.Path); len(path) > 1 {
		return game.NewUnitMove(path), true
	}
	return planner.ClearPath(state, u, target)
}

// planBudget lets a greedy plan cross the whole board.
const planBudget = 4 * game.BoardSize

// closest picks the target with the fewest steps from from. Ties go to the target whose
// greedy path costs less to walk, then to the earlier target.
func closest(state game.State, from game.Coord, targets []game.Coord) game.Coord {
	best, bestDist, bestCost := targets[0], math.MaxInt, math.MaxInt
	for _, t := range targets {
		d := state.StepsToReach(from, t)
		if d > bestDist {
			continue
		}
		cost := planner.PathCost(state, planner.Plan(state, from, t, planBudget).Path)
		if d < bestDist || cost < bestCost {
			best, bestDist, bestCost = t, d, cost
		}
	}
	return best
}
