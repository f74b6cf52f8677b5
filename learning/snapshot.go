package learning

import (
	"math"

	"antics/game"
	"antics/meta"

	"golang.org/x/exp/rand"
)

// Snapshot is the abstracted form of a game state from one player's point of view.
// Only a Learner changes Value once a Snapshot is stored.
type Snapshot struct {
	Value           float64
	OwnFood         int
	EnemyFood       int
	OwnNonWorkers   int
	EnemyNonWorkers int
	// one entry per owned unit, inventory order
	TunnelDistances []float64
	// one entry per enemy soldier, measured from the last owned unit in inventory order
	QueenDistances []float64
}

// Abstractor reduces game states to snapshots. It owns the random source used to seed
// the value of non-terminal states.
type Abstractor struct {
	rng *rand.Rand
}

func NewAbstractor(seed uint64) *Abstractor {
	return &Abstractor{rng: rand.New(rand.NewSource(seed))}
}

// Abstract summarizes state for player.
func (a *Abstractor) Abstract(state game.State, player int) *Snapshot {
	snap := &Snapshot{Value: a.seed(state, player)}

	own := state.Inventory(player)
	enemy := state.Inventory(game.Opponent(player))
	snap.OwnFood = own.FoodCount
	snap.EnemyFood = enemy.FoodCount
	snap.OwnNonWorkers = countFighters(own)
	snap.EnemyNonWorkers = countFighters(enemy)

	if own.Tunnel != nil {
		for _, u := range own.Units {
			snap.TunnelDistances = append(snap.TunnelDistances, skewDistance(own.Tunnel.Coords, u.Coords))
		}
	}

	// XXX: measured from the last owned unit, not the queen. Kept until it is decided which
	// position the enemy approach should be measured against.
	if n := len(own.Units); n > 0 {
		from := own.Units[n-1].Coords
		for _, u := range enemy.UnitsOf(game.Soldier) {
			snap.QueenDistances = append(snap.QueenDistances, skewDistance(u.Coords, from))
		}
	}
	return snap
}

func (a *Abstractor) seed(state game.State, player int) float64 {
	switch {
	case HasWon(state, player):
		return meta.WIN_VALUE
	case HasWon(state, game.Opponent(player)):
		return meta.LOSS_VALUE
	}
	return float64(a.rng.Intn(meta.SEED_MAX + 1))
}

// HasWon reports whether player has won state: the game is being played and the opponent
// has lost its queen or anthill, player reached the food goal, or the opponent is down to a
// single unit with no food.
func HasWon(state game.State, player int) bool {
	if state.Phase() != game.PlayPhase {
		return false
	}
	own := state.Inventory(player)
	opp := state.Inventory(game.Opponent(player))
	if _, alive := opp.Queen(); !alive {
		return true
	}
	if opp.Anthill != nil && opp.Anthill.CaptureHealth <= 0 {
		return true
	}
	if own.FoodCount >= game.FoodGoal {
		return true
	}
	return opp.FoodCount == 0 && len(opp.Units) == 1
}

// FoodOnSide lists the food structures in player's half of the board.
func FoodOnSide(state game.State, player int) []game.Structure {
	var food []game.Structure
	for _, s := range state.Structures(game.Food) {
		if s.Coords.OnSide(player) {
			food = append(food, s)
		}
	}
	return food
}

func countFighters(inv game.Inventory) int {
	n := 0
	for _, u := range inv.Units {
		if u.IsFighter() {
			n++
		}
	}
	return n
}

// skewDistance is sqrt(| |dx| - |dy| |).
func skewDistance(a, b game.Coord) float64 {
	dx := math.Abs(float64(a.X - b.X))
	dy := math.Abs(float64(a.Y - b.Y))
	return math.Sqrt(math.Abs(dx - dy))
}
