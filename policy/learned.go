package policy

import (
	"antics/game"
	"antics/learning"
	"antics/meta"

	"github.com/rs/zerolog/log"
)

// Learned picks the move whose resulting state has the highest stored value.
type Learned struct {
	player     int
	store      *learning.Store
	abstractor *learning.Abstractor
}

func NewLearned(player int, store *learning.Store, abstractor *learning.Abstractor) *Learned {
	return &Learned{player: player, store: store, abstractor: abstractor}
}

func (l *Learned) Choose(state game.State) game.Move {
	move, _, _ := l.Evaluate(state)
	return move
}

// Evaluate scores every legal non-build move by the stored value of its resulting state,
// or the unexplored value when there is none, and returns the first move with the highest
// score. known reports whether any candidate had a stored value.
func (l *Learned) Evaluate(state game.State) (best game.Move, value float64, known bool) {
	var candidates []game.Move
	for _, m := range state.LegalMoves() {
		if m.Type != game.Build {
			candidates = append(candidates, m)
		}
	}
	if len(candidates) == 0 {
		panic(ErrNoLegalMove)
	}

	bestIndex := -1
	for i, m := range candidates {
		estimate := meta.UNEXPLORED_VALUE
		snap := l.abstractor.Abstract(state.Play(m), l.player)
		if stored, ok := l.store.Lookup(snap); ok {
			estimate = stored.Value
			known = true
		}
		if bestIndex < 0 || estimate > value {
			bestIndex, value = i, estimate
		}
	}
	log.Debug().
		Int("player", l.player).
		Int("candidates", len(candidates)).
		Float64("value", value).
		Bool("known", known).
		Msg("learned move")
	return candidates[bestIndex], value, known
}
