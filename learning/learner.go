package learning

import (
	"antics/game"
	"antics/meta"
)

// RewardFunc scores a state for player.
type RewardFunc func(state game.State, player int) float64

// Reward is 1 for a win, 0 for a loss and a small per-turn cost otherwise.
func Reward(state game.State, player int) float64 {
	switch {
	case HasWon(state, player):
		return meta.WIN_REWARD
	case HasWon(state, game.Opponent(player)):
		return meta.LOSS_REWARD
	}
	return meta.TURN_REWARD
}

type LearnerOption func(l *Learner)

func WithLearningRate(alpha float64) LearnerOption {
	return func(l *Learner) {
		if alpha > 0 {
			l.alpha = alpha
		}
	}
}

func WithDiscount(gamma float64) LearnerOption {
	return func(l *Learner) {
		if gamma > 0 {
			l.gamma = gamma
		}
	}
}

// Learner applies temporal-difference updates to a Store.
type Learner struct {
	player     int
	alpha      float64
	gamma      float64
	abstractor *Abstractor
}

func NewLearner(player int, abstractor *Abstractor, options ...LearnerOption) *Learner {
	if abstractor == nil {
		panic("learner needs an abstractor")
	}
	l := &Learner{
		player:     player,
		alpha:      meta.LEARNING_RATE,
		gamma:      meta.DISCOUNT_FACTOR,
		abstractor: abstractor,
	}
	for _, option := range options {
		option(l)
	}
	return l
}

// Observe learns from the transition observed -> successor. The successor's value is the
// stored one when its features are already known.
func (l *Learner) Observe(store *Store, observed, successor game.State, reward RewardFunc) {
	next := l.abstractor.Abstract(successor, l.player)
	if stored, ok := store.Lookup(next); ok {
		next = stored
	}
	l.Update(store, reward(observed, l.player), next.Value)
}

// Update moves every stored record toward reward + gamma*successor by alpha of the residual:
//
//	r += alpha * (reward + gamma*successor - r)
//
// This is the standard TD(0) step, and it gives 13.949 for r=10, successor=50, reward=-0.01.
// The other grouping, r + alpha*(reward + gamma*(successor - r)), gives 13.959 for the same
// input and is deliberately not used. Every record is swept, not only the one standing for
// the observed state.
func (l *Learner) Update(store *Store, reward, successor float64) {
	target := reward + l.gamma*successor
	for _, r := range store.Records() {
		r.Value += l.alpha * (target - r.Value)
	}
}
