package agent

import (
	"errors"
	"fmt"

	"antics/game"
	"antics/learning"
	"antics/policy"

	"github.com/rs/zerolog/log"
)

var ErrUnknownPhase = errors.New("unknown placement phase")

type Option func(a *Agent)

func WithStrategy(kind policy.Kind) Option {
	return func(a *Agent) {
		if kind != "" {
			a.kind = kind
		}
	}
}

// WithPersister loads the store when the agent is created and saves it at every game end.
func WithPersister(p learning.Persister) Option {
	return func(a *Agent) {
		a.persister = p
	}
}

func WithSeed(seed uint64) Option {
	return func(a *Agent) {
		a.seed = seed
	}
}

// WithStoreOptions configures the matching tests of the agent's store, loaded or new.
func WithStoreOptions(options ...learning.StoreOption) Option {
	return func(a *Agent) {
		a.storeOptions = append(a.storeOptions, options...)
	}
}

func WithLearnerOptions(options ...learning.LearnerOption) Option {
	return func(a *Agent) {
		a.learnerOptions = append(a.learnerOptions, options...)
	}
}

func WithHeuristicOptions(options ...policy.HeuristicOption) Option {
	return func(a *Agent) {
		a.heuristicOptions = append(a.heuristicOptions, options...)
	}
}

// Agent plays one side of a game and keeps the value store it learns into for its
// whole lifetime.
type Agent struct {
	id    int
	enemy int

	kind             policy.Kind
	seed             uint64
	storeOptions     []learning.StoreOption
	learnerOptions   []learning.LearnerOption
	heuristicOptions []policy.HeuristicOption
	persister        learning.Persister

	store      *learning.Store
	abstractor *learning.Abstractor
	learner    *learning.Learner
	strategy   policy.Strategy
}

func New(id int, options ...Option) *Agent {
	a := &Agent{
		id:    id,
		enemy: game.Opponent(id),
		kind:  policy.CombinedKind,
		seed:  uint64(id) + 1,
	}
	for _, option := range options {
		option(a)
	}

	if a.persister != nil {
		a.store = learning.LoadOrEmpty(a.persister, a.storeOptions...)
	} else {
		a.store = learning.NewStore(a.storeOptions...)
	}
	a.abstractor = learning.NewAbstractor(a.seed)
	a.learner = learning.NewLearner(id, a.abstractor, a.learnerOptions...)

	learned := policy.NewLearned(id, a.store, a.abstractor)
	heuristic := policy.NewHeuristic(id, a.heuristicOptions...)
	switch a.kind {
	case policy.LearnedKind:
		a.strategy = learned
	case policy.HeuristicKind:
		a.strategy = heuristic
	default:
		a.strategy = policy.NewCombined(learned, heuristic)
	}

	log.Info().Int("player", id).Str("strategy", string(a.kind)).Int("records", a.store.Len()).Msg("agent ready")
	return a
}

func (a *Agent) ID() int {
	return a.id
}

func (a *Agent) Store() *learning.Store {
	return a.store
}

// ChoosePlacement returns the setup placement for phase: 11 cells (anthill, tunnel, then
// grass) for the first setup phase and 2 food cells for the second.
func (a *Agent) ChoosePlacement(phase game.Phase, state game.State) ([]game.Coord, error) {
	switch phase {
	case game.SetupPhaseOne:
		return a.basePlacement(), nil
	case game.SetupPhaseTwo:
		return a.foodPlacement(state), nil
	}
	return nil, fmt.Errorf("%w: %d", ErrUnknownPhase, phase)
}

// ChooseMove consolidates the current state into the store and picks a move.
func (a *Agent) ChooseMove(state game.State) game.Move {
	a.store.Consolidate(a.abstractor.Abstract(state, a.id))
	move := a.strategy.Choose(state)
	log.Debug().Int("player", a.id).Stringer("move", move).Msg("chose move")
	return move
}

// ChooseAttackTarget always attacks the first candidate.
func (a *Agent) ChooseAttackTarget(state game.State, attacker game.Unit, candidates []game.Coord) game.Coord {
	return candidates[0]
}

// Observe learns from one transition of the game.
func (a *Agent) Observe(observed, successor game.State) {
	a.learner.Observe(a.store, observed, successor, learning.Reward)
}

// OnGameEnd flushes the store to durable storage.
func (a *Agent) OnGameEnd(won bool) error {
	log.Info().Int("player", a.id).Bool("won", won).Int("records", a.store.Len()).Msg("game over")
	if a.persister == nil {
		return nil
	}
	if err := a.persister.Save(a.store); err != nil {
		return fmt.Errorf("failed to persist store for player %d: %w", a.id, err)
	}
	return nil
}
