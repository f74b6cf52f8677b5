package engine

import (
	"errors"
	"fmt"
	"time"

	"antics/agent"
	"antics/game"
	"antics/learning"
	"antics/meta"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type Option func(e *Engine)

func WithMaxTurns(turns int) Option {
	return func(e *Engine) {
		if turns > 0 {
			e.maxTurns = turns
		}
	}
}

func WithMode(mode Mode) Option {
	return func(e *Engine) {
		e.mode = mode
	}
}

// Engine runs games between two agents on an in-memory board.
type Engine struct {
	Board    *game.Board
	Agents   []*agent.Agent
	mode     Mode
	maxTurns int
}

type transition struct {
	player   int
	observed game.State
	next     game.State
}

func LocalEngine(agents []*agent.Agent, options ...Option) *Engine {
	if len(agents) != 2 {
		panic("need exactly two agents")
	}
	for i, a := range agents {
		if a.ID() != i {
			panic(fmt.Sprintf("agent %d plays as player %d", i, a.ID()))
		}
	}
	e := &Engine{
		Agents:   agents,
		mode:     PerStep,
		maxTurns: meta.MAX_TURNS,
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// Run plays a fresh game through setup until there's a winner or a cap is reached.
func (e *Engine) Run() (GameResult, error) {
	result := GameResult{ID: uuid.New(), Winner: NoWinner, StartTime: time.Now()}
	e.Board = game.NewBoard()

	if err := e.setup(); err != nil {
		return result, err
	}
	log.Info().Str("game", result.ID.String()).Msgf("player %d is starting", e.Board.WhoseTurn())

	var episode []transition
	for result.Moves < MaxMoves && result.Turns < e.maxTurns {
		if winner, over := e.winner(); over {
			result.Winner = winner
			break
		}
		player := e.Board.WhoseTurn()
		a := e.Agents[player]

		move := a.ChooseMove(e.Board)
		if err := e.Board.Validate(move); err != nil {
			log.Warn().Err(err).Int("player", player).Msg("agent chose an illegal move, ending its turn")
			move = game.NewEndTurn()
		}
		next := e.Board.Apply(move)
		if move.Type == game.MoveUnit {
			next = e.attack(a, next, move.Destination())
		}

		switch e.mode {
		case PerStep:
			a.Observe(e.Board, next)
		case PerEpisode:
			episode = append(episode, transition{player: player, observed: e.Board, next: next})
		}

		e.Board = next
		result.Moves++
		if move.Type == game.EndTurn {
			result.Turns++
		}
	}
	if result.Winner == NoWinner {
		if winner, over := e.winner(); over {
			result.Winner = winner
		} else {
			log.Info().Msgf("stopped after %d turns (no winner yet)", result.Turns)
		}
	}

	for _, t := range episode {
		e.Agents[t.player].Observe(t.observed, t.next)
	}

	var errs []error
	for i, a := range e.Agents {
		if err := a.OnGameEnd(result.Winner == i); err != nil {
			errs = append(errs, err)
		}
		result.StoreSizes[i] = a.Store().Len()
	}

	result.EndTime = time.Now()
	result.Duration = result.EndTime.Sub(result.StartTime)
	log.Info().
		Str("game", result.ID.String()).
		Int("winner", result.Winner).
		Int("turns", result.Turns).
		Dur("duration", result.Duration).
		Msg("game over")
	return result, errors.Join(errs...)
}

func (e *Engine) setup() error {
	for _, phase := range []game.Phase{game.SetupPhaseOne, game.SetupPhaseTwo} {
		for _, a := range e.Agents {
			coords, err := a.ChoosePlacement(phase, e.Board)
			if err != nil {
				return fmt.Errorf("placement for player %d: %w", a.ID(), err)
			}
			if err := e.Board.Place(a.ID(), coords); err != nil {
				return fmt.Errorf("placement for player %d: %w", a.ID(), err)
			}
		}
	}
	return nil
}

// attack lets the unit that just moved to at strike an enemy in range.
func (e *Engine) attack(a *agent.Agent, board *game.Board, at game.Coord) *game.Board {
	targets := board.AttackTargets(at)
	if len(targets) == 0 {
		return board
	}
	attacker, _ := board.UnitAt(at)
	target := a.ChooseAttackTarget(board, attacker, targets)
	next, err := board.Attack(at, target)
	if err != nil {
		log.Warn().Err(err).Int("player", a.ID()).Msg("attack rejected")
		return board
	}
	return next
}

func (e *Engine) winner() (int, bool) {
	for _, player := range []int{game.PlayerOne, game.PlayerTwo} {
		if learning.HasWon(e.Board, player) {
			return player, true
		}
	}
	return NoWinner, false
}
