// Package policy picks the move an agent plays on its turn.
package policy

import (
	"errors"
	"fmt"

	"antics/game"
)

var ErrNoLegalMove = errors.New("no legal move")

// Strategy chooses a move for the player whose turn it is.
type Strategy interface {
	Choose(state game.State) game.Move
}

type Kind string

const (
	LearnedKind   Kind = "learned"
	HeuristicKind Kind = "heuristic"
	CombinedKind  Kind = "combined"
)

func ParseKind(s string) (Kind, error) {
	switch k := Kind(s); k {
	case LearnedKind, HeuristicKind, CombinedKind:
		return k, nil
	}
	return "", fmt.Errorf("unknown strategy %q", s)
}

// Combined plays the heuristic's move and consults the learned argmax only once the
// heuristic has nothing left to do this turn. An ending turn is kept unless a candidate has
// a learned estimate.
type Combined struct {
	learned   *Learned
	heuristic Strategy
}

func NewCombined(learned *Learned, heuristic Strategy) *Combined {
	return &Combined{learned: learned, heuristic: heuristic}
}

func (c *Combined) Choose(state game.State) game.Move {
	move := c.heuristic.Choose(state)
	if move.Type != game.EndTurn {
		return move
	}
	if learned, _, known := c.learned.Evaluate(state); known {
		return learned
	}
	return move
}
