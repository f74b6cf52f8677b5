package engine

import (
	"time"

	"github.com/google/uuid"
)

// MaxMoves caps the number of actions in one game, end turns included.
const MaxMoves = 10000

// NoWinner is the winner of a game stopped by a cap.
const NoWinner = -1

// Mode is when agents learn from the transitions they observe.
type Mode int

const (
	PerStep    Mode = iota // after every action
	PerEpisode             // replayed in order once the game is over
)

func ParseMode(s string) (Mode, bool) {
	switch s {
	case "step", "":
		return PerStep, true
	case "episode":
		return PerEpisode, true
	}
	return PerStep, false
}

// GameResult summarizes one finished game.
type GameResult struct {
	ID         uuid.UUID
	Winner     int
	Turns      int
	Moves      int
	StartTime  time.Time
	EndTime    time.Time
	Duration   time.Duration
	StoreSizes [2]int
}
