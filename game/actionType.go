package game

// MoveType represents the kind of action a player can take on its turn.
type MoveType int

const (
	MoveUnit MoveType = iota
	Build
	EndTurn
)

func (t MoveType) String() string {
	switch t {
	case MoveUnit:
		return "move"
	case Build:
		return "build"
	case EndTurn:
		return "end"
	}
	return "unknown"
}

// Phase of the game.
type Phase int

const (
	SetupPhaseOne Phase = iota // anthill, tunnel and grass placement
	SetupPhaseTwo              // food placement on the opponent's side
	PlayPhase
)
