package game

// Board dimensions. Rows 0-3 are player 0's territory, rows 6-9 player 1's.
const (
	BoardSize = 10
	Midline   = 4
)

const (
	PlayerOne = 0
	PlayerTwo = 1
	Neutral   = -1
)

// Opponent returns the id of the other player.
func Opponent(player int) int {
	return (player + 1) % 2
}

// State is the read-only view of the rules engine that the agent consumes.
// Play never mutates the receiver - it returns the resulting state.
type State interface {
	Phase() Phase
	WhoseTurn() int
	Inventory(player int) Inventory
	// Structures lists every placed structure of the given types (all types if none given), any owner
	Structures(types ...StructureType) []Structure
	UnitAt(c Coord) (Unit, bool)
	StructureAt(c Coord) (Structure, bool)
	// Adjacent lists in-bounds neighbours of c in a fixed order
	Adjacent(c Coord) []Coord
	// Reachable lists the cells a unit at c could end on with the given movement
	Reachable(c Coord, movement int) []Coord
	StepsToReach(from, to Coord) int
	LegalMoves() []Move
	Play(Move) State
}

// ApproxDist is the straight-line approximation of distance used for path planning.
func ApproxDist(a, b Coord) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

// MoveCost is the movement spent to enter c.
func MoveCost(s State, c Coord) int {
	if st, ok := s.StructureAt(c); ok {
		return st.MoveCost()
	}
	return 1
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
