package game

import (
	"fmt"
	"strings"
)

// Move represents an action in the play phase.
// For MoveUnit, Path starts at the moving unit and every following cell must be free of units.
// For Build, Path holds the single anthill cell and UnitType the unit to build.
type Move struct {
	Type     MoveType
	Path     []Coord
	UnitType UnitType
}

func NewUnitMove(path []Coord) Move {
	return Move{Type: MoveUnit, Path: path}
}

func NewBuild(at Coord, unitType UnitType) Move {
	return Move{Type: Build, Path: []Coord{at}, UnitType: unitType}
}

func NewEndTurn() Move {
	return Move{Type: EndTurn}
}

// Source of the move, the zero Coord for an end turn.
func (m Move) Source() Coord {
	if len(m.Path) == 0 {
		return Coord{}
	}
	return m.Path[0]
}

// Destination is the last cell of the path.
func (m Move) Destination() Coord {
	if len(m.Path) == 0 {
		return Coord{}
	}
	return m.Path[len(m.Path)-1]
}

func (m Move) String() string {
	switch m.Type {
	case MoveUnit:
		cells := make([]string, len(m.Path))
		for i, c := range m.Path {
			cells[i] = c.String()
		}
		return fmt.Sprintf("move %s", strings.Join(cells, "->"))
	case Build:
		return fmt.Sprintf("build %s at %s", m.UnitType, m.Source())
	}
	return m.Type.String()
}
