package game

import "fmt"

// Coord is a cell on the board.
type Coord struct {
	X, Y int
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

func (c Coord) InBounds() bool {
	return c.X >= 0 && c.X < BoardSize && c.Y >= 0 && c.Y < BoardSize
}

// Mirror reflects c onto the other player's half of the board.
func (c Coord) Mirror() Coord {
	return Coord{X: BoardSize - 1 - c.X, Y: BoardSize - 1 - c.Y}
}

// OnSide reports whether c lies in the given player's territory.
func (c Coord) OnSide(player int) bool {
	if player == PlayerOne {
		return c.Y < Midline
	}
	return c.Y >= BoardSize-Midline
}

// adjacency enumeration order: left, right, up, down
var deltas = []Coord{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

func neighbours(c Coord) []Coord {
	adjacent := make([]Coord, 0, len(deltas))
	for _, d := range deltas {
		n := Coord{X: c.X + d.X, Y: c.Y + d.Y}
		if n.InBounds() {
			adjacent = append(adjacent, n)
		}
	}
	return adjacent
}
