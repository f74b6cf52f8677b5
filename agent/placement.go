package agent

import "antics/game"

// base layout from player one's side: anthill in the corner, tunnel forward, grass
// walling off row 3 so gatherers have the back rows to themselves
var baseLayout = []game.Coord{
	{X: 0, Y: 0}, {X: 5, Y: 2},
	{X: 0, Y: 3}, {X: 1, Y: 3}, {X: 2, Y: 3}, {X: 3, Y: 3},
	{X: 4, Y: 3}, {X: 5, Y: 3}, {X: 6, Y: 3},
	{X: 7, Y: 3}, {X: 8, Y: 3},
}

func (a *Agent) basePlacement() []game.Coord {
	coords := make([]game.Coord, len(baseLayout))
	for i, c := range baseLayout {
		if a.id == game.PlayerTwo {
			c = c.Mirror()
		}
		coords[i] = c
	}
	return coords
}

// foodPlacement puts food on the enemy's side as far as possible from the enemy anthill
// and tunnel.
func (a *Agent) foodPlacement(state game.State) []game.Coord {
	enemy := state.Inventory(a.enemy)
	var homes [2]game.Coord
	if enemy.Anthill != nil {
		homes[0] = enemy.Anthill.Coords
	}
	if enemy.Tunnel != nil {
		homes[1] = enemy.Tunnel.Coords
	}

	food := homes
	dists := [2]int{}
	for x := 0; x < game.BoardSize; x++ {
		for y := 0; y < game.BoardSize; y++ {
			cell := game.Coord{X: x, Y: y}
			if !cell.OnSide(a.enemy) {
				continue
			}
			if _, taken := state.StructureAt(cell); taken {
				continue
			}
			d0 := state.StepsToReach(homes[0], cell)
			d1 := state.StepsToReach(homes[1], cell)
			if d0 > dists[0] {
				food[0], dists[0] = cell, d0
				continue
			}
			if d1 > dists[1] {
				food[1], dists[1] = cell, d1
			}
		}
	}
	return food[:]
}
