package game

import (
	"errors"
	"fmt"
	"math"
)

var ErrIllegalMove = errors.New("illegal move")
var ErrIllegalPlacement = errors.New("illegal placement")

// Board is the in-memory rules engine. The setup methods (AddUnit, AddStructure, SetFood, ...)
// mutate the receiver and are meant for building positions; Play and Attack return copies.
type Board struct {
	phase      Phase
	turn       int
	units      []Unit // creation order, which is also inventory order
	structures []Structure
	food       [2]int
	placed     [2]bool
}

// NewBoard returns an empty board waiting for the first setup phase.
func NewBoard() *Board {
	return &Board{phase: SetupPhaseOne, turn: PlayerOne}
}

func (b *Board) Copy() *Board {
	units := make([]Unit, len(b.units))
	copy(units, b.units)
	structures := make([]Structure, len(b.structures))
	copy(structures, b.structures)
	return &Board{
		phase:      b.phase,
		turn:       b.turn,
		units:      units,
		structures: structures,
		food:       b.food,
		placed:     b.placed,
	}
}

func (b *Board) SetPhase(p Phase) *Board {
	b.phase = p
	return b
}

func (b *Board) SetTurn(player int) *Board {
	b.turn = player
	return b
}

func (b *Board) SetFood(player, food int) *Board {
	b.food[player] = food
	return b
}

// AddUnit places a unit. A zero Health is filled in from the unit's stats.
func (b *Board) AddUnit(u Unit) *Board {
	if u.Health == 0 {
		u.Health = unitStats[u.Type].Health
	}
	b.units = append(b.units, u)
	return b
}

// AddStructure places a structure. A zero capture health is filled in from the stats.
func (b *Board) AddStructure(s Structure) *Board {
	if s.CaptureHealth == 0 {
		s.CaptureHealth = structureStats[s.Type].CaptureHealth
	}
	if s.Type == Food || s.Type == Grass {
		s.Owner = Neutral
	}
	b.structures = append(b.structures, s)
	return b
}

func (b *Board) Phase() Phase {
	return b.phase
}

func (b *Board) WhoseTurn() int {
	return b.turn
}

func (b *Board) Inventory(player int) Inventory {
	inv := Inventory{Player: player, FoodCount: b.food[player]}
	for _, u := range b.units {
		if u.Owner == player {
			inv.Units = append(inv.Units, u)
		}
	}
	for _, s := range b.structures {
		if s.Owner != player {
			continue
		}
		s := s
		switch s.Type {
		case Anthill:
			inv.Anthill = &s
		case Tunnel:
			inv.Tunnel = &s
		}
	}
	return inv
}

func (b *Board) Structures(types ...StructureType) []Structure {
	var found []Structure
	for _, s := range b.structures {
		if len(types) == 0 {
			found = append(found, s)
			continue
		}
		for _, t := range types {
			if s.Type == t {
				found = append(found, s)
				break
			}
		}
	}
	return found
}

func (b *Board) UnitAt(c Coord) (Unit, bool) {
	i := b.unitIndex(c)
	if i < 0 {
		return Unit{}, false
	}
	return b.units[i], true
}

func (b *Board) StructureAt(c Coord) (Structure, bool) {
	i := b.structureIndex(c)
	if i < 0 {
		return Structure{}, false
	}
	return b.structures[i], true
}

func (b *Board) Adjacent(c Coord) []Coord {
	return neighbours(c)
}

func (b *Board) Reachable(c Coord, movement int) []Coord {
	search := b.search(c, true)
	var reachable []Coord
	for _, cell := range search.order {
		if cell != c && search.cost[cell] <= movement {
			reachable = append(reachable, cell)
		}
	}
	return reachable
}

// StepsToReach is the cheapest movement cost from one cell to another, ignoring units.
func (b *Board) StepsToReach(from, to Coord) int {
	search := b.search(from, false)
	cost, ok := search.cost[to]
	if !ok {
		return math.MaxInt
	}
	return cost
}

// PathTo is the cheapest unit-free path from c to dest, source included, or nil.
func (b *Board) PathTo(c, dest Coord) []Coord {
	search := b.search(c, true)
	if _, ok := search.cost[dest]; !ok {
		return nil
	}
	path := []Coord{dest}
	for cell := dest; cell != c; {
		cell = search.parent[cell]
		path = append([]Coord{cell}, path...)
	}
	return path
}

func (b *Board) LegalMoves() []Move {
	if b.phase != PlayPhase {
		return nil
	}
	var moves []Move
	inv := b.Inventory(b.turn)
	for _, u := range inv.Units {
		if u.HasMoved {
			continue
		}
		for _, dest := range b.Reachable(u.Coords, u.Movement()) {
			moves = append(moves, NewUnitMove(b.PathTo(u.Coords, dest)))
		}
	}
	if inv.Anthill != nil {
		if _, occupied := b.UnitAt(inv.Anthill.Coords); !occupied {
			for _, t := range BuildableTypes() {
				if unitStats[t].Cost <= inv.FoodCount {
					moves = append(moves, NewBuild(inv.Anthill.Coords, t))
				}
			}
		}
	}
	return append(moves, NewEndTurn())
}

// Validate checks a move against the rules for the player whose turn it is.
func (b *Board) Validate(m Move) error {
	if b.phase != PlayPhase {
		return fmt.Errorf("%w: not in play phase", ErrIllegalMove)
	}
	switch m.Type {
	case EndTurn:
		return nil
	case MoveUnit:
		return b.validatePath(m.Path)
	case Build:
		inv := b.Inventory(b.turn)
		if inv.Anthill == nil || len(m.Path) != 1 || m.Path[0] != inv.Anthill.Coords {
			return fmt.Errorf("%w: build must target own anthill", ErrIllegalMove)
		}
		if _, occupied := b.UnitAt(inv.Anthill.Coords); occupied {
			return fmt.Errorf("%w: anthill is occupied", ErrIllegalMove)
		}
		stats := unitStats[m.UnitType]
		if stats.Cost == 0 {
			return fmt.Errorf("%w: %s cannot be built", ErrIllegalMove, m.UnitType)
		}
		if stats.Cost > inv.FoodCount {
			return fmt.Errorf("%w: not enough food for %s", ErrIllegalMove, m.UnitType)
		}
		return nil
	}
	return fmt.Errorf("%w: unknown move type %d", ErrIllegalMove, m.Type)
}

func (b *Board) validatePath(path []Coord) error {
	if len(path) == 0 {
		return fmt.Errorf("%w: empty path", ErrIllegalMove)
	}
	u, ok := b.UnitAt(path[0])
	if !ok || u.Owner != b.turn {
		return fmt.Errorf("%w: no own unit at %s", ErrIllegalMove, path[0])
	}
	if u.HasMoved {
		return fmt.Errorf("%w: unit at %s has already moved", ErrIllegalMove, path[0])
	}
	cost := 0
	for i := 1; i < len(path); i++ {
		if ApproxDist(path[i-1], path[i]) != 1 || !path[i].InBounds() {
			return fmt.Errorf("%w: %s is not adjacent to %s", ErrIllegalMove, path[i], path[i-1])
		}
		if _, occupied := b.UnitAt(path[i]); occupied {
			return fmt.Errorf("%w: %s is occupied", ErrIllegalMove, path[i])
		}
		cost += MoveCost(b, path[i])
	}
	if cost > u.Movement() {
		return fmt.Errorf("%w: path costs %d, %s has %d movement", ErrIllegalMove, cost, u.Type, u.Movement())
	}
	return nil
}

// Play applies a move and returns the resulting state. The move is assumed legal.
func (b *Board) Play(m Move) State {
	return b.Apply(m)
}

// Apply is Play returning the concrete board.
func (b *Board) Apply(m Move) *Board {
	next := b.Copy()
	switch m.Type {
	case MoveUnit:
		i := next.unitIndex(m.Source())
		if i < 0 {
			return next
		}
		u := &next.units[i]
		u.Coords = m.Destination()
		u.HasMoved = true
		if u.Type == Worker {
			next.handleFood(u)
		}
	case Build:
		next.units = append(next.units, Unit{
			Coords:   m.Source(),
			Type:     m.UnitType,
			Owner:    next.turn,
			Health:   unitStats[m.UnitType].Health,
			HasMoved: true,
		})
		next.food[next.turn] -= unitStats[m.UnitType].Cost
	case EndTurn:
		next.endTurn()
	}
	return next
}

func (b *Board) handleFood(u *Unit) {
	s, ok := b.StructureAt(u.Coords)
	if !ok {
		return
	}
	switch {
	case !u.Carrying && s.Type == Food:
		u.Carrying = true
	case u.Carrying && s.Owner == u.Owner && (s.Type == Anthill || s.Type == Tunnel):
		u.Carrying = false
		b.food[u.Owner]++
	}
}

func (b *Board) endTurn() {
	for i := range b.units {
		u := &b.units[i]
		if u.Owner != b.turn {
			continue
		}
		u.HasMoved = false
		j := b.structureIndex(u.Coords)
		if j >= 0 && b.structures[j].Type == Anthill && b.structures[j].Owner != u.Owner {
			b.structures[j].CaptureHealth--
		}
	}
	b.turn = Opponent(b.turn)
}

// AttackTargets lists the enemy units in range of the unit at c.
func (b *Board) AttackTargets(c Coord) []Coord {
	attacker, ok := b.UnitAt(c)
	if !ok {
		return nil
	}
	var targets []Coord
	for _, u := range b.units {
		if u.Owner != attacker.Owner && ApproxDist(u.Coords, c) <= unitStats[attacker.Type].Range {
			targets = append(targets, u.Coords)
		}
	}
	return targets
}

// Attack resolves an attack from the unit at attacker on the unit at target.
func (b *Board) Attack(attacker, target Coord) (*Board, error) {
	a, ok := b.UnitAt(attacker)
	if !ok {
		return nil, fmt.Errorf("%w: no attacker at %s", ErrIllegalMove, attacker)
	}
	i := b.unitIndex(target)
	if i < 0 || b.units[i].Owner == a.Owner {
		return nil, fmt.Errorf("%w: no enemy at %s", ErrIllegalMove, target)
	}
	if ApproxDist(attacker, target) > unitStats[a.Type].Range {
		return nil, fmt.Errorf("%w: %s is out of range", ErrIllegalMove, target)
	}
	next := b.Copy()
	next.units[i].Health -= unitStats[a.Type].Attack
	if next.units[i].Health <= 0 {
		next.units = append(next.units[:i], next.units[i+1:]...)
	}
	return next, nil
}

// Place records a player's setup placement. Setup phase one takes the anthill, the tunnel
// and nine grass cells on the player's own side; setup phase two takes two food cells on
// the opponent's side. Once both players have placed, the board advances its phase.
func (b *Board) Place(player int, coords []Coord) error {
	var side int
	var want int
	switch b.phase {
	case SetupPhaseOne:
		side, want = player, 11
	case SetupPhaseTwo:
		side, want = Opponent(player), 2
	default:
		return fmt.Errorf("%w: not in a setup phase", ErrIllegalPlacement)
	}
	if b.placed[player] {
		return fmt.Errorf("%w: player %d has already placed", ErrIllegalPlacement, player)
	}
	if len(coords) != want {
		return fmt.Errorf("%w: want %d coordinates, got %d", ErrIllegalPlacement, want, len(coords))
	}
	for i, c := range coords {
		if !c.InBounds() || !c.OnSide(side) {
			return fmt.Errorf("%w: %s is not on player %d's side", ErrIllegalPlacement, c, side)
		}
		if b.structureIndex(c) >= 0 {
			return fmt.Errorf("%w: %s is already taken", ErrIllegalPlacement, c)
		}
		for _, other := range coords[:i] {
			if other == c {
				return fmt.Errorf("%w: %s is repeated", ErrIllegalPlacement, c)
			}
		}
	}

	if b.phase == SetupPhaseOne {
		b.AddStructure(Structure{Coords: coords[0], Type: Anthill, Owner: player})
		b.AddStructure(Structure{Coords: coords[1], Type: Tunnel, Owner: player})
		for _, c := range coords[2:] {
			b.AddStructure(Structure{Coords: c, Type: Grass})
		}
	} else {
		for _, c := range coords {
			b.AddStructure(Structure{Coords: c, Type: Food})
		}
	}
	b.placed[player] = true

	if b.placed[PlayerOne] && b.placed[PlayerTwo] {
		b.placed = [2]bool{}
		if b.phase == SetupPhaseOne {
			b.phase = SetupPhaseTwo
		} else {
			b.begin()
		}
	}
	return nil
}

func (b *Board) begin() {
	for _, player := range []int{PlayerOne, PlayerTwo} {
		inv := b.Inventory(player)
		b.AddUnit(Unit{Coords: inv.Anthill.Coords, Type: Queen, Owner: player})
		b.AddUnit(Unit{Coords: inv.Tunnel.Coords, Type: Worker, Owner: player})
	}
	b.phase = PlayPhase
	b.turn = PlayerOne
}

func (b *Board) unitIndex(c Coord) int {
	for i, u := range b.units {
		if u.Coords == c {
			return i
		}
	}
	return -1
}

func (b *Board) structureIndex(c Coord) int {
	for i, s := range b.structures {
		if s.Coords == c {
			return i
		}
	}
	return -1
}

type searchResult struct {
	cost   map[Coord]int
	parent map[Coord]Coord
	order  []Coord // first-discovery order
}

// search is a uniform-cost search over entry costs. With blockUnits, cells holding a unit
// other than the one at the source cannot be entered.
func (b *Board) search(from Coord, blockUnits bool) searchResult {
	res := searchResult{
		cost:   map[Coord]int{from: 0},
		parent: map[Coord]Coord{},
		order:  []Coord{from},
	}
	done := map[Coord]bool{}
	for {
		current, best := Coord{}, math.MaxInt
		for _, c := range res.order {
			if !done[c] && res.cost[c] < best {
				current, best = c, res.cost[c]
			}
		}
		if best == math.MaxInt {
			return res
		}
		done[current] = true
		for _, n := range neighbours(current) {
			if blockUnits && b.unitIndex(n) >= 0 {
				continue
			}
			cost := best + MoveCost(b, n)
			old, seen := res.cost[n]
			if !seen {
				res.order = append(res.order, n)
			}
			if !seen || cost < old {
				res.cost[n] = cost
				res.parent[n] = current
			}
		}
	}
}
