package game

// UnitType is the role of a unit.
type UnitType int

const (
	Queen UnitType = iota
	Worker
	Drone
	Soldier
	RangedSoldier
)

var unitNames = map[UnitType]string{
	Queen:         "queen",
	Worker:        "worker",
	Drone:         "drone",
	Soldier:       "soldier",
	RangedSoldier: "ranged-soldier",
}

func (t UnitType) String() string {
	if name, ok := unitNames[t]; ok {
		return name
	}
	return "unknown"
}

// StructureType is the kind of a placed structure.
type StructureType int

const (
	Anthill StructureType = iota
	Tunnel
	Food
	Grass
)

var structureNames = map[StructureType]string{
	Anthill: "anthill",
	Tunnel:  "tunnel",
	Food:    "food",
	Grass:   "grass",
}

func (t StructureType) String() string {
	if name, ok := structureNames[t]; ok {
		return name
	}
	return "unknown"
}

type UnitStats struct {
	Movement int
	Health   int
	Attack   int
	Range    int
	Cost     int // food spent to build, 0 if it cannot be built
}

type StructureStats struct {
	MoveCost      int
	CaptureHealth int
}

// FoodGoal is the food count that wins the game.
const FoodGoal = 11

var unitStats = map[UnitType]UnitStats{
	Queen:         {Movement: 2, Health: 10, Attack: 2, Range: 1},
	Worker:        {Movement: 2, Health: 2, Attack: 1, Range: 1, Cost: 1},
	Drone:         {Movement: 3, Health: 2, Attack: 1, Range: 1, Cost: 1},
	Soldier:       {Movement: 2, Health: 4, Attack: 2, Range: 1, Cost: 2},
	RangedSoldier: {Movement: 1, Health: 2, Attack: 1, Range: 3, Cost: 2},
}

var structureStats = map[StructureType]StructureStats{
	Anthill: {MoveCost: 1, CaptureHealth: 3},
	Tunnel:  {MoveCost: 1, CaptureHealth: 1},
	Food:    {MoveCost: 1},
	Grass:   {MoveCost: 2},
}

// StatsOf returns the fixed stats of a unit type.
func StatsOf(t UnitType) UnitStats {
	return unitStats[t]
}

// BuildableTypes lists the unit types that can be built on an anthill.
func BuildableTypes() []UnitType {
	return []UnitType{Worker, Drone, Soldier, RangedSoldier}
}

// Unit is a snapshot of a unit on the board.
type Unit struct {
	Coords   Coord
	Type     UnitType
	Owner    int
	Health   int
	Carrying bool
	HasMoved bool
}

func (u Unit) Movement() int {
	return unitStats[u.Type].Movement
}

// IsFighter reports whether the unit is a drone, soldier or ranged soldier.
func (u Unit) IsFighter() bool {
	return u.Type == Drone || u.Type == Soldier || u.Type == RangedSoldier
}

// Structure is a snapshot of a structure on the board.
type Structure struct {
	Coords        Coord
	Type          StructureType
	Owner         int // Neutral for food and grass
	CaptureHealth int
}

func (s Structure) MoveCost() int {
	return structureStats[s.Type].MoveCost
}

// Inventory is a player's holdings.
type Inventory struct {
	Player    int
	FoodCount int
	Units     []Unit
	Anthill   *Structure
	Tunnel    *Structure
}

// Queen returns the player's queen if it is still alive.
func (inv Inventory) Queen() (Unit, bool) {
	for _, u := range inv.Units {
		if u.Type == Queen {
			return u, true
		}
	}
	return Unit{}, false
}

// UnitsOf filters the inventory's units by type, preserving order.
func (inv Inventory) UnitsOf(types ...UnitType) []Unit {
	var units []Unit
	for _, u := range inv.Units {
		for _, t := range types {
			if u.Type == t {
				units = append(units, u)
				break
			}
		}
	}
	return units
}
