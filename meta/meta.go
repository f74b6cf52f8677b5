// meta/meta.go
package meta

// WIN_VALUE is the value seed of a state the owning player has won.
const WIN_VALUE = 1000.0

// LOSS_VALUE is the value seed of a state the owning player has lost.
const LOSS_VALUE = -1000.0

// SEED_MAX bounds the random value seed [0, SEED_MAX] of a new non-terminal state.
const SEED_MAX = 100

// UNEXPLORED_VALUE is the estimate of a state with no stored record.
const UNEXPLORED_VALUE = -10.0

// LEARNING_RATE defines the default TD step size.
const LEARNING_RATE = 0.1

// DISCOUNT_FACTOR defines the default TD discount.
const DISCOUNT_FACTOR = 0.99

// Rewards for the owning player.
const (
	WIN_REWARD  = 1.0
	LOSS_REWARD = 0.0
	TURN_REWARD = -0.01
)

// NUM_DESIRED_WORKERS defines how many workers the heuristic keeps gathering.
const NUM_DESIRED_WORKERS = 2

// NUM_DESIRED_DRONES defines how many drones the heuristic builds.
const NUM_DESIRED_DRONES = 1

// MIN_DESIRED_FOOD is the food reserve kept before building fighters.
const MIN_DESIRED_FOOD = 2

// MAX_TURNS caps a local game.
const MAX_TURNS = 300
