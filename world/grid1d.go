package world

import (
	"fmt"
	"math"
	"math/rand"
)

const (
	grid1DPositions = 9
	grid1DActions   = 3

	// Grid1DReward is paid at position 3 and charged at position 8.
	Grid1DReward = 100.0
	// Grid1DJumpFraction is the chance per step of landing on a random position.
	Grid1DJumpFraction = 0.1

	grid1DRewarded = 3
	grid1DPunished = 8
	grid1DStepCost = 0.01 * Grid1DReward
)

// Grid1D is a multi-step one-dimensional grid. The agent steps forward
// (action 0) or backward (action 1) along nine positions that wrap around;
// action 2 does nothing. Position 3 is rewarded, position 8 punished, and
// every unit of movement costs a little. Occasionally the agent is knocked
// to a random position.
//
// Sensors are one-hot over the positions.
type Grid1D struct {
	rng      *rand.Rand
	position float64
	steps    int
}

var _ World = (*Grid1D)(nil)

// NewGrid1D returns a Grid1D at position 0 driven by rng.
func NewGrid1D(rng *rand.Rand) *Grid1D {
	return &Grid1D{rng: rng}
}

// Name implements World.
func (g *Grid1D) Name() string { return "multi-step one dimensional grid world" }

// Sensors implements World.
func (g *Grid1D) Sensors() int { return grid1DPositions }

// Actions implements World.
func (g *Grid1D) Actions() int { return grid1DActions }

// Position returns the current integer position.
func (g *Grid1D) Position() int { return int(math.Floor(g.position)) }

// Steps returns how many steps have been taken.
func (g *Grid1D) Steps() int { return g.steps }

// Step implements World. Action values are rounded to 0 or 1.
func (g *Grid1D) Step(action []float64) ([]float64, float64, error) {
	if action == nil {
		action = make([]float64, grid1DActions)
	}
	if len(action) != grid1DActions {
		return nil, 0, fmt.Errorf("Grid1D.Step: got %d actions: %w", len(action), ErrActionShape)
	}
	g.steps++

	forward, backward := math.Round(action[0]), math.Round(action[1])
	g.position += forward - backward
	if g.rng.Float64() < Grid1DJumpFraction {
		g.position = grid1DPositions * g.rng.Float64()
	}
	g.position -= grid1DPositions * math.Floor(g.position/grid1DPositions)

	sensors := make([]float64, grid1DPositions)
	pos := g.Position()
	sensors[pos] = 1

	reward := sensors[grid1DRewarded]*Grid1DReward - sensors[grid1DPunished]*Grid1DReward
	reward -= (forward + backward) * grid1DStepCost

	return sensors, reward, nil
}

// RandomAction returns a one-hot action chosen uniformly by rng.
func RandomAction(rng *rand.Rand, n int) []float64 {
	a := make([]float64, n)
	a[rng.Intn(n)] = 1
	return a
}
