package world

import "errors"

// ErrActionShape is returned when an action vector has the wrong length.
var ErrActionShape = errors.New("world: action vector shape mismatch")

// World produces sensor activities and consumes actions, one step at a time.
type World interface {
	// Name labels the world in reports.
	Name() string
	// Sensors is the length of the vector returned by Step.
	Sensors() int
	// Actions is the length of the action vector Step accepts.
	Actions() int
	// Step applies action (nil means no action) and returns the new sensor
	// activities and the reward earned.
	Step(action []float64) (sensors []float64, reward float64, err error)
}
