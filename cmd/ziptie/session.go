package main

import (
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/katalvlaran/ziptie/world"
	"github.com/katalvlaran/ziptie/ziptie"
)

// session couples a world, a random policy and a ziptie. Each step feeds
// the world's sensors followed by the chosen action into the ziptie.
type session struct {
	world *world.Grid1D
	zip   *ziptie.Ziptie
	rng   *rand.Rand
	limit int // 0 = unbounded

	steps  int
	reward float64   // cumulative
	last   []float64 // bundle activities from the latest step
}

func newSession(cfg config, logger *slog.Logger) (*session, error) {
	rng := rand.New(rand.NewSource(cfg.seed))
	w := world.NewGrid1D(rng)
	z, err := ziptie.New(w.Sensors()+w.Actions(), cfg.options(logger)...)
	if err != nil {
		return nil, err
	}
	return &session{world: w, zip: z, rng: rng, limit: cfg.steps}, nil
}

// advance runs up to n steps, stopping early at the step limit.
func (s *session) advance(n int) error {
	for i := 0; i < n && !s.done(); i++ {
		action := world.RandomAction(s.rng, s.world.Actions())
		sensors, reward, err := s.world.Step(action)
		if err != nil {
			return err
		}
		acts, err := s.zip.Step(append(sensors, action...), nil)
		if err != nil {
			return err
		}
		s.last = acts
		s.steps++
		s.reward += reward
	}
	return nil
}

func (s *session) done() bool {
	return s.limit > 0 && s.steps >= s.limit
}

func (s *session) summary() string {
	mean := 0.0
	if s.steps > 0 {
		mean = s.reward / float64(s.steps)
	}
	return fmt.Sprintf("steps=%d bundles=%d/%d full=%t mean_reward=%.2f",
		s.steps, s.zip.BundlesCreated(), s.zip.Capacity(), s.zip.Full(), mean)
}
