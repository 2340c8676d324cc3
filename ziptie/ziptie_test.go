package ziptie_test

import (
	"bytes"
	"log/slog"
	"math"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ziptie/matrix"
	"github.com/katalvlaran/ziptie/ziptie"
)

// newScenario builds the four-cable engine used across tests:
// threshold 1, activity floor 0, capacity 4.
func newScenario(t *testing.T, opts ...ziptie.Option) *ziptie.Ziptie {
	t.Helper()
	base := []ziptie.Option{
		ziptie.WithBundles(4),
		ziptie.WithThreshold(1),
		ziptie.WithActivityThreshold(0),
	}
	z, err := ziptie.New(4, append(base, opts...)...)
	require.NoError(t, err)
	return z
}

// feed calls Learn n times with the same vector.
func feed(t *testing.T, z *ziptie.Ziptie, activities []float64, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		require.NoError(t, z.Learn(activities))
	}
}

// step calls Step n times with the same vector and weights.
func step(t *testing.T, z *ziptie.Ziptie, activities, weights []float64, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		_, err := z.Step(activities, weights)
		require.NoError(t, err)
	}
}

// TestNewRejectsBadCables ensures a non-positive cable count is refused.
func TestNewRejectsBadCables(t *testing.T) {
	_, err := ziptie.New(0)
	require.ErrorIs(t, err, ziptie.ErrInvalidCables)
}

// TestOptionPanics verifies nonsensical option values panic at construction.
func TestOptionPanics(t *testing.T) {
	assert.Panics(t, func() { ziptie.WithBundles(0) })
	assert.Panics(t, func() { ziptie.WithThreshold(-1) })
	assert.Panics(t, func() { ziptie.WithActivityThreshold(math.NaN()) })
	assert.Panics(t, func() { ziptie.WithAgglomerationThreshold(math.Inf(1)) })
	assert.Panics(t, func() { ziptie.WithCombinator(nil) })
	assert.Panics(t, func() { ziptie.WithLogger(nil) })
}

// TestDefaults checks capacity, name and identity defaults.
func TestDefaults(t *testing.T) {
	z, err := ziptie.New(6)
	require.NoError(t, err)
	assert.Equal(t, 6, z.Cables())
	assert.Equal(t, 6, z.Capacity())
	assert.Equal(t, ziptie.DefaultName, z.Name())
	assert.NotEqual(t, uuid.Nil, z.ID())
	assert.Zero(t, z.BundlesCreated())
	assert.False(t, z.Full())

	other, err := ziptie.New(6, ziptie.WithName("level1"))
	require.NoError(t, err)
	assert.Equal(t, "level1", other.Name())
	assert.NotEqual(t, z.ID(), other.ID())
}

// TestFeaturizeShapeMismatch rejects wrong lengths without touching state.
func TestFeaturizeShapeMismatch(t *testing.T) {
	z := newScenario(t)
	_, err := z.Featurize([]float64{1, 1, 1, 1}, nil)
	require.NoError(t, err)

	_, err = z.Featurize([]float64{0, 0}, nil)
	require.ErrorIs(t, err, ziptie.ErrShapeMismatch)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = z.Featurize([]float64{0, 0, 0, 0}, []float64{1})
	require.ErrorIs(t, err, ziptie.ErrShapeMismatch)

	_, err = z.Featurize(nil, nil)
	require.ErrorIs(t, err, ziptie.ErrShapeMismatch)

	assert.Equal(t, []float64{1, 1, 1, 1}, z.CableActivities(), "failed calls keep the previous snapshot")
}

// TestLearnShapeMismatch rejects wrong lengths without mutating energies.
func TestLearnShapeMismatch(t *testing.T) {
	z := newScenario(t)
	err := z.Learn([]float64{1, 1, 1})
	require.ErrorIs(t, err, ziptie.ErrShapeMismatch)

	nuc, agg := z.MaxEnergies()
	assert.Zero(t, nuc)
	assert.Zero(t, agg)
}

// TestFeaturizeCopiesInput ensures the stored snapshot does not alias the caller's buffer.
func TestFeaturizeCopiesInput(t *testing.T) {
	z := newScenario(t)
	in := []float64{0.5, 0, 0, 0}
	_, err := z.Featurize(in, nil)
	require.NoError(t, err)

	in[0] = 9
	assert.Equal(t, []float64{0.5, 0, 0, 0}, z.CableActivities())
}

// TestFeaturizeWithoutBundles returns zeros of capacity length.
func TestFeaturizeWithoutBundles(t *testing.T) {
	z := newScenario(t)
	out, err := z.Featurize([]float64{1, 2, 3, 4}, nil)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0, 0, 0}, out)
}

// TestTwoPairScenario drives {0,1} then {2,3} into separate bundles and
// checks 0 and 2 never share a bundle.
func TestTwoPairScenario(t *testing.T) {
	z := newScenario(t)

	feed(t, z, []float64{1, 1, 0, 0}, 1)
	assert.Zero(t, z.BundlesCreated(), "energy 1 does not exceed threshold 1")

	feed(t, z, []float64{1, 1, 0, 0}, 1)
	require.Equal(t, 1, z.BundlesCreated())
	cables, err := z.ProjectDown(0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, cables)

	feed(t, z, []float64{0, 0, 1, 1}, 2)
	require.Equal(t, 2, z.BundlesCreated())
	cables, err = z.ProjectDown(1)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3}, cables)

	for i := 0; i < 20; i++ {
		feed(t, z, []float64{1, 1, 0, 0}, 1)
		feed(t, z, []float64{0, 0, 1, 1}, 1)
	}
	assert.Equal(t, 2, z.BundlesCreated())
	assert.False(t, z.Full())
	for _, b := range z.Bundles() {
		assert.False(t, contains(b.Cables, 0) && contains(b.Cables, 2), "bundle %d mixes 0 and 2", b.Index)
	}
}

// TestFeaturizeMinAndWeights checks min-over-members and weight scaling.
func TestFeaturizeMinAndWeights(t *testing.T) {
	z := newScenario(t)
	feed(t, z, []float64{1, 1, 0, 0}, 2)

	out, err := z.Featurize([]float64{0.5, 0.8, 0.3, 0}, nil)
	require.NoError(t, err)
	assert.Equal(t, []float64{0.5, 0, 0, 0}, out)

	out, err = z.Featurize([]float64{0.5, 0.8, 0.3, 0}, []float64{2, 1, 1, 1})
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 0, 0, 0}, out)
}

// TestStepReturnsPreLearnActivities verifies Step reads before it learns.
func TestStepReturnsPreLearnActivities(t *testing.T) {
	z := newScenario(t)
	_, err := z.Step([]float64{1, 1, 0, 0}, nil)
	require.NoError(t, err)

	out, err := z.Step([]float64{1, 1, 0, 0}, nil)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0, 0, 0}, out, "bundle 0 is created by this step's Learn")
	assert.Equal(t, 1, z.BundlesCreated())

	out, err = z.Step([]float64{1, 1, 0, 0}, nil)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 0, 0, 0}, out)
}

// TestAgglomerationAndCapacity walks three always-on cables through two
// nucleations and an agglomeration that fills capacity. A bundle nucleated
// in one step is featurized as 0 in that step, so it cannot grow until the
// step after next.
func TestAgglomerationAndCapacity(t *testing.T) {
	z, err := ziptie.New(3,
		ziptie.WithThreshold(1),
		ziptie.WithActivityThreshold(0))
	require.NoError(t, err)
	all := []float64{1, 1, 1}

	step(t, z, all, nil, 2)
	require.Equal(t, 1, z.BundlesCreated())
	e, _ := z.AgglomerationEnergy().At(0, 2)
	assert.Zero(t, e, "bundle 0 was featurized before it existed")

	step(t, z, all, nil, 1)
	require.Equal(t, 1, z.BundlesCreated(), "energy 1 on (0,2) does not exceed threshold 1")

	step(t, z, all, nil, 1)
	require.Equal(t, 2, z.BundlesCreated())
	cables, err := z.ProjectDown(1)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2}, cables, "cables 0 and 2 nucleate before bundle 0 can grow")

	step(t, z, all, nil, 1)
	require.True(t, z.Full())
	assert.Equal(t, []ziptie.Bundle{
		{Index: 0, Cables: []int{0, 1}},
		{Index: 1, Cables: []int{0, 2}},
		{Index: 2, Cables: []int{0, 1, 2}},
	}, z.Bundles())
	assert.Equal(t, 7, z.MapEntries())
	cables, err = z.ProjectDown(0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, cables, "the source bundle is never rewritten")
}

// TestAgglomerationHonorsWeights zeroes bundle 0's weight so it never grows,
// leaving capacity to a third nucleation.
func TestAgglomerationHonorsWeights(t *testing.T) {
	z, err := ziptie.New(3,
		ziptie.WithThreshold(1),
		ziptie.WithActivityThreshold(0))
	require.NoError(t, err)

	step(t, z, []float64{1, 1, 1}, []float64{0, 1, 1}, 10)
	require.True(t, z.Full())
	assert.Equal(t, []ziptie.Bundle{
		{Index: 0, Cables: []int{0, 1}},
		{Index: 1, Cables: []int{0, 2}},
		{Index: 2, Cables: []int{1, 2}},
	}, z.Bundles())
}

// TestLearnWithoutFeaturizeNeverGrows keeps every bundle a pair when only
// Learn is called.
func TestLearnWithoutFeaturizeNeverGrows(t *testing.T) {
	z, err := ziptie.New(3, ziptie.WithBundles(6), ziptie.WithThreshold(1), ziptie.WithActivityThreshold(0))
	require.NoError(t, err)

	feed(t, z, []float64{1, 1, 1}, 20)
	require.Equal(t, 3, z.BundlesCreated())
	for _, b := range z.Bundles() {
		assert.Len(t, b.Cables, 2)
	}
	_, agg := z.MaxEnergies()
	assert.Zero(t, agg)
}

// TestFullStopsLearning ensures Learn is a no-op once capacity is reached.
func TestFullStopsLearning(t *testing.T) {
	z, err := ziptie.New(2, ziptie.WithBundles(1), ziptie.WithThreshold(1), ziptie.WithActivityThreshold(0))
	require.NoError(t, err)
	feed(t, z, []float64{1, 1}, 2)
	require.True(t, z.Full())

	before := z.Snapshot()
	feed(t, z, []float64{1, 1}, 50)
	after := z.Snapshot()
	assert.Equal(t, before.Created, after.Created)
	assert.Equal(t, before.MapEntries, after.MapEntries)
	assert.Equal(t, before.Bundles, after.Bundles)
	assert.Equal(t, before.MaxNucleationEnergy, after.MaxNucleationEnergy)
}

// TestActivityThresholdGates verifies activity at or below the floor adds no energy.
func TestActivityThresholdGates(t *testing.T) {
	z, err := ziptie.New(2, ziptie.WithThreshold(1))
	require.NoError(t, err)
	feed(t, z, []float64{0.1, 1}, 10)

	nuc, _ := z.MaxEnergies()
	assert.Zero(t, nuc)
	assert.Zero(t, z.BundlesCreated())
}

// TestCustomCombinator swaps the gated product for an ungated sum.
func TestCustomCombinator(t *testing.T) {
	z, err := ziptie.New(3,
		ziptie.WithThreshold(1.5),
		ziptie.WithCombinator(func(a, b float64) float64 { return a + b }))
	require.NoError(t, err)

	feed(t, z, []float64{1, 0, 0}, 2)
	require.Equal(t, 1, z.BundlesCreated())
	cables, err := z.ProjectDown(0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, cables)
}

// TestSplitThresholds lets nucleation fire while agglomeration stays quiet.
func TestSplitThresholds(t *testing.T) {
	z, err := ziptie.New(3,
		ziptie.WithNucleationThreshold(1),
		ziptie.WithAgglomerationThreshold(100),
		ziptie.WithActivityThreshold(0))
	require.NoError(t, err)

	step(t, z, []float64{1, 1, 1}, nil, 10)
	require.Equal(t, 3, z.BundlesCreated())
	for _, b := range z.Bundles() {
		assert.Len(t, b.Cables, 2, "no agglomerated bundles below threshold 100")
	}
}

// TestDebugLogging routes nucleation events to an injected slog logger.
func TestDebugLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	z := newScenario(t, ziptie.WithLogger(logger), ziptie.WithName("lvl0"))

	feed(t, z, []float64{1, 1, 0, 0}, 2)
	out := buf.String()
	assert.Contains(t, out, "bundle nucleated")
	assert.Contains(t, out, "ziptie=lvl0")
	assert.Contains(t, out, z.ID().String())
}

func contains(xs []int, v int) bool {
	for _, x := range xs {
		if x == v {
			return true
		}
	}
	return false
}
