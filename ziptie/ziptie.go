package ziptie

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/google/uuid"

	"github.com/katalvlaran/ziptie/matrix"
)

// Ziptie is an incremental co-activity clustering engine over a fixed set
// of cables and a fixed bundle capacity.
//
// State store:
//   - nucleation energy and mask: nCables × nCables,
//   - agglomeration energy and mask: capacity × nCables,
//   - the bundle map (append-only incidence list).
//
// A Ziptie is not safe for concurrent use.
type Ziptie struct {
	id   uuid.UUID
	name string
	log  *slog.Logger

	nCables  int
	capacity int
	created  int  // bundles created so far; never shrinks
	full     bool // one-way: learning stops once set

	nucleationThreshold    float64
	agglomerationThreshold float64
	activityThreshold      float64
	combine                Combinator // nil ⇒ built-in sparse gated product

	cableActivities  []float64 // snapshot from the last Featurize
	bundleActivities []float64 // weighted, from the last Featurize; read by Learn
	active           []int     // scratch list of active cable indices

	bundles bundleMap

	nucleationEnergy    *matrix.Dense
	nucleationMask      *matrix.Dense
	agglomerationEnergy *matrix.Dense
	agglomerationMask   *matrix.Dense
}

// New allocates a Ziptie for nCables inputs. Bundle capacity defaults to
// nCables; see WithBundles.
//
// Errors:
//   - ErrInvalidCables when nCables <= 0.
func New(nCables int, opts ...Option) (*Ziptie, error) {
	if nCables <= 0 {
		return nil, zipErrorf("New", ErrInvalidCables)
	}
	o := gatherOptions(opts...)
	capacity := o.nBundles
	if capacity == 0 {
		capacity = nCables
	}

	z := &Ziptie{
		id:                     uuid.New(),
		name:                   o.name,
		nCables:                nCables,
		capacity:               capacity,
		nucleationThreshold:    o.nucleationThreshold,
		agglomerationThreshold: o.agglomerationThreshold,
		activityThreshold:      o.activityThreshold,
		combine:                o.combinator,
		cableActivities:        make([]float64, nCables),
		bundleActivities:       make([]float64, capacity),
		active:                 make([]int, 0, nCables),
		bundles:                newBundleMap(),
	}
	z.log = o.logger.With("ziptie", z.name, "id", z.id.String())

	var err error
	if z.nucleationEnergy, err = matrix.NewDense(nCables, nCables); err != nil {
		return nil, zipErrorf("New", err)
	}
	if z.nucleationMask, err = matrix.NewFilled(nCables, nCables, 1); err != nil {
		return nil, zipErrorf("New", err)
	}
	if z.agglomerationEnergy, err = matrix.NewDense(capacity, nCables); err != nil {
		return nil, zipErrorf("New", err)
	}
	if z.agglomerationMask, err = matrix.NewFilled(capacity, nCables, 1); err != nil {
		return nil, zipErrorf("New", err)
	}

	return z, nil
}

// ID returns the identifier assigned at construction.
func (z *Ziptie) ID() uuid.UUID { return z.id }

// Name returns the instance label.
func (z *Ziptie) Name() string { return z.name }

// Cables returns the number of inputs.
func (z *Ziptie) Cables() int { return z.nCables }

// Capacity returns the maximum number of bundles.
func (z *Ziptie) Capacity() int { return z.capacity }

// BundlesCreated returns how many bundle indices are in use.
func (z *Ziptie) BundlesCreated() int { return z.created }

// Full reports whether capacity was reached and learning has stopped.
func (z *Ziptie) Full() bool { return z.full }

// MapEntries returns the live entry count of the bundle map.
func (z *Ziptie) MapEntries() int { return z.bundles.n }

// CableActivities returns a copy of the snapshot stored by the last Featurize.
func (z *Ziptie) CableActivities() []float64 {
	return append([]float64(nil), z.cableActivities...)
}

// Featurize stores a copy of activities as the current cable state and
// returns each bundle's activity: the minimum over its member cables, times
// the bundle's weight. Bundles without cables report 0. A nil weights slice
// means all ones.
//
// The weighted result is also kept as the bundle activity snapshot that the
// next Learn agglomerates against. No statistics are mutated.
//
// Errors:
//   - ErrShapeMismatch when len(activities) != Cables() or
//     len(weights) != Capacity().
func (z *Ziptie) Featurize(activities, weights []float64) ([]float64, error) {
	if err := z.checkCables("Featurize", activities); err != nil {
		return nil, err
	}
	if weights != nil {
		if err := matrix.ValidateVecLen(weights, z.capacity); err != nil {
			return nil, shapeErrorf("Featurize", err)
		}
	}

	copy(z.cableActivities, activities)
	z.computeBundleActivities(z.cableActivities, z.bundleActivities)
	if weights != nil {
		for b, w := range weights {
			z.bundleActivities[b] *= w
		}
	}

	return append([]float64(nil), z.bundleActivities...), nil
}

// Learn folds one activity vector into the statistics: a nucleation attempt,
// then, if capacity remains, an agglomeration attempt. Agglomeration pairs
// cable activities with the bundle activities of the last Featurize, so
// without a Featurize call no bundle grows. Once Full, Learn only validates
// its input.
//
// Errors:
//   - ErrShapeMismatch when len(activities) != Cables(); nothing is mutated.
func (z *Ziptie) Learn(activities []float64) error {
	if err := z.checkCables("Learn", activities); err != nil {
		return err
	}
	if !z.full {
		z.nucleate(activities)
	}
	if !z.full {
		z.agglomerate(z.bundleActivities, activities)
	}

	return nil
}

// Step runs one time step: Featurize, then Learn on the same vector.
// It returns the bundle activities computed before learning.
func (z *Ziptie) Step(activities, weights []float64) ([]float64, error) {
	out, err := z.Featurize(activities, weights)
	if err != nil {
		return nil, err
	}
	if err = z.Learn(activities); err != nil {
		return nil, err
	}

	return out, nil
}

// computeBundleActivities writes min-over-members into dst for every bundle.
func (z *Ziptie) computeBundleActivities(cables, dst []float64) {
	inf := math.Inf(1)
	for b := range dst {
		dst[b] = inf
	}
	rows, cols := z.bundles.live()
	for k, b := range rows {
		if a := cables[cols[k]]; a < dst[b] {
			dst[b] = a
		}
	}
	for b := range dst {
		if math.IsInf(dst[b], 1) {
			dst[b] = 0
		}
	}
}

// activeCables collects indices whose activity exceeds the activity threshold.
func (z *Ziptie) activeCables(activities []float64) []int {
	z.active = z.active[:0]
	for i, a := range activities {
		if a > z.activityThreshold {
			z.active = append(z.active, i)
		}
	}
	return z.active
}

func (z *Ziptie) checkFull() {
	if z.created >= z.capacity {
		z.full = true
		z.log.Debug("bundle capacity reached", "bundles", z.created)
	}
}

func (z *Ziptie) checkCables(method string, activities []float64) error {
	if err := matrix.ValidateVecLen(activities, z.nCables); err != nil {
		return shapeErrorf(method, err)
	}
	return nil
}

// shapeErrorf keeps both ErrShapeMismatch and the matrix cause matchable.
func shapeErrorf(method string, cause error) error {
	return fmt.Errorf("Ziptie.%s: %w: %w", method, ErrShapeMismatch, cause)
}

// mustRow returns the backing row of m. Indices are valid by construction,
// so a failure is a programming error.
func mustRow(m *matrix.Dense, i int) []float64 {
	row, err := m.RawRow(i)
	if err != nil {
		panic(err)
	}
	return row
}
