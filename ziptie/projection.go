package ziptie

import "github.com/katalvlaran/ziptie/matrix"

// ProjectDown returns the distinct cables of a created bundle in ascending
// order.
//
// Errors:
//   - ErrBundleOutOfRange when bundle is negative or not yet created.
func (z *Ziptie) ProjectDown(bundle int) ([]int, error) {
	if err := z.checkBundle("ProjectDown", bundle); err != nil {
		return nil, err
	}
	return z.bundles.sortedCablesOf(bundle), nil
}

// ProjectDownDense returns a Cables()-long indicator with 1 at every cable
// of the bundle and 0 elsewhere.
func (z *Ziptie) ProjectDownDense(bundle int) ([]float64, error) {
	if err := z.checkBundle("ProjectDownDense", bundle); err != nil {
		return nil, err
	}
	projection := make([]float64, z.nCables)
	for _, c := range z.bundles.cablesOf(bundle) {
		projection[c] = 1
	}
	return projection, nil
}

// ProjectUp maps bundle activities back onto cables: each cable takes the
// largest activity among the bundles containing it. Cables in no bundle
// get 0.
//
// Errors:
//   - ErrShapeMismatch when len(bundleActivities) != Capacity().
func (z *Ziptie) ProjectUp(bundleActivities []float64) ([]float64, error) {
	if err := matrix.ValidateVecLen(bundleActivities, z.capacity); err != nil {
		return nil, shapeErrorf("ProjectUp", err)
	}
	cables := make([]float64, z.nCables)
	rows, cols := z.bundles.live()
	for k, b := range rows {
		if a := bundleActivities[b]; a > cables[cols[k]] {
			cables[cols[k]] = a
		}
	}
	return cables, nil
}

// InheritMasks blocks a derived cable from nucleating with itself or with
// the cable it was derived from. A layer that grows new cables out of
// existing ones calls this so the child cannot trivially re-pair with its
// origin. Any energy already gathered on those pairs is dropped.
//
// Errors:
//   - ErrCableOutOfRange when either index is outside [0, Cables()).
func (z *Ziptie) InheritMasks(child, parent int) error {
	for _, c := range [2]int{child, parent} {
		if c < 0 || c >= z.nCables {
			return zipErrorf("InheritMasks", ErrCableOutOfRange)
		}
	}
	pairs := [3][2]int{{child, child}, {parent, child}, {child, parent}}
	for _, p := range pairs {
		_ = z.nucleationMask.Set(p[0], p[1], 0)
		_ = z.nucleationEnergy.Set(p[0], p[1], 0)
	}
	return nil
}

func (z *Ziptie) checkBundle(method string, bundle int) error {
	if bundle < 0 || bundle >= z.created {
		return zipErrorf(method, ErrBundleOutOfRange)
	}
	return nil
}
