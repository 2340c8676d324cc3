package ziptie

// nucleate accumulates cable-cable energy and, when the strongest pair
// crosses the nucleation threshold, ties it into a new bundle.
func (z *Ziptie) nucleate(activities []float64) {
	z.gatherNucleation(activities)

	// A cable never pairs with itself.
	z.nucleationEnergy.FillDiag(0)

	energy, a, b := z.nucleationEnergy.Max()
	if energy <= z.nucleationThreshold || z.full {
		return
	}

	bundle := z.created
	z.bundles.add(bundle, a)
	z.bundles.add(bundle, b)

	// Both cables are committed; neither seeds another nucleation from
	// the energy gathered so far.
	for _, c := range [2]int{a, b} {
		_ = z.nucleationEnergy.FillRow(c, 0)
		_ = z.nucleationEnergy.FillCol(c, 0)
		_ = z.agglomerationEnergy.FillCol(c, 0)
	}
	_ = z.nucleationMask.Set(a, b, 0)
	_ = z.nucleationMask.Set(b, a, 0)

	// The new bundle inherits every block either constituent has, so it
	// cannot rediscover a pair that was already resolved.
	maskA := mustRow(z.nucleationMask, a)
	maskB := mustRow(z.nucleationMask, b)
	blocked := mustRow(z.agglomerationMask, bundle)
	for j := range blocked {
		if maskA[j] == 0 || maskB[j] == 0 {
			blocked[j] = 0
		}
	}

	z.created++
	z.log.Debug("bundle nucleated",
		"bundle", bundle, "cables", []int{a, b}, "energy", energy)
	z.checkFull()
}

// gatherNucleation adds combine(a_i, a_j) to every unmasked ordered pair.
func (z *Ziptie) gatherNucleation(activities []float64) {
	if z.combine == nil {
		// Gated product: only pairs of active cables contribute.
		active := z.activeCables(activities)
		for _, i := range active {
			energy := mustRow(z.nucleationEnergy, i)
			mask := mustRow(z.nucleationMask, i)
			ai := activities[i]
			for _, j := range active {
				if j != i && mask[j] == 1 {
					energy[j] += ai * activities[j]
				}
			}
		}
		return
	}

	for i := 0; i < z.nCables; i++ {
		energy := mustRow(z.nucleationEnergy, i)
		mask := mustRow(z.nucleationMask, i)
		for j := 0; j < z.nCables; j++ {
			if j != i && mask[j] == 1 {
				energy[j] += z.combine(activities[i], activities[j])
			}
		}
	}
}
