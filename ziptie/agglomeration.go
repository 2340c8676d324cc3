package ziptie

// agglomerate accumulates bundle-cable energy and, when the strongest pair
// crosses the agglomeration threshold, clones the bundle plus the cable
// into a new bundle. The source bundle is left untouched.
//
// bundleActivities are the weighted activities stored by the last Featurize,
// so a bundle nucleated during this Learn reads 0 until it is featurized.
func (z *Ziptie) agglomerate(bundleActivities, activities []float64) {
	z.gatherAgglomeration(bundleActivities, activities)

	// No energy between a bundle and its own members.
	rows, cols := z.bundles.live()
	_ = z.agglomerationEnergy.SetPairs(rows, cols, 0)

	energy, source, cable := z.agglomerationEnergy.Max()
	if energy <= z.agglomerationThreshold || z.full {
		return
	}

	bundle := z.created
	for _, c := range z.bundles.cablesOf(source) {
		z.bundles.add(bundle, c)
	}
	z.bundles.add(bundle, cable)

	_ = z.nucleationEnergy.FillRow(cable, 0)
	_ = z.nucleationEnergy.FillCol(cable, 0)
	_ = z.agglomerationEnergy.FillCol(cable, 0)
	_ = z.agglomerationEnergy.FillRow(source, 0)

	// The source/cable pair is resolved; growing it again would only
	// duplicate the bundle just created.
	_ = z.agglomerationMask.Set(source, cable, 0)

	// Block the new bundle from every cable that the absorbed cable may not
	// nucleate with or the source bundle may not agglomerate with.
	cableMask := mustRow(z.nucleationMask, cable)
	sourceMask := mustRow(z.agglomerationMask, source)
	blocked := mustRow(z.agglomerationMask, bundle)
	for j := range blocked {
		if cableMask[j] == 0 || sourceMask[j] == 0 {
			blocked[j] = 0
		}
	}

	z.created++
	z.log.Debug("bundle agglomerated",
		"bundle", bundle, "source", source, "cable", cable, "energy", energy)
	z.checkFull()
}

// gatherAgglomeration adds combine(bundle, cable) to every unmasked pair of
// a created bundle and a cable.
func (z *Ziptie) gatherAgglomeration(bundleActivities, activities []float64) {
	var active []int
	if z.combine == nil {
		active = z.activeCables(activities)
		if len(active) == 0 {
			return
		}
	}

	for b := 0; b < z.created; b++ {
		ab := bundleActivities[b]
		energy := mustRow(z.agglomerationEnergy, b)
		mask := mustRow(z.agglomerationMask, b)

		if z.combine == nil {
			if ab <= z.activityThreshold {
				continue
			}
			for _, j := range active {
				if mask[j] == 1 {
					energy[j] += ab * activities[j]
				}
			}
			continue
		}

		for j := 0; j < z.nCables; j++ {
			if mask[j] == 1 {
				energy[j] += z.combine(ab, activities[j])
			}
		}
	}
}
