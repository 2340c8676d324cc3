package ziptie

import (
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"

	"github.com/katalvlaran/ziptie/matrix"
)

// Bundle is a read-only view of one created bundle.
type Bundle struct {
	Index  int
	Cables []int // ascending, distinct
}

// Snapshot is a point-in-time summary for reporting and visualization.
type Snapshot struct {
	ID                     uuid.UUID
	Name                   string
	Cables                 int
	Capacity               int
	Created                int
	MapEntries             int
	Full                   bool
	MaxNucleationEnergy    float64
	MaxAgglomerationEnergy float64
	Bundles                []Bundle
}

// Reporter consumes snapshots. Reporting never feeds back into learning.
type Reporter interface {
	Report(s Snapshot) error
}

// Bundles lists every created bundle in index order.
func (z *Ziptie) Bundles() []Bundle {
	out := make([]Bundle, z.created)
	for b := range out {
		out[b] = Bundle{Index: b, Cables: z.bundles.sortedCablesOf(b)}
	}
	return out
}

// MaxEnergies returns the current peak of each energy accumulator.
func (z *Ziptie) MaxEnergies() (nucleation, agglomeration float64) {
	nucleation, _, _ = z.nucleationEnergy.Max()
	agglomeration, _, _ = z.agglomerationEnergy.Max()
	return nucleation, agglomeration
}

// NucleationEnergy returns a copy of the cable × cable energy matrix.
func (z *Ziptie) NucleationEnergy() matrix.Matrix { return z.nucleationEnergy.Clone() }

// NucleationMask returns a copy of the cable × cable permission mask.
func (z *Ziptie) NucleationMask() matrix.Matrix { return z.nucleationMask.Clone() }

// AgglomerationEnergy returns a copy of the bundle × cable energy matrix.
func (z *Ziptie) AgglomerationEnergy() matrix.Matrix { return z.agglomerationEnergy.Clone() }

// AgglomerationMask returns a copy of the bundle × cable permission mask.
func (z *Ziptie) AgglomerationMask() matrix.Matrix { return z.agglomerationMask.Clone() }

// Snapshot captures the current state for a Reporter.
func (z *Ziptie) Snapshot() Snapshot {
	nuc, agg := z.MaxEnergies()
	return Snapshot{
		ID:                     z.id,
		Name:                   z.name,
		Cables:                 z.nCables,
		Capacity:               z.capacity,
		Created:                z.created,
		MapEntries:             z.bundles.n,
		Full:                   z.full,
		MaxNucleationEnergy:    nuc,
		MaxAgglomerationEnergy: agg,
		Bundles:                z.Bundles(),
	}
}

// Visualize hands the current snapshot to r.
func (z *Ziptie) Visualize(r Reporter) error {
	return r.Report(z.Snapshot())
}

// TextReporter prints the name followed by one line per bundle:
//
//	ziptie
//	    bundle 0 cables: [0 1]
type TextReporter struct {
	W io.Writer
}

// Report implements Reporter.
func (r TextReporter) Report(s Snapshot) error {
	var b strings.Builder
	b.WriteString(s.Name)
	b.WriteByte('\n')
	for _, bundle := range s.Bundles {
		fmt.Fprintf(&b, "    bundle %d cables: %v\n", bundle.Index, bundle.Cables)
	}
	_, err := io.WriteString(r.W, b.String())
	return err
}
