package ziptie

import "sort"

// unusedSlot marks arena slots past the live count.
const unusedSlot = -1

// bundleMap is the sparse bundle-to-cable incidence list in COO layout:
// entry k says cable cols[k] belongs to bundle rows[k]. Entries are
// append-only; a bundle's membership is every entry carrying its index.
type bundleMap struct {
	rows []int // bundle index per entry
	cols []int // cable index per entry
	n    int   // live entries; slots [n, len) hold unusedSlot
}

func newBundleMap() bundleMap {
	return bundleMap{
		rows: filledInts(initialMapSize, unusedSlot),
		cols: filledInts(initialMapSize, unusedSlot),
	}
}

// add appends (bundle, cable), doubling the arena when it is full.
// Existing entries keep their positions.
func (m *bundleMap) add(bundle, cable int) {
	if m.n == len(m.rows) {
		m.grow()
	}
	m.rows[m.n] = bundle
	m.cols[m.n] = cable
	m.n++
}

func (m *bundleMap) grow() {
	size := 2 * len(m.rows)
	rows := filledInts(size, unusedSlot)
	cols := filledInts(size, unusedSlot)
	copy(rows, m.rows)
	copy(cols, m.cols)
	m.rows, m.cols = rows, cols
}

// live returns the populated prefix of both columns. The slices alias the
// arena and must not be modified.
func (m *bundleMap) live() (rows, cols []int) {
	return m.rows[:m.n], m.cols[:m.n]
}

// cablesOf lists the cables of bundle b in entry order.
func (m *bundleMap) cablesOf(b int) []int {
	var cables []int
	for k := 0; k < m.n; k++ {
		if m.rows[k] == b {
			cables = append(cables, m.cols[k])
		}
	}
	return cables
}

// sortedCablesOf lists the distinct cables of bundle b in ascending order.
func (m *bundleMap) sortedCablesOf(b int) []int {
	cables := m.cablesOf(b)
	sort.Ints(cables)
	out := cables[:0]
	for i, c := range cables {
		if i == 0 || c != cables[i-1] {
			out = append(out, c)
		}
	}
	return out
}

func filledInts(n, v int) []int {
	s := make([]int, n)
	for i := range s {
		s[i] = v
	}
	return s
}
