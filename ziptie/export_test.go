package ziptie

// MapCapacity exposes the bundle map arena size to tests.
func MapCapacity(z *Ziptie) int { return len(z.bundles.rows) }
