// Package ziptie implements an incremental, unsupervised co-activity
// clustering algorithm.
//
// Input channels ("cables") are clustered into mutually co-active sets
// ("bundles"), the way cables carrying related signals get zip-tied together.
// A cable may be tied into several bundles. Co-activity is estimated online:
// every call to Learn adds one observation to the running statistics.
//
// Two learners share one state store:
//
//   - Nucleation accumulates pairwise energy between cables. When the largest
//     entry exceeds the nucleation threshold, the top pair becomes a new bundle.
//   - Agglomeration accumulates energy between existing bundles and cables.
//     When the largest entry exceeds the agglomeration threshold, the bundle's
//     members plus the cable are cloned into a new bundle. Earlier bundle
//     indices are never rewritten.
//
// Permission masks block pairs that were already resolved, or that would
// immediately rediscover an existing bundle. A cleared mask entry never
// returns to 1.
//
// Bundle activity is the minimum activity over member cables. When stacked,
// zipties form a sparse network whose weights are all zero or one, which keeps
// the learned features easy to read back with ProjectDown and ProjectUp.
//
// Per time step:
//
//	acts, err := z.Featurize(cables, nil) // read
//	err = z.Learn(cables)                 // nucleate, then agglomerate
//
// A Ziptie is not safe for concurrent use. Serialize Featurize/Learn calls
// externally or keep one instance per goroutine.
package ziptie
