// Package ziptie is the root of a small toolkit for incremental, online
// clustering of co-active input channels ("cables") into groups ("bundles").
//
// 🚀 What is ziptie?
//
//	A deterministic, single-threaded learner that watches a stream of
//	activity vectors and ties together channels that keep firing at once:
//		• Nucleation: two cables with enough shared energy start a bundle
//		• Agglomeration: a bundle and a cable with enough shared energy
//		  grow into a new, larger bundle
//		• Featurize: bundle activity is the minimum over its cables
//		• Projections: bundles down to cables, activities back up
//
// ✨ Why ziptie?
//
//   - Fixed memory: cable and bundle counts are set at construction
//   - One-way growth: bundles are never split or removed
//   - Pluggable co-activity rule, slog-based event logging
//
// Under the hood, everything is organized under these packages:
//
//	matrix/     — dense row-major storage with row, column and arg-max kernels
//	ziptie/     — the learner: energies, masks, bundle map, projections
//	world/      — toy environments that produce activity streams
//	cmd/ziptie/ — CLI: headless run and a live terminal dashboard
//
// Quick ASCII example:
//
//	cables   0 1 2 3
//	bundle 0 ● ●
//	bundle 1     ● ●
//	bundle 2 ● ● ●
//
// bundle 2 grew out of bundle 0 by absorbing cable 2.
//
//	go install github.com/katalvlaran/ziptie/cmd/ziptie@latest
package ziptie
