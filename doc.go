// Package radiogo provides radio-fingerprint nearest-neighbor matching for
// indoor positioning.
//
// A fingerprint library is built during a calibration survey: at each known
// position the signal strengths of nearby radio sources (Wi-Fi access
// points, Bluetooth beacons) are recorded as a located fingerprint. At
// runtime a device records an unlocated fingerprint and the matcher ranks
// the library by signal similarity; a downstream estimation stage turns the
// ranked neighbors and their distances into a position.
//
// # Quick Start
//
//	matcher, _ := radiogo.New(library)
//	nearest, _ := matcher.FindNearest(query)
//	neighbors, dists, _ := matcher.FindKNearestWithDistances(query, 3)
//
// Callers holding a transient library can use the equivalent free
// functions, with identical behavior:
//
//	nearest, _ := radiogo.FindNearest(query, library)
//
// # Distance
//
// Similarity is the squared signal distance: the sum over every pair of
// readings sharing a radio source of the squared difference of their signal
// values. Fingerprints with no source in common are at distance zero; see
// package signal.
//
// # Matching
//
// The library is scanned brute-force: signal space has no metric tree that
// applies without assuming a source layout. Results are ordered ascending by
// distance with ties broken by library order, deterministically. Callers
// needing spatial pruning apply it before invoking the matcher.
//
// # Concurrency
//
// A Matcher is stateless beyond the bound library reference. All operations
// are pure reads and safe for concurrent use as long as the caller does not
// mutate the library during a call. FindKNearestBatch fans out over queries
// with bounded concurrency.
package radiogo
