// Package testutil provides helpers for building synthetic fingerprint
// libraries in tests and benchmarks, plus a linear-scan reference matcher
// for cross-checking results.
package testutil
