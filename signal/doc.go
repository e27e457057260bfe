// Package signal provides the distance metric used for fingerprint matching.
//
// The metric operates purely on (source identifier, signal value) pairs; it
// requires no geometric computation and is independent of position.
//
// # Usage
//
//	d := signal.Distance(query, reference.Fingerprint())
package signal
