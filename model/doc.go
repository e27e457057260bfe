// Package model defines the value types used throughout radiogo.
//
// # Radio Sources
//
//   - RadioSource: capability interface (Identifier + Kind)
//   - WiFiAccessPoint: Wi-Fi source identified by BSSID
//   - BluetoothBeacon: Bluetooth source identified by MAC address
//
// # Fingerprints
//
//   - Reading: one (source, signal value) measurement
//   - Fingerprint: ordered readings collected at one point, no location
//   - LocatedFingerprint: fingerprint + known Position + optional covariance
//
// All types are immutable after construction and validated by their
// canonical constructors:
//
//	fp := model.NewFingerprint(
//	    model.MustReading(model.WiFiAccessPoint{BSSID: "aa:bb:cc:dd:ee:01"}, -50),
//	)
//	lf, err := model.NewLocatedFingerprint(fp, model.NewPosition2D(0, 0),
//	    model.WithCovariance([][]float64{{0.5, 0}, {0, 0.5}}),
//	)
package model
