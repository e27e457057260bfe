package model

import (
	"errors"
	"fmt"
)

// ErrNilSource is returned when a reading is constructed without a source.
var ErrNilSource = errors.New("radio source must not be nil")

// SourceKind identifies the radio technology of a source.
type SourceKind int

const (
	SourceKindWiFi SourceKind = iota
	SourceKindBluetooth
)

// String returns a string representation of the SourceKind.
func (k SourceKind) String() string {
	switch k {
	case SourceKindWiFi:
		return "WiFi"
	case SourceKindBluetooth:
		return "Bluetooth"
	default:
		return fmt.Sprintf("Unknown(%d)", int(k))
	}
}

// RadioSource is an identifiable transmitter referenced by readings.
// Two readings measure the same source iff their identifiers are equal;
// matching never compares sources by anything else.
type RadioSource interface {
	// Identifier returns the stable identity of the transmitter
	// (BSSID for Wi-Fi, MAC address for Bluetooth).
	Identifier() string

	// Kind returns the radio technology of the source.
	Kind() SourceKind
}

// WiFiAccessPoint is a Wi-Fi radio source identified by its BSSID.
type WiFiAccessPoint struct {
	// BSSID is the access point's basic service set identifier.
	BSSID string

	// SSID is the human-readable network name. Optional.
	SSID string

	// FrequencyMHz is the channel center frequency. Optional (0 = unknown).
	FrequencyMHz float64
}

// Identifier implements RadioSource.
func (ap WiFiAccessPoint) Identifier() string { return ap.BSSID }

// Kind implements RadioSource.
func (ap WiFiAccessPoint) Kind() SourceKind { return SourceKindWiFi }

// BluetoothBeacon is a Bluetooth radio source identified by its MAC address.
type BluetoothBeacon struct {
	// MAC is the beacon's hardware address.
	MAC string

	// Name is the advertised device name. Optional.
	Name string
}

// Identifier implements RadioSource.
func (b BluetoothBeacon) Identifier() string { return b.MAC }

// Kind implements RadioSource.
func (b BluetoothBeacon) Kind() SourceKind { return SourceKindBluetooth }

// Reading associates a radio source with a measured signal value, typically
// received signal strength in dBm. Immutable once constructed.
type Reading struct {
	source RadioSource
	value  float64
}

// NewReading creates a Reading for the given source and signal value.
func NewReading(source RadioSource, value float64) (Reading, error) {
	if source == nil {
		return Reading{}, ErrNilSource
	}
	return Reading{source: source, value: value}, nil
}

// MustReading is NewReading, panicking on error.
// Use this only in tests or with compile-time-known sources.
func MustReading(source RadioSource, value float64) Reading {
	r, err := NewReading(source, value)
	if err != nil {
		panic(err)
	}
	return r
}

// Source returns the radio source the value was measured from.
func (r Reading) Source() RadioSource { return r.source }

// Value returns the measured signal value.
func (r Reading) Value() float64 { return r.value }

// Fingerprint is an ordered collection of readings collected at one point,
// with no location attached. A source may appear more than once; duplicate
// readings are tolerated and compared independently during matching.
type Fingerprint struct {
	readings []Reading
}

// NewFingerprint creates a Fingerprint from the given readings.
// The readings are copied. Empty fingerprints are allowed.
func NewFingerprint(readings ...Reading) *Fingerprint {
	fp := &Fingerprint{readings: make([]Reading, len(readings))}
	copy(fp.readings, readings)
	return fp
}

// Readings returns the readings in insertion order.
// The returned slice aliases internal memory; callers must treat it as
// read-only.
func (fp *Fingerprint) Readings() []Reading {
	if fp == nil {
		return nil
	}
	return fp.readings
}

// Len returns the number of readings.
func (fp *Fingerprint) Len() int {
	if fp == nil {
		return 0
	}
	return len(fp.readings)
}
