package signal

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hupe1980/radiogo/model"
)

var (
	ap1 = model.WiFiAccessPoint{BSSID: "aa:bb:cc:dd:ee:01"}
	ap2 = model.WiFiAccessPoint{BSSID: "aa:bb:cc:dd:ee:02"}
	ap3 = model.WiFiAccessPoint{BSSID: "aa:bb:cc:dd:ee:03"}
	bt1 = model.BluetoothBeacon{MAC: "c0:ff:ee:00:00:01"}
)

func fp(readings ...model.Reading) *model.Fingerprint {
	return model.NewFingerprint(readings...)
}

func r(src model.RadioSource, v float64) model.Reading {
	return model.MustReading(src, v)
}

func TestDistance(t *testing.T) {
	tests := []struct {
		name     string
		a, b     *model.Fingerprint
		expected float64
	}{
		{"SingleSharedSource", fp(r(ap1, -51)), fp(r(ap1, -50)), 1},
		{"SingleSharedSourceFar", fp(r(ap1, -51)), fp(r(ap1, -70)), 361},
		{"Identical", fp(r(ap1, -50), r(ap2, -60)), fp(r(ap1, -50), r(ap2, -60)), 0},
		{"Disjoint", fp(r(ap1, -50)), fp(r(ap2, -50)), 0},
		{"PartialOverlap", fp(r(ap1, -50), r(ap2, -60)), fp(r(ap1, -53), r(ap3, -70)), 9},
		{"MultipleSharedSources", fp(r(ap1, -50), r(ap2, -60)), fp(r(ap1, -52), r(ap2, -63)), 13},
		{"MixedKinds", fp(r(ap1, -50), r(bt1, -80)), fp(r(ap1, -50), r(bt1, -84)), 16},
		{"DuplicateInOne", fp(r(ap1, -50), r(ap1, -52)), fp(r(ap1, -51)), 2},
		{"DuplicateInBoth", fp(r(ap1, -50), r(ap1, -52)), fp(r(ap1, -51), r(ap1, -53)), 12},
		{"EmptyQuery", fp(), fp(r(ap1, -50)), 0},
		{"EmptyBoth", fp(), fp(), 0},
		{"NilFingerprints", nil, nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, Distance(tt.a, tt.b), 1e-9)
		})
	}

	t.Run("Symmetry", func(t *testing.T) {
		for _, tt := range tests {
			assert.Equal(t, Distance(tt.a, tt.b), Distance(tt.b, tt.a), tt.name)
		}
	})

	t.Run("NonNegative", func(t *testing.T) {
		for _, tt := range tests {
			assert.GreaterOrEqual(t, Distance(tt.a, tt.b), 0.0, tt.name)
		}
	})
}
