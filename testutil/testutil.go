package testutil

import (
	"fmt"
	"math"
	"math/rand"
	"sort"

	"github.com/hupe1980/radiogo/model"
	"github.com/hupe1980/radiogo/signal"
)

// AccessPoints returns n Wi-Fi access points with deterministic BSSIDs.
func AccessPoints(n int) []model.RadioSource {
	sources := make([]model.RadioSource, n)
	for i := range sources {
		sources[i] = model.WiFiAccessPoint{
			BSSID: fmt.Sprintf("00:11:22:33:44:%02x", i),
			SSID:  fmt.Sprintf("survey-%d", i),
		}
	}
	return sources
}

// Beacons returns n Bluetooth beacons with deterministic MAC addresses.
func Beacons(n int) []model.RadioSource {
	sources := make([]model.RadioSource, n)
	for i := range sources {
		sources[i] = model.BluetoothBeacon{
			MAC: fmt.Sprintf("c0:ff:ee:00:00:%02x", i),
		}
	}
	return sources
}

// SurveyGrid builds a located-fingerprint library on a side x side grid with
// the given spacing in meters. RSSI values follow a log-distance path-loss
// model from the sources, which are placed pseudo-randomly within the grid
// extent, with Gaussian noise drawn from rng.
func SurveyGrid(rng *rand.Rand, side int, spacing float64, sources []model.RadioSource) []*model.LocatedFingerprint {
	type point struct{ x, y float64 }

	extent := float64(side-1) * spacing
	placed := make([]point, len(sources))
	for i := range placed {
		placed[i] = point{x: rng.Float64() * extent, y: rng.Float64() * extent}
	}

	library := make([]*model.LocatedFingerprint, 0, side*side)
	for gy := 0; gy < side; gy++ {
		for gx := 0; gx < side; gx++ {
			x, y := float64(gx)*spacing, float64(gy)*spacing

			readings := make([]model.Reading, 0, len(sources))
			for i, src := range sources {
				rssi := rssiAt(placed[i].x, placed[i].y, x, y) + rng.NormFloat64()
				readings = append(readings, model.MustReading(src, rssi))
			}

			lf, err := model.NewLocatedFingerprint(model.NewFingerprint(readings...), model.NewPosition2D(x, y))
			if err != nil {
				panic(err)
			}
			library = append(library, lf)
		}
	}
	return library
}

// RandomQuery builds an unlocated fingerprint at a random point within the
// same extent and path-loss model as SurveyGrid.
func RandomQuery(rng *rand.Rand, side int, spacing float64, sources []model.RadioSource) *model.Fingerprint {
	// Sources are re-placed here, so queries are only statistically related
	// to a SurveyGrid library. Good enough for ranking-property tests.
	extent := float64(side-1) * spacing
	x, y := rng.Float64()*extent, rng.Float64()*extent

	readings := make([]model.Reading, 0, len(sources))
	for _, src := range sources {
		rssi := rssiAt(rng.Float64()*extent, rng.Float64()*extent, x, y) + rng.NormFloat64()
		readings = append(readings, model.MustReading(src, rssi))
	}
	return model.NewFingerprint(readings...)
}

// rssiAt models log-distance path loss: -40 dBm at 1 m, exponent 2.5.
func rssiAt(sx, sy, x, y float64) float64 {
	d := math.Hypot(sx-x, sy-y)
	if d < 1 {
		d = 1
	}
	return -40 - 25*math.Log10(d)
}

// KNearestByScan is a plain reference implementation used to cross-check the
// matcher: compute every distance, stable-sort ascending, truncate to k.
func KNearestByScan(query *model.Fingerprint, library []*model.LocatedFingerprint, k int) ([]*model.LocatedFingerprint, []float64) {
	type candidate struct {
		lf *model.LocatedFingerprint
		d  float64
	}

	candidates := make([]candidate, len(library))
	for i, lf := range library {
		candidates[i] = candidate{lf: lf, d: signal.Distance(query, lf.Fingerprint())}
	}

	sort.SliceStable(candidates, func(i, j int) bool { return candidates[i].d < candidates[j].d })

	if k > len(candidates) {
		k = len(candidates)
	}

	results := make([]*model.LocatedFingerprint, k)
	distances := make([]float64, k)
	for i := 0; i < k; i++ {
		results[i] = candidates[i].lf
		distances[i] = candidates[i].d
	}
	return results, distances
}
