package radiogo_test

import (
	"fmt"

	"github.com/hupe1980/radiogo"
	"github.com/hupe1980/radiogo/model"
)

func Example() {
	ap := model.WiFiAccessPoint{BSSID: "aa:bb:cc:dd:ee:01", SSID: "office"}

	library := []*model.LocatedFingerprint{
		mustLocated(model.NewFingerprint(model.MustReading(ap, -50)), model.NewPosition2D(0, 0)),
		mustLocated(model.NewFingerprint(model.MustReading(ap, -70)), model.NewPosition2D(10, 0)),
		mustLocated(model.NewFingerprint(model.MustReading(ap, -60)), model.NewPosition2D(0, 10)),
	}

	matcher, _ := radiogo.New(library)

	query := model.NewFingerprint(model.MustReading(ap, -51))

	nearest, _ := matcher.FindNearest(query)
	fmt.Println(nearest.Position())

	neighbors, dists, _ := matcher.FindKNearestWithDistances(query, 2)
	for i, n := range neighbors {
		fmt.Println(n.Position(), dists[i])
	}
	// Output:
	// (0, 0)
	// (0, 0) 1
	// (0, 10) 81
}

func ExampleFindNearest() {
	ap := model.WiFiAccessPoint{BSSID: "aa:bb:cc:dd:ee:01"}

	// Callers holding a transient library can skip the Matcher entirely.
	library := []*model.LocatedFingerprint{
		mustLocated(model.NewFingerprint(model.MustReading(ap, -48)), model.NewPosition3D(0, 0, 1.5)),
		mustLocated(model.NewFingerprint(model.MustReading(ap, -66)), model.NewPosition3D(5, 5, 1.5)),
	}

	query := model.NewFingerprint(model.MustReading(ap, -65))

	nearest, _ := radiogo.FindNearest(query, library)
	fmt.Println(nearest.Position())
	// Output:
	// (5, 5, 1.5)
}
