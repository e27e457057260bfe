package radiogo_test

import (
	"math/rand"
	"testing"

	"github.com/hupe1980/radiogo"
	"github.com/hupe1980/radiogo/model"
	"github.com/hupe1980/radiogo/testutil"
)

func BenchmarkFindNearest(b *testing.B) {
	rng := rand.New(rand.NewSource(1))
	sources := testutil.AccessPoints(8)
	library := testutil.SurveyGrid(rng, 32, 2, sources) // 1024 fingerprints
	m, _ := radiogo.New(library)
	query := testutil.RandomQuery(rng, 32, 2, sources)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := m.FindNearest(query); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkFindKNearest(b *testing.B) {
	rng := rand.New(rand.NewSource(1))
	sources := testutil.AccessPoints(8)
	library := testutil.SurveyGrid(rng, 32, 2, sources)
	m, _ := radiogo.New(library)
	query := testutil.RandomQuery(rng, 32, 2, sources)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := m.FindKNearest(query, 10); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkFindKNearestInto(b *testing.B) {
	rng := rand.New(rand.NewSource(1))
	sources := testutil.AccessPoints(8)
	library := testutil.SurveyGrid(rng, 32, 2, sources)
	m, _ := radiogo.New(library)
	query := testutil.RandomQuery(rng, 32, 2, sources)

	results := make([]*model.LocatedFingerprint, 0, 10)
	dists := make([]float64, 0, 10)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := m.FindKNearestInto(query, 10, &results, &dists); err != nil {
			b.Fatal(err)
		}
	}
}
