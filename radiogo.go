package radiogo

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/radiogo/internal/queue"
	"github.com/hupe1980/radiogo/model"
	"github.com/hupe1980/radiogo/signal"
)

// Matcher ranks a library of located fingerprints by signal similarity to a
// query fingerprint. Only signal readings are compared, never positions.
//
// A Matcher is stateless beyond the bound library reference; all operations
// are pure reads. It is safe for concurrent use as long as the caller does
// not mutate the library during a call.
type Matcher struct {
	library []*model.LocatedFingerprint
	opts    options
}

// New creates a Matcher bound to the given library.
//
// The library is neither copied nor mutated; the caller retains ownership.
// A nil library or a library containing nil entries is rejected. An empty
// library is allowed at construction and rejected per call.
func New(library []*model.LocatedFingerprint, optFns ...Option) (*Matcher, error) {
	if err := validateLibrary(library); err != nil {
		return nil, err
	}
	return &Matcher{
		library: library,
		opts:    applyOptions(optFns),
	}, nil
}

// Len returns the number of fingerprints in the bound library.
func (m *Matcher) Len() int { return len(m.library) }

// FindNearest returns the library entry with minimum signal distance to
// query. Among entries tied at the minimum, the one appearing earliest in
// the library wins.
func (m *Matcher) FindNearest(query *model.Fingerprint) (*model.LocatedFingerprint, error) {
	start := time.Now()

	result, err := findNearest(query, m.library)

	m.opts.metricsCollector.RecordMatch(1, time.Since(start), err)
	m.opts.logger.LogMatch(1, len(m.library), err)

	return result, err
}

// FindKNearest returns the k library entries closest to query, ascending by
// signal distance. Ties are broken by library order: the entry appearing
// earlier in the library wins the earlier rank. k must be in [1, Len()].
func (m *Matcher) FindKNearest(query *model.Fingerprint, k int) ([]*model.LocatedFingerprint, error) {
	results, _, err := m.FindKNearestWithDistances(query, k)
	return results, err
}

// FindKNearestWithDistances is FindKNearest returning additionally the
// parallel slice of signal distances, one per returned fingerprint in the
// same order.
func (m *Matcher) FindKNearestWithDistances(query *model.Fingerprint, k int) ([]*model.LocatedFingerprint, []float64, error) {
	start := time.Now()

	results, distances, err := findKNearest(query, m.library, k)

	m.opts.metricsCollector.RecordMatch(k, time.Since(start), err)
	m.opts.logger.LogMatch(k, len(m.library), err)

	return results, distances, err
}

// FindKNearestInto is FindKNearestWithDistances writing into caller-supplied
// output slices instead of allocating new ones. Both outputs must be
// non-nil pointers; previous contents are discarded, capacity is reused.
func (m *Matcher) FindKNearestInto(query *model.Fingerprint, k int, results *[]*model.LocatedFingerprint, distances *[]float64) error {
	start := time.Now()

	err := findKNearestInto(query, m.library, k, results, distances)

	m.opts.metricsCollector.RecordMatch(k, time.Since(start), err)
	m.opts.logger.LogMatch(k, len(m.library), err)

	return err
}

// FindKNearestBatch matches many queries against the bound library
// concurrently and returns one result slice per query, in query order.
// Concurrency is bounded by WithMaxConcurrency.
//
// All arguments are validated before any distance computation; on error no
// partial results are returned.
func (m *Matcher) FindKNearestBatch(ctx context.Context, queries []*model.Fingerprint, k int) ([][]*model.LocatedFingerprint, error) {
	start := time.Now()

	results, err := m.findKNearestBatch(ctx, queries, k)

	failed := 0
	if err != nil {
		failed = len(queries)
	}
	m.opts.metricsCollector.RecordBatchMatch(len(queries), failed, time.Since(start))
	m.opts.logger.LogBatchMatch(len(queries), k, err)

	return results, err
}

func (m *Matcher) findKNearestBatch(ctx context.Context, queries []*model.Fingerprint, k int) ([][]*model.LocatedFingerprint, error) {
	if queries == nil {
		return nil, ErrNilQuery
	}
	for _, q := range queries {
		if q == nil {
			return nil, ErrNilQuery
		}
	}
	if k <= 0 || k > len(m.library) {
		return nil, &ErrInvalidK{K: k, LibrarySize: len(m.library)}
	}

	results := make([][]*model.LocatedFingerprint, len(queries))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(m.opts.maxConcurrency)

	for i, q := range queries {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			matches, _, err := findKNearest(q, m.library, k)
			if err != nil {
				return err
			}
			results[i] = matches
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

// FindNearest returns the entry of library with minimum signal distance to
// query. It is the free-function equivalent of Matcher.FindNearest for
// callers holding a transient library; behavior is identical.
func FindNearest(query *model.Fingerprint, library []*model.LocatedFingerprint) (*model.LocatedFingerprint, error) {
	return findNearest(query, library)
}

// FindKNearest is the free-function equivalent of Matcher.FindKNearest.
func FindKNearest(query *model.Fingerprint, library []*model.LocatedFingerprint, k int) ([]*model.LocatedFingerprint, error) {
	results, _, err := findKNearest(query, library, k)
	return results, err
}

// FindKNearestWithDistances is the free-function equivalent of
// Matcher.FindKNearestWithDistances.
func FindKNearestWithDistances(query *model.Fingerprint, library []*model.LocatedFingerprint, k int) ([]*model.LocatedFingerprint, []float64, error) {
	return findKNearest(query, library, k)
}

// FindKNearestInto is the free-function equivalent of
// Matcher.FindKNearestInto.
func FindKNearestInto(query *model.Fingerprint, library []*model.LocatedFingerprint, k int, results *[]*model.LocatedFingerprint, distances *[]float64) error {
	return findKNearestInto(query, library, k, results, distances)
}

func validateLibrary(library []*model.LocatedFingerprint) error {
	if library == nil {
		return ErrNilLibrary
	}
	for _, lf := range library {
		if lf == nil {
			return ErrNilLibraryEntry
		}
	}
	return nil
}

// findNearest is the single shared top-1 core for the instance and
// free-function call styles: a running-minimum linear scan. The strict "<"
// keeps the earliest entry among ties.
func findNearest(query *model.Fingerprint, library []*model.LocatedFingerprint) (*model.LocatedFingerprint, error) {
	if query == nil {
		return nil, ErrNilQuery
	}
	if err := validateLibrary(library); err != nil {
		return nil, err
	}
	if len(library) == 0 {
		return nil, ErrEmptyLibrary
	}

	best := library[0]
	bestDist := signal.Distance(query, best.Fingerprint())

	for _, lf := range library[1:] {
		if d := signal.Distance(query, lf.Fingerprint()); d < bestDist {
			best, bestDist = lf, d
		}
	}

	return best, nil
}

func findKNearest(query *model.Fingerprint, library []*model.LocatedFingerprint, k int) ([]*model.LocatedFingerprint, []float64, error) {
	var (
		results   []*model.LocatedFingerprint
		distances []float64
	)
	if err := findKNearestInto(query, library, k, &results, &distances); err != nil {
		return nil, nil, err
	}
	return results, distances, nil
}

// findKNearestInto is the single shared top-K core. Selection uses a bounded
// max-heap ordered by (distance, library index), which yields exactly the
// output of a full stable ascending sort truncated to k.
func findKNearestInto(query *model.Fingerprint, library []*model.LocatedFingerprint, k int, results *[]*model.LocatedFingerprint, distances *[]float64) error {
	if query == nil {
		return ErrNilQuery
	}
	if results == nil || distances == nil {
		return ErrNilOutput
	}
	if err := validateLibrary(library); err != nil {
		return err
	}
	if k <= 0 || k > len(library) {
		return &ErrInvalidK{K: k, LibrarySize: len(library)}
	}

	*results = (*results)[:0]
	*distances = (*distances)[:0]

	top := queue.NewMax(k)
	for i, lf := range library {
		item := queue.Item{Index: i, Distance: signal.Distance(query, lf.Fingerprint())}

		if top.Len() < k {
			top.Push(item)
			continue
		}

		// On equal distance the later index loses, keeping library order.
		if worst, _ := top.Top(); queue.Less(item, worst) {
			top.Pop()
			top.Push(item)
		}
	}

	// Drain worst-first, filling the output back to front.
	*results = append(*results, make([]*model.LocatedFingerprint, k)...)
	*distances = append(*distances, make([]float64, k)...)
	for i := k - 1; i >= 0; i-- {
		item, _ := top.Pop()
		(*results)[i] = library[item.Index]
		(*distances)[i] = item.Distance
	}

	return nil
}
