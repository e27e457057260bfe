package model

import (
	"errors"
	"fmt"
)

// ErrInvalidPosition is returned when a located fingerprint is constructed
// with a position that was not built by one of the Position constructors.
var ErrInvalidPosition = errors.New("position must be a valid 2D or 3D coordinate")

// ErrInvalidDimensions indicates a coordinate count other than 2 or 3.
type ErrInvalidDimensions struct {
	Dimensions int
}

func (e *ErrInvalidDimensions) Error() string {
	return fmt.Sprintf("invalid position dimensions: %d (want 2 or 3)", e.Dimensions)
}

// ErrCovarianceMismatch indicates a covariance matrix whose size does not
// match the position's dimensionality.
type ErrCovarianceMismatch struct {
	Expected int // position dimensionality
	Rows     int
	Cols     int // length of the first row that differs from Expected
}

func (e *ErrCovarianceMismatch) Error() string {
	return fmt.Sprintf("covariance size mismatch: want %dx%d for a %dD position, got %dx%d",
		e.Expected, e.Expected, e.Expected, e.Rows, e.Cols)
}

// Position is a 2D or 3D coordinate. Immutable once constructed.
// The zero value is invalid; use NewPosition, NewPosition2D or NewPosition3D.
type Position struct {
	coords [3]float64
	dims   int
}

// NewPosition creates a Position from 2 or 3 coordinates.
func NewPosition(coords ...float64) (Position, error) {
	if len(coords) != 2 && len(coords) != 3 {
		return Position{}, &ErrInvalidDimensions{Dimensions: len(coords)}
	}
	var p Position
	copy(p.coords[:], coords)
	p.dims = len(coords)
	return p, nil
}

// NewPosition2D creates a 2D Position.
func NewPosition2D(x, y float64) Position {
	return Position{coords: [3]float64{x, y, 0}, dims: 2}
}

// NewPosition3D creates a 3D Position.
func NewPosition3D(x, y, z float64) Position {
	return Position{coords: [3]float64{x, y, z}, dims: 3}
}

// Valid reports whether the position was built by a constructor.
func (p Position) Valid() bool { return p.dims == 2 || p.dims == 3 }

// Dimensions returns 2 or 3, or 0 for the invalid zero value.
func (p Position) Dimensions() int { return p.dims }

// Coordinates returns a copy of the coordinates.
func (p Position) Coordinates() []float64 {
	out := make([]float64, p.dims)
	copy(out, p.coords[:p.dims])
	return out
}

// X returns the first coordinate.
func (p Position) X() float64 { return p.coords[0] }

// Y returns the second coordinate.
func (p Position) Y() float64 { return p.coords[1] }

// Z returns the third coordinate, or 0 for a 2D position.
func (p Position) Z() float64 { return p.coords[2] }

// String returns a string representation of the Position.
func (p Position) String() string {
	switch p.dims {
	case 2:
		return fmt.Sprintf("(%g, %g)", p.coords[0], p.coords[1])
	case 3:
		return fmt.Sprintf("(%g, %g, %g)", p.coords[0], p.coords[1], p.coords[2])
	default:
		return "(invalid)"
	}
}

// LocatedOptions contains optional fields for NewLocatedFingerprint.
type LocatedOptions struct {
	// Covariance is the position-uncertainty covariance. If set, it must be
	// a square matrix whose dimension equals the position's (2x2 for 2D,
	// 3x3 for 3D).
	Covariance [][]float64
}

// WithCovariance sets the position-uncertainty covariance.
func WithCovariance(cov [][]float64) func(*LocatedOptions) {
	return func(o *LocatedOptions) {
		o.Covariance = cov
	}
}

// LocatedFingerprint is a fingerprint tagged with a known position and an
// optional position-uncertainty covariance. It represents one reference
// point in a fingerprint library. Immutable once constructed.
type LocatedFingerprint struct {
	fp  *Fingerprint
	pos Position
	cov [][]float64
}

// NewLocatedFingerprint creates a LocatedFingerprint for the given
// fingerprint and position. A nil fingerprint is normalized to an empty one.
// The covariance, if supplied, is validated against the position's
// dimensionality and deep-copied.
func NewLocatedFingerprint(fp *Fingerprint, pos Position, optFns ...func(*LocatedOptions)) (*LocatedFingerprint, error) {
	var opts LocatedOptions
	for _, fn := range optFns {
		if fn != nil {
			fn(&opts)
		}
	}

	if !pos.Valid() {
		return nil, ErrInvalidPosition
	}
	if fp == nil {
		fp = NewFingerprint()
	}

	var cov [][]float64
	if opts.Covariance != nil {
		if err := validateCovariance(opts.Covariance, pos.Dimensions()); err != nil {
			return nil, err
		}
		cov = cloneMatrix(opts.Covariance)
	}

	return &LocatedFingerprint{fp: fp, pos: pos, cov: cov}, nil
}

// Fingerprint returns the signal readings recorded at the position.
func (lf *LocatedFingerprint) Fingerprint() *Fingerprint { return lf.fp }

// Position returns the known position of the fingerprint.
func (lf *LocatedFingerprint) Position() Position { return lf.pos }

// HasCovariance reports whether a covariance was set at construction.
func (lf *LocatedFingerprint) HasCovariance() bool { return lf.cov != nil }

// Covariance returns a copy of the position-uncertainty covariance,
// or nil if none was set.
func (lf *LocatedFingerprint) Covariance() [][]float64 {
	if lf.cov == nil {
		return nil
	}
	return cloneMatrix(lf.cov)
}

func validateCovariance(cov [][]float64, dims int) error {
	if len(cov) != dims {
		cols := 0
		if len(cov) > 0 {
			cols = len(cov[0])
		}
		return &ErrCovarianceMismatch{Expected: dims, Rows: len(cov), Cols: cols}
	}
	for _, row := range cov {
		if len(row) != dims {
			return &ErrCovarianceMismatch{Expected: dims, Rows: len(cov), Cols: len(row)}
		}
	}
	return nil
}

func cloneMatrix(m [][]float64) [][]float64 {
	out := make([][]float64, len(m))
	for i, row := range m {
		out[i] = make([]float64, len(row))
		copy(out[i], row)
	}
	return out
}
