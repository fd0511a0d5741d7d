// Package koppen finds the Köppen climate class of the reference point nearest
// to a coordinate.
package koppen

import (
	"math"

	"github.com/spf13/afero"
)

// DefaultMaxDistance is the search radius in kilometers used when none is given.
const DefaultMaxDistance = 100.0

// NearestPoint is a reference point together with its distance from the query.
type NearestPoint struct {
	ReferencePoint
	Distance float64 `json:"distance"` // kilometers
}

// Lookup answers nearest-classification queries against an immutable dataset.
// It is safe for concurrent use.
type Lookup struct {
	points []ReferencePoint
}

// NewLookup creates a lookup over a copy of points. Order is kept and decides
// which point wins when two are exactly the same distance away.
func NewLookup(points []ReferencePoint) *Lookup {
	cp := make([]ReferencePoint, len(points))
	copy(cp, points)
	return &Lookup{points: cp}
}

// Open loads the dataset at path from fs and returns a lookup over it.
func Open(fs afero.Fs, path string) (*Lookup, error) {
	points, err := LoadFile(fs, path)
	if err != nil {
		return nil, err
	}
	return NewLookup(points), nil
}

// Len returns the number of reference points.
func (l *Lookup) Len() int {
	return len(l.points)
}

// FindNearestDefault is FindNearest with DefaultMaxDistance.
func (l *Lookup) FindNearestDefault(latitude, longitude float64) (*NearestPoint, error) {
	return l.FindNearest(latitude, longitude, DefaultMaxDistance)
}

// FindNearest returns the reference point closest to (latitude, longitude) that
// lies within maxDistance kilometers, or nil if there is none.
// Invalid arguments are reported as *InvalidArgumentError before any search.
func (l *Lookup) FindNearest(latitude, longitude, maxDistance float64) (*NearestPoint, error) {
	if err := validateQuery(latitude, longitude, maxDistance); err != nil {
		return nil, err
	}

	var nearest *NearestPoint
	minDistance := math.Inf(1)

	for i := range l.points {
		p := &l.points[i]
		d := Distance(latitude, longitude, p.Latitude, p.Longitude)

		// strict less-than keeps the earliest point on ties
		if d < minDistance && d <= maxDistance {
			minDistance = d
			nearest = &NearestPoint{ReferencePoint: *p, Distance: d}
		}
	}

	return nearest, nil
}

func validateQuery(latitude, longitude, maxDistance float64) error {
	if !isFinite(latitude) || !isFinite(longitude) {
		return invalidArgument(ErrCoordinatesNotNumbers)
	}
	if latitude < -90 || latitude > 90 {
		return invalidArgument(ErrInvalidLatitude)
	}
	if longitude < -180 || longitude > 180 {
		return invalidArgument(ErrInvalidLongitude)
	}
	// !(x > 0) also rejects NaN
	if !(maxDistance > 0) {
		return invalidArgument(ErrInvalidMaxDistance)
	}
	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
