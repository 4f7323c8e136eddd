// Package kmedoids - domain types: dataset, medoid set, assignment, result.
package kmedoids

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Dataset is an immutable N×D collection of points.
//
// Points are stored row-major in a gonum dense matrix; the row index is the
// stable identity of a point and is what a MedoidSet refers to. A Dataset is
// never mutated after NewDataset returns, so it may be shared by concurrent
// Cluster calls.
type Dataset struct {
	m *mat.Dense // N rows, D columns
}

// NewDataset copies points into a new Dataset.
//
// Contract:
//   - len(points) ≥ 1, otherwise ErrEmptyDataset.
//   - every point has the same dimensionality D ≥ 1, otherwise ErrDimensionMismatch.
//   - every coordinate is finite, otherwise ErrNonFinite.
//
// Complexity: O(N·D) time and space.
func NewDataset(points [][]float64) (*Dataset, error) {
	var n = len(points)
	if n == 0 {
		return nil, ErrEmptyDataset
	}
	var d = len(points[0])
	if d == 0 {
		return nil, fmt.Errorf("point 0 has no coordinates: %w", ErrDimensionMismatch)
	}

	var (
		data = make([]float64, 0, n*d)
		i, j int
		v    float64
	)
	for i = 0; i < n; i++ {
		if len(points[i]) != d {
			return nil, fmt.Errorf("point %d has %d coordinates, want %d: %w", i, len(points[i]), d, ErrDimensionMismatch)
		}
		for j, v = range points[i] {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("point %d coordinate %d: %w", i, j, ErrNonFinite)
			}
		}
		data = append(data, points[i]...)
	}

	return &Dataset{m: mat.NewDense(n, d, data)}, nil
}

// Len returns N, the number of points.
func (ds *Dataset) Len() int {
	r, _ := ds.m.Dims()
	return r
}

// Dim returns D, the dimensionality shared by all points.
func (ds *Dataset) Dim() int {
	_, c := ds.m.Dims()
	return c
}

// Point returns point i as a view into the dataset's storage.
// The slice must not be modified. i must lie in [0, Len()).
func (ds *Dataset) Point(i int) []float64 {
	return ds.m.RawRowView(i)
}

// Points resolves indices into point views, in the given order.
// Returns ErrMedoidOutOfRange if any index is outside [0, Len()).
func (ds *Dataset) Points(indices []int) ([][]float64, error) {
	var (
		n   = ds.Len()
		out = make([][]float64, len(indices))
	)
	for slot, idx := range indices {
		if idx < 0 || idx >= n {
			return nil, fmt.Errorf("index %d (slot %d, N=%d): %w", idx, slot, n, ErrMedoidOutOfRange)
		}
		out[slot] = ds.Point(idx)
	}

	return out, nil
}

// MedoidSet holds the dataset indices of the current medoids.
// Position in the slice is the cluster label; labels never reorder.
type MedoidSet []int

// Clone returns an independent copy of ms.
func (ms MedoidSet) Clone() MedoidSet {
	return append(MedoidSet(nil), ms...)
}

// with returns a copy of ms whose medoid at slot is replaced by idx.
func (ms MedoidSet) with(slot, idx int) MedoidSet {
	next := ms.Clone()
	next[slot] = idx
	return next
}

// Assignment maps each point index to a cluster label in [0, K).
type Assignment []int

// Clusters groups point indices by label. The result always has k groups;
// a group may be empty. Members are listed in ascending index order.
//
// Complexity: O(N).
func (a Assignment) Clusters(k int) [][]int {
	out := make([][]int, k)
	for i, label := range a {
		if label >= 0 && label < k {
			out[label] = append(out[label], i)
		}
	}

	return out
}

// Candidate is the outcome of one per-cluster medoid search.
type Candidate struct {
	// Slot is the cluster label whose medoid would be replaced.
	Slot int

	// Index is the dataset index of the proposed medoid. It equals the
	// current medoid when no member improves the cost.
	Index int

	// Cost is the total dataset cost with Index substituted at Slot.
	Cost float64
}

// Result holds the outcome of Cluster.
type Result struct {
	// Medoids is the final medoid set; Medoids[label] is that cluster's medoid.
	Medoids MedoidSet

	// Assignment holds one label per point, computed from Medoids.
	Assignment Assignment

	// Cost is the total L1 distance of all points to their assigned medoid.
	Cost float64

	// Iterations counts accepted medoid swaps.
	Iterations int

	// Trace lists the cost after initialisation followed by the cost after
	// each accepted swap; it is strictly decreasing and ends with Cost.
	Trace []float64
}

// K returns the number of clusters.
func (r Result) K() int { return len(r.Medoids) }

// Clusters returns the member lists of every cluster.
func (r Result) Clusters() [][]int { return r.Assignment.Clusters(len(r.Medoids)) }

// Labels maps every point to palette[label], e.g. a colour name per cluster.
// Returns ErrPaletteTooSmall if the palette cannot cover all K labels.
func (r Result) Labels(palette []string) ([]string, error) {
	if len(palette) < len(r.Medoids) {
		return nil, fmt.Errorf("palette has %d entries, K=%d: %w", len(palette), len(r.Medoids), ErrPaletteTooSmall)
	}
	out := make([]string, len(r.Assignment))
	for i, label := range r.Assignment {
		out[i] = palette[label]
	}

	return out, nil
}
