// Package kmedoids - Assignment Step.
package kmedoids

// Assign labels every point of ds with the slot of its nearest medoid.
//
// On an exact distance tie the medoid that appears first in medoids wins.
// A cluster that attracts no point is valid and simply stays empty.
//
// Errors: ErrNoMedoids, ErrDimensionMismatch (see Cost).
//
// Complexity: O(N·K·D) time, O(N) space.
func Assign(ds *Dataset, medoids [][]float64) (Assignment, error) {
	if err := checkMedoids(ds, medoids); err != nil {
		return nil, err
	}

	return assign(ds, medoids), nil
}

// assign is Assign without validation.
func assign(ds *Dataset, medoids [][]float64) Assignment {
	var (
		n   = ds.Len()
		out = make(Assignment, n)
		i   int
	)
	for i = 0; i < n; i++ {
		out[i], _ = nearest(ds.Point(i), medoids)
	}

	return out
}
