// Package kmedoids partitions a numeric dataset into K clusters whose centres
// are real data points (medoids) rather than synthetic means.
//
// 🚀 What is k-medoids?
//
//	Each cluster is represented by one of the dataset's own points. A point
//	belongs to the cluster of its nearest medoid, and the quality of a
//	medoid set is the total L1 (Manhattan) distance of all points to their
//	assigned medoid. The procedure swaps medoids while that total strictly
//	decreases.
//
// ✨ Building blocks:
//   - Distance / Cost: L1 distance and total assignment cost of a medoid set.
//   - Assign: nearest-medoid partition; exact ties go to the lowest label.
//   - BestReplacement: best member of one cluster to replace its medoid,
//     holding the other medoids fixed; first minimal member wins.
//   - Cluster: the convergence driver.
//
// ⚙️ Iteration policy:
//
//	Within one iteration every cluster is searched independently against the
//	medoid set as it was at the start of the iteration. Only the single most
//	improving candidate is applied, so at most one medoid changes per
//	iteration. This is not a joint PAM swap and gives different output on
//	some inputs.
//
// ⚙️ Usage:
//
//	ds, err := kmedoids.NewDataset(points)
//	if err != nil {
//		// ErrEmptyDataset, ErrDimensionMismatch, ErrNonFinite
//	}
//	opts := kmedoids.DefaultOptions()
//	opts.Random = true
//	opts.Seed = 42
//	res, err := kmedoids.Cluster(ds, opts)
//	fmt.Printf("The final cost is: %.2f\n", res.Cost)
//
// Termination:
//
//	Accepted costs strictly decrease and a finite dataset admits finitely
//	many medoid sets, so Cluster always reaches convergence.
//
// Complexity:
//   - Cost:   O(N·K·D)
//   - Assign: O(N·K·D)
//   - One iteration: O(N²·K·D) in the worst case (every member re-evaluates the full cost).
package kmedoids
