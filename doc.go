// Package lvcluster is a small numeric toolkit for exploratory data analysis:
// partition a dataset around real data points, and read structure out of
// gridded 2-D vector fields.
//
// 🚀 What is inside?
//
//	kmedoids/       k-medoids clustering with L1 distance, deterministic tie
//	                breaks and seeded random initialisation
//	vectorfield/    gradient, divergence, vorticity, missing-value fill and
//	                HSV colour coding of wind-like fields
//	report/         cost formatting, per-cluster statistics and CSV export
//	cmd/lvcluster/  command-line host for both
//
// ✨ Principles:
//
//   - Deterministic: same input and seed ⇒ same output, bit for bit
//   - No hidden state: every run owns its inputs and returns its result
//   - Sentinel errors: match failures with errors.Is
//
// Quick example:
//
//	ds, _ := kmedoids.NewDataset(points)
//	res, _ := kmedoids.Cluster(ds, kmedoids.DefaultOptions())
//	fmt.Println(report.CostLine(res.Cost))
//
//	go get github.com/katalvlaran/lvcluster
package lvcluster
