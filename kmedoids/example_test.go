package kmedoids_test

import (
	"fmt"

	"github.com/katalvlaran/lvcluster/kmedoids"
)

// ExampleCluster clusters two well-separated triangles with fixed medoids.
//
// Scenario:
//
//	(0,0) (0,1) (1,0)      (10,10) (10,11) (11,10)
//	initial medoids: indices 0, 3, 5
//
// No single swap lowers the cost of 3, so the run converges at once.
func ExampleCluster() {
	ds, err := kmedoids.NewDataset([][]float64{
		{0, 0}, {0, 1}, {1, 0},
		{10, 10}, {10, 11}, {11, 10},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	opts := kmedoids.DefaultOptions()
	opts.Medoids = []int{0, 3, 5}

	res, err := kmedoids.Cluster(ds, opts)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	colors, _ := res.Labels([]string{"red", "green", "blue"})
	fmt.Printf("The final cost is: %.2f\n", res.Cost)
	fmt.Println("medoids:", res.Medoids)
	fmt.Println("colors:", colors)
	// Output:
	// The final cost is: 3.00
	// medoids: [0 3 5]
	// colors: [red red red green green blue]
}

// ExampleCluster_swap shows a run that accepts one swap.
func ExampleCluster_swap() {
	ds, _ := kmedoids.NewDataset([][]float64{{0}, {1}, {2}, {10}, {11}, {20}})

	opts := kmedoids.DefaultOptions()
	opts.Medoids = []int{0, 3, 5}
	opts.OnIteration = func(iter int, ms kmedoids.MedoidSet, cost float64) {
		fmt.Printf("iteration %d: medoids=%v cost=%.2f\n", iter, ms, cost)
	}

	res, _ := kmedoids.Cluster(ds, opts)
	fmt.Println("trace:", res.Trace)
	// Output:
	// iteration 1: medoids=[1 3 5] cost=3.00
	// trace: [4 3]
}
