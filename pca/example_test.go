// SPDX-License-Identifier: MIT

package pca_test

import (
	"fmt"

	"github.com/katalvlaran/pcakit/pca"
)

// ExampleFit demonstrates the whole pipeline on a tiny ratings-style matrix:
// four users, three movies, reduced to a single principal component by a
// cumulative explained-variance threshold.
//
// Scenario:
//
//	Rows are users, columns are movies. The three columns move together, so
//	one component carries almost all of the variance and the cumulative
//	curve saturates immediately.
//
// Complexity: O(N·D²) covariance + O(D³) eigensolve, trivial at this size.
func ExampleFit() {
	data, _ := pca.NewDenseOf(4, 3, []float64{
		1, 2, 3,
		4, 7, 5,
		6, 5, 9,
		10, 12, 11,
	})
	raw, _ := pca.NewRawMatrix(data,
		[]string{"ann", "bob", "cat", "dan"},
		[]string{"Heat", "Alien", "Fargo"},
	)

	res, err := pca.Fit(raw)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	basis, reduced, err := res.Reduce(pca.CumulativeThreshold(0.9))
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	fmt.Printf("components=%d\n", basis.K)
	fmt.Printf("rows=%d cols=%d\n", reduced.Data.Rows(), reduced.Data.Cols())
	fmt.Printf("first user=%s first component=%s\n", reduced.RowIDs[0], reduced.ComponentIDs[0])
	// Output:
	// components=1
	// rows=4 cols=1
	// first user=ann first component=PC1
}

// ExampleFixedCount shows explicit K selection and reconstruction.
func ExampleFixedCount() {
	data, _ := pca.NewDenseOf(4, 2, []float64{
		1, 10,
		2, 20,
		3, 31,
		4, 39,
	})
	raw, _ := pca.NewRawMatrix(data, nil, nil)

	res, _ := pca.Fit(raw)
	basis, reduced, _ := res.Reduce(pca.FixedCount(2))
	approx, _ := pca.Reconstruct(reduced, basis)

	// Full-rank round trip reproduces the standardized matrix.
	fmt.Printf("shape=%dx%d\n", approx.Rows(), approx.Cols())
	// Output:
	// shape=4x2
}
