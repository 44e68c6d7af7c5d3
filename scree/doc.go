// Package scree renders the cumulative explained-variance diagnostic used to
// choose the number of principal components.
//
// The package consumes only the ranked-spectrum ratios exposed by
// pca.RankedComponents: the core pipeline stays free of any rendering
// dependency, and this collaborator stays free of any numeric one.
//
// ⚙️ Usage:
//
//	res, _ := pca.Fit(raw)
//	pts := scree.Curve(res.Components)            // plot-agnostic series
//	err := scree.SavePNG(res.Components, "scree.png",
//	        scree.WithThreshold(0.9))             // rendered curve
//
// Rendering is delegated to gonum.org/v1/plot; Curve exists so callers with
// their own plotting stack never need that dependency.
package scree
