// Package vectorfield analyses 2-D vector fields sampled on a regular grid,
// such as one horizontal layer of a wind simulation.
//
// A field is given as two equally shaped gonum dense matrices: vx (the
// component along the column axis, west→east) and vy (along the row axis,
// south→north). Rows are the first axis, columns the second; grid spacing is 1.
//
// ✨ Key features:
//   - Gradient: finite differences (central inside, one-sided at edges).
//   - Divergence: ∂vx/∂row + ∂vy/∂col.
//   - Vorticity: ∂vy/∂row − ∂vx/∂col (the z-component of the curl).
//   - FillMissing: replace "no data" sentinels with the mean of the valid samples.
//   - ColorCode: HSV encoding: hue = direction, value = normalised magnitude.
//
// All functions return new matrices and leave their inputs untouched, except
// FillMissing which repairs its argument in place.
package vectorfield
