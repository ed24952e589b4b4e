// Package fieldmap evaluates the transverse electric field of a bi-Gaussian
// charge distribution using the Bassetti-Erskine formula. The elliptical case
// is built on the Faddeeva function; nearly round distributions switch to the
// closed-form radial expression to avoid the vanishing denominator.
package fieldmap
