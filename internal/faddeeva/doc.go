// Package faddeeva evaluates the complex error function
// w(z) = exp(-z*z) * erfc(-i*z) in double precision, as scalar calls and as
// an elementwise kernel runnable on any backend.
//
// The first-quadrant kernel follows Gautschi's recurrence scheme as carried
// in CERNLIB's wwerf: a truncated Taylor-type downward recurrence inside a
// rectangle near the origin and a short continued fraction outside it. The
// full-plane entry folds the argument into the first quadrant and unfolds
// the result through the conjugation symmetries of w. Target absolute
// accuracy is 5e-10 componentwise.
//
// Known precision boundary: close to the real axis in the lower half-plane
// the unfolding subtracts two nearly equal quantities near the zeros of w
// (the first of which sits by Im(z) = -Re(z) at Re(z) > 1.99146), and the
// absolute error grows by an order of magnitude or more. The accuracy tests
// exclude Im(z) < -1.95 for that reason; callers needing that region must
// accept the degraded accuracy.
package faddeeva
