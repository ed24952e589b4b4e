package faddeeva

import "math"

// Region limits of the first-quadrant kernel. Inside the (xLim, yLim)
// rectangle the Taylor-type recurrence converges; outside it the continued
// fraction does.
const (
	xLim          = 5.33
	yLim          = 4.29
	twoOverSqrtPi = 1.12837916709551 // 2/sqrt(pi)
)

// CerrfQ1 evaluates w(z) for z = x + iy in the first quadrant
// (x >= 0, y >= 0). It is a pure scalar function: no state, no ordering
// requirements, which is what lets it serve as the per-index body of an
// elementwise kernel.
func CerrfQ1(x, y float64) (wRe, wIm float64) {
	var rx, ry [33]float64

	if y < yLim && x < xLim {
		q := (1.0 - y/yLim) * math.Sqrt(1.0-(x/xLim)*(x/xLim))
		h := 1.0 / (3.2 * q)
		nc := 7 + int(23.0*q)
		nu := 10 + int(21.0*q)

		xl := math.Pow(h, float64(1-nc))
		xh := y + 0.5/h
		yh := x

		// Downward recurrence for the ratio terms.
		rx[nu] = 0.0
		ry[nu] = 0.0
		for n := nu; n > 0; n-- {
			tx := xh + float64(n)*rx[n]
			ty := yh - float64(n)*ry[n]
			tn := tx*tx + ty*ty
			rx[n-1] = 0.5 * tx / tn
			ry[n-1] = 0.5 * ty / tn
		}

		// Resummation against powers of h.
		var sx, sy float64
		for n := nc; n > 0; n-- {
			saux := sx + xl
			sx = rx[n-1]*saux - ry[n-1]*sy
			sy = rx[n-1]*sy + ry[n-1]*saux
			xl = h * xl
		}
		wRe = twoOverSqrtPi * sx
		wIm = twoOverSqrtPi * sy
	} else {
		// Asymptotic continued fraction, nine convergents.
		xh := y
		yh := x
		var cx, cy float64
		for n := 9; n > 0; n-- {
			tx := xh + float64(n)*cx
			ty := yh - float64(n)*cy
			tn := tx*tx + ty*ty
			cx = 0.5 * tx / tn
			cy = 0.5 * ty / tn
		}
		wRe = twoOverSqrtPi * cx
		wIm = twoOverSqrtPi * cy
	}

	if y == 0.0 {
		wRe = math.Exp(-x * x)
	}
	return wRe, wIm
}

// Cerrf evaluates w(z) for z = x + iy anywhere in the complex plane by
// folding the argument into the first quadrant and unfolding the result
// through the symmetries of w. NaN and Inf inputs propagate per IEEE rules;
// the function never fails.
//
// Accuracy near the real axis in the lower half-plane is degraded close to
// the zeros of w; see the package documentation.
func Cerrf(x, y float64) (wRe, wIm float64) {
	signX := 1.0
	if x < 0 {
		signX = -1.0
	}
	signY := 1.0
	if y < 0 {
		signY = -1.0
	}

	ax := signX * x
	ay := signY * y
	wRe, wIm = CerrfQ1(ax, ay)

	if signY < 0 {
		// w(x - iy) = 2 exp(y*y - x*x) (cos 2xy + i sin 2xy) - conj(w(x + iy))
		factor := 2.0 * math.Exp((ay-ax)*(ay+ax))
		s, c := math.Sincos(2.0 * ax * ay)
		wRe = factor*c - wRe
		wIm = factor*s + wIm
	}
	return wRe, signX * wIm
}
