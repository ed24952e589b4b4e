package fieldmap

import (
	"math"

	"github.com/san-kum/beamkern/internal/faddeeva"
)

const (
	epsilon0 = 8.854187817620e-12
	sqrtPi   = 1.7724538509055160273
)

// ExEyGauss returns the transverse field per unit charge density at (x, y)
// for a normalized bi-Gaussian distribution with RMS sizes sigmaX, sigmaY.
// When the sizes differ by less than minSigmaDiff the distribution is treated
// as round.
func ExEyGauss(x, y, sigmaX, sigmaY, minSigmaDiff float64) (ex, ey float64) {
	if math.Abs(sigmaX-sigmaY) < minSigmaDiff {
		sigma := 0.5 * (sigmaX + sigmaY)
		return exEyRound(x, y, sigma)
	}
	if sigmaX > sigmaY {
		return exEyElliptical(x, y, sigmaX, sigmaY)
	}
	ey, ex = exEyElliptical(y, x, sigmaY, sigmaX)
	return ex, ey
}

// exEyRound handles the axisymmetric limit. For vanishing r the field is
// linear in the offset.
func exEyRound(x, y, sigma float64) (ex, ey float64) {
	r2 := x*x + y*y
	var temp float64
	if r2 < 1e-20 {
		temp = 1.0 / (4.0 * math.Pi * epsilon0 * sigma * sigma)
	} else {
		temp = (1.0 - math.Exp(-0.5*r2/(sigma*sigma))) /
			(2.0 * math.Pi * epsilon0 * r2)
	}
	return temp * x, temp * y
}

// exEyElliptical requires sigmaX > sigmaY.
func exEyElliptical(x, y, sigmaX, sigmaY float64) (ex, ey float64) {
	s := math.Sqrt(2.0 * (sigmaX*sigmaX - sigmaY*sigmaY))
	factBE := 1.0 / (2.0 * epsilon0 * sqrtPi * s)

	ax := math.Abs(x)
	ay := math.Abs(y)

	etaBE := ax / s
	zetaBE := ay / s
	wzRe, wzIm := faddeeva.Cerrf(etaBE, zetaBE)

	expBE := math.Exp(-x*x/(2.0*sigmaX*sigmaX) - y*y/(2.0*sigmaY*sigmaY))

	etaBE = ax * sigmaY / (sigmaX * s)
	zetaBE = ay * sigmaX / (sigmaY * s)
	weRe, weIm := faddeeva.Cerrf(etaBE, zetaBE)

	ex = factBE * (wzIm - weIm*expBE)
	ey = factBE * (wzRe - weRe*expBE)

	if x < 0.0 {
		ex = -ex
	}
	if y < 0.0 {
		ey = -ey
	}
	return ex, ey
}
