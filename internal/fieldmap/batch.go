package fieldmap

import (
	"fmt"

	"github.com/san-kum/beamkern/internal/context"
	"github.com/san-kum/beamkern/internal/device"
)

// EvaluateBatch computes the field at every (x, y) pair and returns views
// holding the horizontal and vertical components.
func EvaluateBatch(ctx *context.Context, x, y device.ArrayView, sigmaX, sigmaY, minSigmaDiff float64) (device.ArrayView, device.ArrayView, error) {
	var zero device.ArrayView
	n := x.Len()
	if y.Len() != n {
		return zero, zero, fmt.Errorf("fieldmap: x has %d elements, y has %d: %w",
			n, y.Len(), device.ErrShape)
	}
	if err := ctx.AddKernels(Sources(), Descs()); err != nil {
		return zero, zero, err
	}

	b := ctx.Backend()
	exBuf, err := b.Alloc(n, device.Float64)
	if err != nil {
		return zero, zero, err
	}
	eyBuf, err := b.Alloc(n, device.Float64)
	if err != nil {
		b.Free(exBuf)
		return zero, zero, err
	}
	ex := exBuf.View()
	ey := eyBuf.View()

	err = ctx.Run("eval_field", map[string]any{
		"n":              int32(n),
		"x":              x,
		"y":              y,
		"sigma_x":        sigmaX,
		"sigma_y":        sigmaY,
		"min_sigma_diff": minSigmaDiff,
		"ex":             ex,
		"ey":             ey,
	})
	if err != nil {
		b.Free(exBuf)
		b.Free(eyBuf)
		return zero, zero, err
	}
	return ex, ey, nil
}
