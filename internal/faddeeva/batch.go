package faddeeva

import (
	"fmt"

	"github.com/san-kum/beamkern/internal/context"
	"github.com/san-kum/beamkern/internal/device"
)

// EvaluateBatch computes w(z) for every element of re, im and returns views
// holding the real and imaginary parts of the result. The input views must
// agree in length. Kernel compilation is memoized by the context, so repeated
// calls reuse the first build.
func EvaluateBatch(ctx *context.Context, re, im device.ArrayView) (device.ArrayView, device.ArrayView, error) {
	var zero device.ArrayView
	n := re.Len()
	if im.Len() != n {
		return zero, zero, fmt.Errorf("faddeeva: re has %d elements, im has %d: %w",
			n, im.Len(), device.ErrShape)
	}
	if err := ctx.AddKernels(Sources(), Descs()); err != nil {
		return zero, zero, err
	}

	b := ctx.Backend()
	wzReBuf, err := b.Alloc(n, device.Float64)
	if err != nil {
		return zero, zero, err
	}
	wzImBuf, err := b.Alloc(n, device.Float64)
	if err != nil {
		b.Free(wzReBuf)
		return zero, zero, err
	}
	wzRe := wzReBuf.View()
	wzIm := wzImBuf.View()

	err = ctx.Run("eval_cerrf", map[string]any{
		"n":     int32(n),
		"re":    re,
		"im":    im,
		"wz_re": wzRe,
		"wz_im": wzIm,
	})
	if err != nil {
		b.Free(wzReBuf)
		b.Free(wzImBuf)
		return zero, zero, err
	}
	return wzRe, wzIm, nil
}
