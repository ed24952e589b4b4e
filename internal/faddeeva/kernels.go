package faddeeva

import (
	"github.com/san-kum/beamkern/internal/device"
	"github.com/san-kum/beamkern/internal/kernel"
)

// Source fragments in the dialect the device builds consume. The host
// implementations registered in init are the semantic equivalents the
// CPU-hosted backends bind when compiling these entries.

const headerConstants = `#if !defined(CERRF_CONSTANTS_H)
#define CERRF_CONSTANTS_H
#define CERRF_X_LIMIT 5.33
#define CERRF_Y_LIMIT 4.29
#define CERRF_TWO_OVER_SQRT_PI 1.12837916709551
#endif /* CERRF_CONSTANTS_H */
`

const headerSinCos = `#if !defined(CERRF_SINCOS_H)
#define CERRF_SINCOS_H
/* sincos( arg, &sin_out, &cos_out ) comes from the device math library. */
#endif /* CERRF_SINCOS_H */
`

const headerPowerN = `#if !defined(CERRF_POWER_N_H)
#define CERRF_POWER_N_H
/*gpufun*/ double power_n( double x, unsigned int n );
#endif /* CERRF_POWER_N_H */
`

const headerCerrf = `#if !defined(CERRF_H)
#define CERRF_H
/*gpufun*/ void cerrf_q1( double x, double y,
    /*gpuglmem*/ double* /*restrict*/ wz_re, /*gpuglmem*/ double* /*restrict*/ wz_im );
/*gpufun*/ void cerrf( double x, double y,
    /*gpuglmem*/ double* /*restrict*/ wz_re, /*gpuglmem*/ double* /*restrict*/ wz_im );
#endif /* CERRF_H */
`

const batchBody = `/*gpukern*/ void eval_cerrf(
    const int n,
    /*gpuglmem*/ double const* /*restrict*/ re,
    /*gpuglmem*/ double const* /*restrict*/ im,
    /*gpuglmem*/ double* /*restrict*/ wz_re,
    /*gpuglmem*/ double* /*restrict*/ wz_im )
{
    for( int tid = 0 ; tid < n ; ++tid ) { //vectorize_over tid n
        if( tid < n )
        {
            double const x = re[ tid ];
            double const y = im[ tid ];
            double wz_x, wz_y;

            cerrf( x, y, &wz_x, &wz_y );

            wz_re[ tid ] = wz_x;
            wz_im[ tid ] = wz_y;
        }
    } //end_vectorize
}

/*gpukern*/ void eval_cerrf_q1(
    const int n,
    /*gpuglmem*/ double const* /*restrict*/ re,
    /*gpuglmem*/ double const* /*restrict*/ im,
    /*gpuglmem*/ double* /*restrict*/ wz_re,
    /*gpuglmem*/ double* /*restrict*/ wz_im )
{
    for( int tid = 0 ; tid < n ; ++tid ) { //vectorize_over tid n
        if( tid < n )
        {
            double const x = re[ tid ];
            double const y = im[ tid ];
            double wz_x, wz_y;

            cerrf_q1( x, y, &wz_x, &wz_y );

            wz_re[ tid ] = wz_x;
            wz_im[ tid ] = wz_y;
        }
    } //end_vectorize
}
`

// Sources returns the source set of the batched evaluation kernels:
// constants, math helpers, and the cerrf declarations, followed by the two
// entry bodies.
func Sources() []kernel.Source {
	return []kernel.Source{{
		Headers: []string{headerConstants, headerSinCos, headerPowerN, headerCerrf},
		Body:    batchBody,
	}}
}

func batchArgs() []kernel.Arg {
	return []kernel.Arg{
		{Name: "n", Type: device.Int32},
		{Name: "re", Type: device.Float64, Pointer: true, Const: true},
		{Name: "im", Type: device.Float64, Pointer: true, Const: true},
		{Name: "wz_re", Type: device.Float64, Pointer: true},
		{Name: "wz_im", Type: device.Float64, Pointer: true},
	}
}

// Descs returns the argument descriptors of the batched kernels.
func Descs() map[string]kernel.Desc {
	return map[string]kernel.Desc{
		"eval_cerrf":    {Args: batchArgs(), NThreads: "n"},
		"eval_cerrf_q1": {Args: batchArgs(), NThreads: "n"},
	}
}

func init() {
	kernel.RegisterDeviceFunc("cerrf")
	kernel.RegisterDeviceFunc("cerrf_q1")
	kernel.RegisterDeviceFunc("power_n")

	kernel.RegisterEntry("eval_cerrf", func(tid int, c *kernel.Call) {
		x := c.View(1).Float64(tid)
		y := c.View(2).Float64(tid)
		wx, wy := Cerrf(x, y)
		c.View(3).SetFloat64(tid, wx)
		c.View(4).SetFloat64(tid, wy)
	})
	kernel.RegisterEntry("eval_cerrf_q1", func(tid int, c *kernel.Call) {
		x := c.View(1).Float64(tid)
		y := c.View(2).Float64(tid)
		wx, wy := CerrfQ1(x, y)
		c.View(3).SetFloat64(tid, wx)
		c.View(4).SetFloat64(tid, wy)
	})
}
