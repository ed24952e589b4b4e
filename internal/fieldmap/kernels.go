package fieldmap

import (
	"github.com/san-kum/beamkern/internal/device"
	"github.com/san-kum/beamkern/internal/faddeeva"
	"github.com/san-kum/beamkern/internal/kernel"
)

const headerField = `#if !defined(FIELDS_BIGAUSSIAN_H)
#define FIELDS_BIGAUSSIAN_H
#define EPSILON_0 8.854187817620e-12
#define SQRT_PI 1.7724538509055160273
/*gpufun*/ void get_Ex_Ey_gauss( double x, double y,
    double sigma_x, double sigma_y, double min_sigma_diff,
    /*gpuglmem*/ double* /*restrict*/ Ex, /*gpuglmem*/ double* /*restrict*/ Ey );
#endif /* FIELDS_BIGAUSSIAN_H */
`

const fieldBody = `/*gpukern*/ void eval_field(
    const int n,
    /*gpuglmem*/ double const* /*restrict*/ x,
    /*gpuglmem*/ double const* /*restrict*/ y,
    const double sigma_x,
    const double sigma_y,
    const double min_sigma_diff,
    /*gpuglmem*/ double* /*restrict*/ ex,
    /*gpuglmem*/ double* /*restrict*/ ey )
{
    for( int tid = 0 ; tid < n ; ++tid ) { //vectorize_over tid n
        if( tid < n )
        {
            double Ex, Ey;

            get_Ex_Ey_gauss( x[ tid ], y[ tid ],
                sigma_x, sigma_y, min_sigma_diff, &Ex, &Ey );

            ex[ tid ] = Ex;
            ey[ tid ] = Ey;
        }
    } //end_vectorize
}
`

// Sources returns the kernel sources of the batched field evaluation. The
// Faddeeva fragments come first so the field helper resolves against them.
func Sources() []kernel.Source {
	srcs := faddeeva.Sources()
	return append(srcs, kernel.Source{
		Headers: []string{headerField},
		Body:    fieldBody,
	})
}

// Descs returns the argument descriptors of the field kernel.
func Descs() map[string]kernel.Desc {
	descs := faddeeva.Descs()
	descs["eval_field"] = kernel.Desc{
		Args: []kernel.Arg{
			{Name: "n", Type: device.Int32},
			{Name: "x", Type: device.Float64, Pointer: true, Const: true},
			{Name: "y", Type: device.Float64, Pointer: true, Const: true},
			{Name: "sigma_x", Type: device.Float64},
			{Name: "sigma_y", Type: device.Float64},
			{Name: "min_sigma_diff", Type: device.Float64},
			{Name: "ex", Type: device.Float64, Pointer: true},
			{Name: "ey", Type: device.Float64, Pointer: true},
		},
		NThreads: "n",
	}
	return descs
}

func init() {
	kernel.RegisterDeviceFunc("get_Ex_Ey_gauss")

	kernel.RegisterEntry("eval_field", func(tid int, c *kernel.Call) {
		x := c.View(1).Float64(tid)
		y := c.View(2).Float64(tid)
		ex, ey := ExEyGauss(x, y, c.Float64(3), c.Float64(4), c.Float64(5))
		c.View(6).SetFloat64(tid, ex)
		c.View(7).SetFloat64(tid, ey)
	})
}
