package kernel

import (
	"fmt"

	"github.com/san-kum/beamkern/internal/device"
)

// Arg describes one kernel argument. Pointer arguments bind to array views;
// scalar arguments bind to 32/64-bit integers or 64-bit floats. Order is
// significant: an invocation must match the descriptor list exactly in
// count, names, and types.
type Arg struct {
	Name    string
	Type    device.DType
	Pointer bool
	Const   bool
}

// Desc describes a named kernel: its ordered argument list and the name of
// the scalar argument that carries the index-range size at call time.
type Desc struct {
	Args     []Arg
	NThreads string
}

// Call holds the bound arguments of one invocation.
type Call struct {
	values []value
}

type value struct {
	desc Arg
	view device.ArrayView
	i32  int32
	i64  int64
	f64  float64
}

func (c *Call) Len() int                    { return len(c.values) }
func (c *Call) Arg(i int) Arg               { return c.values[i].desc }
func (c *Call) View(i int) device.ArrayView { return c.values[i].view }
func (c *Call) Int32(i int) int32           { return c.values[i].i32 }
func (c *Call) Int64(i int) int64           { return c.values[i].i64 }
func (c *Call) Float64(i int) float64       { return c.values[i].f64 }

// Bind validates keyword arguments against a descriptor list and produces
// the positional Call the kernel body reads. Every descriptor must be
// matched by exactly one keyword argument of the declared kind.
func Bind(args []Arg, kwargs map[string]any) (*Call, error) {
	if len(kwargs) != len(args) {
		return nil, fmt.Errorf("%w: call carries %d arguments, descriptor lists %d",
			device.ErrTypeMismatch, len(kwargs), len(args))
	}
	call := &Call{values: make([]value, len(args))}
	for i, a := range args {
		raw, ok := kwargs[a.Name]
		if !ok {
			return nil, fmt.Errorf("%w: missing argument %q", device.ErrTypeMismatch, a.Name)
		}
		v := value{desc: a}
		if a.Pointer {
			view, ok := raw.(device.ArrayView)
			if !ok {
				return nil, fmt.Errorf("%w: argument %q wants an array view, got %T",
					device.ErrTypeMismatch, a.Name, raw)
			}
			if view.DType() != a.Type {
				return nil, fmt.Errorf("%w: argument %q wants %s elements, view holds %s",
					device.ErrTypeMismatch, a.Name, a.Type, view.DType())
			}
			v.view = view
		} else {
			switch a.Type {
			case device.Int32:
				switch s := raw.(type) {
				case int32:
					v.i32 = s
				case int:
					v.i32 = int32(s)
				default:
					return nil, fmt.Errorf("%w: argument %q wants int32, got %T",
						device.ErrTypeMismatch, a.Name, raw)
				}
			case device.Int64:
				switch s := raw.(type) {
				case int64:
					v.i64 = s
				case int:
					v.i64 = int64(s)
				default:
					return nil, fmt.Errorf("%w: argument %q wants int64, got %T",
						device.ErrTypeMismatch, a.Name, raw)
				}
			case device.Float64:
				f, ok := raw.(float64)
				if !ok {
					return nil, fmt.Errorf("%w: argument %q wants float64, got %T",
						device.ErrTypeMismatch, a.Name, raw)
				}
				v.f64 = f
			default:
				return nil, fmt.Errorf("%w: argument %q has unknown type", device.ErrTypeMismatch, a.Name)
			}
		}
		call.values[i] = v
	}
	return call, nil
}
