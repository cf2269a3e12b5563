package incremental

import "github.com/ddt-go/ddt/kernel"

// Kernel is the incremental package's kernel.Kernel: it builds Complex
// values for one fixed ambient dimension.
type Kernel struct {
	dim int
}

var _ kernel.Kernel = Kernel{}

// New2D returns a Kernel for the plane (D=2).
func New2D() Kernel { return Kernel{dim: 2} }

// New3D returns a Kernel for space (D=3).
func New3D() Kernel { return Kernel{dim: 3} }

// NewKernel returns a Kernel for an arbitrary ambient dimension dim >= 2.
func NewKernel(dim int) (Kernel, error) {
	if dim < 2 {
		return Kernel{}, kernel.ErrBadDimension
	}
	return Kernel{dim: dim}, nil
}

// Dimension returns the ambient dimension D this kernel builds complexes for.
func (k Kernel) Dimension() int { return k.dim }

// NewComplex returns a new, empty Complex of dimension D.
func (k Kernel) NewComplex() kernel.Complex { return New(k.dim) }
