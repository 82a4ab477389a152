package tensor

import (
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Shape represents the dimensions of a tensor.
type Shape []int

// NumElements returns the total number of elements in the tensor.
func (s Shape) NumElements() int {
	n := 1 // Scalar has 1 element
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Validate checks if the shape is valid: all dimensions > 0 and an element
// count that fits in an int.
func (s Shape) Validate() error {
	n := 1
	for i, dim := range s {
		if dim <= 0 {
			return errors.Wrapf(ErrInvalidShape, "dimension at index %d is %d (must be > 0)", i, dim)
		}
		if n > math.MaxInt/dim {
			return errors.Wrapf(ErrInvalidShape, "shape %v: element count overflows int", s)
		}
		n *= dim
	}
	return nil
}

// Equal checks if two shapes are equal.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	clone := make(Shape, len(s))
	copy(clone, s)
	return clone
}

// ComputeStrides calculates row-major strides for the shape.
// Strides define memory layout: stride[i] = product of all dimensions after i.
func (s Shape) ComputeStrides() []int {
	strides := make([]int, len(s))
	n := 1
	for d := len(s) - 1; d >= 0; d-- {
		strides[d] = n
		n *= s[d]
	}
	return strides
}

// String formats the shape as "[2 3 4]".
func (s Shape) String() string {
	parts := make([]string, len(s))
	for i, dim := range s {
		parts[i] = strconv.Itoa(dim)
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// ParseShape parses a comma-separated list of extents such as "2,3,4".
// An empty string yields the scalar shape.
func ParseShape(s string) (Shape, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Shape{}, nil
	}
	fields := strings.Split(s, ",")
	shape := make(Shape, len(fields))
	for i, f := range fields {
		dim, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, errors.Wrapf(ErrInvalidShape, "extent %q: %v", f, err)
		}
		shape[i] = dim
	}
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	return shape, nil
}

// checkSameShape reports a rank or per-axis mismatch between a and b.
func checkSameShape(op string, a, b Shape) error {
	if len(a) != len(b) {
		return errors.Wrapf(ErrDimensionMismatch, "%s: rank %d vs %d", op, len(a), len(b))
	}
	for d := range a {
		if a[d] != b[d] {
			return errors.Wrapf(ErrShapeMismatch, "%s: axis %d: %d vs %d (shapes %v and %v)", op, d, a[d], b[d], a, b)
		}
	}
	return nil
}
