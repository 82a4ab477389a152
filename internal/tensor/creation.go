package tensor

import (
	"math"

	"github.com/pkg/errors"
)

// Zeros creates an owning tensor filled with zeros.
//
// Example:
//
//	t, err := tensor.Zeros[float32](tensor.Shape{3, 4})
func Zeros[T Number](shape Shape) (*Tensor[T], error) {
	return New[T](shape)
}

// Ones creates an owning tensor filled with ones.
func Ones[T Number](shape Shape) (*Tensor[T], error) {
	return Full[T](shape, 1)
}

// Full creates an owning tensor filled with value.
//
// Example:
//
//	t, err := tensor.Full(tensor.Shape{2, 2}, 3.14)
func Full[T Number](shape Shape, value T) (*Tensor[T], error) {
	t, err := New[T](shape)
	if err != nil {
		return nil, err
	}
	for i := range t.buf.data {
		t.buf.data[i] = value
	}
	return t, nil
}

// Scalar creates an owning rank-0 tensor holding value.
func Scalar[T Number](value T) *Tensor[T] {
	t, _ := Full[T](Shape{}, value) // the scalar shape is always valid
	return t
}

// FromSlice creates an owning tensor from row-major data.
// The slice is copied into the tensor's memory.
func FromSlice[T Number](data []T, shape Shape) (*Tensor[T], error) {
	if shape.NumElements() != len(data) {
		return nil, errors.Wrapf(ErrShapeMismatch, "shape %v requires %d elements, but got %d", shape, shape.NumElements(), len(data))
	}
	t, err := New[T](shape)
	if err != nil {
		return nil, err
	}
	copy(t.buf.data, data)
	return t, nil
}

// Arange creates a rank-1 owning tensor with values [start, end) in steps of 1.
// Large floating-point values round to the nearest representable element.
//
// Example:
//
//	t, err := tensor.Arange(0, 5) // [ 0 1 2 3 4 ]
func Arange[T Number](start, end T) (*Tensor[T], error) {
	if end <= start {
		return nil, errors.Wrapf(ErrInvalidShape, "arange: end (%v) must be > start (%v)", end, start)
	}
	count := math.Ceil(float64(end - start))
	if count >= math.MaxInt {
		return nil, errors.Wrapf(ErrInvalidShape, "arange: [%v, %v) has too many elements", start, end)
	}
	t, err := New[T](Shape{int(count)})
	if err != nil {
		return nil, err
	}
	for i := range t.buf.data {
		t.buf.data[i] = start + T(i)
	}
	return t, nil
}
