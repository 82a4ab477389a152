// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/x448/float16"

	"github.com/born-ml/strided/internal/tensor"
)

// Type aliases for public API

// Number is the constraint for tensor element types:
// all built-in integer and floating-point kinds.
type Number = tensor.Number

// DataType represents the runtime data type of a tensor.
type DataType = tensor.DataType

// Data type constants.
const (
	Unknown DataType = tensor.Unknown
	Float32 DataType = tensor.Float32
	Float64 DataType = tensor.Float64
	Int     DataType = tensor.Int
	Int8    DataType = tensor.Int8
	Int16   DataType = tensor.Int16
	Int32   DataType = tensor.Int32
	Int64   DataType = tensor.Int64
	Uint    DataType = tensor.Uint
	Uint8   DataType = tensor.Uint8
	Uint16  DataType = tensor.Uint16
	Uint32  DataType = tensor.Uint32
	Uint64  DataType = tensor.Uint64
)

// Shape represents the dimensions of a tensor.
// Example: Shape{2, 3, 4} represents a 3D tensor with dimensions 2×3×4.
type Shape = tensor.Shape

// Range is a half-open interval [Start, End) along one axis, used by SliceMany.
type Range = tensor.Range

// Tensor is a strided view over a flat buffer of T.
//
// Example:
//
//	x, _ := tensor.Arange(0, 5)
//	v, _ := x.Slice(1, 4)
//	fmt.Println(v) // [ 1 2 3 ]
type Tensor[T Number] = tensor.Tensor[T]

// Error kinds. Match them with errors.Is.
var (
	ErrIndexing             = tensor.ErrIndexing
	ErrDimensionMismatch    = tensor.ErrDimensionMismatch
	ErrShapeMismatch        = tensor.ErrShapeMismatch
	ErrUnsupportedBroadcast = tensor.ErrUnsupportedBroadcast
	ErrDivisionByZero       = tensor.ErrDivisionByZero
	ErrInvalidShape         = tensor.ErrInvalidShape
	ErrReleased             = tensor.ErrReleased
)

// Creation functions

// New creates an owning, zero-initialized tensor with the given shape.
//
// Example:
//
//	x, err := tensor.New[float32](tensor.Shape{2, 3})
func New[T Number](shape Shape) (*Tensor[T], error) {
	return tensor.New[T](shape)
}

// Zeros creates a tensor filled with zeros.
func Zeros[T Number](shape Shape) (*Tensor[T], error) {
	return tensor.Zeros[T](shape)
}

// Ones creates a tensor filled with ones.
func Ones[T Number](shape Shape) (*Tensor[T], error) {
	return tensor.Ones[T](shape)
}

// Full creates a tensor filled with a specific value.
//
// Example:
//
//	x, err := tensor.Full(tensor.Shape{2, 3}, float32(3.14))
func Full[T Number](shape Shape, value T) (*Tensor[T], error) {
	return tensor.Full(shape, value)
}

// Scalar creates a rank-0 tensor holding value.
func Scalar[T Number](value T) *Tensor[T] {
	return tensor.Scalar(value)
}

// FromSlice creates a tensor from row-major data. The data is copied.
//
// Example:
//
//	data := []float32{1, 2, 3, 4, 5, 6}
//	x, err := tensor.FromSlice(data, tensor.Shape{2, 3})
func FromSlice[T Number](data []T, shape Shape) (*Tensor[T], error) {
	return tensor.FromSlice(data, shape)
}

// Arange creates a 1D tensor with values from start to end (exclusive).
//
// Example:
//
//	x, err := tensor.Arange(0, 10) // [ 0 1 2 ... 9 ]
func Arange[T Number](start, end T) (*Tensor[T], error) {
	return tensor.Arange(start, end)
}

// ParseShape parses a comma-separated list of extents such as "2,3,4".
func ParseShape(s string) (Shape, error) {
	return tensor.ParseShape(s)
}

// Half precision

// ToFloat16 packs the addressed elements of t into binary16 values in
// row-major order.
func ToFloat16(t *Tensor[float32]) ([]float16.Float16, error) {
	return tensor.ToFloat16(t)
}

// FromFloat16 unpacks binary16 values into an owning float32 tensor.
func FromFloat16(bits []float16.Float16, shape Shape) (*Tensor[float32], error) {
	return tensor.FromFloat16(bits, shape)
}
