// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides N-dimensional strided tensors with zero-copy views.
//
// # Overview
//
// A Tensor stores a flat buffer together with per-axis shape, stride and
// offset metadata. This package provides:
//   - Generic tensors over any integer or floating-point element type
//   - Zero-copy views via Index, Slice and SliceMany
//   - Value-wise assignment from tensors, scalars and Go slices
//   - Element-wise Add, Sub, Mul and Div on same-shaped tensors
//   - Plain-text rendering and binary16 packing
//
// # Basic Usage
//
//	import "github.com/born-ml/strided/tensor"
//
//	func main() {
//	    x, _ := tensor.New[float64](tensor.Shape{2, 3})
//	    _ = x.AssignNested([][]float64{{1, 2, 3}, {4, 5, 6}})
//
//	    row, _ := x.Index(1)     // view, shape [3]
//	    fmt.Println(row)         // [ 4 5 6 ]
//
//	    y, _ := x.Add(x)         // fresh owning tensor
//	    fmt.Println(y)
//	}
//
// # Views and Ownership
//
// Tensors returned by New, Zeros, FromSlice and the arithmetic methods own
// their buffer. Index, Slice, SliceMany and View return views that borrow the
// buffer: writes through a view are visible in the owner and vice versa.
//
// Slicing never recomputes strides. A slice narrows the shape and shifts the
// per-axis offset, so element (i0, i1, ...) lives at
//
//	base + stride[0]*(i0+offset[0]) + stride[1]*(i1+offset[1]) + ...
//
// Release drops an owner's claim on the buffer. When the last owner is
// released, every view sharing the buffer fails with ErrReleased rather than
// reading stale data. Retain adds an owner.
//
// # Bounds
//
// Index, Slice and SliceMany check their arguments against the view's extents.
// IndexUnchecked and SliceUnchecked skip the upper-bound check and may address
// elements outside the view (but never outside the buffer).
//
// # Errors
//
// Every error wraps one of ErrIndexing, ErrDimensionMismatch,
// ErrShapeMismatch, ErrUnsupportedBroadcast, ErrDivisionByZero,
// ErrInvalidShape or ErrReleased:
//
//	_, err := a.Div(b)
//	if errors.Is(err, tensor.ErrDivisionByZero) {
//	    // ...
//	}
package tensor
