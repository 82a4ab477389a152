package tensor

import (
	"github.com/pkg/errors"
	"github.com/x448/float16"
)

// ToFloat16 packs the addressed elements of t into IEEE 754 binary16 values,
// in row-major traversal order. Any view can be packed, sliced or not.
func ToFloat16(t *Tensor[float32]) ([]float16.Float16, error) {
	values, err := t.Values()
	if err != nil {
		return nil, err
	}
	out := make([]float16.Float16, len(values))
	for i, v := range values {
		out[i] = float16.Fromfloat32(v)
	}
	return out, nil
}

// FromFloat16 unpacks binary16 values into an owning float32 tensor.
func FromFloat16(bits []float16.Float16, shape Shape) (*Tensor[float32], error) {
	if shape.NumElements() != len(bits) {
		return nil, errors.Wrapf(ErrShapeMismatch, "shape %v requires %d elements, but got %d", shape, shape.NumElements(), len(bits))
	}
	t, err := New[float32](shape)
	if err != nil {
		return nil, err
	}
	for i, h := range bits {
		t.buf.data[i] = h.Float32()
	}
	return t, nil
}
