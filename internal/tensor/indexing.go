package tensor

import (
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// Range is a half-open interval [Start, End) along one axis.
type Range struct {
	Start, End int
}

// Index returns a view of element i along the leading axis. The result has
// one axis fewer than t and shares t's buffer.
//
// Index fails with ErrIndexing on a scalar or when i is outside [0, shape[0]).
func (t *Tensor[T]) Index(i int) (*Tensor[T], error) {
	if err := t.live("index"); err != nil {
		return nil, err
	}
	if t.Rank() == 0 {
		return nil, errors.Wrap(ErrIndexing, "cannot index a scalar")
	}
	if i < 0 || i >= t.shape[0] {
		return nil, errors.Wrapf(ErrIndexing, "index %d out of bounds for axis 0 with size %d", i, t.shape[0])
	}
	return t.index(i), nil
}

// IndexUnchecked is Index without the bounds check on i. It may address
// elements outside the view; addressing outside the buffer panics.
func (t *Tensor[T]) IndexUnchecked(i int) (*Tensor[T], error) {
	if err := t.live("index"); err != nil {
		return nil, err
	}
	if t.Rank() == 0 {
		return nil, errors.Wrap(ErrIndexing, "cannot index a scalar")
	}
	return t.index(i), nil
}

// index drops the leading axis. The trailing shape/stride/offset slices are
// shared with t, which is safe because they are only ever replaced, never
// written in place (see Slice and SliceMany).
func (t *Tensor[T]) index(i int) *Tensor[T] {
	return &Tensor[T]{
		buf:      t.buf,
		base:     t.base + t.stride[0]*(i+t.offset[0]),
		shape:    t.shape[1:],
		stride:   t.stride[1:],
		offset:   t.offset[1:],
		numElems: t.numElems / t.shape[0],
	}
}

// Slice returns a view of [i, j) along the leading axis. Rank and strides are
// unchanged; the leading extent becomes j-i.
//
// Slice fails with ErrIndexing on a scalar, when j <= i, or when the range
// leaves [0, shape[0]].
func (t *Tensor[T]) Slice(i, j int) (*Tensor[T], error) {
	if err := t.checkSlice(i, j); err != nil {
		return nil, err
	}
	if i < 0 || j > t.shape[0] {
		return nil, errors.Wrapf(ErrIndexing, "slice [%d:%d] out of bounds for axis 0 with size %d", i, j, t.shape[0])
	}
	return t.slice(i, j), nil
}

// SliceUnchecked is Slice without the check that [i, j) lies inside the
// leading axis.
func (t *Tensor[T]) SliceUnchecked(i, j int) (*Tensor[T], error) {
	if err := t.checkSlice(i, j); err != nil {
		return nil, err
	}
	return t.slice(i, j), nil
}

func (t *Tensor[T]) checkSlice(i, j int) error {
	if err := t.live("slice"); err != nil {
		return err
	}
	if t.Rank() == 0 {
		return errors.Wrap(ErrIndexing, "cannot slice a scalar")
	}
	if j <= i {
		return errors.Wrapf(ErrIndexing, "slice [%d:%d]: end <= start", i, j)
	}
	return nil
}

func (t *Tensor[T]) slice(i, j int) *Tensor[T] {
	v := t.View()
	perOuter := t.numElems / t.shape[0]
	v.shape[0] = j - i
	v.offset[0] += i
	v.numElems = perOuter * v.shape[0]
	return v
}

// SliceMany narrows the leading len(ranges) axes at once. Axes beyond the
// supplied ranges are untouched.
//
// SliceMany fails with ErrIndexing when more ranges than axes are given, when
// any range has End <= Start, or when a range leaves its axis. All ranges are
// validated before the view is built.
func (t *Tensor[T]) SliceMany(ranges ...Range) (*Tensor[T], error) {
	if err := t.live("slice"); err != nil {
		return nil, err
	}
	if len(ranges) > t.Rank() {
		return nil, errors.Wrapf(ErrIndexing, "%d ranges out of bounds for rank %d", len(ranges), t.Rank())
	}
	for d, r := range ranges {
		if r.End <= r.Start {
			return nil, errors.Wrapf(ErrIndexing, "axis %d: slice [%d:%d]: end <= start", d, r.Start, r.End)
		}
		if r.Start < 0 || r.End > t.shape[d] {
			return nil, errors.Wrapf(ErrIndexing, "axis %d: slice [%d:%d] out of bounds for size %d", d, r.Start, r.End, t.shape[d])
		}
	}

	v := t.View()
	for d, r := range ranges {
		v.shape[d] = r.End - r.Start
		v.offset[d] += r.Start
	}
	v.numElems = v.shape.NumElements()
	klog.V(5).Infof("tensor: sliced %v to %v", t.shape, v.shape)
	return v, nil
}

// addr returns the buffer position of the element at idx.
func (t *Tensor[T]) addr(op string, idx []int) (int, error) {
	if err := t.live(op); err != nil {
		return 0, err
	}
	if len(idx) != t.Rank() {
		return 0, errors.Wrapf(ErrIndexing, "%s: expected %d indices, got %d", op, t.Rank(), len(idx))
	}
	pos := t.base
	for d, i := range idx {
		if i < 0 || i >= t.shape[d] {
			return 0, errors.Wrapf(ErrIndexing, "%s: index %d out of bounds for axis %d with size %d", op, i, d, t.shape[d])
		}
		pos += t.stride[d] * (i + t.offset[d])
	}
	return pos, nil
}

// At returns the element at the given indices, one per axis.
func (t *Tensor[T]) At(idx ...int) (T, error) {
	pos, err := t.addr("at", idx)
	if err != nil {
		var zero T
		return zero, err
	}
	return t.buf.data[pos], nil
}

// Set writes value at the given indices, one per axis.
func (t *Tensor[T]) Set(value T, idx ...int) error {
	pos, err := t.addr("set", idx)
	if err != nil {
		return err
	}
	t.buf.data[pos] = value
	return nil
}

// Item returns the value of a rank-0 tensor.
func (t *Tensor[T]) Item() (T, error) {
	var zero T
	if err := t.live("item"); err != nil {
		return zero, err
	}
	if t.Rank() != 0 {
		return zero, errors.Wrapf(ErrDimensionMismatch, "item: tensor has rank %d, want 0", t.Rank())
	}
	return *t.leaf(), nil
}

// Values returns the addressed elements in row-major traversal order.
func (t *Tensor[T]) Values() ([]T, error) {
	if err := t.live("values"); err != nil {
		return nil, err
	}
	out := make([]T, 0, t.numElems)
	err := walk([]*Tensor[T]{t}, func(ts []*Tensor[T]) error {
		out = append(out, *ts[0].leaf())
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
