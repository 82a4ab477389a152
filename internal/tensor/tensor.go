package tensor

import (
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// Tensor is a strided view over a flat buffer of T.
//
// A Tensor either owns its buffer (created by New and the other constructors)
// or borrows it (produced by View, Index, Slice and SliceMany). Views share the
// buffer with the tensor they were derived from, so writes through a view are
// visible through the parent and vice versa.
//
// Element addressing is base + Σ stride[d]*(index[d]+offset[d]). Strides are
// fixed at construction; slicing narrows shape and shifts offset only.
//
// Example:
//
//	t, _ := tensor.New[float64](tensor.Shape{2, 3})
//	_ = t.AssignNested([][]float64{{1, 2, 3}, {4, 5, 6}})
//	row, _ := t.Index(1)
//	fmt.Println(row) // [ 4 5 6 ]
type Tensor[T Number] struct {
	buf      *buffer[T]
	owner    bool
	base     int
	shape    Shape
	stride   []int
	offset   []int
	numElems int
}

// New creates an owning tensor with the given shape.
// Memory is allocated and zero-initialized.
func New[T Number](shape Shape) (*Tensor[T], error) {
	t, err := newUnbound[T](shape)
	if err != nil {
		return nil, err
	}
	t.buf = newBuffer[T](t.numElems)
	t.owner = true
	return t, nil
}

// newUnbound builds the metadata for shape without binding a buffer.
// The caller must set buf before the tensor is used.
func newUnbound[T Number](shape Shape) (*Tensor[T], error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	return &Tensor[T]{
		shape:    shape.Clone(),
		stride:   shape.ComputeStrides(),
		offset:   make([]int, len(shape)),
		numElems: shape.NumElements(),
	}, nil
}

// View returns a borrowing copy of t. The view is never an owner, whatever
// the ownership of t.
func (t *Tensor[T]) View() *Tensor[T] {
	klog.V(5).Infof("tensor: view of %v", t.shape)
	return &Tensor[T]{
		buf:      t.buf,
		owner:    false,
		base:     t.base,
		shape:    t.shape.Clone(),
		stride:   cloneInts(t.stride),
		offset:   cloneInts(t.offset),
		numElems: t.numElems,
	}
}

// Rank returns the number of axes (0 for a scalar).
func (t *Tensor[T]) Rank() int {
	return len(t.shape)
}

// Shape returns a copy of the per-axis extents.
func (t *Tensor[T]) Shape() Shape {
	return t.shape.Clone()
}

// Strides returns a copy of the per-axis strides, in elements.
func (t *Tensor[T]) Strides() []int {
	return cloneInts(t.stride)
}

// Offsets returns a copy of the per-axis offsets accumulated by slicing.
func (t *Tensor[T]) Offsets() []int {
	return cloneInts(t.offset)
}

// NumElements returns the number of addressed elements.
func (t *Tensor[T]) NumElements() int {
	return t.numElems
}

// IsOwner reports whether t is responsible for releasing its buffer.
func (t *Tensor[T]) IsOwner() bool {
	return t.owner
}

// DType returns the element data type.
func (t *Tensor[T]) DType() DataType {
	var dummy T
	return inferDataType(dummy)
}

// Released reports whether the underlying buffer has been freed.
func (t *Tensor[T]) Released() bool {
	return t.buf == nil || !t.buf.live()
}

// Retain returns a new owning handle sharing t's buffer. The buffer stays alive
// until every owning handle has been released. Retaining a view yields an owner
// with the view's metadata.
func (t *Tensor[T]) Retain() (*Tensor[T], error) {
	if err := t.live("retain"); err != nil {
		return nil, err
	}
	t.buf.addRef()
	r := t.View()
	r.owner = true
	return r, nil
}

// Release drops t's claim on the buffer. On a view it is a no-op. Once the
// last owner is released, every tensor sharing the buffer fails with
// ErrReleased.
func (t *Tensor[T]) Release() {
	if t == nil || !t.owner {
		return
	}
	t.owner = false
	t.buf.release()
}

// Clone returns an owning tensor holding a compact copy of the addressed
// elements. The clone has fresh row-major strides and zero offsets.
func (t *Tensor[T]) Clone() (*Tensor[T], error) {
	if err := t.live("clone"); err != nil {
		return nil, err
	}
	c, err := New[T](t.shape)
	if err != nil {
		return nil, err
	}
	if err := c.Assign(t); err != nil {
		c.Release()
		return nil, err
	}
	return c, nil
}

// live fails with ErrReleased when the buffer has been freed.
func (t *Tensor[T]) live(op string) error {
	if t.Released() {
		return errors.Wrapf(ErrReleased, "%s on tensor of shape %v", op, t.shape)
	}
	return nil
}

// leaf returns a pointer to the single element addressed by a rank-0 tensor.
func (t *Tensor[T]) leaf() *T {
	return &t.buf.data[t.base]
}

func cloneInts(s []int) []int {
	out := make([]int, len(s))
	copy(out, s)
	return out
}
