package tensor

import "github.com/pkg/errors"

// walk descends ts in lockstep, depth-first and left to right along the
// leading axis, and calls leaf once every tensor has reached rank 0.
// All tensors must share one shape. The slice passed to leaf is reused.
func walk[T Number](ts []*Tensor[T], leaf func(ts []*Tensor[T]) error) error {
	if ts[0].Rank() == 0 {
		return leaf(ts)
	}
	sub := make([]*Tensor[T], len(ts))
	for i := 0; i < ts[0].shape[0]; i++ {
		for k, t := range ts {
			sub[k] = t.index(i)
		}
		if err := walk(sub, leaf); err != nil {
			return err
		}
	}
	return nil
}

// Add performs element-wise addition. Shapes must match exactly.
//
// Example:
//
//	a, _ := tensor.FromSlice([]int{1, 2, 3, 4}, tensor.Shape{4})
//	b, _ := tensor.FromSlice([]int{10, 20, 30, 40}, tensor.Shape{4})
//	c, _ := a.Add(b) // [ 11 22 33 44 ]
func (t *Tensor[T]) Add(other *Tensor[T]) (*Tensor[T], error) {
	return elementwise("add", t, other, func(x, y T) (T, error) { return x + y, nil })
}

// Sub performs element-wise subtraction. Shapes must match exactly.
func (t *Tensor[T]) Sub(other *Tensor[T]) (*Tensor[T], error) {
	return elementwise("sub", t, other, func(x, y T) (T, error) { return x - y, nil })
}

// Mul performs element-wise multiplication. Shapes must match exactly.
func (t *Tensor[T]) Mul(other *Tensor[T]) (*Tensor[T], error) {
	return elementwise("mul", t, other, func(x, y T) (T, error) { return x * y, nil })
}

// Div performs element-wise division. Shapes must match exactly.
// It fails with ErrDivisionByZero at the first zero divisor, for integer and
// floating-point element types alike.
func (t *Tensor[T]) Div(other *Tensor[T]) (*Tensor[T], error) {
	return elementwise("div", t, other, func(x, y T) (T, error) {
		if y == 0 {
			return x, errors.Wrapf(ErrDivisionByZero, "div: %v / %v", x, y)
		}
		return x / y, nil
	})
}

// elementwise checks shapes, allocates an owning result and fills it leaf by
// leaf. On error the partial result is released and nil is returned.
func elementwise[T Number](op string, a, b *Tensor[T], fn func(x, y T) (T, error)) (*Tensor[T], error) {
	if err := a.live(op); err != nil {
		return nil, err
	}
	if err := b.live(op); err != nil {
		return nil, err
	}
	if err := checkSameShape(op, a.shape, b.shape); err != nil {
		return nil, err
	}

	result, err := New[T](a.shape)
	if err != nil {
		return nil, err
	}
	err = walk([]*Tensor[T]{a, b, result}, func(ts []*Tensor[T]) error {
		v, err := fn(*ts[0].leaf(), *ts[1].leaf())
		if err != nil {
			return err
		}
		*ts[2].leaf() = v
		return nil
	})
	if err != nil {
		result.Release()
		return nil, err
	}
	return result, nil
}
