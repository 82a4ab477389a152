package tensor

import "github.com/pkg/errors"

// Assign copies the values of other into the elements addressed by t.
// It never rebinds t's buffer: a view assigned to writes through to its parent.
// Ranks and shapes must match exactly.
func (t *Tensor[T]) Assign(other *Tensor[T]) error {
	if err := t.live("assign"); err != nil {
		return err
	}
	if err := other.live("assign"); err != nil {
		return err
	}
	if err := checkSameShape("assign", t.shape, other.shape); err != nil {
		return err
	}
	return walk([]*Tensor[T]{t, other}, func(ts []*Tensor[T]) error {
		*ts[0].leaf() = *ts[1].leaf()
		return nil
	})
}

// AssignScalar writes value into a rank-0 tensor.
func (t *Tensor[T]) AssignScalar(value T) error {
	if err := t.live("assign"); err != nil {
		return err
	}
	if t.Rank() != 0 {
		return errors.Wrapf(ErrUnsupportedBroadcast, "assign scalar to tensor of rank %d", t.Rank())
	}
	*t.leaf() = value
	return nil
}

// AssignSlice writes values element by element into a rank-1 tensor.
// len(values) must equal the tensor's extent.
func (t *Tensor[T]) AssignSlice(values []T) error {
	if err := t.live("assign"); err != nil {
		return err
	}
	if t.Rank() != 1 {
		return errors.Wrapf(ErrUnsupportedBroadcast, "assign slice to tensor of rank %d", t.Rank())
	}
	if len(values) != t.shape[0] {
		return errors.Wrapf(ErrShapeMismatch, "assign slice: %d values for extent %d", len(values), t.shape[0])
	}
	for i, v := range values {
		*t.index(i).leaf() = v
	}
	return nil
}

// AssignNested writes a row-major nested slice into a rank-2 tensor.
// Every row is checked before anything is written.
func (t *Tensor[T]) AssignNested(values [][]T) error {
	if err := t.live("assign"); err != nil {
		return err
	}
	if t.Rank() != 2 {
		return errors.Wrapf(ErrUnsupportedBroadcast, "assign nested slice to tensor of rank %d", t.Rank())
	}
	if len(values) != t.shape[0] {
		return errors.Wrapf(ErrShapeMismatch, "assign nested slice: %d rows for extent %d", len(values), t.shape[0])
	}
	for i, row := range values {
		if len(row) != t.shape[1] {
			return errors.Wrapf(ErrShapeMismatch, "assign nested slice: row %d has %d values for extent %d", i, len(row), t.shape[1])
		}
	}
	for i, row := range values {
		r := t.index(i)
		for j, v := range row {
			*r.index(j).leaf() = v
		}
	}
	return nil
}
