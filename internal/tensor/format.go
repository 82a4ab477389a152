package tensor

import (
	"fmt"
	"strings"
)

const releasedText = "<released>"

// String renders the addressed elements.
//
// A scalar renders as its bare value, a vector as "[ 1 2 3 ]", and higher
// ranks as their leading-axis sub-tensors joined by newlines inside brackets:
//
//	[[ 1 2 3 ]
//	[ 4 5 6 ]]
func (t *Tensor[T]) String() string {
	if t.Released() {
		return releasedText
	}
	var sb strings.Builder
	t.render(&sb)
	return sb.String()
}

func (t *Tensor[T]) render(sb *strings.Builder) {
	switch t.Rank() {
	case 0:
		fmt.Fprintf(sb, "%v", *t.leaf())
	case 1:
		sb.WriteString("[ ")
		for i := 0; i < t.shape[0]; i++ {
			fmt.Fprintf(sb, "%v ", *t.index(i).leaf())
		}
		sb.WriteByte(']')
	default:
		sb.WriteByte('[')
		for i := 0; i < t.shape[0]; i++ {
			if i > 0 {
				sb.WriteByte('\n')
			}
			t.index(i).render(sb)
		}
		sb.WriteByte(']')
	}
}

// RawString dumps NumElements consecutive buffer elements starting at the
// view's origin, each followed by a space. Strides and slice offsets are
// ignored, so for a sliced view this shows the raw memory layout rather than
// the addressed elements. The dump stops at the end of the buffer, so a
// view whose origin lies past it dumps nothing.
func (t *Tensor[T]) RawString() string {
	if t.Released() {
		return releasedText
	}
	n := len(t.buf.data)
	start := min(t.base, n)
	end := min(t.base+t.numElems, n)
	var sb strings.Builder
	for _, v := range t.buf.data[start:end] {
		fmt.Fprintf(&sb, "%v ", v)
	}
	return sb.String()
}

// Properties describes the tensor's metadata, one fact per line, with one
// "Shape/Stride/Offset" line per axis.
func (t *Tensor[T]) Properties() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Num Dimensions: %d\n", t.Rank())
	fmt.Fprintf(&sb, "Num Elements: %d\n", t.numElems)
	fmt.Fprintf(&sb, "Is Owner: %t\n", t.owner)
	for d := range t.shape {
		fmt.Fprintf(&sb, "Shape: %d\tStride: %d\tOffset %d\n", t.shape[d], t.stride[d], t.offset[d])
	}
	return sb.String()
}
