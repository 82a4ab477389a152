package tensor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringScalar(t *testing.T) {
	assert.Equal(t, "5", Scalar(5).String())
	assert.Equal(t, "2.5", Scalar(2.5).String())
}

func TestStringVector(t *testing.T) {
	x, err := FromSlice([]int{1, 2, 3}, Shape{3})
	require.NoError(t, err)
	assert.Equal(t, "[ 1 2 3 ]", x.String())
}

func TestStringMatrixRow(t *testing.T) {
	x := mustNested(t, [][]int{{1, 2, 3}, {4, 5, 6}})
	assert.Equal(t, "[[ 1 2 3 ]\n[ 4 5 6 ]]", x.String())

	row, err := x.Index(1)
	require.NoError(t, err)
	assert.Equal(t, 1, row.Rank())
	assert.Equal(t, "[ 4 5 6 ]", row.String())
}

func TestStringRank3(t *testing.T) {
	x, err := FromSlice([]int{1, 2, 3, 4, 5, 6, 7, 8}, Shape{2, 2, 2})
	require.NoError(t, err)
	assert.Equal(t, "[[[ 1 2 ]\n[ 3 4 ]]\n[[ 5 6 ]\n[ 7 8 ]]]", x.String())
}

func TestStringSlicedView(t *testing.T) {
	x := mustNested(t, [][]int{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}})
	v, err := x.SliceMany(Range{1, 3}, Range{0, 2})
	require.NoError(t, err)
	assert.Equal(t, "[[ 4 5 ]\n[ 7 8 ]]", v.String())
}

func TestRawString(t *testing.T) {
	x, err := Arange(0, 6)
	require.NoError(t, err)
	assert.Equal(t, "0 1 2 3 4 5 ", x.RawString())

	m, err := FromSlice(mustValues(t, x), Shape{2, 3})
	require.NoError(t, err)
	row, err := m.Index(1)
	require.NoError(t, err)
	assert.Equal(t, "3 4 5 ", row.RawString())

	// Slicing shifts offsets, not the origin: the raw dump starts at the
	// buffer position of the unsliced view.
	s, err := x.Slice(2, 4)
	require.NoError(t, err)
	assert.Equal(t, "0 1 ", s.RawString())
}

func TestRawStringOriginPastBuffer(t *testing.T) {
	x, err := FromSlice([]int{1, 2, 3, 4, 5, 6}, Shape{2, 3})
	require.NoError(t, err)

	past, err := x.IndexUnchecked(3)
	require.NoError(t, err)
	assert.Equal(t, "", past.RawString())

	// A view that runs past the end is cut at the buffer boundary.
	wide, err := x.SliceUnchecked(0, 3)
	require.NoError(t, err)
	assert.Equal(t, 9, wide.NumElements())
	assert.Equal(t, "1 2 3 4 5 6 ", wide.RawString())
}

func TestProperties(t *testing.T) {
	x, err := New[int](Shape{2, 3})
	require.NoError(t, err)
	v, err := x.Slice(1, 2)
	require.NoError(t, err)

	assert.Equal(t,
		"Num Dimensions: 2\n"+
			"Num Elements: 6\n"+
			"Is Owner: true\n"+
			"Shape: 2\tStride: 3\tOffset 0\n"+
			"Shape: 3\tStride: 1\tOffset 0\n",
		x.Properties())

	assert.Equal(t,
		"Num Dimensions: 2\n"+
			"Num Elements: 3\n"+
			"Is Owner: false\n"+
			"Shape: 1\tStride: 3\tOffset 1\n"+
			"Shape: 3\tStride: 1\tOffset 0\n",
		v.Properties())

	assert.Equal(t, "Num Dimensions: 0\nNum Elements: 1\nIs Owner: true\n", Scalar(1).Properties())
}

func TestStringReleased(t *testing.T) {
	x := Scalar(1)
	x.Release()
	assert.Equal(t, "<released>", x.String())
	assert.Equal(t, "<released>", x.RawString())
}
