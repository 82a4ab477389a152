package tensor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/x448/float16"
)

func TestFloat16RoundTrip(t *testing.T) {
	x := mustNested(t, [][]float32{{1.5, -2, 0.25}, {1024, 0, -0.5}})

	bits, err := ToFloat16(x)
	require.NoError(t, err)
	require.Len(t, bits, 6)
	assert.Equal(t, float16.Fromfloat32(1.5), bits[0])

	y, err := FromFloat16(bits, x.Shape())
	require.NoError(t, err)
	assert.Equal(t, mustValues(t, x), mustValues(t, y))
}

func TestToFloat16OfView(t *testing.T) {
	x := mustNested(t, [][]float32{{1, 2, 3}, {4, 5, 6}})
	col, err := x.SliceMany(Range{0, 2}, Range{1, 2})
	require.NoError(t, err)

	bits, err := ToFloat16(col)
	require.NoError(t, err)
	require.Len(t, bits, 2)
	assert.Equal(t, float32(2), bits[0].Float32())
	assert.Equal(t, float32(5), bits[1].Float32())
}

func TestFromFloat16LengthMismatch(t *testing.T) {
	_, err := FromFloat16(make([]float16.Float16, 3), Shape{2, 2})
	assert.ErrorIs(t, err, ErrShapeMismatch)
}

func TestFloat16Precision(t *testing.T) {
	// 1/3 is not representable in binary16; the packed value is the nearest one.
	x := Scalar(float32(1.0 / 3.0))
	bits, err := ToFloat16(x)
	require.NoError(t, err)
	assert.InDelta(t, 1.0/3.0, bits[0].Float32(), 1e-3)
	assert.NotEqual(t, float32(1.0/3.0), bits[0].Float32())
}
