package tensor

import (
	"fmt"
	"testing"
)

func BenchmarkTensorCreation(b *testing.B) {
	shape := Shape{100, 100}

	b.Run("Zeros", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_, _ = Zeros[float32](shape)
		}
	})

	b.Run("Ones", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_, _ = Ones[float32](shape)
		}
	})
}

func BenchmarkShapeOperations(b *testing.B) {
	shape := Shape{100, 100}

	b.Run("NumElements", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = shape.NumElements()
		}
	})

	b.Run("ComputeStrides", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = shape.ComputeStrides()
		}
	})

	b.Run("Validate", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = shape.Validate()
		}
	})
}

func BenchmarkViews(b *testing.B) {
	x, _ := Ones[float32](Shape{64, 64, 64})

	b.Run("Index", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_, _ = x.Index(i % 64)
		}
	})

	b.Run("Slice", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_, _ = x.Slice(8, 40)
		}
	})

	b.Run("SliceMany", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_, _ = x.SliceMany(Range{8, 40}, Range{0, 32}, Range{16, 48})
		}
	})
}

func BenchmarkTensorElementWise(b *testing.B) {
	for _, n := range []int{10, 100} {
		x, _ := Full[float32](Shape{n, n}, 3)
		y, _ := Full[float32](Shape{n, n}, 2)

		b.Run(fmt.Sprintf("Add_%dx%d", n, n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				r, _ := x.Add(y)
				r.Release()
			}
		})

		b.Run(fmt.Sprintf("Div_%dx%d", n, n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				r, _ := x.Div(y)
				r.Release()
			}
		})

		b.Run(fmt.Sprintf("Assign_%dx%d", n, n), func(b *testing.B) {
			dst, _ := New[float32](Shape{n, n})
			for i := 0; i < b.N; i++ {
				_ = dst.Assign(x)
			}
		})
	}
}
