package blocks

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/PRiewe/neon-sub000/pkg/pcg"
)

func TestGenerator_Sparse(t *testing.T) {
	gen := NewGenerator(pcg.NewRandomSource(42), nil)
	rects := gen.Sparse(20, 10, 3, 5, 2.0, 4)

	require.NotEmpty(t, rects)
	assert.LessOrEqual(t, len(rects), 4)

	for _, r := range rects {
		assert.GreaterOrEqual(t, r.X, 0)
		assert.GreaterOrEqual(t, r.Y, 0)
		assert.LessOrEqual(t, r.X+r.Width, 20)
		assert.LessOrEqual(t, r.Y+r.Height, 10)
		assert.GreaterOrEqual(t, r.Width, 3)
		assert.LessOrEqual(t, r.Width, 5)
		assert.GreaterOrEqual(t, r.Height, 3)
		assert.LessOrEqual(t, r.Height, 5)
	}

	assertPairwiseDisjoint(t, rects)
}

func TestGenerator_SparseKeepsSeparation(t *testing.T) {
	gen := NewGenerator(pcg.NewRandomSource(7), nil)
	rects := gen.Sparse(40, 40, 4, 6, 2.0, 12)

	for i := range rects {
		for j := range rects {
			if i == j {
				continue
			}
			assert.False(t, rects[i].Inflate(1).Intersects(rects[j]),
				"sparse rectangles %v and %v touch", rects[i], rects[j])
		}
	}
}

func TestGenerator_SparseUnsatisfiable(t *testing.T) {
	gen := NewGenerator(pcg.NewRandomSource(1), nil)

	assert.Empty(t, gen.Sparse(5, 5, 10, 12, 2.0, 3))
	assert.Empty(t, gen.Sparse(20, 20, 5, 4, 2.0, 3))
	assert.Empty(t, gen.Sparse(20, 20, 3, 5, 2.0, 0))
}

func TestGenerator_Packed(t *testing.T) {
	gen := NewGenerator(pcg.NewRandomSource(42), nil)
	rects := gen.Packed(40, 40, 4, 7, 2.0, 16)

	require.NotEmpty(t, rects)
	assertPairwiseDisjoint(t, rects)
	for _, r := range rects {
		assert.LessOrEqual(t, r.X+r.Width, 40)
		assert.LessOrEqual(t, r.Y+r.Height, 40)
	}
}

func TestGenerator_PackedPlacesMoreThanSparse(t *testing.T) {
	sparse := NewGenerator(pcg.NewRandomSource(42), nil).Sparse(30, 30, 4, 6, 2.0, 30)
	packed := NewGenerator(pcg.NewRandomSource(42), nil).Packed(30, 30, 4, 6, 2.0, 30)

	assert.GreaterOrEqual(t, len(packed), len(sparse))
}

func TestGenerator_BSP(t *testing.T) {
	gen := NewGenerator(pcg.NewRandomSource(42), nil)
	rects := gen.BSP(40, 30, 5, 12)

	require.NotEmpty(t, rects)

	area := 0
	for _, r := range rects {
		area += r.Area()
		assert.GreaterOrEqual(t, r.Width, 5)
		assert.GreaterOrEqual(t, r.Height, 5)
	}
	assert.Equal(t, 40*30, area)
	assertPairwiseDisjoint(t, rects)
}

func TestGenerator_BSPTilesExactly(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		seed := rapid.Int64().Draw(t, "seed")
		w := rapid.IntRange(10, 80).Draw(t, "w")
		h := rapid.IntRange(10, 80).Draw(t, "h")
		minSize := rapid.IntRange(2, 6).Draw(t, "min")
		maxSize := rapid.IntRange(minSize, 15).Draw(t, "max")

		gen := NewGenerator(pcg.NewRandomSource(seed), nil)
		rects := gen.BSP(w, h, minSize, maxSize)

		// Exact tiling: every cell covered exactly once.
		covered := make([]int, w*h)
		for _, r := range rects {
			for x := r.X; x < r.X+r.Width; x++ {
				for y := r.Y; y < r.Y+r.Height; y++ {
					if x < 0 || x >= w || y < 0 || y >= h {
						t.Fatalf("rectangle %v escapes %dx%d", r, w, h)
					}
					covered[x*h+y]++
				}
			}
		}
		for i, c := range covered {
			if c != 1 {
				t.Fatalf("cell %d covered %d times", i, c)
			}
		}
	})
}

func TestGenerator_SparsePackedDisjointProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		seed := rapid.Int64().Draw(t, "seed")
		packed := rapid.Bool().Draw(t, "packed")

		gen := NewGenerator(pcg.NewRandomSource(seed), nil)
		var rects []pcg.Rectangle
		if packed {
			rects = gen.Packed(30, 30, 3, 8, 2.5, 12)
		} else {
			rects = gen.Sparse(30, 30, 3, 8, 2.5, 12)
		}

		for i := range rects {
			for j := i + 1; j < len(rects); j++ {
				if rects[i].Intersects(rects[j]) {
					t.Fatalf("rectangles %v and %v overlap", rects[i], rects[j])
				}
			}
		}
	})
}

func TestGenerator_Deterministic(t *testing.T) {
	a := NewGenerator(pcg.NewRandomSource(1234), nil).Packed(30, 30, 3, 8, 2.0, 10)
	b := NewGenerator(pcg.NewRandomSource(1234), nil).Packed(30, 30, 3, 8, 2.0, 10)

	assert.Equal(t, a, b)
}

func assertPairwiseDisjoint(t *testing.T, rects []pcg.Rectangle) {
	t.Helper()
	for i := range rects {
		for j := i + 1; j < len(rects); j++ {
			assert.False(t, rects[i].Intersects(rects[j]),
				"rectangles %v and %v overlap", rects[i], rects[j])
		}
	}
}
