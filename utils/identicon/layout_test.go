package identicon

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPositions(t *testing.T) {
	t.Parallel()

	assert.Equal(t, [CircleCount]Point{
		{0, -24}, {0, -12}, {-10, -18}, {-20, -12}, {-10, -6}, {-20, 0}, {-20, 12}, {-10, 6}, {-10, 18},
		{0, 24}, {0, 12}, {10, 18}, {20, 12}, {10, 6}, {20, 0}, {20, -12}, {10, -6}, {10, -18},
		{0, 0},
	}, positions(12))

	// a/2, 3a/2 は0方向に切り捨て
	p := positions(9)
	assert.Equal(t, Point{-8, -13}, p[2])
	assert.Equal(t, Point{-8, -4}, p[4])
	assert.Equal(t, Point{-8, 4}, p[7])
	assert.Equal(t, Point{8, 13}, p[11])
}

func TestPositions_Symmetric(t *testing.T) {
	t.Parallel()

	// y軸について鏡像となる組
	pairs := [][2]int{{0, 0}, {1, 1}, {2, 17}, {3, 15}, {4, 16}, {5, 14}, {6, 12}, {7, 13}, {8, 11}, {9, 9}, {10, 10}, {18, 18}}
	for _, a := range []int{3, 9, 12, 24, 384} {
		p := positions(a)
		for _, pair := range pairs {
			l, r := p[pair[0]], p[pair[1]]
			assert.Equal(t, -l.X, r.X, "a=%d %v", a, pair)
			assert.Equal(t, l.Y, r.Y, "a=%d %v", a, pair)
		}
		assert.Equal(t, Point{}, p[CircleCount-1])
	}
}

func TestSizes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		halfSize int
		a        int
		r        int
	}{
		{32, 12, 5},
		{64, 24, 10},
		{50, 18, 7},
		{16, 6, 2},
		{MinHalfSize, 3, 1},
		{1024, 384, 160},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.a, centerToCenter(tt.halfSize))
		assert.Equal(t, tt.r, smallRadius(tt.halfSize))
	}
}
