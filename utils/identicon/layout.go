package identicon

import (
	"math"
)

// Point 座標
type Point struct {
	X int
	Y int
}

// positions 中心間距離aに対する19個の円の中心座標を返します
//
// 外周12個、内周6個、中心1個の順。配色スキームのスロット順と一致している必要があります。
func positions(a int) [CircleCount]Point {
	b := int(math.Round(float64(a) * math.Sqrt(3) / 2))
	return [CircleCount]Point{
		{0, -2 * a},
		{0, -a},
		{-b, -3 * a / 2},
		{-2 * b, -a},
		{-b, -a / 2},
		{-2 * b, 0},
		{-2 * b, a},
		{-b, a / 2},
		{-b, 3 * a / 2},
		{0, 2 * a},
		{0, a},
		{b, 3 * a / 2},
		{2 * b, a},
		{b, a / 2},
		{2 * b, 0},
		{2 * b, -a},
		{b, -a / 2},
		{b, -3 * a / 2},
		{0, 0},
	}
}

// centerToCenter 半径halfSizeの大円に対する小円の中心間距離
func centerToCenter(halfSize int) int {
	return halfSize / 8 * 3
}

// smallRadius 半径halfSizeの大円に対する小円の半径
func smallRadius(halfSize int) int {
	return halfSize * 5 / 32
}
