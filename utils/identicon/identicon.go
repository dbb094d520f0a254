package identicon

import (
	"image/color"
)

const (
	// DefaultHalfSize デフォルトの大円の半径
	DefaultHalfSize = 32
	// MinHalfSize 小円の半径と中心間距離がどちらも1以上になる最小の大円の半径
	MinHalfSize = 8
)

// Circle 描画する円
type Circle struct {
	// Center 中心座標 (原点は画像の中心)
	Center Point
	// Radius 半径
	Radius int
	// Fill 塗りつぶし色
	Fill color.RGBA
}

// Image 描画前のidenticon
type Image struct {
	// HalfSize 画像の一辺の半分の長さ
	HalfSize int
	// Background 背景の大円
	Background Circle
	// Circles 配色済みの19個の小円
	Circles [CircleCount]Circle
}

// Colors シードから19個の円の色を順に返します
func Colors(seed []byte) [CircleCount]color.RGBA {
	d := Normalize(seed)
	p := NewPalette(d)
	slots := ChooseScheme(d).Slots(Rotation(d))

	var out [CircleCount]color.RGBA
	for i, idx := range slots {
		out[i] = p[idx]
	}
	return out
}

// New シードと半径から描画するidenticonを組み立てます
func New(seed []byte, halfSize int) *Image {
	img := &Image{
		HalfSize: halfSize,
		Background: Circle{
			Radius: halfSize,
			Fill:   ForegroundColor,
		},
	}

	colors := Colors(seed)
	pos := positions(centerToCenter(halfSize))
	r := smallRadius(halfSize)
	for i := range img.Circles {
		img.Circles[i] = Circle{
			Center: pos[i],
			Radius: r,
			Fill:   colors[i],
		}
	}
	return img
}

// Generate identiconを生成し、そのsvgを返します
func Generate(seed []byte, halfSize int) string {
	return New(seed, halfSize).SVG()
}

// Make デフォルトの大きさでidenticonを生成し、そのsvgを返します
func Make(seed []byte) string {
	return Generate(seed, DefaultHalfSize)
}
