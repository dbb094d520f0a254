package identicon

import (
	"image/color"
	"math"
)

// PaletteSize パレットの色数
const PaletteSize = 32

var (
	// DarkColor 0に対応する色
	DarkColor = color.RGBA{R: 4, G: 4, B: 4, A: 255}
	// ForegroundColor 255に対応する色。背景の大円にも使われる
	ForegroundColor = color.RGBA{R: 238, G: 238, B: 238, A: 255}
)

// Palette ダイジェストから導出された32色
type Palette [PaletteSize]color.RGBA

// Saturation 彩度(パーセント)を返します。値域は[30, 109]
//
// 100を超える値もそのまま使用します。
func Saturation(b byte) int {
	return ((int(b)*70/256 + 26) % 80) + 30
}

// NewPalette ダイジェストの先頭32バイトからパレットを生成します
func NewPalette(d Digest) Palette {
	sat := float64(Saturation(d[29])) / 100

	var p Palette
	for i := range p {
		p[i] = paletteColor(d[i]+byte(i%28)*58, sat)
	}
	return p
}

func paletteColor(b byte, sat float64) color.RGBA {
	switch b {
	case 0:
		return DarkColor
	case 255:
		return ForegroundColor
	}

	hue := int(b%64) * 360 / 64

	var lightness int
	switch b / 64 {
	case 0:
		lightness = 53
	case 1:
		lightness = 15
	case 2:
		lightness = 35
	default:
		lightness = 75
	}

	return hslToRGB(hue, sat, float64(lightness)/100)
}

// hslToRGB HSLをsRGBに変換します
//
// 彩度が1を超えていてもクランプせずに計算し、変換後の各成分を[0, 1]に丸めます。
func hslToRGB(hue int, s, l float64) color.RGBA {
	c := (1 - math.Abs(l*2-1)) * s
	h := float64(hue) / 60
	x := c * (1 - math.Abs(math.Mod(h, 2)-1))
	m := l - c*0.5

	var r, g, b float64
	switch {
	case h < 1:
		r, g, b = c, x, 0
	case h < 2:
		r, g, b = x, c, 0
	case h < 3:
		r, g, b = 0, c, x
	case h < 4:
		r, g, b = 0, x, c
	case h < 5:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	return color.RGBA{
		R: component(r + m),
		G: component(g + m),
		B: component(b + m),
		A: 255,
	}
}

func component(v float64) uint8 {
	return uint8(math.Round(math.Max(0, math.Min(1, v)) * 255))
}
