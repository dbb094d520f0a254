package imaging

import (
	"image"
	"io"

	"github.com/disintegration/imaging"
	"golang.org/x/image/vector"

	"github.com/neatar/neatar/utils/identicon"
)

// 4本の3次ベジェ曲線で円を近似する際の制御点の係数
const kappa = 0.5522847498

// RenderIcon identiconを一辺2*HalfSizeのRGBA画像に描画します
//
// 円の外側は透明になります。
func RenderIcon(icon *identicon.Image) *image.RGBA {
	side := 2 * icon.HalfSize
	dst := image.NewRGBA(image.Rect(0, 0, side, side))

	fillCircle(dst, icon.Background, icon.HalfSize)
	for _, c := range icon.Circles {
		fillCircle(dst, c, icon.HalfSize)
	}
	return dst
}

// EncodeIconPNG identiconをPNGとしてwに書き出します
func EncodeIconPNG(w io.Writer, icon *identicon.Image) error {
	return imaging.Encode(w, RenderIcon(icon), imaging.PNG)
}

func fillCircle(dst *image.RGBA, c identicon.Circle, offset int) {
	if c.Radius <= 0 {
		return
	}
	b := dst.Bounds()
	z := vector.NewRasterizer(b.Dx(), b.Dy())

	x := float32(c.Center.X + offset)
	y := float32(c.Center.Y + offset)
	r := float32(c.Radius)
	k := r * kappa

	z.MoveTo(x+r, y)
	z.CubeTo(x+r, y+k, x+k, y+r, x, y+r)
	z.CubeTo(x-k, y+r, x-r, y+k, x-r, y)
	z.CubeTo(x-r, y-k, x-k, y-r, x, y-r)
	z.CubeTo(x+k, y-r, x+r, y-k, x+r, y)
	z.ClosePath()
	z.Draw(dst, b, image.NewUniform(c.Fill), image.Point{})
}
