package identicon

import (
	"fmt"
	"slices"

	"github.com/samber/lo"
)

// CircleCount 背景を除く円の数
const CircleCount = 19

// Scheme 配色スキーム
type Scheme struct {
	// Name スキーム名
	Name string
	// Weight 選択される重み
	Weight uint32
	// Colors 各スロットが参照するパレットのインデックス
	Colors [CircleCount]int
}

// schemes 組み込みの配色スキーム。宣言順に重みを累積して選択する
var schemes = [...]Scheme{
	{
		Name:   "target",
		Weight: 1,
		Colors: [CircleCount]int{0, 28, 0, 0, 28, 0, 0, 28, 0, 0, 28, 0, 0, 28, 0, 0, 28, 0, 1},
	},
	{
		Name:   "cube",
		Weight: 20,
		Colors: [CircleCount]int{0, 1, 3, 2, 4, 3, 0, 1, 3, 2, 4, 3, 0, 1, 3, 2, 4, 3, 5},
	},
	{
		Name:   "quazar",
		Weight: 16,
		Colors: [CircleCount]int{1, 2, 3, 1, 2, 4, 5, 5, 4, 1, 2, 3, 1, 2, 4, 5, 5, 4, 0},
	},
	{
		Name:   "flower",
		Weight: 32,
		Colors: [CircleCount]int{0, 1, 2, 0, 1, 2, 0, 1, 2, 0, 1, 2, 0, 1, 2, 0, 1, 2, 3},
	},
	{
		Name:   "cyclic",
		Weight: 32,
		Colors: [CircleCount]int{0, 1, 2, 3, 4, 5, 0, 1, 2, 3, 4, 5, 0, 1, 2, 3, 4, 5, 6},
	},
	{
		Name:   "vmirror",
		Weight: 128,
		Colors: [CircleCount]int{0, 1, 2, 3, 4, 5, 3, 4, 2, 0, 1, 6, 7, 8, 9, 7, 8, 6, 10},
	},
	{
		Name:   "hmirror",
		Weight: 128,
		Colors: [CircleCount]int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 8, 6, 7, 5, 3, 4, 2, 11},
	},
}

// totalWeight 全スキームの重みの合計 (357)
var totalWeight = lo.SumBy(schemes[:], func(s Scheme) uint32 { return s.Weight })

// Schemes 組み込みの配色スキームのコピーを返します
func Schemes() []Scheme {
	return slices.Clone(schemes[:])
}

// TotalWeight 全スキームの重みの合計を返します
func TotalWeight() uint32 {
	return totalWeight
}

// ChooseScheme ダイジェストのbyte30, 31から配色スキームを選択します
func ChooseScheme(d Digest) Scheme {
	return chooseScheme((uint32(d[30]) + uint32(d[31])*256) % totalWeight)
}

// chooseScheme 重みを累積し、初めてdを超えたスキームを返します
//
// dは必ずtotalWeight未満なので、選択できなかった場合は内部不整合としてpanicします。
func chooseScheme(d uint32) Scheme {
	var sum uint32
	for _, s := range schemes {
		sum += s.Weight
		if d < sum {
			return s
		}
	}
	panic(fmt.Sprintf("identicon: no scheme selected for %d (total weight %d)", d, totalWeight))
}

// Rotation ダイジェストのbyte28から回転量を返します。値は{0, 3, ..., 15}
func Rotation(d Digest) int {
	return int(d[28]%6) * 3
}

// Slots 回転を適用した各円のパレットインデックスを返します。最後の円(中心)は回転しません
func (s Scheme) Slots(rot int) [CircleCount]int {
	var out [CircleCount]int
	for i := range out {
		slot := CircleCount - 1
		if i < CircleCount-1 {
			slot = (i + rot) % (CircleCount - 1)
		}
		out[i] = s.Colors[slot]
	}
	return out
}
