package identicon

import (
	"encoding/hex"
	"fmt"
	"image/color"
	"slices"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

const svgNamespace = "http://www.w3.org/2000/svg"

// element svg要素。属性は名前順に出力される
type element struct {
	name     string
	attrs    map[string]string
	children []*element
}

func newElement(name string) *element {
	return &element{name: name, attrs: map[string]string{}}
}

func (e *element) set(key string, value any) *element {
	switch v := value.(type) {
	case string:
		e.attrs[key] = v
	case int:
		e.attrs[key] = strconv.Itoa(v)
	default:
		e.attrs[key] = fmt.Sprint(v)
	}
	return e
}

func (e *element) add(child *element) *element {
	e.children = append(e.children, child)
	return e
}

func (e *element) writeTo(sb *strings.Builder) {
	sb.WriteByte('<')
	sb.WriteString(e.name)

	keys := lo.Keys(e.attrs)
	slices.Sort(keys)
	for _, k := range keys {
		sb.WriteByte(' ')
		sb.WriteString(k)
		sb.WriteString(`="`)
		sb.WriteString(e.attrs[k])
		sb.WriteByte('"')
	}

	if len(e.children) == 0 {
		sb.WriteString("/>")
		return
	}
	sb.WriteByte('>')
	for _, c := range e.children {
		c.writeTo(sb)
	}
	sb.WriteString("</")
	sb.WriteString(e.name)
	sb.WriteByte('>')
}

func (c Circle) element() *element {
	return newElement("circle").
		set("cx", c.Center.X).
		set("cy", c.Center.Y).
		set("r", c.Radius).
		set("fill", HexColor(c.Fill)).
		set("stroke", "none")
}

// HexColor 色を#rrggbb形式の文字列にします。アルファは無視されます
func HexColor(c color.RGBA) string {
	return "#" + hex.EncodeToString([]byte{c.R, c.G, c.B})
}

// SVG 改行を含まない1行のsvg文書を返します
func (img *Image) SVG() string {
	h := img.HalfSize
	doc := newElement("svg").
		set("viewBox", fmt.Sprintf("%d %d %d %d", -h, -h, 2*h, 2*h)).
		set("xmlns", svgNamespace)

	doc.add(img.Background.element())
	for _, c := range img.Circles {
		doc.add(c.element())
	}

	var sb strings.Builder
	sb.Grow(64 + (CircleCount+1)*72)
	doc.writeTo(&sb)
	return sb.String()
}
