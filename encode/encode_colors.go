package encode

import (
	"github.com/clockworkengineer/bencode-sub000/ir"

	"github.com/fatih/color"
)

// ColorAttr is the role of a piece of text in the view.
type ColorAttr int

const (
	FieldColor ColorAttr = iota
	ValueColor
	SepColor
	ElidedColor
)

type Colorable struct {
	Type ir.Type
	Attr ColorAttr
}

type rgb [3]int

// palette entries apply to every type when Type is NoneType and Attr is
// SepColor or ElidedColor; more specific entries are applied afterwards.
var palette = []struct {
	able Colorable
	rgb  rgb
}{
	{Colorable{ir.NoneType, SepColor}, rgb{255, 0, 196}},
	{Colorable{ir.NoneType, ElidedColor}, rgb{96, 96, 96}},
	{Colorable{ir.NoneType, ValueColor}, rgb{168, 0, 196}},
	{Colorable{ir.IntegerType, ValueColor}, rgb{128, 216, 236}},
	{Colorable{ir.StringType, ValueColor}, rgb{8, 196, 16}},
	{Colorable{ir.DictionaryType, FieldColor}, rgb{128, 168, 196}},
	{Colorable{ir.DictionaryType, SepColor}, rgb{196, 128, 128}},
	{Colorable{ir.ListType, SepColor}, rgb{196, 168, 128}},
}

// Colors maps a type and role to a terminal color. Pairs without an entry
// are rendered by Default.
type Colors struct {
	Default func(string) string
	Map     map[Colorable]*color.Color
}

func NewColors() *Colors {
	c := &Colors{
		Default: func(s string) string { return s },
		Map:     map[Colorable]*color.Color{},
	}
	for _, p := range palette {
		col := color.RGB(p.rgb[0], p.rgb[1], p.rgb[2])
		if p.able.Type == ir.NoneType && p.able.Attr != ValueColor {
			for _, t := range ir.Types() {
				c.Map[Colorable{t, p.able.Attr}] = col
			}
			continue
		}
		c.Map[p.able] = col
	}
	return c
}

func (c *Colors) Color(t ir.Type, a ColorAttr, s string) string {
	return c.Get(t, a)(s)
}

func (c *Colors) Get(t ir.Type, a ColorAttr) func(string) string {
	col := c.Map[Colorable{Type: t, Attr: a}]
	if col == nil {
		return c.Default
	}
	return func(s string) string { return col.Sprint(s) }
}
