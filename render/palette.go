package render

import "image/color"

// Scene colours
var (
	ColorBackgroundTop    = Hex("#0B1426")
	ColorBackgroundBottom = Hex("#1E3A5F")
	ColorGold             = Hex("#F9A03F")
	ColorGridDot          = RGBA(249, 160, 63, 0.1)
	ColorCream            = Hex("#FFF8E7")
	ColorPanel            = RGBA(0, 0, 0, 0.8)

	ColorPursuerBody    = Hex("#FFDD44")
	ColorPursuerShade   = Hex("#E6C200")
	ColorPursuerOutline = Hex("#CC9900")
	ColorPursuerEye     = Hex("#000000")
	ColorPursuerGlint   = Hex("#FFFFFF")
)

// Variant is one entry of the collectible palette
type Variant struct {
	Name  string
	Glyph string
	Body  color.RGBA // fallback fill where glyphs cannot render
}

// Variants is the fixed collectible palette indexed by Collectible.Variant
var Variants = []Variant{
	{Name: "cake", Glyph: "🍰", Body: Hex("#F6D0B1")},
	{Name: "cupcake", Glyph: "🧁", Body: Hex("#E88FB4")},
	{Name: "birthday", Glyph: "🎂", Body: Hex("#F2C14E")},
	{Name: "cookie", Glyph: "🍪", Body: Hex("#C68B59")},
	{Name: "pie", Glyph: "🥧", Body: Hex("#D9A441")},
	{Name: "doughnut", Glyph: "🍩", Body: Hex("#D98A6C")},
	{Name: "croissant", Glyph: "🥐", Body: Hex("#E0A458")},
	{Name: "custard", Glyph: "🍮", Body: Hex("#F4D35E")},
}

// VariantAt wraps i into the palette
func VariantAt(i int) Variant {
	n := len(Variants)
	i %= n
	if i < 0 {
		i += n
	}
	return Variants[i]
}
