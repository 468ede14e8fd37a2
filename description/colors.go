package description

import "github.com/gdamore/tcell/v2"

// Row colors, one per stat family
var (
	ColorHealth       = tcell.NewRGBColor(195, 133, 134)
	ColorStamina      = tcell.NewRGBColor(211, 193, 149)
	ColorMana         = tcell.NewRGBColor(135, 179, 208)
	ColorNeeds        = tcell.NewRGBColor(149, 194, 133)
	ColorCorruption   = tcell.NewRGBColor(167, 165, 72)
	ColorStatusEffect = tcell.NewRGBColor(199, 255, 179)
	ColorStatusCure   = tcell.NewRGBColor(255, 179, 180)
	ColorChance       = tcell.NewRGBColor(192, 192, 192) // silver

	ColorFaster = tcell.ColorLightGreen
	ColorSlower = tcell.ColorLightCoral
)

// hexRGBA renders a color as RRGGBBAA for rich-text markup
func hexRGBA(c tcell.Color) string {
	r, g, b := c.RGB()
	if r < 0 {
		return "FFFFFFFF"
	}
	return hex2(r) + hex2(g) + hex2(b) + "FF"
}

func hex2(v int32) string {
	const digits = "0123456789ABCDEF"
	return string([]byte{digits[(v>>4)&0xF], digits[v&0xF]})
}
