// Package avatar renders fallback avatars for users without an uploaded
// picture and downscales uploaded avatar images.
package avatar

import (
	"crypto/sha256"
	"encoding/xml"
	"fmt"
	"math"
	"strings"
	"unicode"
	"unicode/utf8"
)

// DefaultSize is the placeholder avatar edge length in pixels.
const DefaultSize = 128

// GenerateInitialsSVG renders a deterministic initials avatar as an SVG
// document. Up to three initials are taken from the words of fullName; the
// background color is derived from a hash of the name so the same user always
// gets the same avatar.
func GenerateInitialsSVG(fullName string, size int) string {
	if size <= 0 {
		size = 128
	}
	if strings.TrimSpace(fullName) == "" {
		fullName = "?"
	}

	parts := strings.FieldsFunc(fullName, func(r rune) bool {
		return r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == '-' || r == '_'
	})

	var initials strings.Builder
	for i, p := range parts {
		if i == 3 {
			break
		}
		r, _ := utf8.DecodeRuneInString(p)
		initials.WriteRune(unicode.ToUpper(r))
	}
	if initials.Len() == 0 {
		initials.WriteRune('?')
	}

	bg := colorFromString(fullName)
	textColor := "#FFFFFF"
	if isLight(bg) {
		textColor = "#000000"
	}

	half := float64(size) / 2
	fontSize := int(math.Round(float64(size) * 0.5))

	var escaped strings.Builder
	xml.EscapeText(&escaped, []byte(initials.String()))

	var sb strings.Builder
	fmt.Fprintf(&sb, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`+"\n", size, size, size, size)
	fmt.Fprintf(&sb, `  <circle cx="%g" cy="%g" r="%g" fill="%s" />`+"\n", half, half, half, rgbHex(bg))
	fmt.Fprintf(&sb, `  <text x="50%%" y="50%%" text-anchor="middle" dominant-baseline="central" font-family="system-ui, sans-serif" font-size="%dpx" font-weight="600" fill="%s">%s</text>`+"\n", fontSize, textColor, escaped.String())
	sb.WriteString("</svg>\n")
	return sb.String()
}

type rgb struct{ r, g, b uint8 }

func colorFromString(s string) rgb {
	sum := sha256.Sum256([]byte(s))
	return rgb{sum[0], sum[1], sum[2]}
}

func rgbHex(c rgb) string {
	return fmt.Sprintf("#%02X%02X%02X", c.r, c.g, c.b)
}

// isLight reports whether black text would be more legible than white on the
// given background, using the perceived-luminance formula.
func isLight(c rgb) bool {
	luminance := 0.299*float64(c.r) + 0.587*float64(c.g) + 0.114*float64(c.b)
	return luminance > 150
}
