package glshapes

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/image/colornames"
)

// ErrColor is returned for colors that are neither a hexadecimal color nor a known color name.
var ErrColor = errors.New("bad color")

// ParseColor parses a hexadecimal color starting with # or an SVG color name such as "steelblue".
func ParseColor(s string) (Color, error) {
	if strings.HasPrefix(s, "#") {
		if n := len(s) - 1; (n != 3 && n != 4 && n != 6 && n != 8) || strings.Trim(s[1:], "0123456789abcdefABCDEF") != "" {
			return Black, fmt.Errorf("%w: %s", ErrColor, s)
		}
		return Hex(s), nil
	}
	c, ok := colornames.Map[strings.ToLower(s)]
	if !ok {
		return Black, fmt.Errorf("%w: unknown name %s", ErrColor, s)
	}
	return ColorFromRGBA(c), nil
}

// Hex parses a CSS hexadecimal color such as e.g. #ff0000 or F00. The alpha component of four and eight digit colors is ignored. Invalid colors return Black.
func Hex(s string) Color {
	if 0 < len(s) && s[0] == '#' {
		s = s[1:]
	}
	h := make([]uint8, len(s))
	for i, c := range []byte(s) {
		if '0' <= c && c <= '9' {
			h[i] = c - '0'
		} else if 'a' <= c && c <= 'f' {
			h[i] = 10 + c - 'a'
		} else if 'A' <= c && c <= 'F' {
			h[i] = 10 + c - 'A'
		} else {
			return Black
		}
	}
	if len(s) == 3 || len(s) == 4 {
		return NewColorFrom8(h[0]*16+h[0], h[1]*16+h[1], h[2]*16+h[2])
	} else if len(s) == 6 || len(s) == 8 {
		return NewColorFrom8(h[0]*16+h[1], h[2]*16+h[3], h[4]*16+h[5])
	}
	return Black
}

// Named colors, see https://www.w3.org/TR/css-color-3/#svg-color
var (
	Black         = NewColorFrom8(0x00, 0x00, 0x00)
	White         = NewColorFrom8(0xff, 0xff, 0xff)
	Red           = NewColorFrom8(0xff, 0x00, 0x00)
	Green         = NewColorFrom8(0x00, 0x80, 0x00)
	Blue          = NewColorFrom8(0x00, 0x00, 0xff)
	Yellow        = NewColorFrom8(0xff, 0xff, 0x00)
	Orange        = NewColorFrom8(0xff, 0xa5, 0x00)
	Gray          = NewColorFrom8(0x80, 0x80, 0x80)
	Lightgray     = NewColorFrom8(0xd3, 0xd3, 0xd3)
	Darkgray      = NewColorFrom8(0xa9, 0xa9, 0xa9)
	Steelblue     = NewColorFrom8(0x46, 0x82, 0xb4)
	Tomato        = NewColorFrom8(0xff, 0x63, 0x47)
	Teal          = NewColorFrom8(0x00, 0x80, 0x80)
	Whitesmoke    = NewColorFrom8(0xf5, 0xf5, 0xf5)
	Darkslategray = NewColorFrom8(0x2f, 0x4f, 0x4f)
)
