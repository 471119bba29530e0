package normalize

import (
	"strings"

	"github.com/mazznoer/csscolorparser"
)

// compactHex rewrites a hex color token in its shortest lowercase form.
// Anything that is not a 3, 4, 6 or 8 digit hex color is returned as is.
func compactHex(token string) string {
	digits := strings.TrimPrefix(token, "#")
	switch len(digits) {
	case 3, 4, 6, 8:
	default:
		return token
	}
	for i := 0; i < len(digits); i++ {
		if !isHexDigit(digits[i]) {
			return token
		}
	}

	c, err := csscolorparser.Parse(token)
	if err != nil {
		return token
	}

	hex := c.HexString()
	if short, ok := shortenHex(hex); ok {
		return short
	}
	return hex
}

// shortenHex turns #rrggbb(aa) into #rgb(a) when every channel repeats.
func shortenHex(hex string) (string, bool) {
	digits := strings.TrimPrefix(hex, "#")
	if len(digits) != 6 && len(digits) != 8 {
		return "", false
	}
	var b strings.Builder
	b.WriteByte('#')
	for i := 0; i < len(digits); i += 2 {
		if digits[i] != digits[i+1] {
			return "", false
		}
		b.WriteByte(digits[i])
	}
	return b.String(), true
}

func isHexDigit(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}
