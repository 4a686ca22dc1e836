package codegen

import "strings"

// AddFloatSuffix appends the C float suffix to a numeric literal:
// integers become "n.f", decimals become "n.nf". Tokens that already
// carry a suffix, contain a comment marker, or do not match the
// numeric grammar come back unchanged, which makes the function
// idempotent on its own output.
func AddFloatSuffix(token string) string {
	if token == "" {
		return token
	}
	if strings.HasSuffix(token, "f") || strings.HasSuffix(token, "F") {
		return token
	}
	if strings.Contains(token, "/*") || strings.Contains(token, "//") {
		return token
	}
	hasDot, ok := classifyNumeric(token)
	if !ok {
		return token
	}
	if hasDot {
		return token + "f"
	}
	return token + ".f"
}

// classifyNumeric reports whether s is an optionally negative numeric
// literal (digits, optional single point, optional fraction digits)
// and whether it contains a decimal point.
func classifyNumeric(s string) (hasDot, ok bool) {
	i := 0
	if i < len(s) && s[i] == '-' {
		i++
	}
	if i >= len(s) || s[i] < '0' || s[i] > '9' {
		return false, false
	}
	for ; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
		case c == '.':
			if hasDot {
				return false, false
			}
			hasDot = true
		default:
			return false, false
		}
	}
	return hasDot, true
}

// SuffixNumbers applies AddFloatSuffix to every standalone numeric
// word in text. Comment segments are protected by the splitter and
// rejoined untouched; identifiers and already-suffixed literals pass
// through.
func SuffixNumbers(text string) string {
	if text == "" {
		return text
	}
	var b strings.Builder
	b.Grow(len(text) + 8)
	for _, seg := range SplitSegments(text) {
		if seg.Kind != SegCode {
			b.WriteString(seg.Text)
			continue
		}
		suffixWords(&b, seg.Text)
	}
	return b.String()
}

func suffixWords(b *strings.Builder, s string) {
	i := 0
	for i < len(s) {
		if !wordByte(s[i]) {
			b.WriteByte(s[i])
			i++
			continue
		}
		j := i
		for j < len(s) && wordByte(s[j]) {
			j++
		}
		word := s[i:j]
		if hasDot, ok := classifyNumeric(word); ok {
			b.WriteString(word)
			if hasDot {
				b.WriteString("f")
			} else {
				b.WriteString(".f")
			}
		} else {
			b.WriteString(word)
		}
		i = j
	}
}

func wordByte(c byte) bool {
	return c == '_' || c == '.' ||
		(c >= '0' && c <= '9') ||
		(c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z')
}
