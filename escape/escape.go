package escape

import "strings"

const syntaxChars = `\.+*?()|[]{}^$`

// Escape sequences for control characters, indexed by the raw byte.
var controls = map[byte]byte{
	'\n': 'n',
	'\r': 'r',
	'\t': 't',
	'\f': 'f',
	'\v': 'v',
}

// encode[b] is the byte written after a backslash for b, or 0 if b is
// written as is. decode inverts it.
var encode, decode = buildTables()

func buildTables() (enc, dec [256]byte) {
	for i := 0; i < len(syntaxChars); i++ {
		c := syntaxChars[i]
		enc[c] = c
		dec[c] = c
	}
	for raw, letter := range controls {
		enc[raw] = letter
		dec[letter] = raw
	}
	return enc, dec
}

// Escape returns text with regex syntax characters and the control
// characters \n \r \t \f \v written as backslash escapes.
func Escape(text string) string {
	i := 0
	for i < len(text) && encode[text[i]] == 0 {
		i++
	}
	if i == len(text) {
		return text
	}

	var sb strings.Builder
	sb.Grow(len(text) + len(text)/4)
	sb.WriteString(text[:i])
	for ; i < len(text); i++ {
		c := text[i]
		if e := encode[c]; e != 0 {
			sb.WriteByte('\\')
			sb.WriteByte(e)
			continue
		}
		sb.WriteByte(c)
	}
	return sb.String()
}

// Unescape reverses Escape. Unknown escapes and a trailing backslash are
// kept verbatim.
func Unescape(text string) string {
	i := strings.IndexByte(text, '\\')
	if i < 0 {
		return text
	}

	var sb strings.Builder
	sb.Grow(len(text))
	sb.WriteString(text[:i])
	for i < len(text) {
		c := text[i]
		if c != '\\' || i+1 == len(text) {
			sb.WriteByte(c)
			i++
			continue
		}
		if d := decode[text[i+1]]; d != 0 {
			sb.WriteByte(d)
		} else {
			sb.WriteByte('\\')
			sb.WriteByte(text[i+1])
		}
		i += 2
	}
	return sb.String()
}
