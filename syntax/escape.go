package syntax

// decodeEscape decodes one source character at src[pos], which may begin a
// backslash escape, and returns the byte value together with the position
// just past everything consumed. pos must be < len(src).
func decodeEscape(src string, pos int) (byte, int) {
	c := src[pos]
	pos++
	if c != '\\' {
		return c, pos
	}
	if pos == len(src) {
		// trailing lone backslash
		return '\\', pos
	}

	c = src[pos]
	pos++
	switch c {
	case 'b':
		return '\b', pos
	case 'f':
		return '\f', pos
	case 'n':
		return '\n', pos
	case 'r':
		return '\r', pos
	case 's':
		return ' ', pos
	case 't':
		return '\t', pos
	case 'e':
		return 0x1b, pos
	case '^':
		if pos == len(src) {
			return '^', pos
		}
		return upper(src[pos]) - '@', pos + 1
	case 'x':
		if pos == len(src) || !isHex(src[pos]) {
			return 'x', pos
		}
		var v byte
		for n := 0; n < 2 && pos < len(src) && isHex(src[pos]); n++ {
			v = v<<4 | hexValue(src[pos])
			pos++
		}
		return v, pos
	}

	if isOctal(c) {
		v := c - '0'
		for n := 1; n < 3 && pos < len(src) && isOctal(src[pos]); n++ {
			v = v<<3 | (src[pos] - '0')
			pos++
		}
		return v, pos
	}
	return c, pos
}

func isOctal(c byte) bool {
	return c >= '0' && c <= '7'
}

func isHex(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

// hexValue returns the value of a hex digit. c must satisfy isHex.
func hexValue(c byte) byte {
	switch {
	case c >= 'a':
		return c - 'a' + 10
	case c >= 'A':
		return c - 'A' + 10
	default:
		return c - '0'
	}
}

func upper(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - ('a' - 'A')
	}
	return c
}
