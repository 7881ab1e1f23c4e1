package syntax

// parseClass builds the byte set for a class whose body starts at src[pos],
// just after the opening '['. It returns the set and the position of the
// closing ']'. ok is false if the class is never closed.
func parseClass(src string, pos int) (set ByteSet, end int, ok bool) {
	negate := false
	if pos < len(src) && src[pos] == '^' {
		negate = true
		pos++
	}

	for pos < len(src) && src[pos] != ']' {
		var lo byte
		lo, pos = decodeEscape(src, pos)

		if pos+1 < len(src) && src[pos] == '-' && src[pos+1] != ']' {
			var hi byte
			hi, pos = decodeEscape(src, pos+1)
			set.AddRange(lo, hi)
			continue
		}
		set.Add(lo)
	}
	if pos >= len(src) {
		return ByteSet{}, pos, false
	}

	if negate {
		set.Negate()
	}
	return set, pos, true
}
