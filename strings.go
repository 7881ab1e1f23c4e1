package bytere

// Index compiles pattern and returns the offset of its leftmost match in
// s, or -1 if there is none. The error is non-nil only if pattern fails to
// compile.
func Index(s, pattern string) (int, error) {
	re, err := Compile(pattern)
	if err != nil {
		return -1, err
	}
	return IndexRegex(s, re), nil
}

// IndexRegex returns the offset of the leftmost match of re in s, or -1.
func IndexRegex(s string, re *Regex) int {
	loc := re.FindStringIndex(s)
	if loc == nil {
		return -1
	}
	return loc[0]
}

// Contains reports whether re matches anywhere in s.
func Contains(s string, re *Regex) bool {
	return re.MatchString(s)
}

// Substring returns the text of the leftmost match of re in s. The boolean
// tells an empty match apart from no match.
func Substring(s string, re *Regex) (string, bool) {
	loc := re.FindStringIndex(s)
	if loc == nil {
		return "", false
	}
	return s[loc[0]:loc[1]], true
}
