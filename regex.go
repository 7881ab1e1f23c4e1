// Package bytere provides a small, 8-bit clean pattern matcher for byte
// strings.
//
// Patterns use a compact dialect: literal bytes, '.' (any byte except
// newline), classes like [a-z] and [^0-9], the greedy closures '*', '+' and
// '?', the anchors '^' and '$', and backslash escapes (\n, \t, \e, \xHH,
// \ooo, \^X). Matching is leftmost with greedy closures and no alternation
// or grouping.
//
// Basic usage:
//
//	re, err := bytere.Compile(`[0-9]+`)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(string(re.Find([]byte("order 66")))) // "66"
//
// Every compiled pattern fits a fixed storage budget (the capacity); see
// CompileCapacity and meta.Config.
//
// Searches never fail: a pattern either matches or it does not. A Regex
// is safe to use concurrently from multiple goroutines, except Assign.
package bytere

import (
	"github.com/coregx/bytere/meta"
	"github.com/coregx/bytere/syntax"
)

// Regex represents a compiled pattern.
//
// Example:
//
//	re := bytere.MustCompile(`hello`)
//	if re.Match([]byte("hello world")) {
//	    println("matched!")
//	}
type Regex struct {
	engine  *meta.Engine
	pattern string
	config  meta.Config
	err     error
}

// Compile compiles a pattern with the default configuration.
// The error, if any, is a *syntax.Error.
//
// Example:
//
//	re, err := bytere.Compile(`^[a-z]+: `)
//	if err != nil {
//	    log.Fatal(err)
//	}
func Compile(pattern string) (*Regex, error) {
	return CompileWithConfig(pattern, meta.DefaultConfig())
}

// MustCompile is like Compile but panics if the pattern cannot be compiled.
//
// Example:
//
//	var hexByte = bytere.MustCompile(`\\x[0-9a-f]+`)
func MustCompile(pattern string) *Regex {
	re, err := Compile(pattern)
	if err != nil {
		panic("bytere: Compile(`" + pattern + "`): " + err.Error())
	}
	return re
}

// CompileWithConfig compiles a pattern with custom configuration.
//
// Example:
//
//	config := bytere.DefaultConfig()
//	config.EnablePrefilter = false
//	re, err := bytere.CompileWithConfig("a.*b", config)
func CompileWithConfig(pattern string, config meta.Config) (*Regex, error) {
	re := &Regex{config: config}
	if err := re.compile(pattern); err != nil {
		return nil, err
	}
	return re, nil
}

// CompileCapacity compiles a pattern with the given storage capacity and
// otherwise default configuration.
func CompileCapacity(pattern string, capacity int) (*Regex, error) {
	config := meta.DefaultConfig()
	config.Capacity = capacity
	return CompileWithConfig(pattern, config)
}

// DefaultConfig returns the default configuration for compilation.
func DefaultConfig() meta.Config {
	return meta.DefaultConfig()
}

// New compiles pattern and always returns a Regex. If compilation fails the
// Regex matches nothing and Status reports the error.
//
// Example:
//
//	re := bytere.New("ab**")
//	if err := re.Status(); err != nil {
//	    fmt.Println(err) // bytere: illegal pattern at offset 3 in pattern "ab**"
//	}
func New(pattern string) *Regex {
	return NewWithConfig(pattern, meta.DefaultConfig())
}

// NewWithConfig is like New with a custom configuration. Later calls to
// Assign keep using config.
func NewWithConfig(pattern string, config meta.Config) *Regex {
	re := &Regex{config: config}
	_ = re.compile(pattern)
	return re
}

// Status returns the error from the most recent compilation, or nil if the
// Regex holds a valid program.
func (r *Regex) Status() error {
	return r.err
}

// Assign recompiles r in place from pattern, replacing the previous program
// whether or not compilation succeeds, and returns the new Status.
//
// Assign is not safe to call concurrently with any other method of r.
func (r *Regex) Assign(pattern string) error {
	return r.compile(pattern)
}

func (r *Regex) compile(pattern string) error {
	engine, err := meta.Compile(pattern, r.config)
	r.pattern = pattern
	r.engine = engine
	r.err = err
	return err
}

// QuoteMeta returns a pattern that matches the literal text s.
//
// The backslash and the bytes . * + ? [ $ are escaped, as is a leading ^.
// QuoteMeta("") returns "", which is not a valid pattern.
//
// Example:
//
//	escaped := bytere.QuoteMeta("1+1=2?")
//	// escaped = `1\+1=2\?`
func QuoteMeta(s string) string {
	const special = `\.*+?[$`

	buf := make([]byte, 0, len(s)+4)
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case i == 0 && c == '^':
			buf = append(buf, `\x5e`...)
		case isSpecial(c, special):
			buf = append(buf, '\\', c)
		default:
			buf = append(buf, c)
		}
	}
	return string(buf)
}

func isSpecial(c byte, special string) bool {
	for i := 0; i < len(special); i++ {
		if c == special[i] {
			return true
		}
	}
	return false
}

// String returns the source text used to compile the pattern.
func (r *Regex) String() string {
	return r.pattern
}

// Strategy returns the search strategy chosen for the pattern. It is
// meaningless when Status is non-nil.
func (r *Regex) Strategy() meta.Strategy {
	if r.engine == nil {
		return meta.UseBacktrack
	}
	return r.engine.Strategy()
}

// Prog returns the compiled program, or nil when Status is non-nil.
func (r *Regex) Prog() *syntax.Prog {
	if r.engine == nil {
		return nil
	}
	return r.engine.Prog()
}

func (r *Regex) findAt(b []byte, at int) (start, end int, found bool) {
	if r.engine == nil {
		return -1, -1, false
	}
	return r.engine.FindIndicesAt(b, at)
}

// Match reports whether b contains any match of the pattern.
func (r *Regex) Match(b []byte) bool {
	_, _, found := r.findAt(b, 0)
	return found
}

// MatchString reports whether s contains any match of the pattern.
func (r *Regex) MatchString(s string) bool {
	return r.Match([]byte(s))
}

// Find returns a slice holding the text of the leftmost match in b,
// or nil if there is none. An empty match yields a non-nil empty slice.
//
// Example:
//
//	re := bytere.MustCompile(`[0-9]+`)
//	match := re.Find([]byte("age: 42"))
//	println(string(match)) // "42"
func (r *Regex) Find(b []byte) []byte {
	start, end, found := r.findAt(b, 0)
	if !found {
		return nil
	}
	return b[start:end:end]
}

// FindString returns the text of the leftmost match in s, or "" if there
// is none. Use FindStringIndex to tell an empty match from no match.
func (r *Regex) FindString(s string) string {
	loc := r.FindStringIndex(s)
	if loc == nil {
		return ""
	}
	return s[loc[0]:loc[1]]
}

// FindIndex returns a two-element slice defining the location of the
// leftmost match in b, which is b[loc[0]:loc[1]]. Returns nil if no match
// is found.
//
// Example:
//
//	re := bytere.MustCompile(`[0-9]+`)
//	loc := re.FindIndex([]byte("age: 42"))
//	println(loc[0], loc[1]) // 5, 7
func (r *Regex) FindIndex(b []byte) []int {
	start, end, found := r.findAt(b, 0)
	if !found {
		return nil
	}
	return []int{start, end}
}

// FindStringIndex is like FindIndex for a string.
func (r *Regex) FindStringIndex(s string) []int {
	return r.FindIndex([]byte(s))
}

// FindAllIndex returns the locations of successive non-overlapping matches
// in b. If n >= 0, it returns at most n matches. Returns nil if there are
// none.
//
// An empty match right after a previous match is not reported, so
// `a*` on "baaa" yields [0 0] and [1 4].
func (r *Regex) FindAllIndex(b []byte, n int) [][]int {
	if r.engine == nil {
		return nil
	}
	spans := r.engine.FindAllIndices(b, n)
	if len(spans) == 0 {
		return nil
	}
	out := make([][]int, len(spans))
	for i, s := range spans {
		out[i] = []int{s[0], s[1]}
	}
	return out
}

// FindAllStringIndex is like FindAllIndex for a string.
func (r *Regex) FindAllStringIndex(s string, n int) [][]int {
	return r.FindAllIndex([]byte(s), n)
}

// FindAll returns the text of successive non-overlapping matches in b.
// If n >= 0, it returns at most n matches.
//
// Example:
//
//	re := bytere.MustCompile(`[0-9]+`)
//	matches := re.FindAll([]byte("1 22 333"), -1)
//	// matches = ["1" "22" "333"]
func (r *Regex) FindAll(b []byte, n int) [][]byte {
	locs := r.FindAllIndex(b, n)
	if locs == nil {
		return nil
	}
	out := make([][]byte, len(locs))
	for i, loc := range locs {
		out[i] = b[loc[0]:loc[1]:loc[1]]
	}
	return out
}

// FindAllString is like FindAll for a string.
func (r *Regex) FindAllString(s string, n int) []string {
	locs := r.FindAllStringIndex(s, n)
	if locs == nil {
		return nil
	}
	out := make([]string, len(locs))
	for i, loc := range locs {
		out[i] = s[loc[0]:loc[1]]
	}
	return out
}

// Count returns the number of non-overlapping matches in b, counted the
// same way as FindAllIndex. If n >= 0, counts at most n matches.
func (r *Regex) Count(b []byte, n int) int {
	if r.engine == nil {
		return 0
	}
	return r.engine.Count(b, n)
}

// CountString is like Count for a string.
func (r *Regex) CountString(s string, n int) int {
	return r.Count([]byte(s), n)
}

// ReplaceAllLiteral returns a copy of src with every match replaced by
// repl.
//
// Example:
//
//	re := bytere.MustCompile(`[0-9]+`)
//	result := re.ReplaceAllLiteral([]byte("age: 42"), []byte("XX"))
//	// result = "age: XX"
func (r *Regex) ReplaceAllLiteral(src, repl []byte) []byte {
	locs := r.FindAllIndex(src, -1)
	result := make([]byte, 0, len(src)+len(locs)*len(repl))
	last := 0
	for _, loc := range locs {
		result = append(result, src[last:loc[0]]...)
		result = append(result, repl...)
		last = loc[1]
	}
	return append(result, src[last:]...)
}

// ReplaceAllLiteralString is like ReplaceAllLiteral for strings.
func (r *Regex) ReplaceAllLiteralString(src, repl string) string {
	return string(r.ReplaceAllLiteral([]byte(src), []byte(repl)))
}

// Split slices s into substrings separated by matches of the pattern.
// If n >= 0, it returns at most n substrings, the last one holding the
// unsplit remainder.
//
// Example:
//
//	re := bytere.MustCompile(`,`)
//	parts := re.Split("a,b,c", 2)
//	// parts = ["a", "b,c"]
func (r *Regex) Split(s string, n int) []string {
	if n == 0 {
		return nil
	}
	if s == "" {
		return []string{""}
	}

	locs := r.FindAllStringIndex(s, n)
	result := make([]string, 0, len(locs)+1)
	beg, end := 0, 0
	for _, loc := range locs {
		if n > 0 && len(result) == n-1 {
			break
		}
		end = loc[0]
		if loc[1] != 0 {
			// an empty match at the very start splits nothing off
			result = append(result, s[beg:end])
		}
		beg = loc[1]
	}
	if end != len(s) {
		result = append(result, s[beg:])
	}
	return result
}
