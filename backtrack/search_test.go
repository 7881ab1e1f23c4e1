package backtrack

import (
	"fmt"
	"sync"
	"testing"

	"github.com/coregx/bytere/syntax"
)

func compileForTest(t testing.TB, pattern string) *syntax.Prog {
	t.Helper()
	prog, err := syntax.Compile(pattern, syntax.DefaultCapacity)
	if err != nil {
		t.Fatalf("Compile(%q) error = %v", pattern, err)
	}
	return prog
}

func TestSearch(t *testing.T) {
	tests := []struct {
		pattern       string
		input         string
		expectedStart int
		expectedEnd   int
		expectedFound bool
	}{
		// Literals
		{"abc", "xxabcxx", 2, 5, true},
		{"abc", "abc", 0, 3, true},
		{"abc", "ab", -1, -1, false},
		{"abc", "", -1, -1, false},
		{"b", "abcb", 1, 2, true},

		// Dot never matches newline
		{"a.c", "a\nc", -1, -1, false},
		{"a.c", "axc", 0, 3, true},
		{".", "\n\nx", 2, 3, true},
		{".*", "ab\ncd", 0, 2, true},
		{"a.*", "xa\nb", 1, 2, true},

		// Classes
		{"[a-c]", "b", 0, 1, true},
		{"[a-c]", "xyzc", 3, 4, true},
		{"[c-a]", "b", 0, 1, true},
		{"[^a-c]", "abcd", 3, 4, true},
		{"[^a-c]", "abc", -1, -1, false},
		{"[^a]", "\n", 0, 1, true},
		{"[]", "abc", -1, -1, false},
		{"[^]", "\x00", 0, 1, true},
		{`[\x00]`, "a\x00b", 1, 2, true},
		{"[0-9]+", "abc123def", 3, 6, true},

		// Greedy closures and backtracking
		{"a*a", "aaaa", 0, 4, true},
		{"a*", "", 0, 0, true},
		{"a*", "bbb", 0, 0, true},
		{"a*", "aab", 0, 2, true},
		{"a+", "", -1, -1, false},
		{"a+", "baa", 1, 3, true},
		{"a+a", "a", -1, -1, false},
		{"a+a", "aa", 0, 2, true},
		{"x*y", "xxxz xy", 5, 7, true},
		{"a.*b", "a1b2b3", 0, 5, true},
		{"a.*b.*c", "abxbxcxc", 0, 8, true},
		{"[0-9]*5", "12345678", 0, 5, true},
		{"a*b*c*", "cba", 0, 1, true},
		{"a+b+", "aaabbbc", 0, 6, true},

		// Optional takes the byte and never gives it back
		{"ab?c", "ac", 0, 2, true},
		{"ab?c", "abc", 0, 3, true},
		{"a?", "", 0, 0, true},
		{"a?a", "a", -1, -1, false},
		{"a?a", "aa", 0, 2, true},
		{"colou?r", "the color red", 4, 9, true},

		// Anchors
		{"^abc", "xabc", -1, -1, false},
		{"^abc", "abcx", 0, 3, true},
		{"abc$", "xabc", 1, 4, true},
		{"abc$", "abcx", -1, -1, false},
		{"^$", "", 0, 0, true},
		{"^$", "a", -1, -1, false},
		{"^", "abc", 0, 0, true},
		{"$", "abc", 3, 3, true},
		{"^a*$", "aaa", 0, 3, true},
		{"^a*$", "aab", -1, -1, false},
		{"^.*$", "line1\nline2", -1, -1, false},
		{"a$", "a\n", -1, -1, false},

		// Literal anchor characters
		{"a^b", "xa^b", 1, 4, true},
		{"a$b", "a$b", 0, 3, true},
		{"$$", "cost$", 4, 5, true},

		// Escapes
		{`\n`, "a\nb", 1, 2, true},
		{`\n`, "n", -1, -1, false},
		{`\x41`, "xA", 1, 2, true},
		{`\101`, "xA", 1, 2, true},
		{`\x41`, "a", -1, -1, false},
		{`a\.b`, "axb a.b", 4, 7, true},
		{`\t+`, "a\t\tb", 1, 3, true},

		// 8-bit clean
		{"\xff+", "a\xff\xffb", 1, 3, true},
		{`\0`, "ab\x00", 2, 3, true},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s/%q", tt.pattern, tt.input), func(t *testing.T) {
			prog := compileForTest(t, tt.pattern)
			start, end, found := Search(prog, []byte(tt.input))
			if start != tt.expectedStart || end != tt.expectedEnd || found != tt.expectedFound {
				t.Errorf("Search(%q, %q) = (%d, %d, %v), want (%d, %d, %v)",
					tt.pattern, tt.input, start, end, found,
					tt.expectedStart, tt.expectedEnd, tt.expectedFound)
			}
		})
	}
}

func TestSearchNegatedClassRejectsOnlyMembers(t *testing.T) {
	prog := compileForTest(t, "[^a-c]")
	for c := 0; c < 256; c++ {
		_, _, found := Search(prog, []byte{byte(c)})
		want := c < 'a' || c > 'c'
		if found != want {
			t.Errorf("Search([^a-c], %#x) found = %v, want %v", c, found, want)
		}
	}
}

func TestSearchReversedRangeEquivalent(t *testing.T) {
	forward := compileForTest(t, "[a-c]")
	reversed := compileForTest(t, "[c-a]")
	for c := 0; c < 256; c++ {
		subject := []byte{byte(c)}
		_, _, f := Search(forward, subject)
		_, _, r := Search(reversed, subject)
		if f != r {
			t.Errorf("byte %#x: [a-c] = %v, [c-a] = %v", c, f, r)
		}
	}
}

func TestSearchBounds(t *testing.T) {
	patterns := []string{"a*", "b+", "^a?", "[ab]*c$", ".", "$", "x*y*"}
	inputs := []string{"", "a", "b", "abc", "aabbcc", "cab\nbac", "zzz"}

	for _, pattern := range patterns {
		prog := compileForTest(t, pattern)
		for _, input := range inputs {
			start, end, ok := Search(prog, []byte(input))
			if !ok {
				continue
			}
			if start < 0 || start > end || end > len(input) {
				t.Errorf("Search(%q, %q) = (%d, %d) out of bounds", pattern, input, start, end)
			}
		}
	}
}

func TestSearchIdempotent(t *testing.T) {
	prog := compileForTest(t, "[a-z]+[0-9]?")
	subject := []byte("--abc1--")
	s1, e1, ok1 := Search(prog, subject)
	s2, e2, ok2 := Search(prog, subject)
	if s1 != s2 || e1 != e2 || ok1 != ok2 {
		t.Errorf("repeated Search differs: (%d,%d,%v) vs (%d,%d,%v)", s1, e1, ok1, s2, e2, ok2)
	}
}

// TestSearchLeavesProgUnchanged shares one program between concurrent
// searches and checks that none of them altered it.
func TestSearchLeavesProgUnchanged(t *testing.T) {
	prog := compileForTest(t, "^x?[a-c]*.[^0-9]+[0-9]?$")
	before := prog.String()

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				if _, _, ok := Search(prog, []byte("xabcZ!zz9")); !ok {
					t.Error("Search did not match")
					return
				}
			}
		}()
	}
	wg.Wait()

	if after := prog.String(); after != before {
		t.Errorf("program changed by searching:\nbefore:\n%s\nafter:\n%s", before, after)
	}
}

func TestSearchAt(t *testing.T) {
	tests := []struct {
		pattern   string
		input     string
		at        int
		wantStart int
		wantEnd   int
		wantFound bool
	}{
		{"ab", "abab", 0, 0, 2, true},
		{"ab", "abab", 1, 2, 4, true},
		{"ab", "abab", 3, -1, -1, false},
		{"a*", "baa", 3, 3, 3, true},
		{"^a", "aa", 0, 0, 1, true},
		{"^a", "aa", 1, -1, -1, false},
		{"^", "aa", 1, -1, -1, false},
		{"a$", "aa", 1, 1, 2, true},
		{"a", "a", -1, -1, -1, false},
		{"a", "a", 2, -1, -1, false},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s/%q@%d", tt.pattern, tt.input, tt.at), func(t *testing.T) {
			prog := compileForTest(t, tt.pattern)
			start, end, found := SearchAt(prog, []byte(tt.input), tt.at)
			if start != tt.wantStart || end != tt.wantEnd || found != tt.wantFound {
				t.Errorf("SearchAt(%q, %q, %d) = (%d, %d, %v), want (%d, %d, %v)",
					tt.pattern, tt.input, tt.at, start, end, found,
					tt.wantStart, tt.wantEnd, tt.wantFound)
			}
		})
	}
}

func TestMatchAt(t *testing.T) {
	prog := compileForTest(t, "ab*")
	subject := []byte("xabbby")

	if _, ok := MatchAt(prog, subject, 0); ok {
		t.Error("MatchAt(0) matched, want no match")
	}
	if end, ok := MatchAt(prog, subject, 1); !ok || end != 5 {
		t.Errorf("MatchAt(1) = (%d, %v), want (5, true)", end, ok)
	}
	if _, ok := MatchAt(prog, subject, 7); ok {
		t.Error("MatchAt past end matched")
	}

	anchored := compileForTest(t, "^a")
	if _, ok := MatchAt(anchored, []byte("aa"), 1); ok {
		t.Error("anchored MatchAt(1) matched")
	}
}

func TestIsMatch(t *testing.T) {
	if !IsMatch(compileForTest(t, "b+"), []byte("abbc")) {
		t.Error("IsMatch(b+, abbc) = false")
	}
	if IsMatch(compileForTest(t, "^b"), []byte("abbc")) {
		t.Error("IsMatch(^b, abbc) = true")
	}
}

func BenchmarkSearchLiteral(b *testing.B) {
	prog := compileForTest(b, "needle")
	subject := make([]byte, 4096)
	for i := range subject {
		subject[i] = 'a' + byte(i%26)
	}
	copy(subject[4000:], "needle")

	b.SetBytes(int64(len(subject)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Search(prog, subject)
	}
}

func BenchmarkSearchBacktrack(b *testing.B) {
	prog := compileForTest(b, "[a-z]*q[a-z]*z$")
	subject := []byte("abcdefghijklmnopqrstuvwxyabcdefghijklmnopqrstuvwxyz")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Search(prog, subject)
	}
}
