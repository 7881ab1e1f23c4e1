package syntax

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func mustCompile(t *testing.T, pattern string) *Prog {
	t.Helper()
	prog, err := Compile(pattern, DefaultCapacity)
	if err != nil {
		t.Fatalf("Compile(%q) error = %v", pattern, err)
	}
	return prog
}

// ops flattens a program into its instruction strings.
func ops(p *Prog) []string {
	out := make([]string, p.Len())
	for pc := 0; pc < p.Len(); pc++ {
		out[pc] = p.Inst(pc).String()
	}
	return out
}

func TestCompileInstructions(t *testing.T) {
	tests := []struct {
		pattern string
		want    []string
	}{
		{"abc", []string{"Literal('a')", "Literal('b')", "Literal('c')", "End"}},
		{"a.c", []string{"Literal('a')", "AnyByte", "Literal('c')", "End"}},
		{"^ab", []string{"BeginAnchor", "Literal('a')", "Literal('b')", "End"}},
		{"ab$", []string{"Literal('a')", "Literal('b')", "EndAnchor", "End"}},
		{"^", []string{"BeginAnchor", "End"}},
		{"$", []string{"EndAnchor", "End"}},
		{"^$", []string{"BeginAnchor", "EndAnchor", "End"}},
		{"a^b", []string{"Literal('a')", "Literal('^')", "Literal('b')", "End"}},
		{"^^", []string{"BeginAnchor", "Literal('^')", "End"}},
		{"a$b", []string{"Literal('a')", "Literal('$')", "Literal('b')", "End"}},
		{"$$", []string{"Literal('$')", "EndAnchor", "End"}},
		{"a*", []string{"Star(Literal('a'))", "End"}},
		{"a+b?", []string{"Plus(Literal('a'))", "Optional(Literal('b'))", "End"}},
		{".*", []string{"Star(AnyByte)", "End"}},
		{"[ab]+", []string{"Plus(Class['a'-'b'])", "End"}},
		{"a^*", []string{"Literal('a')", "Star(Literal('^'))", "End"}},
		{"a$*", []string{"Literal('a')", "Star(Literal('$'))", "End"}},
		{`\*`, []string{"Literal('*')", "End"}},
		{`\n`, []string{"Literal(0xa)", "End"}},
		{`\x41`, []string{"Literal('A')", "End"}},
		{`\101`, []string{"Literal('A')", "End"}},
		{`a\`, []string{"Literal('a')", "Literal('\\')", "End"}},
		{`\$`, []string{"Literal('$')", "End"}},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			got := ops(mustCompile(t, tt.pattern))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Compile(%q) mismatch (-want +got):\n%s", tt.pattern, diff)
			}
		})
	}
}

func TestCompileIllegal(t *testing.T) {
	patterns := []string{
		"",
		"*x",
		"+x",
		"?x",
		"a**",
		"a*+",
		"a+?",
		"a?*",
		"^*",
		"^+",
		"[abc",
		"[",
		"[^",
		`a[\]`,
	}

	for _, pattern := range patterns {
		t.Run(pattern, func(t *testing.T) {
			prog, err := Compile(pattern, DefaultCapacity)
			if prog != nil {
				t.Errorf("Compile(%q) returned a program", pattern)
			}
			if !errors.Is(err, ErrIllegalPattern) {
				t.Errorf("Compile(%q) error = %v, want ErrIllegalPattern", pattern, err)
			}
			var cerr *Error
			if !errors.As(err, &cerr) {
				t.Fatalf("error type = %T, want *Error", err)
			}
		})
	}
}

func TestCompileErrorOffset(t *testing.T) {
	_, err := Compile("ab**", DefaultCapacity)
	var cerr *Error
	if !errors.As(err, &cerr) {
		t.Fatalf("error type = %T, want *Error", err)
	}
	if cerr.Offset != 3 {
		t.Errorf("Offset = %d, want 3", cerr.Offset)
	}
	if cerr.Pattern != "ab**" {
		t.Errorf("Pattern = %q, want %q", cerr.Pattern, "ab**")
	}
	if !strings.HasPrefix(err.Error(), "bytere: illegal pattern at offset 3") {
		t.Errorf("Error() = %q", err.Error())
	}
}

func TestCompileEmptyErrorMessage(t *testing.T) {
	_, err := Compile("", DefaultCapacity)
	if err == nil || err.Error() != "bytere: illegal pattern" {
		t.Errorf("Compile(\"\") error = %v, want \"bytere: illegal pattern\"", err)
	}
}

func TestCompileTooLong(t *testing.T) {
	tests := []struct {
		name     string
		pattern  string
		capacity int
	}{
		{"longer than capacity", strings.Repeat("a", 9), 8},
		{"literal plus end", strings.Repeat("a", 8), 8},
		{"default capacity", strings.Repeat("x", DefaultCapacity+1), DefaultCapacity},
		{"class bitmap reserved", "[a]", 10},
		{"closure slot reserved", "ab*", 3},
		{"zero capacity", "a", 0},
		{"negative capacity", "a", -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Compile(tt.pattern, tt.capacity)
			if !errors.Is(err, ErrPatternTooLong) {
				t.Errorf("Compile(%q, %d) error = %v, want ErrPatternTooLong",
					tt.pattern, tt.capacity, err)
			}
		})
	}
}

func TestCompileFitsExactly(t *testing.T) {
	tests := []struct {
		pattern string
		slots   int
	}{
		{"abc", 4},
		{"a*", 3},
		{"[a]", classSlots + 1},
		{"[a]*", classSlots + closureSlots + 1},
		{"^a$", 4},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			prog, err := Compile(tt.pattern, tt.slots)
			if err != nil {
				t.Fatalf("Compile(%q, %d) error = %v", tt.pattern, tt.slots, err)
			}
			if prog.Slots() != tt.slots {
				t.Errorf("Slots() = %d, want %d", prog.Slots(), tt.slots)
			}
			if _, err := Compile(tt.pattern, tt.slots-1); !errors.Is(err, ErrPatternTooLong) {
				t.Errorf("Compile(%q, %d) error = %v, want ErrPatternTooLong",
					tt.pattern, tt.slots-1, err)
			}
		})
	}
}

func TestCompileOutOfMemory(t *testing.T) {
	_, err := Compile("abc", MaxCapacity+1)
	if !errors.Is(err, ErrOutOfMemory) {
		t.Errorf("error = %v, want ErrOutOfMemory", err)
	}
}

func TestCompileDeterministic(t *testing.T) {
	patterns := []string{"abc", "^a[^b-d]*c+$", `\x41.?[\t ]`, "[z-a]"}
	for _, pattern := range patterns {
		t.Run(pattern, func(t *testing.T) {
			a := mustCompile(t, pattern)
			b := mustCompile(t, pattern)
			if diff := cmp.Diff(a, b, cmp.AllowUnexported(Prog{})); diff != "" {
				t.Errorf("two compilations differ (-first +second):\n%s", diff)
			}
		})
	}
}

func TestCompileReversedRangeEquivalent(t *testing.T) {
	a := mustCompile(t, "[a-c]")
	b := mustCompile(t, "[c-a]")
	if *a.Inst(0).Class != *b.Inst(0).Class {
		t.Errorf("[c-a] = %s, want %s", b.Inst(0).Class, a.Inst(0).Class)
	}
}

func TestProgAccessors(t *testing.T) {
	prog := mustCompile(t, "^ab")
	if !prog.Anchored() {
		t.Error("Anchored() = false, want true")
	}
	if prog.Len() != 4 {
		t.Errorf("Len() = %d, want 4", prog.Len())
	}
	if prog.Pattern() != "^ab" {
		t.Errorf("Pattern() = %q", prog.Pattern())
	}
	if prog.Inst(prog.Len()-1).Op != OpEnd {
		t.Error("last instruction is not End")
	}
	if mustCompile(t, "a^").Anchored() {
		t.Error("a^ must not be anchored")
	}

	want := "  0  BeginAnchor\n  1  Literal('a')\n  2  Literal('b')\n  3  End\n"
	if got := prog.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestOpPredicates(t *testing.T) {
	for _, op := range []Op{OpLiteral, OpAnyByte, OpClass} {
		if !op.IsAtomic() || op.IsClosure() || op.IsAnchor() {
			t.Errorf("%s predicates wrong", op)
		}
	}
	for _, op := range []Op{OpOptional, OpStar, OpPlus} {
		if op.IsAtomic() || !op.IsClosure() {
			t.Errorf("%s predicates wrong", op)
		}
	}
	for _, op := range []Op{OpBeginAnchor, OpEndAnchor} {
		if op.IsAtomic() || !op.IsAnchor() {
			t.Errorf("%s predicates wrong", op)
		}
	}
	if got := Op(99).String(); got != "Unknown(99)" {
		t.Errorf("Op(99).String() = %q", got)
	}
}
