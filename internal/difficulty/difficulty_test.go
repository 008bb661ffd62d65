package difficulty

import (
	"math"
	"testing"
)

func TestAlphabetSize(t *testing.T) {
	if got := AlphabetSize(true); got != 58 {
		t.Errorf("AlphabetSize(true) = %d, want 58", got)
	}
	if got := AlphabetSize(false); got != 34 {
		t.Errorf("AlphabetSize(false) = %d, want 34", got)
	}
}

func TestEffectiveLen(t *testing.T) {
	cases := []struct {
		pattern string
		want    int
	}{
		{"abc", 3},
		{"a?c", 2},
		{"???", 0},
		{"", 0},
	}
	for _, c := range cases {
		if got := EffectiveLen(c.pattern); got != c.want {
			t.Errorf("EffectiveLen(%q) = %d, want %d", c.pattern, got, c.want)
		}
	}
}

func TestExpectedPrefixGrowsWithLength(t *testing.T) {
	e1 := Expected(1, 58, false, 1)
	e2 := Expected(2, 58, false, 2)
	if e2 <= e1 {
		t.Errorf("Expected should grow with effective pattern length: e1=%v e2=%v", e1, e2)
	}
	if e1 != 58 {
		t.Errorf("Expected(1, 58, ...) = %v, want 58", e1)
	}
}

func TestExpectedAnywhereDividesByAddressWindow(t *testing.T) {
	prefix := Expected(2, 58, false, 2)
	anywhere := Expected(2, 58, true, 2)
	if anywhere >= prefix {
		t.Errorf("anywhere-mode expected attempts should be lower than prefix mode: anywhere=%v prefix=%v", anywhere, prefix)
	}
	want := prefix / (44 - 2 + 1)
	if math.Abs(anywhere-want) > 1e-6 {
		t.Errorf("Expected(anywhere) = %v, want %v", anywhere, want)
	}
}

func TestP50IsLn2TimesExpected(t *testing.T) {
	e := Expected(3, 58, false, 3)
	p50 := P50(e)
	want := e * math.Ln2
	if math.Abs(p50-want) > 1e-9 {
		t.Errorf("P50 = %v, want %v", p50, want)
	}
	if p50 >= e {
		t.Errorf("P50 (%v) should be less than the expected value (%v)", p50, e)
	}
}
