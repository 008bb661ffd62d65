package pattern

import "testing"

func TestMatchPrefix(t *testing.T) {
	m := New("Sol", ModePrefix, true)
	if !m.Match("SolanaAddressXYZ") {
		t.Errorf("expected prefix match")
	}
	if m.Match("XYZSolana") {
		t.Errorf("unexpected prefix match")
	}
}

func TestMatchSuffix(t *testing.T) {
	m := New("XYZ", ModeSuffix, true)
	if !m.Match("AddressABCXYZ") {
		t.Errorf("expected suffix match")
	}
	if m.Match("XYZAddress") {
		t.Errorf("unexpected suffix match")
	}
}

func TestMatchAnywhere(t *testing.T) {
	m := New("mid", ModeAnywhere, true)
	if !m.Match("abcmidxyz") {
		t.Errorf("expected anywhere match")
	}
	if m.Match("nowhere-to-be-found") {
		t.Errorf("unexpected anywhere match")
	}
}

func TestCaseInsensitive(t *testing.T) {
	m := New("SOL", ModePrefix, false)
	if !m.Match("solAddress") {
		t.Errorf("expected case-insensitive prefix match")
	}
}

func TestCaseSensitiveRejectsDifferentCase(t *testing.T) {
	m := New("SOL", ModePrefix, true)
	if m.Match("solAddress") {
		t.Errorf("case-sensitive matcher matched different case")
	}
}

func TestWildcard(t *testing.T) {
	m := New("S?l", ModePrefix, true)
	if !m.Match("Solana") {
		t.Errorf("wildcard should match any character at its position")
	}
	if !m.Match("Sxlana") {
		t.Errorf("wildcard should match any character at its position")
	}
}

// TestWildcardIdentity checks that a pattern of all '?'s matches every
// address at least as long as the pattern, in every mode.
func TestWildcardIdentity(t *testing.T) {
	addr := "AnyAddressAtAll1234"
	for _, mode := range []Mode{ModePrefix, ModeSuffix, ModeAnywhere} {
		for length := 1; length <= len(addr); length++ {
			wildcard := make([]byte, length)
			for i := range wildcard {
				wildcard[i] = '?'
			}
			m := New(string(wildcard), mode, true)
			if !m.Match(addr) {
				t.Errorf("mode=%v length=%d: all-wildcard pattern did not match %q", mode, length, addr)
			}
		}
	}
}

// TestSuffixFailsWhenAddressShorterThanPattern checks the suffix edge
// case where the candidate address is shorter than the pattern.
func TestSuffixFailsWhenAddressShorterThanPattern(t *testing.T) {
	m := New("toolong", ModeSuffix, true)
	if m.Match("short") {
		t.Errorf("suffix match should fail when address is shorter than pattern")
	}
}

// TestPatternMonotonicity checks that once a prefix pattern matches,
// appending characters after the matched region preserves the match.
func TestPatternMonotonicity(t *testing.T) {
	m := New("Sol", ModePrefix, true)
	base := "SolXYZ"
	if !m.Match(base) {
		t.Fatalf("setup: expected base match")
	}
	if !m.Match(base + "MoreCharacters") {
		t.Errorf("extending a prefix match should preserve the match")
	}
}

func TestLen(t *testing.T) {
	m := New("abcd", ModePrefix, true)
	if m.Len() != 4 {
		t.Errorf("Len() = %d, want 4", m.Len())
	}
}
