// Package pattern implements the vanity-match predicate: prefix, suffix, or
// anywhere matching against a Base58 address, with an optional single-char
// '?' wildcard and optional case folding.
package pattern

import "strings"

// Mode selects where the pattern must occur in the address.
type Mode int

const (
	ModePrefix Mode = iota
	ModeSuffix
	ModeAnywhere
)

// Matcher holds a compiled pattern ready for repeated matching against
// candidate addresses.
type Matcher struct {
	raw           string
	folded        string
	mode          Mode
	caseSensitive bool
}

// New compiles pattern for mode matching. When caseSensitive is false, both
// the pattern and every candidate address are folded to a canonical case
// before comparison.
func New(raw string, mode Mode, caseSensitive bool) *Matcher {
	folded := raw
	if !caseSensitive {
		folded = strings.ToLower(raw)
	}
	return &Matcher{raw: raw, folded: folded, mode: mode, caseSensitive: caseSensitive}
}

// Len returns the pattern's character length, used by the difficulty model.
func (m *Matcher) Len() int { return len(m.raw) }

// Raw returns the pattern text as originally compiled.
func (m *Matcher) Raw() string { return m.raw }

// CaseSensitive reports whether matching is case-sensitive; when it is
// false, matching folds case.
func (m *Matcher) CaseSensitive() bool { return m.caseSensitive }

// Mode returns the anchor mode this Matcher was compiled with.
func (m *Matcher) Mode() Mode { return m.mode }

// Match reports whether address satisfies the compiled pattern.
func (m *Matcher) Match(address string) bool {
	candidate := address
	if !m.caseSensitive {
		candidate = strings.ToLower(address)
	}

	switch m.mode {
	case ModePrefix:
		return matchAt(candidate, m.folded, 0)
	case ModeSuffix:
		if len(candidate) < len(m.folded) {
			return false
		}
		return matchAt(candidate, m.folded, len(candidate)-len(m.folded))
	case ModeAnywhere:
		for start := 0; start+len(m.folded) <= len(candidate); start++ {
			if matchAt(candidate, m.folded, start) {
				return true
			}
		}
		return false
	default:
		return false
	}
}

// matchAt reports whether pattern matches candidate starting at offset
// start, treating '?' in pattern as matching any single character.
func matchAt(candidate, pattern string, start int) bool {
	if start < 0 || start+len(pattern) > len(candidate) {
		return false
	}
	for i := 0; i < len(pattern); i++ {
		if pattern[i] == '?' {
			continue
		}
		if pattern[i] != candidate[start+i] {
			return false
		}
	}
	return true
}
