package models

import "strings"

// TokenSet holds a normalized set of tokens (skills, certifications,
// capabilities) in their original order. Source data carries these as
// comma-separated free text; normalization happens once at parse time so
// matching never has to worry about stray whitespace.
type TokenSet []string

// ParseTokenSet splits a comma-separated field into trimmed tokens.
// Empty entries are dropped. Token case is preserved: matching throughout
// the system is case-sensitive.
func ParseTokenSet(raw string) TokenSet {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	tokens := make(TokenSet, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			tokens = append(tokens, t)
		}
	}
	if len(tokens) == 0 {
		return nil
	}
	return tokens
}

// Intersects reports whether the two sets share at least one exact token.
func (s TokenSet) Intersects(other TokenSet) bool {
	for _, a := range s {
		for _, b := range other {
			if a == b {
				return true
			}
		}
	}
	return false
}

// AnyContains reports whether any token contains sub as a case-sensitive
// substring. Used by discovery queries, which match loosely on purpose
// ("Map" finds "Mapping").
func (s TokenSet) AnyContains(sub string) bool {
	for _, t := range s {
		if strings.Contains(t, sub) {
			return true
		}
	}
	return false
}

// Clone returns an independent copy of the set.
func (s TokenSet) Clone() TokenSet {
	if s == nil {
		return nil
	}
	out := make(TokenSet, len(s))
	copy(out, s)
	return out
}

// String renders the set back to its comma-separated form.
func (s TokenSet) String() string {
	return strings.Join(s, ", ")
}
