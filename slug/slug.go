// Package slug derives canonical, URL-safe identifiers for content
// pages. Slugs may span several path segments (parent/child); each
// segment is lowercase ASCII restricted to [a-z0-9-].
package slug

import (
	"errors"
	"strings"
	"unicode"
)

// Reserved is never a valid page identity; it collides with the
// admin's create route (/admin/pages/new).
const Reserved = "new"

var (
	ErrEmpty    = errors.New("slug zorunludur")
	ErrReserved = errors.New("'new' ayrılmış bir slug değeridir")
)

// foldTable is a closed set of locale-specific characters folded to
// ASCII. This is intentionally not general Unicode normalization.
var foldTable = map[rune]rune{
	'ğ': 'g', 'ü': 'u', 'ş': 's', 'ı': 'i', 'ö': 'o', 'ç': 'c',
	'Ğ': 'g', 'Ü': 'u', 'Ş': 's', 'İ': 'i', 'Ö': 'o', 'Ç': 'c',
}

// Normalize converts a user-supplied path into its canonical form.
// It is idempotent: Normalize(Normalize(s)) == Normalize(s).
func Normalize(raw string) string {
	lowered := strings.Map(func(r rune) rune {
		if folded, ok := foldTable[r]; ok {
			return folded
		}
		return r
	}, strings.ToLower(raw))

	segments := strings.Split(lowered, "/")
	cleaned := make([]string, 0, len(segments))
	for _, seg := range segments {
		if s := normalizeSegment(seg); s != "" {
			cleaned = append(cleaned, s)
		}
	}
	return strings.Join(cleaned, "/")
}

func normalizeSegment(seg string) string {
	seg = strings.TrimSpace(seg)

	seg = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-':
			return r
		case unicode.IsSpace(r):
			return ' '
		}
		return -1
	}, seg)

	// whitespace runs become single hyphens
	seg = strings.Join(strings.Fields(seg), "-")

	for strings.Contains(seg, "--") {
		seg = strings.ReplaceAll(seg, "--", "-")
	}
	return strings.Trim(seg, "-")
}

// Validate rejects slugs that cannot identify a page. It expects an
// already normalized value; callers run Normalize first so malformed
// input fails the write instead of silently collapsing to "".
func Validate(normalized string) error {
	if normalized == "" {
		return ErrEmpty
	}
	if normalized == Reserved {
		return ErrReserved
	}
	return nil
}
