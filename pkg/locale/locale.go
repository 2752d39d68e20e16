// Package locale normalises and matches the underscore locale identifiers
// ("en_US", "es_ES") used by DDM definitions and translation catalogs.
package locale

import (
	"strings"

	"golang.org/x/text/language"
)

// Normalize converts an identifier to the canonical underscore form
// ("es-es" → "es_ES"). Identifiers that do not parse as BCP 47 tags are
// returned trimmed with dashes replaced.
func Normalize(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	tag, err := parse(trimmed)
	if err != nil {
		return strings.ReplaceAll(trimmed, "-", "_")
	}
	return strings.ReplaceAll(tag.String(), "-", "_")
}

// Equal reports whether two identifiers name the same locale.
func Equal(a, b string) bool {
	na, nb := Normalize(a), Normalize(b)
	return na != "" && strings.EqualFold(na, nb)
}

// Match picks the candidate that best serves requested using the CLDR
// language matcher, accepting matches of High confidence or better (same
// language in another region, or a CLDR equivalent such as nb for no). When
// nothing qualifies it returns fallback's index if fallback is one of the
// candidates. The returned index is -1 when nothing matched.
func Match(requested string, candidates []string, fallback string) int {
	if len(candidates) == 0 {
		return -1
	}
	if requested != "" {
		if idx := matchTag(requested, candidates); idx >= 0 {
			return idx
		}
	}
	if fallback != "" {
		for i, candidate := range candidates {
			if Equal(fallback, candidate) {
				return i
			}
		}
	}
	return -1
}

func matchTag(requested string, candidates []string) int {
	want, err := parse(requested)
	if err != nil {
		for i, candidate := range candidates {
			if Equal(requested, candidate) {
				return i
			}
		}
		return -1
	}

	tags := make([]language.Tag, 0, len(candidates))
	positions := make([]int, 0, len(candidates))
	for i, candidate := range candidates {
		tag, err := parse(candidate)
		if err != nil {
			continue
		}
		tags = append(tags, tag)
		positions = append(positions, i)
	}
	if len(tags) == 0 {
		return -1
	}

	_, idx, confidence := language.NewMatcher(tags).Match(want)
	if confidence < language.High {
		return -1
	}
	return positions[idx]
}

func parse(raw string) (language.Tag, error) {
	return language.Parse(strings.ReplaceAll(strings.TrimSpace(raw), "_", "-"))
}

// Split parses a comma separated locale list, dropping blanks and
// duplicates while keeping order.
func Split(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	seen := make(map[string]struct{}, len(parts))
	for _, part := range parts {
		normalized := Normalize(part)
		if normalized == "" {
			continue
		}
		if _, ok := seen[normalized]; ok {
			continue
		}
		seen[normalized] = struct{}{}
		out = append(out, normalized)
	}
	return out
}
