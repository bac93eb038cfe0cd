package registry

import "strings"

// Normalize canonicalizes a survey slug or question key: trims, lowers,
// and strips every character outside [a-z0-9]. Collisions are intended,
// "Board_Evaluation", "board-evaluation" and "BOARDEVALUATION" all map
// to the same key. Normalize is idempotent.
func Normalize(value string) string {
	lowered := strings.ToLower(strings.TrimSpace(value))
	var b strings.Builder
	b.Grow(len(lowered))
	for _, r := range lowered {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// SlugVariants lists the slug spellings a submission may have been stored
// under: the raw slug, the canonical one, and separator rewrites. Storage
// queries filter on these, and callers still re-check with Normalize.
func SlugVariants(raw string) []string {
	variants := []string{raw}
	add := func(v string) {
		for _, existing := range variants {
			if existing == v {
				return
			}
		}
		variants = append(variants, v)
	}
	canonical := CanonicalSlug(raw)
	add(canonical)
	add(strings.ReplaceAll(canonical, "-", "_"))
	add(strings.ReplaceAll(raw, "-", "_"))
	add(strings.ReplaceAll(raw, "_", "-"))
	return variants
}
