package catalog

import "strings"

// SplitNames parses a semicolon-delimited name list ("A; B;;C") into its
// normalized form. The update endpoint receives relation lists in this
// encoding.
func SplitNames(s string) []string {
	return NormalizeNames(strings.Split(s, ";"))
}

// NormalizeNames trims every entry, drops empties and removes duplicates,
// keeping the order of first occurrence. Name matching is case-sensitive:
// reference entities are exact-string identities.
func NormalizeNames(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	out := make([]string, 0, len(names))
	for _, n := range names {
		n = strings.TrimSpace(n)
		if n == "" {
			continue
		}
		if _, dup := seen[n]; dup {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out
}

func firstOrEmpty(names []string) string {
	if len(names) == 0 {
		return ""
	}
	return names[0]
}
