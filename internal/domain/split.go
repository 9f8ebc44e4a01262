package domain

import "strings"

// SplitList splits a comma-separated field (technologies, blog tags)
// into trimmed, non-empty values. The content model stores these as
// plain text rather than a relation, so this is the single place that
// interprets the format.
func SplitList(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
