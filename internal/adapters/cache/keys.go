package cache

import "strings"

// Normalize collapses whitespace so equivalent addresses share a cache key.
func Normalize(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// RouteKey builds the cache key for an ordered waypoint list.
func RouteKey(waypoints []string) string {
	parts := make([]string, len(waypoints))
	for i, w := range waypoints {
		parts[i] = strings.ToLower(Normalize(w))
	}
	return strings.Join(parts, "|")
}

// uniqueNormalized drops blanks and duplicates, keeping first-seen order.
func uniqueNormalized(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		v = Normalize(v)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
