package utils

import (
	"sort"
	"strings"
)

// UnionBodyParts merges comma-separated body-part lists into one sorted,
// deduplicated, comma-separated string, e.g. ["Chest, Triceps", "Chest"] →
// "Chest, Triceps".
func UnionBodyParts(lists []string) string {
	seen := make(map[string]bool)
	var parts []string
	for _, list := range lists {
		for _, p := range strings.Split(list, ",") {
			p = strings.TrimSpace(p)
			if p == "" || seen[p] {
				continue
			}
			seen[p] = true
			parts = append(parts, p)
		}
	}
	sort.Strings(parts)
	return strings.Join(parts, ", ")
}
