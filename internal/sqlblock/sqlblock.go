// Package sqlblock extracts fenced SQL from freeform model output.
package sqlblock

import "regexp"

var fence = regexp.MustCompile("(?s)```sql\\s*(.*?)\\s*```")

// Extract returns the inner content of every ```sql fenced region in text,
// in source order. Fences tagged with another language, or left untagged,
// are ignored. An empty fenced region still yields one empty entry.
func Extract(text string) []string {
	matches := fence.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return nil
	}
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		out = append(out, m[1])
	}
	return out
}
