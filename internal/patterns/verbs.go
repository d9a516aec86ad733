package patterns

// actionVerbs are industry-neutral strong verbs for achievement statements.
var actionVerbs = []string{
	"achieved", "analyzed", "architected", "automated", "built",
	"collaborated", "coordinated", "created", "delivered", "designed",
	"developed", "drove", "engineered", "established", "executed",
	"generated", "grew", "implemented", "improved", "increased",
	"initiated", "launched", "led", "managed", "mentored",
	"negotiated", "optimized", "orchestrated", "reduced", "resolved",
	"scaled", "shipped", "spearheaded", "streamlined", "transformed",
}

// ActionVerbs returns a copy of the industry-neutral action verb list.
func ActionVerbs() []string {
	out := make([]string, len(actionVerbs))
	copy(out, actionVerbs)
	return out
}

// MergeVerbs appends extra verbs that are not already present, preserving order.
func MergeVerbs(base []string, extra ...[]string) []string {
	seen := make(map[string]bool, len(base))
	out := make([]string, 0, len(base))
	for _, v := range base {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	for _, list := range extra {
		for _, v := range list {
			if !seen[v] {
				seen[v] = true
				out = append(out, v)
			}
		}
	}
	return out
}
