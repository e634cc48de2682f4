package twin

import (
	"sort"

	"co2-twin/internal/capture"
)

// KindOrder lists the catalog kinds in dashboard order: the stock kinds
// first, then any extras by name.
func KindOrder(catalog capture.Catalog) []capture.Kind {
	out := make([]capture.Kind, 0, len(catalog))
	seen := map[capture.Kind]bool{}
	for _, k := range capture.Kinds {
		if _, ok := catalog[k]; ok {
			out = append(out, k)
			seen[k] = true
		}
	}
	var extra []capture.Kind
	for k := range catalog {
		if !seen[k] {
			extra = append(extra, k)
		}
	}
	sort.Slice(extra, func(i, j int) bool { return extra[i] < extra[j] })
	return append(out, extra...)
}
