package roster

import (
	"sort"
	"strings"
)

type ListOptions struct {
	Sex   string
	Query string
	Sort  string
}

// Apply filters and orders a roster already sorted by last name. An empty or
// "All" sex means no filter. Sort is "last" (default), "first" or "weight".
func (o ListOptions) Apply(in []Wrestler) []Wrestler {
	sex := strings.TrimSpace(o.Sex)
	query := strings.ToLower(strings.TrimSpace(o.Query))

	out := make([]Wrestler, 0, len(in))
	for _, w := range in {
		if sex != "" && !strings.EqualFold(sex, "all") {
			if w.Sex == nil || *w.Sex != sex {
				continue
			}
		}
		if query != "" && !strings.Contains(strings.ToLower(w.FullName()), query) {
			continue
		}
		out = append(out, w)
	}

	switch o.Sort {
	case "first":
		sort.SliceStable(out, func(i, j int) bool {
			a, b := strings.ToLower(out[i].FirstName), strings.ToLower(out[j].FirstName)
			if a != b {
				return a < b
			}
			return strings.ToLower(out[i].LastName) < strings.ToLower(out[j].LastName)
		})
	case "weight":
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].WeightClass < out[j].WeightClass
		})
	}
	return out
}
