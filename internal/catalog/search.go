package catalog

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

// maxSearchDistance rejects matches whose normalised edit distance is worse
// than this.
const maxSearchDistance = 0.5

// Search ranks products against a free-text query. Substring hits come
// first, then fuzzy hits ordered by normalised edit distance.
func Search(products []Product, query string) []Product {
	q := strings.ToUpper(strings.TrimSpace(query))
	if q == "" {
		return nil
	}
	type scored struct {
		p     Product
		score float64
		sub   bool
	}
	var hits []scored
	for _, p := range products {
		name := strings.ToUpper(p.Name)
		if strings.Contains(name, q) {
			hits = append(hits, scored{p: p, score: 0, sub: true})
			continue
		}
		dist := levenshtein.ComputeDistance(name, q)
		maxlen := len(name)
		if len(q) > maxlen {
			maxlen = len(q)
		}
		norm := float64(dist) / float64(maxlen)
		if norm <= maxSearchDistance {
			hits = append(hits, scored{p: p, score: norm})
		}
	}
	sort.SliceStable(hits, func(i, j int) bool {
		if hits[i].sub != hits[j].sub {
			return hits[i].sub
		}
		if hits[i].score != hits[j].score {
			return hits[i].score < hits[j].score
		}
		return hits[i].p.Name < hits[j].p.Name
	})
	out := make([]Product, 0, len(hits))
	for _, h := range hits {
		out = append(out, h.p)
	}
	return out
}
