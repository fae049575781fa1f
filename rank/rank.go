// Package rank orders vocabulary terms by score and fuses independent
// rankings with a Borda count.
package rank

import "sort"

// Combine pairs each vocabulary term with its score and returns the terms
// in descending score order. The sort is stable: tied terms keep their
// vocabulary order.
func Combine(vocab []string, scores []float64) []string {
	type scored struct {
		term  string
		score float64
	}
	pairs := make([]scored, len(vocab))
	for i, term := range vocab {
		pairs[i] = scored{term: term, score: scores[i]}
	}
	sort.SliceStable(pairs, func(i, j int) bool {
		return pairs[i].score > pairs[j].score
	})

	terms := make([]string, len(pairs))
	for i, p := range pairs {
		terms[i] = p.term
	}
	return terms
}

// Borda fuses ranked lists into one consensus ranking. Every term earns,
// from each list, its distance from that list's end (last place scores 0),
// and the totals decide the fused order, descending. The accumulator is
// rebuilt on every call. The sort is stable: tied terms keep the order the
// fold first saw them in (lists are walked end to start).
func Borda(lists ...[]string) []string {
	scores := make(map[string]int)
	var order []string
	for _, list := range lists {
		for i := len(list) - 1; i >= 0; i-- {
			term := list[i]
			if _, ok := scores[term]; !ok {
				scores[term] = 0
				order = append(order, term)
			}
			scores[term] += len(list) - 1 - i
		}
	}
	sort.SliceStable(order, func(i, j int) bool {
		return scores[order[i]] > scores[order[j]]
	})
	return order
}
