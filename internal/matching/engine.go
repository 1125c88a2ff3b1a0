// Package matching ranks catalog items against a criteria map. Two policies
// exist on purpose and must stay distinct: HybridStrict serves the chat flow
// and reports "nothing matched" as an empty result, while
// QuestionnaireWeighted serves the form flow and leaves the cheapest-items
// substitution to its caller.
package matching

import (
	"sort"
	"strings"

	"fashionous/internal/catalog"
	"fashionous/internal/criteria"
)

// Policy identifies which ranking policy produced a result set.
type Policy string

const (
	// PolicyHybridStrict is the chat-mode policy: strict match first,
	// per-key score fallback second, catalog order preserved.
	PolicyHybridStrict Policy = "hybrid_strict"
	// PolicyQuestionnaireWeighted is the form-mode policy: exact-all match
	// sorted by price, then a 3/1-point weighted fallback.
	PolicyQuestionnaireWeighted Policy = "questionnaire_weighted"
)

// DefaultTopK caps result length when the caller passes a non-positive limit.
const DefaultTopK = 5

// fieldFor resolves a criteria key to the item's corresponding attribute as
// a tagged union. Unknown keys resolve to the empty value, which matches
// nothing.
func fieldFor(it catalog.Item, key string) catalog.FieldValue {
	switch key {
	case criteria.KeyFabric:
		return it.Fabric
	case criteria.KeyOccasion:
		return catalog.List(it.OccasionTags...)
	case criteria.KeyNeckline:
		return catalog.Scalar(it.Neckline)
	case criteria.KeySleeve:
		return catalog.Scalar(it.Sleeve)
	}
	return catalog.FieldValue{}
}

// strictKeyMatch reports whether the item satisfies one criterion under the
// hybrid policy: case-insensitive equality for scalars, case-insensitive
// membership for lists. Only the criteria side is pre-normalized; item
// values are lowercased but not trimmed here.
func strictKeyMatch(it catalog.Item, key, value string) bool {
	field := fieldFor(it, key)
	if field.IsScalar() {
		return strings.ToLower(field.Values()[0]) == value
	}
	for _, v := range field.Values() {
		if strings.ToLower(v) == value {
			return true
		}
	}
	return false
}

// strictMatchCount counts criteria keys the item satisfies, one point each.
func strictMatchCount(it catalog.Item, c criteria.Map) int {
	matches := 0
	for key, value := range c {
		if strictKeyMatch(it, key, value) {
			matches++
		}
	}
	return matches
}

// HybridStrict is the chat-mode two-tier search.
//
// Phase 1 keeps items whose strict-match count equals the number of active
// criteria and returns the first topK in catalog order, without re-sorting.
// Phase 2 runs only when phase 1 is empty: items scoring at least one key
// are kept and stably sorted by score descending. An empty criteria map
// yields no results at all; the chat path turns that into its no-match
// message.
func HybridStrict(c criteria.Map, items []catalog.Item, topK int) []catalog.Item {
	if topK <= 0 {
		topK = DefaultTopK
	}
	if len(c) == 0 {
		return nil
	}

	var strict []catalog.Item
	for _, it := range items {
		if strictMatchCount(it, c) == len(c) {
			strict = append(strict, it)
		}
	}
	if len(strict) > 0 {
		return head(strict, topK)
	}

	type scored struct {
		item  catalog.Item
		score int
	}
	var partial []scored
	for _, it := range items {
		if s := strictMatchCount(it, c); s > 0 {
			partial = append(partial, scored{item: it, score: s})
		}
	}
	sort.SliceStable(partial, func(i, j int) bool {
		return partial[i].score > partial[j].score
	})

	results := make([]catalog.Item, 0, min(len(partial), topK))
	for _, s := range head(partial, topK) {
		results = append(results, s.item)
	}
	return results
}

// exactKeyMatch reports whether the item satisfies one criterion under the
// questionnaire policy: lowercased trimmed equality for scalars, lowercased
// trimmed membership for lists.
func exactKeyMatch(it catalog.Item, key, value string) bool {
	field := fieldFor(it, key)
	if field.IsScalar() {
		return catalog.Normalize(field.Values()[0]) == value
	}
	for _, v := range field.Values() {
		if catalog.Normalize(v) == value {
			return true
		}
	}
	return false
}

// Weighted-partial points: exact equality or list membership scores 3,
// a substring hit on a scalar field scores 1.
const (
	exactPoints     = 3
	substringPoints = 1
)

// weightedScore sums partial-match points for the item across all criteria.
func weightedScore(it catalog.Item, c criteria.Map) int {
	score := 0
	for key, value := range c {
		field := fieldFor(it, key)
		if field.IsScalar() {
			normalized := catalog.Normalize(field.Values()[0])
			if normalized == value {
				score += exactPoints
			} else if strings.Contains(normalized, value) {
				score += substringPoints
			}
			continue
		}
		for _, v := range field.Values() {
			if catalog.Normalize(v) == value {
				score += exactPoints
				break
			}
		}
	}
	return score
}

// QuestionnaireWeighted is the form-mode two-tier search.
//
// Phase 1 keeps items matching every active criterion exactly and returns
// the cheapest topK, price ascending with catalog order preserved for ties.
// An empty criteria map therefore matches everything and yields the topK
// cheapest items. Phase 2 runs only when phase 1 is empty: items are scored
// 3 points per exact key and 1 per substring key, zero-score items are
// dropped, and the rest sort by score descending then price ascending.
//
// Callers are responsible for the top-level fallback: when this returns
// nothing from a non-empty catalog, substitute CheapestOverall.
func QuestionnaireWeighted(c criteria.Map, items []catalog.Item, topK int) []catalog.Item {
	if topK <= 0 {
		topK = DefaultTopK
	}

	var exact []catalog.Item
	for _, it := range items {
		all := true
		for key, value := range c {
			if !exactKeyMatch(it, key, value) {
				all = false
				break
			}
		}
		if all {
			exact = append(exact, it)
		}
	}
	if len(exact) > 0 {
		sort.SliceStable(exact, func(i, j int) bool {
			return exact[i].Price < exact[j].Price
		})
		return head(exact, topK)
	}

	type scored struct {
		item  catalog.Item
		score int
	}
	var partial []scored
	for _, it := range items {
		if s := weightedScore(it, c); s > 0 {
			partial = append(partial, scored{item: it, score: s})
		}
	}
	sort.SliceStable(partial, func(i, j int) bool {
		if partial[i].score != partial[j].score {
			return partial[i].score > partial[j].score
		}
		return partial[i].item.Price < partial[j].item.Price
	})

	results := make([]catalog.Item, 0, min(len(partial), topK))
	for _, s := range head(partial, topK) {
		results = append(results, s.item)
	}
	return results
}

// CheapestOverall returns the topK cheapest items regardless of criteria,
// price ascending with catalog order preserved for ties.
func CheapestOverall(items []catalog.Item, topK int) []catalog.Item {
	if topK <= 0 {
		topK = DefaultTopK
	}
	sorted := make([]catalog.Item, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Price < sorted[j].Price
	})
	return head(sorted, topK)
}

func head[T any](s []T, n int) []T {
	if len(s) > n {
		return s[:n]
	}
	return s
}
