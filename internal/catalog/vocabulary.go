package catalog

import "sort"

// Vocabulary holds the distinct normalized values observed in the catalog
// for each matchable attribute. It is built once at startup and is read-only
// afterwards, so unsynchronized concurrent lookups are safe.
type Vocabulary struct {
	fabrics   map[string]struct{}
	sleeves   map[string]struct{}
	necklines map[string]struct{}
	occasions map[string]struct{}
}

// BuildVocabulary scans the catalog and derives the four vocabulary sets.
// Values are lowercased and trimmed; empty values and malformed fields are
// skipped rather than reported.
func BuildVocabulary(items []Item) *Vocabulary {
	v := &Vocabulary{
		fabrics:   make(map[string]struct{}),
		sleeves:   make(map[string]struct{}),
		necklines: make(map[string]struct{}),
		occasions: make(map[string]struct{}),
	}
	for _, it := range items {
		for _, f := range it.Fabric.Values() {
			addNormalized(v.fabrics, f)
		}
		addNormalized(v.sleeves, it.Sleeve)
		addNormalized(v.necklines, it.Neckline)
		for _, tag := range it.OccasionTags {
			addNormalized(v.occasions, tag)
		}
	}
	return v
}

func addNormalized(set map[string]struct{}, value string) {
	if n := Normalize(value); n != "" {
		set[n] = struct{}{}
	}
}

// HasFabric reports whether token is a known fabric value.
func (v *Vocabulary) HasFabric(token string) bool {
	_, ok := v.fabrics[token]
	return ok
}

// HasSleeve reports whether token is a known sleeve value.
func (v *Vocabulary) HasSleeve(token string) bool {
	_, ok := v.sleeves[token]
	return ok
}

// HasNeckline reports whether token is a known neckline value.
func (v *Vocabulary) HasNeckline(token string) bool {
	_, ok := v.necklines[token]
	return ok
}

// HasOccasion reports whether token is a known occasion tag.
func (v *Vocabulary) HasOccasion(token string) bool {
	_, ok := v.occasions[token]
	return ok
}

// Fabrics returns the distinct fabric values in sorted order.
func (v *Vocabulary) Fabrics() []string { return sortedKeys(v.fabrics) }

// Sleeves returns the distinct sleeve values in sorted order.
func (v *Vocabulary) Sleeves() []string { return sortedKeys(v.sleeves) }

// Necklines returns the distinct neckline values in sorted order.
func (v *Vocabulary) Necklines() []string { return sortedKeys(v.necklines) }

// Occasions returns the distinct occasion tags in sorted order.
func (v *Vocabulary) Occasions() []string { return sortedKeys(v.occasions) }

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
