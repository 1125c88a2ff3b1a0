package matching_test

import (
	"reflect"
	"testing"

	"fashionous/internal/catalog"
	"fashionous/internal/criteria"
	"fashionous/internal/matching"
)

// fixtureCatalog is ordered so catalog-order and price-order differ, which
// makes ordering bugs visible.
func fixtureCatalog() []catalog.Item {
	return []catalog.Item{
		{ID: "D1", Price: 3000, Fabric: catalog.List("silk"), Sleeve: "sleeveless", Neckline: "v-neck", OccasionTags: []string{"wedding"}},
		{ID: "D2", Price: 1500, Fabric: catalog.Scalar("cotton"), Sleeve: "full sleeve", Neckline: "round", OccasionTags: []string{"office"}},
		{ID: "D3", Price: 2000, Fabric: catalog.List("silk", "georgette"), Sleeve: "cap sleeve", Neckline: "boat neck", OccasionTags: []string{"party", "wedding"}},
		{ID: "D4", Price: 1200, Fabric: catalog.Scalar("georgette"), Sleeve: "sleeveless", Neckline: "sweetheart", OccasionTags: []string{"party"}},
		{ID: "D5", Price: 1500, Fabric: catalog.Scalar("cotton"), Sleeve: "sleeveless", Neckline: "round", OccasionTags: []string{"office", "daily"}},
		{ID: "D6", Price: 2600, Fabric: catalog.List("silk"), Sleeve: "full sleeve", Neckline: "v-neck", OccasionTags: []string{"wedding", "party"}},
	}
}

func ids(items []catalog.Item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.ID
	}
	return out
}

func TestHybridStrict(t *testing.T) {
	items := fixtureCatalog()

	tests := []struct {
		name string
		c    criteria.Map
		topK int
		want []string
	}{
		{
			name: "strict phase keeps catalog order",
			c:    criteria.Map{"fabric": "silk"},
			topK: 5,
			want: []string{"D1", "D3", "D6"},
		},
		{
			name: "all criteria must strict-match",
			c:    criteria.Map{"fabric": "silk", "sleeve": "full sleeve"},
			topK: 5,
			want: []string{"D6"},
		},
		{
			name: "occasion matches against the tag list",
			c:    criteria.Map{"occasion": "wedding", "neckline": "v-neck"},
			topK: 5,
			want: []string{"D1", "D6"},
		},
		{
			name: "empty criteria yields nothing",
			c:    criteria.Map{},
			topK: 5,
			want: []string{},
		},
		{
			name: "topK caps the strict phase",
			c:    criteria.Map{"fabric": "silk"},
			topK: 2,
			want: []string{"D1", "D3"},
		},
		{
			name: "scored fallback ranks by matched-key count",
			// No item is both cotton and a wedding design, so phase 2
			// runs: two-key matches none, one-key matches rank equally and
			// keep catalog order.
			c:    criteria.Map{"fabric": "cotton", "occasion": "wedding"},
			topK: 5,
			want: []string{"D1", "D2", "D3", "D5", "D6"},
		},
		{
			name: "fallback drops zero-score items",
			c:    criteria.Map{"neckline": "sweetheart", "occasion": "daily"},
			topK: 5,
			want: []string{"D4", "D5"},
		},
		{
			name: "nothing matches at all",
			c:    criteria.Map{"fabric": "velvet"},
			topK: 5,
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ids(matching.HybridStrict(tt.c, items, tt.topK))
			if len(got) == 0 && len(tt.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("HybridStrict() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestHybridStrict_ItemSideNotTrimmed(t *testing.T) {
	// Only the criteria side is pre-normalized under the hybrid policy; an
	// item value with stray whitespace does not strict-match.
	items := []catalog.Item{
		{ID: "P1", Fabric: catalog.Scalar(" silk "), OccasionTags: []string{"party"}},
	}
	got := matching.HybridStrict(criteria.Map{"fabric": "silk"}, items, 5)
	if len(got) != 0 {
		t.Errorf("HybridStrict() = %v, want no results", ids(got))
	}
}

func TestQuestionnaireWeighted(t *testing.T) {
	items := fixtureCatalog()

	tests := []struct {
		name string
		c    criteria.Map
		topK int
		want []string
	}{
		{
			name: "exact phase sorts by ascending price",
			c:    criteria.Map{"fabric": "silk"},
			topK: 5,
			want: []string{"D3", "D6", "D1"},
		},
		{
			name: "price ties preserve catalog order",
			c:    criteria.Map{"fabric": "cotton"},
			topK: 5,
			want: []string{"D2", "D5"},
		},
		{
			name: "empty criteria returns cheapest items",
			c:    criteria.Map{},
			topK: 3,
			want: []string{"D4", "D2", "D5"},
		},
		{
			name: "topK caps the exact phase",
			c:    criteria.Map{},
			topK: 2,
			want: []string{"D4", "D2"},
		},
		{
			name: "weighted fallback orders by score then price",
			// cotton+wedding matches no item exactly. Phase 2: every
			// cotton or wedding item scores 3; price ascending breaks the
			// ties.
			c:    criteria.Map{"fabric": "cotton", "occasion": "wedding"},
			topK: 5,
			want: []string{"D2", "D5", "D3", "D6", "D1"},
		},
		{
			name: "no match at all",
			c:    criteria.Map{"fabric": "velvet", "occasion": "beach"},
			topK: 5,
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ids(matching.QuestionnaireWeighted(tt.c, items, tt.topK))
			if len(got) == 0 && len(tt.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("QuestionnaireWeighted() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestQuestionnaireWeighted_ExactPhaseSatisfiesEveryKey(t *testing.T) {
	items := fixtureCatalog()
	c := criteria.Map{"fabric": "silk", "occasion": "wedding", "sleeve": "full sleeve"}

	for _, it := range matching.QuestionnaireWeighted(c, items, 5) {
		if it.ID != "D6" {
			t.Errorf("item %s does not satisfy every criterion", it.ID)
		}
	}
}

func TestQuestionnaireWeighted_ItemSideTrimmed(t *testing.T) {
	// The questionnaire policy trims the item side before comparing.
	items := []catalog.Item{
		{ID: "P1", Price: 100, Fabric: catalog.Scalar(" Silk ")},
	}
	got := matching.QuestionnaireWeighted(criteria.Map{"fabric": "silk"}, items, 5)
	if len(got) != 1 || got[0].ID != "P1" {
		t.Errorf("QuestionnaireWeighted() = %v, want [P1]", ids(got))
	}
}

func TestQuestionnaireWeighted_SubstringScoresOnePoint(t *testing.T) {
	items := []catalog.Item{
		// "sleeve" is a substring of "full sleeve": 1 point.
		{ID: "SUB", Price: 100, Sleeve: "full sleeve"},
		// exact match: 3 points.
		{ID: "EXACT", Price: 900, Sleeve: "sleeve"},
		// no match at all: dropped.
		{ID: "NONE", Price: 50, Sleeve: "cap"},
	}

	// The unmatched neckline key keeps phase 1 empty so the weighted
	// fallback does the ranking.
	c := criteria.Map{"sleeve": "sleeve", "neckline": "halter"}
	got := ids(matching.QuestionnaireWeighted(c, items, 5))
	want := []string{"EXACT", "SUB"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("QuestionnaireWeighted() = %v, want %v", got, want)
	}
}

func TestQuestionnaireWeighted_ScoresSumAcrossKeys(t *testing.T) {
	// One exact key (3) plus one substring key (1) must outrank a single
	// exact key (3) regardless of price.
	items := []catalog.Item{
		{ID: "BOTH", Price: 900, Fabric: catalog.Scalar("silk"), Sleeve: "full sleeve"},
		{ID: "ONE", Price: 100, Fabric: catalog.Scalar("silk"), Sleeve: "cap"},
	}
	c := criteria.Map{"fabric": "silk", "sleeve": "sleeve", "neckline": "halter"}

	got := ids(matching.QuestionnaireWeighted(c, items, 5))
	want := []string{"BOTH", "ONE"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("QuestionnaireWeighted() = %v, want %v", got, want)
	}
}

func TestCheapestOverall(t *testing.T) {
	items := fixtureCatalog()

	got := ids(matching.CheapestOverall(items, 3))
	want := []string{"D4", "D2", "D5"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("CheapestOverall() = %v, want %v", got, want)
	}

	// The input slice order must be untouched: in-memory catalog state is
	// shared and read-only.
	if items[0].ID != "D1" {
		t.Errorf("CheapestOverall() mutated the catalog: first item %s", items[0].ID)
	}
}

func TestTopKNeverExceeded(t *testing.T) {
	items := fixtureCatalog()
	c := criteria.Map{"fabric": "silk"}

	if got := matching.HybridStrict(c, items, 1); len(got) > 1 {
		t.Errorf("HybridStrict() returned %d items for topK=1", len(got))
	}
	if got := matching.QuestionnaireWeighted(criteria.Map{}, items, 1); len(got) > 1 {
		t.Errorf("QuestionnaireWeighted() returned %d items for topK=1", len(got))
	}
	if got := matching.CheapestOverall(items, 1); len(got) > 1 {
		t.Errorf("CheapestOverall() returned %d items for topK=1", len(got))
	}
}

func TestDeterminism(t *testing.T) {
	items := fixtureCatalog()
	c := criteria.Map{}

	first := ids(matching.QuestionnaireWeighted(c, items, 5))
	second := ids(matching.QuestionnaireWeighted(c, items, 5))
	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated query diverged: %v vs %v", first, second)
	}
}
