package criteria_test

import (
	"reflect"
	"testing"

	"fashionous/internal/catalog"
	"fashionous/internal/criteria"
)

func testVocabulary(t *testing.T) *catalog.Vocabulary {
	t.Helper()
	return catalog.BuildVocabulary([]catalog.Item{
		{
			Fabric:       catalog.List("silk", "cotton", "georgette"),
			Sleeve:       "sleeveless",
			Neckline:     "v-neck",
			OccasionTags: []string{"wedding", "party", "office"},
		},
	})
}

func TestFromAnswers(t *testing.T) {
	tests := []struct {
		name    string
		answers map[string]string
		want    criteria.Map
	}{
		{
			name:    "values normalized",
			answers: map[string]string{"fabric": " Silk ", "occasion": "WEDDING"},
			want:    criteria.Map{"fabric": "silk", "occasion": "wedding"},
		},
		{
			name:    "skipped answers dropped",
			answers: map[string]string{"fabric": "silk", "neckline": "", "sleeve": "   "},
			want:    criteria.Map{"fabric": "silk"},
		},
		{
			name:    "empty map",
			answers: map[string]string{},
			want:    criteria.Map{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := criteria.FromAnswers(tt.answers); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("FromAnswers() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFromText(t *testing.T) {
	vocab := testVocabulary(t)

	tests := []struct {
		name    string
		message string
		want    criteria.Map
	}{
		{
			name:    "fabric and occasion recognized",
			message: "I want silk fabric for a wedding",
			want:    criteria.Map{"fabric": "silk", "occasion": "wedding"},
		},
		{
			name:    "unknown tokens ignored",
			message: "something shiny please",
			want:    criteria.Map{},
		},
		{
			name:    "case insensitive",
			message: "SILK for the OFFICE",
			want:    criteria.Map{"fabric": "silk", "occasion": "office"},
		},
		{
			name:    "last token wins per attribute",
			message: "silk or maybe cotton for a party",
			want:    criteria.Map{"fabric": "cotton", "occasion": "party"},
		},
		{
			name:    "all four attributes",
			message: "sleeveless cotton v-neck wedding",
			want: criteria.Map{
				"fabric":   "cotton",
				"sleeve":   "sleeveless",
				"neckline": "v-neck",
				"occasion": "wedding",
			},
		},
		{
			name:    "punctuation defeats exact token lookup",
			message: "silk, please",
			want:    criteria.Map{},
		},
		{
			name:    "empty message",
			message: "",
			want:    criteria.Map{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := criteria.FromText(tt.message, vocab); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("FromText(%q) = %v, want %v", tt.message, got, tt.want)
			}
		})
	}
}

// A token present in more than one vocabulary set resolves by the fixed
// priority order: fabric, then occasion, then neckline, then sleeve.
func TestFromText_PriorityOrder(t *testing.T) {
	vocab := catalog.BuildVocabulary([]catalog.Item{
		{
			Fabric:       catalog.Scalar("festive"),
			Sleeve:       "festive",
			Neckline:     "festive",
			OccasionTags: []string{"festive"},
		},
	})

	got := criteria.FromText("festive", vocab)
	want := criteria.Map{"fabric": "festive"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("FromText() = %v, want %v", got, want)
	}
}
