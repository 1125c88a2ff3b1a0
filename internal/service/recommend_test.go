package service_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"fashionous/internal/catalog"
	"fashionous/internal/matching"
	"fashionous/internal/service"
)

func init() {
	// Set default logger to discard output for cleaner test output
	slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func fixtureCatalog() *catalog.Catalog {
	return &catalog.Catalog{Items: []catalog.Item{
		{ID: "D1", Price: 3000, Fabric: catalog.List("silk"), Sleeve: "sleeveless", Neckline: "v-neck", OccasionTags: []string{"wedding"}},
		{ID: "D2", Price: 1500, Fabric: catalog.Scalar("cotton"), Sleeve: "full sleeve", Neckline: "round", OccasionTags: []string{"office"}},
		{ID: "D3", Price: 1200, Fabric: catalog.Scalar("georgette"), Sleeve: "cap sleeve", Neckline: "sweetheart", OccasionTags: []string{"party"}},
	}}
}

func newRecommendService(cat *catalog.Catalog, topK int) service.RecommendService {
	return service.NewRecommendService(cat, catalog.BuildVocabulary(cat.Items), topK)
}

func TestRecommendService_Chat(t *testing.T) {
	svc := newRecommendService(fixtureCatalog(), 5)

	tests := []struct {
		name        string
		message     string
		wantIDs     []string
		wantMessage string
	}{
		{
			name:    "recognized tokens return matches",
			message: "I want silk for a wedding",
			wantIDs: []string{"D1"},
		},
		{
			name:    "message is case-insensitive",
			message: "  COTTON please  ",
			wantIDs: []string{"D2"},
		},
		{
			name:        "no recognizable tokens returns the notice",
			message:     "something nice",
			wantIDs:     nil,
			wantMessage: service.NoMatchMessage,
		},
		{
			name:        "empty message returns the notice",
			message:     "",
			wantIDs:     nil,
			wantMessage: service.NoMatchMessage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := svc.Chat(context.Background(), service.ChatRequest{Message: tt.message})
			if err != nil {
				t.Fatalf("Chat() unexpected error: %v", err)
			}
			if resp.Policy != matching.PolicyHybridStrict {
				t.Errorf("Chat() policy = %q", resp.Policy)
			}
			if resp.Message != tt.wantMessage {
				t.Errorf("Chat() message = %q, want %q", resp.Message, tt.wantMessage)
			}
			if len(resp.Results) != len(tt.wantIDs) {
				t.Fatalf("Chat() results = %d items, want %d", len(resp.Results), len(tt.wantIDs))
			}
			for i, id := range tt.wantIDs {
				if resp.Results[i].ID != id {
					t.Errorf("Chat() results[%d] = %s, want %s", i, resp.Results[i].ID, id)
				}
			}
		})
	}
}

func TestRecommendService_Questionnaire(t *testing.T) {
	svc := newRecommendService(fixtureCatalog(), 5)

	t.Run("matching criteria", func(t *testing.T) {
		resp, err := svc.Questionnaire(context.Background(), service.QuestionnaireRequest{
			Criteria: map[string]string{"fabric": "Silk", "occasion": "wedding"},
		})
		if err != nil {
			t.Fatalf("Questionnaire() unexpected error: %v", err)
		}
		if len(resp.Results) != 1 || resp.Results[0].ID != "D1" {
			t.Errorf("Questionnaire() results = %v", resp.Results)
		}
		if resp.Policy != matching.PolicyQuestionnaireWeighted {
			t.Errorf("Questionnaire() policy = %q", resp.Policy)
		}
	})

	t.Run("no match substitutes cheapest items", func(t *testing.T) {
		resp, err := svc.Questionnaire(context.Background(), service.QuestionnaireRequest{
			Criteria: map[string]string{"fabric": "velvet", "neckline": "halter"},
		})
		if err != nil {
			t.Fatalf("Questionnaire() unexpected error: %v", err)
		}
		if len(resp.Results) != 3 {
			t.Fatalf("Questionnaire() fallback results = %d, want full catalog", len(resp.Results))
		}
		if resp.Results[0].ID != "D3" || resp.Results[1].ID != "D2" || resp.Results[2].ID != "D1" {
			t.Errorf("fallback should be price ascending, got %v", resp.Results)
		}
	})

	t.Run("empty catalog stays empty", func(t *testing.T) {
		empty := newRecommendService(&catalog.Catalog{}, 5)
		resp, err := empty.Questionnaire(context.Background(), service.QuestionnaireRequest{Criteria: nil})
		if err != nil {
			t.Fatalf("Questionnaire() unexpected error: %v", err)
		}
		if len(resp.Results) != 0 {
			t.Errorf("Questionnaire() on empty catalog = %v", resp.Results)
		}
	})
}

func TestRecommendService_Options(t *testing.T) {
	svc := newRecommendService(fixtureCatalog(), 5)

	resp, err := svc.Options(context.Background())
	if err != nil {
		t.Fatalf("Options() unexpected error: %v", err)
	}
	if len(resp.Fabric) != 3 || resp.Fabric[0] != "cotton" {
		t.Errorf("Options() fabric = %v, want sorted distinct values", resp.Fabric)
	}
	if len(resp.Occasion) != 3 || len(resp.Neckline) != 3 || len(resp.Sleeve) != 3 {
		t.Errorf("Options() incomplete: %+v", resp)
	}
}
