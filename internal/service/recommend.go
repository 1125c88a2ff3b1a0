package service

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_recommend_service.go -package=mocks -mock_names=RecommendService=MockRecommendService fashionous/internal/service RecommendService
//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_order_service.go -package=mocks -mock_names=OrderService=MockOrderService fashionous/internal/service OrderService

import (
	"context"
	"log/slog"
	"strings"

	"fashionous/internal/catalog"
	"fashionous/internal/contextutil"
	"fashionous/internal/criteria"
	"fashionous/internal/matching"
)

// NoMatchMessage is the chat-mode notice returned alongside an empty result
// list. The questionnaire flow never uses it; that path substitutes the
// cheapest items instead.
const NoMatchMessage = "No close matches found."

// ChatRequest represents a chat recommendation request in the domain layer.
type ChatRequest struct {
	Message string
}

// ChatResponse carries ranked items and, when nothing matched, the notice.
type ChatResponse struct {
	Results []catalog.Item
	Message string
	Policy  matching.Policy
}

// QuestionnaireRequest carries the raw answer map from the form flow.
type QuestionnaireRequest struct {
	Criteria map[string]string
}

// QuestionnaireResponse carries ranked items. Results are never empty for a
// non-empty catalog: the cheapest-items fallback kicks in when matching
// produces nothing.
type QuestionnaireResponse struct {
	Results []catalog.Item
	Policy  matching.Policy
}

// OptionsResponse lists the distinct catalog values per attribute, sorted,
// for populating selection UI.
type OptionsResponse struct {
	Fabric   []string `json:"fabric"`
	Occasion []string `json:"occasion"`
	Neckline []string `json:"neckline"`
	Sleeve   []string `json:"sleeve"`
}

// RecommendService produces ranked catalog recommendations.
type RecommendService interface {
	// Chat extracts criteria from a free-text message and ranks items with
	// the hybrid strict policy.
	Chat(ctx context.Context, req ChatRequest) (ChatResponse, error)
	// Questionnaire ranks items for a structured answer map with the
	// weighted questionnaire policy, falling back to the cheapest items.
	Questionnaire(ctx context.Context, req QuestionnaireRequest) (QuestionnaireResponse, error)
	// Options returns the vocabulary lists for the questionnaire UI.
	Options(ctx context.Context) (OptionsResponse, error)
}

// recommendService implements RecommendService over the process-wide
// read-only catalog and vocabulary.
type recommendService struct {
	cat    *catalog.Catalog
	vocab  *catalog.Vocabulary
	topK   int
	logger *slog.Logger
}

// NewRecommendService creates a RecommendService bound to a loaded catalog.
func NewRecommendService(cat *catalog.Catalog, vocab *catalog.Vocabulary, topK int) RecommendService {
	if topK <= 0 {
		topK = matching.DefaultTopK
	}
	return &recommendService{
		cat:    cat,
		vocab:  vocab,
		topK:   topK,
		logger: slog.Default(),
	}
}

// Chat processes a free-text recommendation request.
func (s *recommendService) Chat(ctx context.Context, req ChatRequest) (ChatResponse, error) {
	logger := contextutil.LoggerFromContext(ctx)

	message := strings.ToLower(strings.TrimSpace(req.Message))
	c := criteria.FromText(message, s.vocab)
	results := matching.HybridStrict(c, s.cat.Items, s.topK)

	resp := ChatResponse{
		Results: results,
		Policy:  matching.PolicyHybridStrict,
	}
	if len(results) == 0 {
		resp.Message = NoMatchMessage
	}
	logger.InfoContext(ctx, "chat recommendation processed",
		"criteria", len(c), "results", len(results))
	return resp, nil
}

// Questionnaire processes a structured answer map.
func (s *recommendService) Questionnaire(ctx context.Context, req QuestionnaireRequest) (QuestionnaireResponse, error) {
	logger := contextutil.LoggerFromContext(ctx)

	c := criteria.FromAnswers(req.Criteria)
	results := matching.QuestionnaireWeighted(c, s.cat.Items, s.topK)
	if len(results) == 0 && len(s.cat.Items) > 0 {
		// Top-level fallback: never send the form flow away empty-handed.
		results = matching.CheapestOverall(s.cat.Items, s.topK)
		logger.InfoContext(ctx, "questionnaire matched nothing, substituting cheapest items",
			"criteria", len(c), "results", len(results))
	} else {
		logger.InfoContext(ctx, "questionnaire recommendation processed",
			"criteria", len(c), "results", len(results))
	}
	return QuestionnaireResponse{
		Results: results,
		Policy:  matching.PolicyQuestionnaireWeighted,
	}, nil
}

// Options returns the four sorted vocabulary lists.
func (s *recommendService) Options(ctx context.Context) (OptionsResponse, error) {
	return OptionsResponse{
		Fabric:   s.vocab.Fabrics(),
		Occasion: s.vocab.Occasions(),
		Neckline: s.vocab.Necklines(),
		Sleeve:   s.vocab.Sleeves(),
	}, nil
}
