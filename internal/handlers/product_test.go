package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"fashionous/internal/catalog"
	"fashionous/internal/handlers"
)

func productRouter(cat *catalog.Catalog) http.Handler {
	r := chi.NewRouter()
	r.Method(http.MethodGet, "/catalog/{id}", handlers.NewProductHandler(cat))
	return r
}

func TestProductHandler_ServeHTTP(t *testing.T) {
	cat := &catalog.Catalog{Items: []catalog.Item{
		{
			ID:          "D1",
			Title:       "Silk Classic",
			Price:       2500,
			Fabric:      catalog.List("silk"),
			Sleeve:      "sleeveless",
			Neckline:    "v-neck",
			Description: "Hand-woven **zari** border.",
		},
	}}
	router := productRouter(cat)

	t.Run("renders the item page", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/catalog/D1", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", w.Code)
		}
		if ct := w.Header().Get("Content-Type"); !strings.Contains(ct, "text/html") {
			t.Errorf("Content-Type = %q", ct)
		}
		body := w.Body.String()
		if !strings.Contains(body, "Silk Classic") {
			t.Error("page missing title")
		}
		// Markdown emphasis must come out as HTML.
		if !strings.Contains(body, "<strong>zari</strong>") {
			t.Error("description markdown not rendered")
		}
	})

	t.Run("unknown design", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/catalog/missing", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("status = %d, want 404", w.Code)
		}
	})
}
