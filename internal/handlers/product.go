package handlers

import (
	"bytes"
	"fmt"
	"html/template"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	ghhtml "github.com/yuin/goldmark/renderer/html"

	"fashionous/internal/catalog"
	"fashionous/internal/contextutil"
)

// ProductHandler serves a catalog item as a rendered HTML detail page. The
// dataset's description field is markdown; everything else on the page comes
// from the structured attributes.
type ProductHandler struct {
	cat      *catalog.Catalog
	markdown goldmark.Markdown
	template *template.Template
}

// productPageData holds template data for rendered product pages.
type productPageData struct {
	Title    string
	ID       string
	Price    int
	Fabrics  string
	Sleeve   string
	Neckline string
	Content  template.HTML
}

// NewProductHandler creates a handler for serving product detail pages.
func NewProductHandler(cat *catalog.Catalog) *ProductHandler {
	tmpl := template.Must(template.New("product").Parse(`<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>{{.Title}} — Fashionous</title>
  <style>
    body {
      font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', sans-serif;
      margin: 0 auto;
      padding: 2rem;
      max-width: 720px;
      line-height: 1.7;
      background: #fdf6f0;
      color: #3d2c29;
    }
    header {
      margin-bottom: 1.5rem;
      border-bottom: 1px solid #e7d8cc;
      padding-bottom: 1rem;
    }
    h1 {
      margin-top: 0;
      font-size: 1.8rem;
      color: #8c3b4a;
    }
    .meta {
      color: #7a6a60;
      font-size: 0.95rem;
    }
    .price {
      font-size: 1.3rem;
      color: #8c3b4a;
      font-weight: 600;
    }
    article {
      background: #fff;
      border: 1px solid #e7d8cc;
      border-radius: 12px;
      padding: 1.5rem;
    }
  </style>
</head>
<body>
  <header>
    <h1>{{.Title}}</h1>
    <p class="meta">Design {{.ID}} &middot; {{.Fabrics}} &middot; {{.Neckline}} &middot; {{.Sleeve}}</p>
    <p class="price">₹{{.Price}}</p>
  </header>
  <article>{{.Content}}</article>
</body>
</html>`))

	return &ProductHandler{
		cat: cat,
		markdown: goldmark.New(
			goldmark.WithExtensions(
				extension.GFM,
				extension.Typographer,
			),
			goldmark.WithRendererOptions(
				ghhtml.WithHardWraps(),
			),
		),
		template: tmpl,
	}
}

// ServeHTTP renders the requested catalog item as HTML.
func (h *ProductHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	id := strings.TrimSpace(chi.URLParam(r, "id"))
	if id == "" {
		http.Error(w, "design id is required", http.StatusBadRequest)
		return
	}

	item, ok := h.cat.ByID(id)
	if !ok {
		logger.WarnContext(ctx, "unknown design requested", "design_id", id)
		http.Error(w, "design not found", http.StatusNotFound)
		return
	}

	content, err := h.renderMarkdown(item.Description)
	if err != nil {
		logger.ErrorContext(ctx, "failed to render description", "design_id", id, "error", err)
		http.Error(w, "failed to render design page", http.StatusInternalServerError)
		return
	}

	pageData := productPageData{
		Title:    item.Title,
		ID:       item.ID,
		Price:    item.Price,
		Fabrics:  strings.Join(item.Fabric.Values(), ", "),
		Sleeve:   item.Sleeve,
		Neckline: item.Neckline,
		Content:  template.HTML(content),
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.template.Execute(w, pageData); err != nil {
		logger.ErrorContext(ctx, "failed to execute product template", "design_id", id, "error", err)
	}
}

func (h *ProductHandler) renderMarkdown(content string) (string, error) {
	var buf bytes.Buffer
	if err := h.markdown.Convert([]byte(content), &buf); err != nil {
		return "", fmt.Errorf("convert markdown: %w", err)
	}
	return buf.String(), nil
}
