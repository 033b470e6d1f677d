// Catalogrec - Product Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/catalogrec

package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/catalogrec/internal/catalog"
	"github.com/tomtom215/catalogrec/internal/logging"
	"github.com/tomtom215/catalogrec/internal/metrics"
	"github.com/tomtom215/catalogrec/internal/recommend"
)

// Recommender is the read-only view of the recommendation engine used by the handlers.
// *recommend.Engine implements it.
type Recommender interface {
	ListProducts(category, search string) []catalog.Product
	Categories() []string
	Similar(id int) []catalog.Product
	Trending() []catalog.Product
	Deals() []catalog.Product
	Size() int
	Stats() recommend.Stats
}

// Handler serves the catalog and recommendation endpoints.
type Handler struct {
	engine    Recommender
	startTime time.Time
}

// NewHandler creates a handler backed by engine.
func NewHandler(engine Recommender) *Handler {
	return &Handler{
		engine:    engine,
		startTime: time.Now(),
	}
}

// listProductsRequest holds the validated query parameters of GET /api/products.
type listProductsRequest struct {
	Category string `query:"category" validate:"max=64,nocontrol"`
	Search   string `query:"search" validate:"max=100,nocontrol"`
}

// ListProducts handles GET /api/products
//
// @Summary List products
// @Description Returns catalog products in catalog order. An empty category or "All" disables the category filter. The search term matches name or tags, case-insensitively.
// @Tags Catalog
// @Produce json
// @Param category query string false "Exact category name, or All (at most 64 characters, no control characters)" maxlength(64)
// @Param search query string false "Case-insensitive substring of name or tag (at most 100 characters, no control characters)" maxlength(100)
// @Success 200 {object} api.ProductsResponse
// @Failure 400 {object} api.ErrorResponse "Invalid query parameters"
// @Router /products [get]
func (h *Handler) ListProducts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	req := listProductsRequest{
		Category: q.Get("category"),
		Search:   q.Get("search"),
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondErrorWithDetails(w, r, http.StatusBadRequest, apiErr.Code, apiErr.Message, apiErr.Details, nil)
		return
	}

	respondJSON(w, r, http.StatusOK, &ProductsResponse{
		Products: h.engine.ListProducts(req.Category, req.Search),
	})
}

// Categories handles GET /api/categories
//
// @Summary List categories
// @Description Returns the distinct catalog categories in lexicographic order.
// @Tags Catalog
// @Produce json
// @Success 200 {object} api.CategoriesResponse
// @Router /categories [get]
func (h *Handler) Categories(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, r, http.StatusOK, &CategoriesResponse{
		Categories: h.engine.Categories(),
	})
}

// Similar handles GET /api/recommend/similar/{id}
//
// @Summary Similar products
// @Description Returns up to 6 products most similar to the given product by cosine similarity of category, price and rating features. The product itself is excluded. An unknown id returns an empty list.
// @Tags Recommendations
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} api.RecommendationsResponse
// @Failure 400 {object} api.ErrorResponse "Product ID is not an integer"
// @Router /recommend/similar/{id} [get]
func (h *Handler) Similar(w http.ResponseWriter, r *http.Request) {
	idStr := chi.URLParam(r, "id")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		respondError(w, r, http.StatusBadRequest, ErrCodeInvalidProductID, "Product ID must be an integer", err)
		return
	}

	results := h.engine.Similar(id)
	if len(results) == 0 {
		logging.Ctx(r.Context()).Debug().Int("product_id", id).Msg("No similar products")
	}
	h.respondRecommendations(w, r, recommend.AlgorithmSimilar, results)
}

// Trending handles GET /api/recommend/trending
//
// @Summary Trending products
// @Description Returns up to 6 products ranked by reviews multiplied by rating.
// @Tags Recommendations
// @Produce json
// @Success 200 {object} api.RecommendationsResponse
// @Router /recommend/trending [get]
func (h *Handler) Trending(w http.ResponseWriter, r *http.Request) {
	h.respondRecommendations(w, r, recommend.AlgorithmTrending, h.engine.Trending())
}

// Deals handles GET /api/recommend/deals
//
// @Summary Best-value products
// @Description Returns up to 6 products ranked by rating divided by price.
// @Tags Recommendations
// @Produce json
// @Success 200 {object} api.RecommendationsResponse
// @Router /recommend/deals [get]
func (h *Handler) Deals(w http.ResponseWriter, r *http.Request) {
	h.respondRecommendations(w, r, recommend.AlgorithmDeals, h.engine.Deals())
}

func (h *Handler) respondRecommendations(w http.ResponseWriter, r *http.Request, algorithm string, results []catalog.Product) {
	metrics.RecordRecommendation(algorithm, len(results))
	respondJSON(w, r, http.StatusOK, &RecommendationsResponse{Recommendations: results})
}
