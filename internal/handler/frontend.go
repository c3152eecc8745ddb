// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package handler provides HTTP handlers for the studio site: the
// public portfolio pages, booking intake, authentication, and the
// admin panel.
package handler

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/olegiv/photostudio-go/internal/model"
	"github.com/olegiv/photostudio-go/internal/render"
	"github.com/olegiv/photostudio-go/internal/store"
)

// FeaturedLimit caps the number of featured photos on the landing page.
const FeaturedLimit = 6

// CategoryAll is the sentinel portfolio filter matching every category.
const CategoryAll = "all"

// FrontendHandler handles the public pages.
type FrontendHandler struct {
	queries  *store.Queries
	renderer *render.Renderer
}

// NewFrontendHandler creates a new FrontendHandler.
func NewFrontendHandler(db *sql.DB, renderer *render.Renderer) *FrontendHandler {
	return &FrontendHandler{
		queries:  store.New(db),
		renderer: renderer,
	}
}

// HomeData holds the landing page data.
type HomeData struct {
	FeaturedPhotos []model.Photo
	Categories     []string
}

// Home renders the landing page with featured photos and the category list.
func (h *FrontendHandler) Home(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	featured, err := h.queries.ListFeaturedPhotos(ctx, FeaturedLimit)
	if err != nil {
		slog.Error("failed to list featured photos", "error", err)
	}
	categories, err := h.queries.ListCategories(ctx)
	if err != nil {
		slog.Error("failed to list categories", "error", err)
	}

	renderOrError(w, r, h.renderer, "frontend/index", render.TemplateData{
		Title: "Photography Studio",
		Data: HomeData{
			FeaturedPhotos: featured,
			Categories:     categories,
		},
	})
}

// PortfolioData holds the portfolio page data.
type PortfolioData struct {
	Photos          []model.Photo
	Categories      []string
	CurrentCategory string
}

// Portfolio renders the photo listing, optionally filtered by the
// category query parameter. The sentinel "all" (or no parameter)
// selects every photo.
func (h *FrontendHandler) Portfolio(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	category := r.URL.Query().Get("category")
	if category == "" {
		category = CategoryAll
	}

	var photos []model.Photo
	var err error
	if category == CategoryAll {
		photos, err = h.queries.ListPhotos(ctx)
	} else {
		photos, err = h.queries.ListPhotosByCategory(ctx, category)
	}
	if err != nil {
		slog.Error("failed to list photos", "category", category, "error", err)
	}

	categories, err := h.queries.ListCategories(ctx)
	if err != nil {
		slog.Error("failed to list categories", "error", err)
	}

	renderOrError(w, r, h.renderer, "frontend/portfolio", render.TemplateData{
		Title: "Portfolio",
		Data: PortfolioData{
			Photos:          photos,
			Categories:      categories,
			CurrentCategory: category,
		},
	})
}

// Services renders the static services page.
func (h *FrontendHandler) Services(w http.ResponseWriter, r *http.Request) {
	renderOrError(w, r, h.renderer, "frontend/services", render.TemplateData{Title: "Services"})
}

// About renders the static about page.
func (h *FrontendHandler) About(w http.ResponseWriter, r *http.Request) {
	renderOrError(w, r, h.renderer, "frontend/about", render.TemplateData{Title: "About"})
}

// Contact renders the static contact page.
func (h *FrontendHandler) Contact(w http.ResponseWriter, r *http.Request) {
	renderOrError(w, r, h.renderer, "frontend/contact", render.TemplateData{Title: "Contact"})
}
