// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"database/sql"
	"log/slog"
	"net/http"
	"time"

	"github.com/olegiv/photostudio-go/internal/render"
	"github.com/olegiv/photostudio-go/internal/store"
)

// orderDateLayout is the fixed calendar date format accepted by the
// booking form (matches <input type="date">).
const orderDateLayout = "2006-01-02"

// OrdersHandler handles the public booking form.
type OrdersHandler struct {
	queries  *store.Queries
	renderer *render.Renderer
}

// NewOrdersHandler creates a new OrdersHandler.
func NewOrdersHandler(db *sql.DB, renderer *render.Renderer) *OrdersHandler {
	return &OrdersHandler{
		queries:  store.New(db),
		renderer: renderer,
	}
}

// Form renders the booking form.
func (h *OrdersHandler) Form(w http.ResponseWriter, r *http.Request) {
	renderOrError(w, r, h.renderer, "frontend/order", render.TemplateData{Title: "Book a Session"})
}

// Create handles the booking form submission. Name, email, session
// type and date are required; the rest may be empty.
func (h *OrdersHandler) Create(w http.ResponseWriter, r *http.Request) {
	if !parseFormOrRedirect(w, r, h.renderer, redirectOrder) {
		return
	}

	name := r.FormValue("name")
	email := r.FormValue("email")
	sessionType := r.FormValue("session_type")
	dateStr := r.FormValue("date")

	if name == "" || email == "" || sessionType == "" || dateStr == "" {
		flashError(w, r, h.renderer, redirectOrder, "Please fill in name, email, session type and date.")
		return
	}

	date, err := time.Parse(orderDateLayout, dateStr)
	if err != nil {
		flashError(w, r, h.renderer, redirectOrder, "Invalid date format!")
		return
	}

	order, err := h.queries.CreateOrder(r.Context(), store.CreateOrderParams{
		Name:        name,
		Email:       email,
		Phone:       r.FormValue("phone"),
		SessionType: sessionType,
		Date:        date,
		Location:    r.FormValue("location"),
		Message:     r.FormValue("message"),
		CreatedAt:   time.Now().UTC(),
	})
	if err != nil {
		slog.Error("failed to create order", "error", err)
		flashError(w, r, h.renderer, redirectOrder, "Error submitting your order. Please try again.")
		return
	}

	slog.Info("order submitted", "order_id", order.ID, "session_type", order.SessionType)
	flashSuccess(w, r, h.renderer, redirectRoot, "Order submitted successfully! We will contact you shortly.")
}
