// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/alexedwards/scs/v2"
	"github.com/go-chi/chi/v5"

	"github.com/olegiv/photostudio-go/internal/model"
	"github.com/olegiv/photostudio-go/internal/render"
	"github.com/olegiv/photostudio-go/internal/store"
)

// AdminHandler handles the admin panel routes. All of them sit behind
// middleware.RequireAdmin.
type AdminHandler struct {
	queries        *store.Queries
	renderer       *render.Renderer
	sessionManager *scs.SessionManager
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(db *sql.DB, renderer *render.Renderer, sm *scs.SessionManager) *AdminHandler {
	return &AdminHandler{
		queries:        store.New(db),
		renderer:       renderer,
		sessionManager: sm,
	}
}

// DashboardStats holds the counters displayed on the dashboard.
type DashboardStats struct {
	TotalOrders int64
	TotalPhotos int64
	TotalUsers  int64
}

// DashboardData holds the combined overview data.
type DashboardData struct {
	Stats  DashboardStats
	Orders []model.Order
	Photos []model.Photo
	Users  []model.User
}

// Dashboard renders the combined overview: all orders and photos
// newest first, plus all users.
func (h *AdminHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	data := DashboardData{}

	var err error
	if data.Orders, err = h.queries.ListOrders(ctx); err != nil {
		slog.Error("failed to list orders", "error", err)
	}
	if data.Photos, err = h.queries.ListPhotos(ctx); err != nil {
		slog.Error("failed to list photos", "error", err)
	}
	if data.Users, err = h.queries.ListUsers(ctx); err != nil {
		slog.Error("failed to list users", "error", err)
	}

	if count, err := h.queries.CountOrders(ctx); err != nil {
		slog.Error("failed to count orders", "error", err)
	} else {
		data.Stats.TotalOrders = count
	}
	if count, err := h.queries.CountPhotos(ctx); err != nil {
		slog.Error("failed to count photos", "error", err)
	} else {
		data.Stats.TotalPhotos = count
	}
	if count, err := h.queries.CountUsers(ctx); err != nil {
		slog.Error("failed to count users", "error", err)
	} else {
		data.Stats.TotalUsers = count
	}

	renderOrError(w, r, h.renderer, "admin/dashboard", render.TemplateData{
		Title: "Admin Dashboard",
		Data:  data,
	})
}

// Orders renders all orders, newest first.
func (h *AdminHandler) Orders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.queries.ListOrders(r.Context())
	if err != nil {
		slog.Error("failed to list orders", "error", err)
	}

	renderOrError(w, r, h.renderer, "admin/orders", render.TemplateData{
		Title: "Orders",
		Data:  orders,
	})
}

// Photos renders all photos, newest first.
func (h *AdminHandler) Photos(w http.ResponseWriter, r *http.Request) {
	photos, err := h.queries.ListPhotos(r.Context())
	if err != nil {
		slog.Error("failed to list photos", "error", err)
	}

	renderOrError(w, r, h.renderer, "admin/photos", render.TemplateData{
		Title: "Photos",
		Data:  photos,
	})
}

// UpdateOrderStatus handles POST /admin/order/{id}/status. An unknown
// order is a hard 404; an unknown status value leaves the order
// untouched and surfaces a validation notice.
func (h *AdminHandler) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	orderID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "order not found", http.StatusNotFound)
		return
	}

	order, err := h.queries.GetOrderByID(r.Context(), orderID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			http.Error(w, "order not found", http.StatusNotFound)
		} else {
			slog.Error("failed to get order", "error", err, "order_id", orderID)
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		}
		return
	}

	if !parseFormOrRedirect(w, r, h.renderer, redirectAdminOrders) {
		return
	}

	newStatus := r.FormValue("status")
	if !model.IsValidOrderStatus(newStatus) {
		flashError(w, r, h.renderer, redirectAdminOrders,
			fmt.Sprintf("Unknown status %q for order #%d", newStatus, order.ID))
		return
	}

	err = h.queries.UpdateOrderStatus(r.Context(), store.UpdateOrderStatusParams{
		ID:     order.ID,
		Status: newStatus,
	})
	if err != nil {
		slog.Error("failed to update order status", "error", err, "order_id", order.ID)
		flashError(w, r, h.renderer, redirectAdminOrders, "Error updating order status.")
		return
	}

	slog.Info("order status updated", "order_id", order.ID, "status", newStatus)
	flashSuccess(w, r, h.renderer, redirectAdminOrders,
		fmt.Sprintf("Order #%d status updated to %q", order.ID, newStatus))
}
