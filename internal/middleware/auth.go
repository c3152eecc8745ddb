// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package middleware provides HTTP middleware for authentication,
// authorization, and request context handling.
package middleware

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/alexedwards/scs/v2"

	"github.com/olegiv/photostudio-go/internal/model"
	"github.com/olegiv/photostudio-go/internal/session"
	"github.com/olegiv/photostudio-go/internal/store"
)

// ContextKey is a type for context keys to avoid collisions.
type ContextKey string

// ContextKeyUser is the context key holding the authenticated user.
const ContextKeyUser ContextKey = "user"

// RequireAdmin creates middleware that guards admin routes. The session
// only carries the user ID; the user row is loaded fresh on every
// request and the is_admin column is the sole source of privilege, so a
// stale or tampered session can never grant access.
func RequireAdmin(sm *scs.SessionManager, db *sql.DB) func(http.Handler) http.Handler {
	queries := store.New(db)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID := sm.GetInt64(r.Context(), session.KeyUserID)
			if userID == 0 {
				denyAccess(w, r, sm)
				return
			}

			user, err := queries.GetUserByID(r.Context(), userID)
			if err != nil {
				// Unknown user: the account vanished under a live session
				_ = sm.Destroy(r.Context())
				denyAccess(w, r, sm)
				return
			}

			if !user.IsAdmin {
				slog.Warn("access denied",
					"status", http.StatusForbidden,
					"method", r.Method,
					"path", r.URL.Path,
					"user_id", user.ID,
				)
				denyAccess(w, r, sm)
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeyUser, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// denyAccess flashes an access-denied notice and redirects to the landing page.
func denyAccess(w http.ResponseWriter, r *http.Request, sm *scs.SessionManager) {
	sm.Put(r.Context(), session.KeyFlash, "Access denied!")
	sm.Put(r.Context(), session.KeyFlashType, "error")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// GetUser retrieves the current user from the request context.
// Returns nil if no user is in context.
func GetUser(r *http.Request) *model.User {
	user, ok := r.Context().Value(ContextKeyUser).(model.User)
	if !ok {
		return nil
	}
	return &user
}
