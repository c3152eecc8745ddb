// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/alexedwards/scs/v2"

	"github.com/olegiv/photostudio-go/internal/auth"
	"github.com/olegiv/photostudio-go/internal/render"
	"github.com/olegiv/photostudio-go/internal/session"
	"github.com/olegiv/photostudio-go/internal/store"
)

// AuthHandler handles registration, login and logout.
type AuthHandler struct {
	queries        *store.Queries
	renderer       *render.Renderer
	sessionManager *scs.SessionManager
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(db *sql.DB, renderer *render.Renderer, sm *scs.SessionManager) *AuthHandler {
	return &AuthHandler{
		queries:        store.New(db),
		renderer:       renderer,
		sessionManager: sm,
	}
}

// LoginForm renders the login page.
// Redirects already-authenticated users: admins to the dashboard, others home.
func (h *AuthHandler) LoginForm(w http.ResponseWriter, r *http.Request) {
	if userID := h.sessionManager.GetInt64(r.Context(), session.KeyUserID); userID > 0 {
		user, err := h.queries.GetUserByID(r.Context(), userID)
		if err == nil {
			if user.IsAdmin {
				http.Redirect(w, r, redirectAdmin, http.StatusSeeOther)
				return
			}
			http.Redirect(w, r, redirectRoot, http.StatusSeeOther)
			return
		}
	}

	renderOrError(w, r, h.renderer, "auth/login", render.TemplateData{Title: "Log In"})
}

// Login handles the login form submission. Unknown usernames and wrong
// passwords produce the same generic notice.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if !parseFormOrRedirect(w, r, h.renderer, redirectLogin) {
		return
	}

	username := r.FormValue("username")
	password := r.FormValue("password")

	if username == "" || password == "" {
		flashError(w, r, h.renderer, redirectLogin, "Username and password are required.")
		return
	}

	user, err := h.queries.GetUserByUsername(r.Context(), username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			slog.Debug("login attempt for non-existent user", "username", username)
		} else {
			slog.Error("database error during login", "error", err)
		}
		flashError(w, r, h.renderer, redirectLogin, "Invalid username or password!")
		return
	}

	valid, err := auth.CheckPassword(password, user.PasswordHash)
	if err != nil {
		slog.Error("password check error", "error", err)
		flashError(w, r, h.renderer, redirectLogin, "Invalid username or password!")
		return
	}
	if !valid {
		slog.Debug("invalid password attempt", "username", username)
		flashError(w, r, h.renderer, redirectLogin, "Invalid username or password!")
		return
	}

	// Renew the token on privilege change to prevent session fixation
	if err := h.sessionManager.RenewToken(r.Context()); err != nil {
		slog.Error("failed to renew session token", "error", err)
		flashError(w, r, h.renderer, redirectLogin, "Error logging in. Please try again.")
		return
	}

	h.sessionManager.Put(r.Context(), session.KeyUserID, user.ID)
	h.sessionManager.Put(r.Context(), session.KeyUsername, user.Username)

	slog.Info("user logged in", "user_id", user.ID, "username", user.Username)
	flashSuccess(w, r, h.renderer, redirectRoot, fmt.Sprintf("Welcome, %s!", user.Username))
}

// RegisterForm renders the registration page.
func (h *AuthHandler) RegisterForm(w http.ResponseWriter, r *http.Request) {
	renderOrError(w, r, h.renderer, "auth/register", render.TemplateData{Title: "Register"})
}

// Register handles the registration form submission. Username and email
// must both be unused; new accounts never get the admin flag.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	if !parseFormOrRedirect(w, r, h.renderer, redirectRegister) {
		return
	}

	username := r.FormValue("username")
	email := r.FormValue("email")
	password := r.FormValue("password")

	if username == "" || email == "" || password == "" {
		flashError(w, r, h.renderer, redirectRegister, "Username, email and password are required.")
		return
	}

	if _, err := h.queries.GetUserByUsername(r.Context(), username); err == nil {
		flashError(w, r, h.renderer, redirectRegister, "A user with that username already exists!")
		return
	} else if !errors.Is(err, sql.ErrNoRows) {
		slog.Error("database error during registration", "error", err)
		flashError(w, r, h.renderer, redirectRegister, "Error registering. Please try again.")
		return
	}

	if _, err := h.queries.GetUserByEmail(r.Context(), email); err == nil {
		flashError(w, r, h.renderer, redirectRegister, "A user with that email already exists!")
		return
	} else if !errors.Is(err, sql.ErrNoRows) {
		slog.Error("database error during registration", "error", err)
		flashError(w, r, h.renderer, redirectRegister, "Error registering. Please try again.")
		return
	}

	passwordHash, err := auth.HashPassword(password)
	if err != nil {
		slog.Error("failed to hash password", "error", err)
		flashError(w, r, h.renderer, redirectRegister, "Error registering. Please try again.")
		return
	}

	user, err := h.queries.CreateUser(r.Context(), store.CreateUserParams{
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
		IsAdmin:      false,
		CreatedAt:    time.Now().UTC(),
	})
	if err != nil {
		// UNIQUE constraints backstop the pre-checks under concurrent registration
		slog.Error("failed to create user", "error", err)
		flashError(w, r, h.renderer, redirectRegister, "Error registering. Please try again.")
		return
	}

	slog.Info("user registered", "user_id", user.ID, "username", user.Username)
	flashSuccess(w, r, h.renderer, redirectRoot, "Registration successful! You can now log in.")
}

// Logout clears all session state unconditionally.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.sessionManager.Destroy(r.Context()); err != nil {
		slog.Error("failed to destroy session", "error", err)
	}

	flashInfo(w, r, h.renderer, redirectRoot, "You have been logged out!")
}
