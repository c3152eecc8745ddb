// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/olegiv/photostudio-go/internal/auth"
)

// Default admin credentials, created on first startup if no admin exists.
const (
	DefaultAdminUsername = "admin"
	DefaultAdminEmail    = "admin@portfolio.com"
	DefaultAdminPassword = "admin123"
)

// samplePhoto describes one seeded portfolio entry.
type samplePhoto struct {
	title       string
	description string
	filename    string
	category    string
	price       float64
}

// samplePhotos is the fixed seed set: six featured photos across six
// distinct categories for the landing page.
var samplePhotos = []samplePhoto{
	{"Studio Portrait", "Classic studio portrait", "portrait1.jpg", "Portrait", 1500},
	{"Wedding Shoot", "Romantic wedding moments", "wedding1.jpg", "Wedding", 5000},
	{"Family Session", "Warm family shots", "family1.jpg", "Family", 3000},
	{"Landscape Photography", "The beauty of nature", "landscape1.jpg", "Landscape", 800},
	{"Fashion Shoot", "Contemporary fashion", "fashion1.jpg", "Fashion", 2500},
	{"Children Session", "The innocence of childhood", "children1.jpg", "Children", 2000},
}

// Seed creates initial data in the database: the default admin account
// and, when the photos table is empty, the sample portfolio.
func Seed(ctx context.Context, db *sql.DB) error {
	queries := New(db)

	if err := seedAdmin(ctx, queries); err != nil {
		return err
	}
	return seedPhotos(ctx, queries)
}

func seedAdmin(ctx context.Context, queries *Queries) error {
	_, err := queries.GetUserByUsername(ctx, DefaultAdminUsername)
	if err == nil {
		slog.Info("admin user already exists, skipping seed")
		return nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("checking for admin user: %w", err)
	}

	passwordHash, err := auth.HashPassword(DefaultAdminPassword)
	if err != nil {
		return fmt.Errorf("hashing password: %w", err)
	}

	user, err := queries.CreateUser(ctx, CreateUserParams{
		Username:     DefaultAdminUsername,
		Email:        DefaultAdminEmail,
		PasswordHash: passwordHash,
		IsAdmin:      true,
		CreatedAt:    time.Now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("creating admin user: %w", err)
	}

	slog.Info("created default admin user",
		"id", user.ID,
		"username", user.Username,
		"password", DefaultAdminPassword,
	)

	return nil
}

func seedPhotos(ctx context.Context, queries *Queries) error {
	count, err := queries.CountPhotos(ctx)
	if err != nil {
		return fmt.Errorf("counting photos: %w", err)
	}
	if count > 0 {
		return nil
	}

	now := time.Now().UTC()
	for _, p := range samplePhotos {
		_, err := queries.CreatePhoto(ctx, CreatePhotoParams{
			Title:       p.title,
			Description: p.description,
			Filename:    p.filename,
			Category:    p.category,
			Price:       sql.NullFloat64{Float64: p.price, Valid: true},
			Featured:    true,
			CreatedAt:   now,
		})
		if err != nil {
			return fmt.Errorf("creating sample photo %q: %w", p.title, err)
		}
	}

	slog.Info("seeded sample photos", "count", len(samplePhotos))
	return nil
}
