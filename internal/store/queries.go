// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/olegiv/photostudio-go/internal/model"
)

// DBTX is the subset of *sql.DB / *sql.Tx used by Queries.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Queries provides typed access to the users, photos and orders tables.
type Queries struct {
	db DBTX
}

// New creates a Queries instance bound to the given database handle.
func New(db DBTX) *Queries {
	return &Queries{db: db}
}

// WithTx returns a Queries instance bound to the given transaction.
func (q *Queries) WithTx(tx *sql.Tx) *Queries {
	return &Queries{db: tx}
}

const userColumns = "id, username, email, password_hash, is_admin, created_at"

func scanUser(row interface{ Scan(dest ...any) error }) (model.User, error) {
	var u model.User
	err := row.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.IsAdmin, &u.CreatedAt)
	return u, err
}

// CreateUserParams holds the fields for CreateUser.
type CreateUserParams struct {
	Username     string
	Email        string
	PasswordHash string
	IsAdmin      bool
	CreatedAt    time.Time
}

// CreateUser inserts a new user and returns the stored row.
func (q *Queries) CreateUser(ctx context.Context, arg CreateUserParams) (model.User, error) {
	row := q.db.QueryRowContext(ctx, `
		INSERT INTO users (username, email, password_hash, is_admin, created_at)
		VALUES (?, ?, ?, ?, ?)
		RETURNING `+userColumns,
		arg.Username, arg.Email, arg.PasswordHash, arg.IsAdmin, arg.CreatedAt,
	)
	return scanUser(row)
}

// GetUserByID returns a single user by ID.
func (q *Queries) GetUserByID(ctx context.Context, id int64) (model.User, error) {
	row := q.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE id = ?`, id)
	return scanUser(row)
}

// GetUserByUsername returns a single user by username.
func (q *Queries) GetUserByUsername(ctx context.Context, username string) (model.User, error) {
	row := q.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE username = ?`, username)
	return scanUser(row)
}

// GetUserByEmail returns a single user by email.
func (q *Queries) GetUserByEmail(ctx context.Context, email string) (model.User, error) {
	row := q.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE email = ?`, email)
	return scanUser(row)
}

// ListUsers returns all users ordered by creation time.
func (q *Queries) ListUsers(ctx context.Context) ([]model.User, error) {
	rows, err := q.db.QueryContext(ctx, `SELECT `+userColumns+` FROM users ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var users []model.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

// CountUsers returns the total number of users.
func (q *Queries) CountUsers(ctx context.Context) (int64, error) {
	var count int64
	err := q.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&count)
	return count, err
}

const photoColumns = "id, title, description, filename, category, price, featured, created_at"

func scanPhoto(row interface{ Scan(dest ...any) error }) (model.Photo, error) {
	var p model.Photo
	err := row.Scan(&p.ID, &p.Title, &p.Description, &p.Filename, &p.Category, &p.Price, &p.Featured, &p.CreatedAt)
	return p, err
}

// CreatePhotoParams holds the fields for CreatePhoto.
type CreatePhotoParams struct {
	Title       string
	Description string
	Filename    string
	Category    string
	Price       sql.NullFloat64
	Featured    bool
	CreatedAt   time.Time
}

// CreatePhoto inserts a new photo and returns the stored row.
func (q *Queries) CreatePhoto(ctx context.Context, arg CreatePhotoParams) (model.Photo, error) {
	row := q.db.QueryRowContext(ctx, `
		INSERT INTO photos (title, description, filename, category, price, featured, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		RETURNING `+photoColumns,
		arg.Title, arg.Description, arg.Filename, arg.Category, arg.Price, arg.Featured, arg.CreatedAt,
	)
	return scanPhoto(row)
}

func (q *Queries) listPhotos(ctx context.Context, query string, args ...any) ([]model.Photo, error) {
	rows, err := q.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var photos []model.Photo
	for rows.Next() {
		p, err := scanPhoto(rows)
		if err != nil {
			return nil, err
		}
		photos = append(photos, p)
	}
	return photos, rows.Err()
}

// ListPhotos returns all photos, newest first.
func (q *Queries) ListPhotos(ctx context.Context) ([]model.Photo, error) {
	return q.listPhotos(ctx, `SELECT `+photoColumns+` FROM photos ORDER BY created_at DESC, id DESC`)
}

// ListPhotosByCategory returns photos in the given category, newest first.
func (q *Queries) ListPhotosByCategory(ctx context.Context, category string) ([]model.Photo, error) {
	return q.listPhotos(ctx, `SELECT `+photoColumns+` FROM photos WHERE category = ? ORDER BY created_at DESC, id DESC`, category)
}

// ListFeaturedPhotos returns up to limit photos flagged as featured.
func (q *Queries) ListFeaturedPhotos(ctx context.Context, limit int64) ([]model.Photo, error) {
	return q.listPhotos(ctx, `SELECT `+photoColumns+` FROM photos WHERE featured = 1 ORDER BY created_at DESC, id DESC LIMIT ?`, limit)
}

// ListCategories returns the distinct set of photo categories, sorted.
func (q *Queries) ListCategories(ctx context.Context) ([]string, error) {
	rows, err := q.db.QueryContext(ctx, `SELECT DISTINCT category FROM photos ORDER BY category`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var categories []string
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

// CountPhotos returns the total number of photos.
func (q *Queries) CountPhotos(ctx context.Context) (int64, error) {
	var count int64
	err := q.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM photos`).Scan(&count)
	return count, err
}

const orderColumns = "id, name, email, phone, session_type, date, location, message, status, created_at"

func scanOrder(row interface{ Scan(dest ...any) error }) (model.Order, error) {
	var o model.Order
	err := row.Scan(&o.ID, &o.Name, &o.Email, &o.Phone, &o.SessionType, &o.Date, &o.Location, &o.Message, &o.Status, &o.CreatedAt)
	return o, err
}

// CreateOrderParams holds the fields for CreateOrder. Status defaults
// to pending at the database level and is not settable here.
type CreateOrderParams struct {
	Name        string
	Email       string
	Phone       string
	SessionType string
	Date        time.Time
	Location    string
	Message     string
	CreatedAt   time.Time
}

// CreateOrder inserts a new booking request and returns the stored row.
func (q *Queries) CreateOrder(ctx context.Context, arg CreateOrderParams) (model.Order, error) {
	row := q.db.QueryRowContext(ctx, `
		INSERT INTO orders (name, email, phone, session_type, date, location, message, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING `+orderColumns,
		arg.Name, arg.Email, arg.Phone, arg.SessionType, arg.Date, arg.Location, arg.Message, arg.CreatedAt,
	)
	return scanOrder(row)
}

// GetOrderByID returns a single order by ID.
func (q *Queries) GetOrderByID(ctx context.Context, id int64) (model.Order, error) {
	row := q.db.QueryRowContext(ctx, `SELECT `+orderColumns+` FROM orders WHERE id = ?`, id)
	return scanOrder(row)
}

// ListOrders returns all orders, newest first.
func (q *Queries) ListOrders(ctx context.Context) ([]model.Order, error) {
	rows, err := q.db.QueryContext(ctx, `SELECT `+orderColumns+` FROM orders ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var orders []model.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

// UpdateOrderStatusParams holds the fields for UpdateOrderStatus.
type UpdateOrderStatusParams struct {
	ID     int64
	Status string
}

// UpdateOrderStatus sets the status of an existing order.
func (q *Queries) UpdateOrderStatus(ctx context.Context, arg UpdateOrderStatusParams) error {
	result, err := q.db.ExecContext(ctx, `UPDATE orders SET status = ? WHERE id = ?`, arg.Status, arg.ID)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// CountOrders returns the total number of orders.
func (q *Queries) CountOrders(ctx context.Context) (int64, error) {
	var count int64
	err := q.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM orders`).Scan(&count)
	return count, err
}
