package store

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/olegiv/photostudio-go/internal/auth"
	"github.com/olegiv/photostudio-go/internal/model"
)

// testDB creates a temporary test database.
func testDB(t *testing.T) (*sql.DB, func()) {
	t.Helper()

	f, err := os.CreateTemp(t.TempDir(), "studio-test-*.db")
	if err != nil {
		t.Fatalf("creating temp file: %v", err)
	}
	dbPath := f.Name()
	_ = f.Close()

	db, err := NewDB(dbPath)
	if err != nil {
		t.Fatalf("NewDB: %v", err)
	}

	if err := Migrate(db); err != nil {
		_ = db.Close()
		t.Fatalf("Migrate: %v", err)
	}

	return db, func() {
		_ = db.Close()
	}
}

func TestCreateUser(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	ctx := context.Background()
	q := New(db)

	user, err := q.CreateUser(ctx, CreateUserParams{
		Username:     "alice",
		Email:        "alice@example.com",
		PasswordHash: "hashed-password",
		IsAdmin:      false,
		CreatedAt:    time.Now().UTC(),
	})
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}

	if user.ID == 0 {
		t.Error("user.ID should not be 0")
	}
	if user.Username != "alice" {
		t.Errorf("Username = %q, want %q", user.Username, "alice")
	}
	if user.IsAdmin {
		t.Error("IsAdmin should default to false")
	}
}

func TestCreateUser_DuplicateUsername(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	ctx := context.Background()
	q := New(db)

	params := CreateUserParams{
		Username:     "bob",
		Email:        "bob@example.com",
		PasswordHash: "hash",
		CreatedAt:    time.Now().UTC(),
	}
	if _, err := q.CreateUser(ctx, params); err != nil {
		t.Fatalf("CreateUser: %v", err)
	}

	params.Email = "other@example.com"
	if _, err := q.CreateUser(ctx, params); err == nil {
		t.Fatal("second CreateUser with the same username should fail")
	}

	// Exactly one row with the username remains
	if _, err := q.GetUserByUsername(ctx, "bob"); err != nil {
		t.Fatalf("GetUserByUsername: %v", err)
	}
	count, err := q.CountUsers(ctx)
	if err != nil {
		t.Fatalf("CountUsers: %v", err)
	}
	if count != 1 {
		t.Errorf("CountUsers = %d, want 1", count)
	}
}

func TestGetUserByUsername_NotFound(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	_, err := New(db).GetUserByUsername(context.Background(), "nobody")
	if !errors.Is(err, sql.ErrNoRows) {
		t.Errorf("err = %v, want sql.ErrNoRows", err)
	}
}

func TestPhotoQueries(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	ctx := context.Background()
	q := New(db)

	base := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	photos := []CreatePhotoParams{
		{Title: "One", Filename: "one.jpg", Category: "Portrait", Featured: true, CreatedAt: base},
		{Title: "Two", Filename: "two.jpg", Category: "Wedding", Featured: true, CreatedAt: base.Add(time.Hour)},
		{Title: "Three", Filename: "three.jpg", Category: "Portrait", Featured: false, CreatedAt: base.Add(2 * time.Hour)},
	}
	for _, p := range photos {
		if _, err := q.CreatePhoto(ctx, p); err != nil {
			t.Fatalf("CreatePhoto(%q): %v", p.Title, err)
		}
	}

	all, err := q.ListPhotos(ctx)
	if err != nil {
		t.Fatalf("ListPhotos: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("ListPhotos returned %d photos, want 3", len(all))
	}
	if all[0].Title != "Three" {
		t.Errorf("ListPhotos[0].Title = %q, want newest first (%q)", all[0].Title, "Three")
	}

	portraits, err := q.ListPhotosByCategory(ctx, "Portrait")
	if err != nil {
		t.Fatalf("ListPhotosByCategory: %v", err)
	}
	if len(portraits) != 2 {
		t.Fatalf("ListPhotosByCategory returned %d photos, want 2", len(portraits))
	}
	for _, p := range portraits {
		if p.Category != "Portrait" {
			t.Errorf("photo %q has category %q, want Portrait", p.Title, p.Category)
		}
	}

	// The union over all categories equals the unfiltered result set
	categories, err := q.ListCategories(ctx)
	if err != nil {
		t.Fatalf("ListCategories: %v", err)
	}
	if len(categories) != 2 {
		t.Fatalf("ListCategories = %v, want 2 distinct categories", categories)
	}
	var union int
	for _, c := range categories {
		inCat, err := q.ListPhotosByCategory(ctx, c)
		if err != nil {
			t.Fatalf("ListPhotosByCategory(%q): %v", c, err)
		}
		union += len(inCat)
	}
	if union != len(all) {
		t.Errorf("union over categories = %d photos, want %d", union, len(all))
	}

	featured, err := q.ListFeaturedPhotos(ctx, 6)
	if err != nil {
		t.Fatalf("ListFeaturedPhotos: %v", err)
	}
	if len(featured) != 2 {
		t.Fatalf("ListFeaturedPhotos returned %d photos, want 2", len(featured))
	}
	for _, p := range featured {
		if !p.Featured {
			t.Errorf("photo %q is not featured", p.Title)
		}
	}
}

func TestListFeaturedPhotos_Cap(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	ctx := context.Background()
	q := New(db)

	for i := 0; i < 8; i++ {
		_, err := q.CreatePhoto(ctx, CreatePhotoParams{
			Title:     "Photo",
			Filename:  "p.jpg",
			Category:  "Portrait",
			Featured:  true,
			CreatedAt: time.Now().UTC(),
		})
		if err != nil {
			t.Fatalf("CreatePhoto: %v", err)
		}
	}

	featured, err := q.ListFeaturedPhotos(ctx, 6)
	if err != nil {
		t.Fatalf("ListFeaturedPhotos: %v", err)
	}
	if len(featured) != 6 {
		t.Errorf("ListFeaturedPhotos returned %d photos, want cap of 6", len(featured))
	}
}

func createTestOrder(t *testing.T, q *Queries) model.Order {
	t.Helper()

	order, err := q.CreateOrder(context.Background(), CreateOrderParams{
		Name:        "Carol",
		Email:       "carol@example.com",
		SessionType: "Wedding",
		Date:        time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC),
		CreatedAt:   time.Now().UTC(),
	})
	if err != nil {
		t.Fatalf("CreateOrder: %v", err)
	}
	return order
}

func TestCreateOrder_DefaultsToPending(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	order := createTestOrder(t, New(db))
	if order.Status != model.OrderStatusPending {
		t.Errorf("Status = %q, want %q", order.Status, model.OrderStatusPending)
	}
}

func TestUpdateOrderStatus(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	ctx := context.Background()
	q := New(db)
	order := createTestOrder(t, q)

	err := q.UpdateOrderStatus(ctx, UpdateOrderStatusParams{ID: order.ID, Status: model.OrderStatusConfirmed})
	if err != nil {
		t.Fatalf("UpdateOrderStatus: %v", err)
	}

	got, err := q.GetOrderByID(ctx, order.ID)
	if err != nil {
		t.Fatalf("GetOrderByID: %v", err)
	}
	if got.Status != model.OrderStatusConfirmed {
		t.Errorf("Status = %q, want %q", got.Status, model.OrderStatusConfirmed)
	}
}

func TestUpdateOrderStatus_NotFound(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	err := New(db).UpdateOrderStatus(context.Background(), UpdateOrderStatusParams{ID: 9999, Status: model.OrderStatusConfirmed})
	if !errors.Is(err, sql.ErrNoRows) {
		t.Errorf("err = %v, want sql.ErrNoRows", err)
	}
}

func TestUpdateOrderStatus_CheckConstraint(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	ctx := context.Background()
	q := New(db)
	order := createTestOrder(t, q)

	// The CHECK constraint is the last line of defense behind handler validation.
	err := q.UpdateOrderStatus(ctx, UpdateOrderStatusParams{ID: order.ID, Status: "shipped"})
	if err == nil {
		t.Fatal("UpdateOrderStatus with unknown status should fail the CHECK constraint")
	}

	got, err := q.GetOrderByID(ctx, order.ID)
	if err != nil {
		t.Fatalf("GetOrderByID: %v", err)
	}
	if got.Status != model.OrderStatusPending {
		t.Errorf("Status = %q, want unchanged %q", got.Status, model.OrderStatusPending)
	}
}

func TestListOrders_NewestFirst(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	ctx := context.Background()
	q := New(db)

	base := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	for i, name := range []string{"first", "second", "third"} {
		_, err := q.CreateOrder(ctx, CreateOrderParams{
			Name:        name,
			Email:       name + "@example.com",
			SessionType: "Portrait",
			Date:        base,
			CreatedAt:   base.Add(time.Duration(i) * time.Hour),
		})
		if err != nil {
			t.Fatalf("CreateOrder(%q): %v", name, err)
		}
	}

	orders, err := q.ListOrders(ctx)
	if err != nil {
		t.Fatalf("ListOrders: %v", err)
	}
	if len(orders) != 3 {
		t.Fatalf("ListOrders returned %d orders, want 3", len(orders))
	}
	if orders[0].Name != "third" || orders[2].Name != "first" {
		t.Errorf("orders not newest first: %q, %q, %q", orders[0].Name, orders[1].Name, orders[2].Name)
	}
}

func TestSeed(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	ctx := context.Background()
	if err := Seed(ctx, db); err != nil {
		t.Fatalf("Seed: %v", err)
	}

	q := New(db)

	admin, err := q.GetUserByUsername(ctx, DefaultAdminUsername)
	if err != nil {
		t.Fatalf("GetUserByUsername(admin): %v", err)
	}
	if !admin.IsAdmin {
		t.Error("seeded admin should have IsAdmin = true")
	}
	valid, err := auth.CheckPassword(DefaultAdminPassword, admin.PasswordHash)
	if err != nil || !valid {
		t.Errorf("seeded admin password does not verify (valid=%v, err=%v)", valid, err)
	}

	photos, err := q.ListPhotos(ctx)
	if err != nil {
		t.Fatalf("ListPhotos: %v", err)
	}
	if len(photos) != 6 {
		t.Errorf("seeded %d photos, want 6", len(photos))
	}
	for _, p := range photos {
		if !p.Featured {
			t.Errorf("seeded photo %q should be featured", p.Title)
		}
	}

	categories, err := q.ListCategories(ctx)
	if err != nil {
		t.Fatalf("ListCategories: %v", err)
	}
	if len(categories) != 6 {
		t.Errorf("seeded %d distinct categories, want 6", len(categories))
	}
}

func TestSeed_Idempotent(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	ctx := context.Background()
	if err := Seed(ctx, db); err != nil {
		t.Fatalf("first Seed: %v", err)
	}
	if err := Seed(ctx, db); err != nil {
		t.Fatalf("second Seed: %v", err)
	}

	q := New(db)
	users, err := q.CountUsers(ctx)
	if err != nil {
		t.Fatalf("CountUsers: %v", err)
	}
	if users != 1 {
		t.Errorf("CountUsers = %d after double seed, want 1", users)
	}
	photos, err := q.CountPhotos(ctx)
	if err != nil {
		t.Fatalf("CountPhotos: %v", err)
	}
	if photos != 6 {
		t.Errorf("CountPhotos = %d after double seed, want 6", photos)
	}
}
