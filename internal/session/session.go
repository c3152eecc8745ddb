package session

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/alexedwards/scs/sqlite3store"
	"github.com/alexedwards/scs/v2"
)

// Session keys for authenticated user state. Only the identifier and
// username live in the session; admin privilege is resolved from the
// database on every gated request.
const (
	KeyUserID   = "user_id"
	KeyUsername = "username"
)

// Flash message session keys.
const (
	KeyFlash     = "flash"
	KeyFlashType = "flash_type"
)

// New creates a new session manager backed by the SQLite sessions table.
func New(db *sql.DB, isDev bool) *scs.SessionManager {
	sm := scs.New()

	sm.Store = sqlite3store.New(db)

	sm.Lifetime = 24 * time.Hour
	sm.Cookie.HttpOnly = true
	sm.Cookie.SameSite = http.SameSiteLaxMode
	sm.Cookie.Secure = !isDev // Secure cookies in production only

	return sm
}
