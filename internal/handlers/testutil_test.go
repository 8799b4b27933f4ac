package handlers_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"

	"campus-portal/internal/config"
	"campus-portal/internal/database"
	"campus-portal/internal/models"
	"campus-portal/internal/server"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const (
	adminEmail    = "admin@campus.local"
	adminPassword = "Admin123!"
	testPassword  = "Secret1!pass"
)

// newTestRouter builds the real router over a throwaway sqlite DB with the
// same migration and seeding path production uses.
func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	t.Setenv("ADMIN_EMAIL", adminEmail)
	t.Setenv("ADMIN_PASSWORD", adminPassword)

	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{})
	require.NoError(t, err)
	database.DB = db
	require.NoError(t, database.Migrate())

	cfg := &config.Config{
		ServerPort:    "0",
		SessionSecret: "handler-test-secret",
		AppEnv:        "test",
		TemplateGlob:  "../../web/templates/*.html",
	}
	return server.NewRouter(cfg)
}

func do(r *gin.Engine, method, path string, form url.Values, cookies []*http.Cookie) *httptest.ResponseRecorder {
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	req := httptest.NewRequest(method, path, body)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// withCookies carries the session forward: a response that set cookies
// replaces the ones we were holding.
func withCookies(old []*http.Cookie, w *httptest.ResponseRecorder) []*http.Cookie {
	if fresh := w.Result().Cookies(); len(fresh) > 0 {
		return fresh
	}
	return old
}

func registerUser(t *testing.T, r *gin.Engine, name, email string) *models.User {
	t.Helper()
	form := url.Values{
		"name":            {name},
		"email":           {email},
		"confirmEmail":    {email},
		"password":        {testPassword},
		"confirmPassword": {testPassword},
	}
	w := do(r, http.MethodPost, "/register", form, nil)
	require.Equal(t, http.StatusFound, w.Code)
	require.Equal(t, "/users", w.Header().Get("Location"))

	user := database.FindUserByEmail(email)
	require.NotNil(t, user)
	return user
}

func login(t *testing.T, r *gin.Engine, email, password string) []*http.Cookie {
	t.Helper()
	form := url.Values{"email": {email}, "password": {password}}
	w := do(r, http.MethodPost, "/login", form, nil)
	require.Equal(t, http.StatusFound, w.Code)
	require.Equal(t, "/dashboard", w.Header().Get("Location"))
	return w.Result().Cookies()
}
