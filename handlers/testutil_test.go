package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"restaurant-api/config"
	"restaurant-api/middleware"
	"restaurant-api/models"
	"restaurant-api/routes"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// setupRouter wires the full router against a fresh in-memory database.
// The DSN is derived from the test name so parallel packages never share
// state.
func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	name := strings.ReplaceAll(t.Name(), "/", "_")
	db, err := config.Connect("file:" + name + "?mode=memory&cache=shared")
	require.NoError(t, err)
	config.DB = db

	r := gin.New()
	routes.SetupRoutes(r)
	return r
}

func doRequest(r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func parseBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), "body: %s", w.Body.String())
	return out
}

// registerUser registers through the API and returns the issued token and id
func registerUser(t *testing.T, r *gin.Engine, username, email, password string) (string, uint) {
	t.Helper()
	w := doRequest(r, "POST", "/api/auth/register", "", gin.H{
		"username": username,
		"email":    email,
		"password": password,
	})
	require.Equal(t, 201, w.Code, "register failed: %s", w.Body.String())
	body := parseBody(t, w)
	return body["token"].(string), uint(body["id"].(float64))
}

// seedAdmin creates an admin account directly in the store and returns a
// token for it. Registration never grants the admin role.
func seedAdmin(t *testing.T) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("adminpass"), bcrypt.MinCost)
	require.NoError(t, err)
	admin := models.User{
		Username:     "admin",
		Email:        "admin@resto.test",
		PasswordHash: string(hash),
		Role:         models.RoleAdmin,
	}
	require.NoError(t, config.DB.Create(&admin).Error)
	token, err := middleware.GenerateToken(&admin)
	require.NoError(t, err)
	return token
}

func seedMenuItem(t *testing.T, name string, price float64, category string, available bool) models.MenuItem {
	t.Helper()
	item := models.MenuItem{
		Name:        name,
		Description: name + " from the kitchen",
		Price:       price,
		Category:    category,
		ImageURL:    models.DefaultImageURL,
		Available:   available,
	}
	require.NoError(t, config.DB.Create(&item).Error)
	return item
}
