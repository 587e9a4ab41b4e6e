package controllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"car_dealership_api/app"
	"car_dealership_api/auth"
	"car_dealership_api/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestRegisterAndLogin(t *testing.T) {
	gin.SetMode(gin.TestMode)
	s, fs := newTestSrv(t)
	ac := NewAuthController(s)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = jsonRequest(t, "POST", "/api/auth/register", map[string]interface{}{
		"username":  "alice",
		"password":  "s3cret",
		"email":     "alice@example.com",
		"full_name": "Alice A.",
	})
	ac.Register(c)

	assert.Equal(t, http.StatusOK, w.Code)
	user, _ := dataOf(t, w)["user"].(map[string]interface{})
	assert.Equal(t, "alice", user["username"])
	assert.Equal(t, models.RoleUser, user["role"])
	assert.NotContains(t, w.Body.String(), "s3cret")

	// The stored credential is a hash, not the password.
	var stored models.User
	s.Repo.DB.First(&stored, "username = ?", "alice")
	assert.NotEqual(t, "s3cret", stored.PasswordHash)
	assert.True(t, auth.CheckPassword("s3cret", stored.PasswordHash))

	w = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(w)
	c.Request = jsonRequest(t, "POST", "/api/auth/login", map[string]interface{}{
		"username": "alice",
		"password": "s3cret",
	})
	ac.Login(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Set-Cookie"), app.AppSessionCookie+"=")
	// Cookie lifetime follows the configured session TTL (an hour in tests).
	assert.Contains(t, w.Header().Get("Set-Cookie"), "Max-Age=3600")
	assert.Len(t, fs.sessions, 1)
}

func TestLoginInvalidCredentials(t *testing.T) {
	gin.SetMode(gin.TestMode)
	s, fs := newTestSrv(t)
	ac := NewAuthController(s)

	hash, _ := auth.HashPassword("s3cret")
	s.Repo.DB.Create(&models.User{Username: "alice", PasswordHash: hash, Role: models.RoleUser})

	for _, body := range []map[string]interface{}{
		{"username": "alice", "password": "wrong"},
		{"username": "nobody", "password": "s3cret"},
	} {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = jsonRequest(t, "POST", "/api/auth/login", body)
		ac.Login(c)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "Invalid credentials", envelope(t, w)["error"])
	}
	assert.Empty(t, fs.sessions)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	gin.SetMode(gin.TestMode)
	s, _ := newTestSrv(t)
	ac := NewAuthController(s)
	seedTestUser(t, s, "alice", models.RoleUser)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = jsonRequest(t, "POST", "/api/auth/register", map[string]interface{}{
		"username": "alice",
		"password": "s3cret",
	})
	ac.Register(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Username already taken", envelope(t, w)["error"])
}

func TestLogoutDeletesSession(t *testing.T) {
	gin.SetMode(gin.TestMode)
	s, fs := newTestSrv(t)
	ac := NewAuthController(s)

	_ = fs.Create(nil, "sess-1", 1)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("POST", "/api/auth/logout", nil)
	c.Request.AddCookie(&http.Cookie{Name: app.AppSessionCookie, Value: "sess-1"})
	ac.Logout(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, fs.sessions)
	assert.True(t, strings.Contains(w.Header().Get("Set-Cookie"), "Max-Age=0"))
}
