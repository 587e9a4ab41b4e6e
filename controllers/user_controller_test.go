package controllers

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"car_dealership_api/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func userParams(id uint) gin.Params {
	return gin.Params{{Key: "id", Value: strconv.FormatUint(uint64(id), 10)}}
}

func TestListManagersOnlyManagers(t *testing.T) {
	gin.SetMode(gin.TestMode)
	s, _ := newTestSrv(t)
	uc := NewUserController(s)

	seedTestUser(t, s, "alice", models.RoleUser)
	seedTestUser(t, s, "manager1", models.RoleManager)
	seedTestUser(t, s, "admin", models.RoleAdministrator)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/api/users/managers", nil)
	uc.ListManagers(c)

	assert.Equal(t, http.StatusOK, w.Code)
	managers, _ := dataOf(t, w)["managers"].([]interface{})
	assert.Len(t, managers, 1)
	m, _ := managers[0].(map[string]interface{})
	assert.Equal(t, "manager1", m["username"])
	assert.NotContains(t, w.Body.String(), "password")
}

func TestUpdateUserRevokesSessions(t *testing.T) {
	gin.SetMode(gin.TestMode)
	s, fs := newTestSrv(t)
	uc := NewUserController(s)

	id := seedTestUser(t, s, "alice", models.RoleUser)
	_ = fs.Create(nil, "sess-1", id)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = userParams(id)
	c.Request = jsonRequest(t, "PUT", "/api/users/1", map[string]interface{}{
		"username": "alice",
		"role":     models.RoleManager,
	})
	uc.UpdateUser(c)

	assert.Equal(t, http.StatusOK, w.Code)
	user, _ := dataOf(t, w)["user"].(map[string]interface{})
	assert.Equal(t, models.RoleManager, user["role"])
	assert.Contains(t, fs.revoked, id)
	assert.Empty(t, fs.sessions)
}

func TestUpdateUserRejectsUnknownRole(t *testing.T) {
	gin.SetMode(gin.TestMode)
	s, _ := newTestSrv(t)
	uc := NewUserController(s)
	id := seedTestUser(t, s, "alice", models.RoleUser)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = userParams(id)
	c.Request = jsonRequest(t, "PUT", "/api/users/1", map[string]interface{}{
		"username": "alice",
		"role":     "Superuser",
	})
	uc.UpdateUser(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Role must be User, Manager, or Administrator", envelope(t, w)["error"])
}

func TestUpdateUserDuplicateUsernameHTTP(t *testing.T) {
	gin.SetMode(gin.TestMode)
	s, fs := newTestSrv(t)
	uc := NewUserController(s)

	seedTestUser(t, s, "alice", models.RoleUser)
	bob := seedTestUser(t, s, "bob", models.RoleUser)
	_ = fs.Create(nil, "sess-1", bob)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = userParams(bob)
	c.Request = jsonRequest(t, "PUT", "/api/users/2", map[string]interface{}{
		"username": "alice",
		"role":     models.RoleUser,
	})
	uc.UpdateUser(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Username already taken", envelope(t, w)["error"])
	assert.Len(t, fs.sessions, 1, "a refused update keeps sessions alive")
}

func TestUpdateUserNotFound(t *testing.T) {
	gin.SetMode(gin.TestMode)
	s, _ := newTestSrv(t)
	uc := NewUserController(s)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = userParams(9999)
	c.Request = jsonRequest(t, "PUT", "/api/users/9999", map[string]interface{}{
		"username": "ghost",
		"role":     models.RoleUser,
	})
	uc.UpdateUser(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "User not found", envelope(t, w)["error"])
}

func TestDeleteUser(t *testing.T) {
	gin.SetMode(gin.TestMode)
	s, fs := newTestSrv(t)
	uc := NewUserController(s)

	admin := seedTestUser(t, s, "admin", models.RoleAdministrator)
	victim := seedTestUser(t, s, "alice", models.RoleUser)
	_ = fs.Create(nil, "sess-1", victim)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = userParams(victim)
	c.Set("userID", admin)
	c.Request = httptest.NewRequest("DELETE", "/api/users/2", nil)
	uc.DeleteUser(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, fs.sessions)

	var n int64
	s.Repo.DB.Model(&models.User{}).Where("id = ?", victim).Count(&n)
	assert.Zero(t, n)
}

func TestDeleteUserSelfForbidden(t *testing.T) {
	gin.SetMode(gin.TestMode)
	s, _ := newTestSrv(t)
	uc := NewUserController(s)
	admin := seedTestUser(t, s, "admin", models.RoleAdministrator)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = userParams(admin)
	c.Set("userID", admin)
	c.Request = httptest.NewRequest("DELETE", "/api/users/1", nil)
	uc.DeleteUser(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "cannot delete yourself", envelope(t, w)["error"])

	var n int64
	s.Repo.DB.Model(&models.User{}).Where("id = ?", admin).Count(&n)
	assert.EqualValues(t, 1, n)
}

func TestDeleteUserNotFound(t *testing.T) {
	gin.SetMode(gin.TestMode)
	s, _ := newTestSrv(t)
	uc := NewUserController(s)
	admin := seedTestUser(t, s, "admin", models.RoleAdministrator)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = userParams(9999)
	c.Set("userID", admin)
	c.Request = httptest.NewRequest("DELETE", "/api/users/9999", nil)
	uc.DeleteUser(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
