package controllers

import (
	"net/http"

	"car_dealership_api/app"
	"car_dealership_api/auth"
	"car_dealership_api/db"
	"car_dealership_api/models"

	"github.com/gin-gonic/gin"
)

type UserController struct{ *Srv }

func NewUserController(s *Srv) *UserController { return &UserController{Srv: s} }

// GET /api/users (administrator)
func (uc *UserController) ListUsers(c *gin.Context) {
	users, err := uc.Repo.ListUsers(c.Request.Context())
	if err != nil {
		uc.logErr("list_users", err)
		respondErr(c, http.StatusInternalServerError, "Users loading failed")
		return
	}
	respond(c, app.H{"users": users})
}

// GET /api/users/managers
func (uc *UserController) ListManagers(c *gin.Context) {
	managers, err := uc.Repo.ListManagers(c.Request.Context())
	if err != nil {
		uc.logErr("list_managers", err)
		respondErr(c, http.StatusInternalServerError, "Managers loading failed")
		return
	}
	respond(c, app.H{"managers": managers})
}

// PUT /api/users/:id (administrator)
func (uc *UserController) UpdateUser(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		respondErr(c, http.StatusBadRequest, "invalid user id")
		return
	}

	var in struct {
		Username string `json:"username" binding:"required"`
		Email    string `json:"email"`
		FullName string `json:"full_name"`
		Role     string `json:"role" binding:"required"`
		Password string `json:"password"` // optional reset
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		respondErr(c, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}
	if !models.ValidRole(in.Role) {
		respondErr(c, http.StatusBadRequest, "Role must be User, Manager, or Administrator")
		return
	}

	var hash string
	if in.Password != "" {
		var err error
		if hash, err = auth.HashPassword(in.Password); err != nil {
			uc.logErr("update_user", err)
			respondErr(c, http.StatusInternalServerError, "User update failed")
			return
		}
	}

	u, err := uc.Repo.UpdateUser(c.Request.Context(), id, db.UpdateUserInput{
		Username:     in.Username,
		Email:        in.Email,
		FullName:     in.FullName,
		Role:         in.Role,
		PasswordHash: hash,
	})
	if err != nil {
		switch err {
		case db.ErrNotFound:
			respondErr(c, http.StatusNotFound, "User not found")
		case db.ErrUsernameTaken:
			respondErr(c, http.StatusBadRequest, "Username already taken")
		default:
			uc.logErr("update_user", err)
			respondErr(c, http.StatusInternalServerError, "User update failed")
		}
		return
	}

	// A role or password change invalidates any live sessions.
	_ = uc.Sess.RevokeAllForUser(c.Request.Context(), id)
	respond(c, app.H{"user": u})
}

// DELETE /api/users/:id (administrator)
func (uc *UserController) DeleteUser(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		respondErr(c, http.StatusBadRequest, "invalid user id")
		return
	}

	// Administrators cannot delete themselves, avoids locking everyone out.
	if uid, ok := currentUserID(c); ok && uid == id {
		respondErr(c, http.StatusBadRequest, "cannot delete yourself")
		return
	}

	if err := uc.Repo.DeleteUserByID(c.Request.Context(), id); err != nil {
		if err == db.ErrNotFound {
			respondErr(c, http.StatusNotFound, "User not found")
			return
		}
		uc.logErr("delete_user", err)
		respondErr(c, http.StatusInternalServerError, "User deletion failed")
		return
	}

	_ = uc.Sess.RevokeAllForUser(c.Request.Context(), id)
	respond(c, app.H{"ok": true})
}
