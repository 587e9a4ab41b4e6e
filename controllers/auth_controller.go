package controllers

import (
	"net/http"
	"strings"

	"car_dealership_api/app"
	"car_dealership_api/auth"
	"car_dealership_api/db"
	"car_dealership_api/models"

	"github.com/gin-gonic/gin"
)

type AuthController struct{ *Srv }

func NewAuthController(s *Srv) *AuthController { return &AuthController{Srv: s} }

// POST /api/auth/register
func (ac *AuthController) Register(c *gin.Context) {
	var in struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
		Email    string `json:"email"`
		FullName string `json:"full_name"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		respondErr(c, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		ac.logErr("register", err)
		respondErr(c, http.StatusInternalServerError, "Registration failed")
		return
	}

	u := models.User{
		Username:     in.Username,
		PasswordHash: hash,
		Email:        in.Email,
		Role:         models.RoleUser,
		FullName:     in.FullName,
	}
	if err := ac.Repo.CreateUser(c.Request.Context(), &u); err != nil {
		if err == db.ErrUsernameTaken {
			respondErr(c, http.StatusBadRequest, "Username already taken")
			return
		}
		ac.logErr("register", err)
		respondErr(c, http.StatusInternalServerError, "Registration failed")
		return
	}

	respond(c, app.H{"user": u})
}

// POST /api/auth/login
func (ac *AuthController) Login(c *gin.Context) {
	var in struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		respondErr(c, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	u, err := ac.Repo.FindUserByUsername(c.Request.Context(), in.Username)
	if err != nil {
		if err == db.ErrNotFound {
			respondErr(c, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		ac.logErr("login", err)
		respondErr(c, http.StatusInternalServerError, "Login failed")
		return
	}
	if !auth.CheckPassword(in.Password, u.PasswordHash) {
		respondErr(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	if err := ac.issueSession(c.Request.Context(), c.Writer, u.ID); err != nil {
		ac.logErr("login", err)
		respondErr(c, http.StatusInternalServerError, "Login failed")
		return
	}

	respond(c, app.H{"user": u})
}

// POST /api/auth/logout
func (ac *AuthController) Logout(c *gin.Context) {
	if ck, err := c.Request.Cookie(app.AppSessionCookie); err == nil && ck.Value != "" {
		_ = ac.Sess.Delete(c.Request.Context(), ck.Value)
	}
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     app.AppSessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   strings.HasPrefix(ac.WebOrigin, "https://"),
	})
	respond(c, app.H{"ok": true})
}
