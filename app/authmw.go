package app

import (
	"context"
	"net/http"

	"car_dealership_api/db"
	"car_dealership_api/session"

	"github.com/gin-gonic/gin"
)

const AppSessionCookie = "app_session"

// SessionReader is the slice of the session store the middleware needs.
type SessionReader interface {
	Get(ctx context.Context, id string) (*session.AppSession, error)
	Delete(ctx context.Context, id string) error
}

// AuthRequired resolves the session cookie to a live user and stashes
// id/username/role in the gin context for the handlers downstream.
func AuthRequired(sess SessionReader, repo *db.Repo) gin.HandlerFunc {
	return func(c *gin.Context) {
		ck, err := c.Request.Cookie(AppSessionCookie)
		if err != nil || ck.Value == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, H{"error": "unauthorized", "data": nil})
			return
		}
		as, err := sess.Get(c.Request.Context(), ck.Value)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, H{"error": "invalid session", "data": nil})
			return
		}

		// Confirm the user still exists; a deleted account keeps no access.
		u, err := repo.FindUserByID(c.Request.Context(), as.UserID)
		if err != nil {
			_ = sess.Delete(c.Request.Context(), ck.Value)
			c.AbortWithStatusJSON(http.StatusUnauthorized, H{"error": "unauthorized", "data": nil})
			return
		}

		c.Set("userID", u.ID)
		c.Set("username", u.Username)
		c.Set("role", u.Role)
		c.Next()
	}
}

// RoleRequired gates a route group to the listed roles. The role was put in
// the context by AuthRequired, so this always runs after it.
func RoleRequired(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		v, ok := c.Get("role")
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, H{"error": "unauthorized", "data": nil})
			return
		}
		role, _ := v.(string)
		for _, r := range roles {
			if role == r {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, H{"error": "forbidden", "data": nil})
	}
}
