// controllers/srv.go
package controllers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"car_dealership_api/app"
	"car_dealership_api/db"
	"car_dealership_api/session"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Sessions is the slice of the session store the controllers need; tests
// substitute an in-memory fake.
type Sessions interface {
	Create(ctx context.Context, id string, userID uint) error
	Get(ctx context.Context, id string) (*session.AppSession, error)
	Delete(ctx context.Context, id string) error
	RevokeAllForUser(ctx context.Context, userID uint) error
}

// Srv carries the shared controller dependencies.
type Srv struct {
	Repo       *db.Repo
	Sess       Sessions
	Log        *logrus.Logger
	WebOrigin  string
	SessionTTL time.Duration
}

func GetSrv(a *app.App) *Srv {
	return &Srv{
		Repo:       db.NewRepo(a.DB),
		Sess:       a.AppSessions(),
		Log:        a.Log,
		WebOrigin:  a.Config.WebOrigin,
		SessionTTL: a.Config.SessionTTL,
	}
}

// --- helpers ---

// Every operation answers with the same envelope: {error, data}.
func respond(c *gin.Context, data app.H) {
	c.JSON(http.StatusOK, app.H{"error": nil, "data": data})
}

func respondErr(c *gin.Context, status int, msg string) {
	c.JSON(status, app.H{"error": msg, "data": nil})
}

// logErr records a failure with operation context before the envelope goes out.
func (s *Srv) logErr(op string, err error) {
	if s.Log != nil {
		s.Log.WithField("op", op).WithError(err).Error("request failed")
	}
}

func (s *Srv) setAppCookie(w http.ResponseWriter, sessionID string, maxAge time.Duration) {
	secure := strings.HasPrefix(s.WebOrigin, "https://")
	http.SetCookie(w, &http.Cookie{
		Name:     app.AppSessionCookie,
		Value:    sessionID,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   secure,
		MaxAge:   int(maxAge / time.Second),
	})
}

// issueSession stores a fresh session and sets the cookie with the same TTL,
// so cookie and Redis entry expire together.
func (s *Srv) issueSession(ctx context.Context, w http.ResponseWriter, userID uint) error {
	id := uuid.NewString()
	if err := s.Sess.Create(ctx, id, userID); err != nil {
		return err
	}
	s.setAppCookie(w, id, s.SessionTTL)
	return nil
}

// currentUserID pulls the id AuthRequired stashed in the context.
func currentUserID(c *gin.Context) (uint, bool) {
	v, ok := c.Get("userID")
	if !ok {
		return 0, false
	}
	uid, ok := v.(uint)
	return uid, ok
}

func currentRole(c *gin.Context) string {
	v, _ := c.Get("role")
	role, _ := v.(string)
	return role
}
