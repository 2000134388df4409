package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"stayease-backend/session"
	"stayease-backend/utils"
)

const claimsKey = "session_claims"

// Session attaches the caller's claims when a valid token is presented in the
// session cookie or an Authorization: Bearer header. Requests without one
// continue anonymously; a failing revocation lookup answers 500.
func Session(sessions *session.Manager, log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := TokenFromRequest(c)
		if raw == "" {
			c.Next()
			return
		}
		claims, err := sessions.Parse(c.Request.Context(), raw)
		switch {
		case err == nil:
			c.Set(claimsKey, claims)
		case !errors.Is(err, session.ErrInvalidToken):
			log.WithError(err).WithField("path", c.Request.URL.Path).Error("session lookup failed")
			utils.JSONError(c, http.StatusInternalServerError, "error.internal", "internal server error")
			return
		}
		c.Next()
	}
}

// RequireSession rejects anonymous requests with 401.
func RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		if CurrentClaims(c) == nil {
			utils.JSONError(c, http.StatusUnauthorized, "error.unauthorized", "authentication required")
			return
		}
		c.Next()
	}
}

func TokenFromRequest(c *gin.Context) string {
	if header := c.GetHeader("Authorization"); header != "" {
		if token, ok := strings.CutPrefix(header, "Bearer "); ok {
			return strings.TrimSpace(token)
		}
	}
	if cookie, err := c.Cookie(session.CookieName); err == nil {
		return cookie
	}
	return ""
}

func CurrentClaims(c *gin.Context) *session.Claims {
	v, ok := c.Get(claimsKey)
	if !ok {
		return nil
	}
	claims, _ := v.(*session.Claims)
	return claims
}

// CurrentUserID is 0 for anonymous requests.
func CurrentUserID(c *gin.Context) uint {
	if claims := CurrentClaims(c); claims != nil {
		return claims.UserID
	}
	return 0
}
