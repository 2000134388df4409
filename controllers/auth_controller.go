package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"stayease-backend/dto"
	"stayease-backend/middleware"
	"stayease-backend/models"
	"stayease-backend/services"
	"stayease-backend/session"
)

type AuthController struct {
	Users        *services.UserService
	Sessions     *session.Manager
	CookieSecure bool
	Log          *logrus.Logger
}

func NewAuthController(users *services.UserService, sessions *session.Manager, cookieSecure bool, log *logrus.Logger) *AuthController {
	return &AuthController{Users: users, Sessions: sessions, CookieSecure: cookieSecure, Log: log}
}

// POST /api/register
func (ac *AuthController) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if !bindJSON(c, &req) {
		return
	}
	user, err := ac.Users.Register(c.Request.Context(), req)
	if err != nil {
		respondError(c, ac.Log, err)
		return
	}
	ac.startSession(c, http.StatusCreated, user)
}

// POST /api/login
func (ac *AuthController) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindJSON(c, &req) {
		return
	}
	user, err := ac.Users.Authenticate(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			ac.Log.WithField("login", req.Username).Warn("failed login attempt")
		}
		respondError(c, ac.Log, err)
		return
	}
	ac.startSession(c, http.StatusOK, user)
}

func (ac *AuthController) startSession(c *gin.Context, status int, user *models.User) {
	token, expires, err := ac.Sessions.Issue(user)
	if err != nil {
		respondError(c, ac.Log, err)
		return
	}
	ac.setCookie(c, token, expires)
	c.JSON(status, dto.LoginResponse{Token: token, ExpiresAt: expires, User: *user})
}

// POST /api/logout
func (ac *AuthController) Logout(c *gin.Context) {
	if err := ac.Sessions.Revoke(c.Request.Context(), middleware.CurrentClaims(c)); err != nil {
		respondError(c, ac.Log, err)
		return
	}
	ac.clearCookie(c)
	c.Status(http.StatusNoContent)
}

// GET /api/user
func (ac *AuthController) Me(c *gin.Context) {
	user, err := ac.Users.Get(c.Request.Context(), middleware.CurrentUserID(c))
	if err != nil {
		respondError(c, ac.Log, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// PUT /api/user
func (ac *AuthController) UpdateMe(c *gin.Context) {
	var req dto.UpdateProfileRequest
	if !bindJSON(c, &req) {
		return
	}
	user, err := ac.Users.UpdateProfile(c.Request.Context(), middleware.CurrentUserID(c), req)
	if err != nil {
		respondError(c, ac.Log, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// DELETE /api/user
func (ac *AuthController) DeleteMe(c *gin.Context) {
	ctx := c.Request.Context()
	if err := ac.Users.Delete(ctx, middleware.CurrentUserID(c)); err != nil {
		respondError(c, ac.Log, err)
		return
	}
	if err := ac.Sessions.Revoke(ctx, middleware.CurrentClaims(c)); err != nil {
		ac.Log.WithError(err).Warn("failed to revoke session of deleted user")
	}
	ac.clearCookie(c)
	c.Status(http.StatusNoContent)
}

func (ac *AuthController) setCookie(c *gin.Context, token string, expires time.Time) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     session.CookieName,
		Value:    token,
		Path:     "/",
		Expires:  expires,
		MaxAge:   int(time.Until(expires).Seconds()),
		HttpOnly: true,
		Secure:   ac.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (ac *AuthController) clearCookie(c *gin.Context) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     session.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   ac.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
}
