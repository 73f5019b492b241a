package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/enrollhub/backend/internal/application"
	"github.com/enrollhub/backend/internal/domain/entity"
	"github.com/enrollhub/backend/internal/interface/middleware"
	"github.com/enrollhub/backend/pkg/response"
	"github.com/enrollhub/backend/pkg/validation"
)

type AuthHandler struct {
	Svc    *application.AuthService
	Logger *logrus.Logger
}

func NewAuthHandler(svc *application.AuthService, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{Svc: svc, Logger: logger}
}

type signupRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,pwd"`
	Role     string `json:"role" binding:"required,role"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// userView is the public account shape; the password hash never leaves the
// service layer.
type userView struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

func newUserView(u *entity.User) userView {
	return userView{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt,
	}
}

type sessionView struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	User      userView  `json:"user"`
}

// Signup POST /api/auth/signup
func (h *AuthHandler) Signup(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	u, tok, err := h.Svc.Signup(c.Request.Context(), application.SignupInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     entity.Role(req.Role),
	})
	if err != nil {
		if errors.Is(err, application.ErrEmailTaken) {
			// 400 rather than 409, matching the reference system.
			response.Error[any](c, http.StatusBadRequest, "email already registered", nil)
			return
		}
		h.Logger.WithError(err).Error("signup failed")
		response.Error[any](c, http.StatusInternalServerError, "error creating account", err.Error())
		return
	}

	response.Success(c, http.StatusCreated, sessionView{Token: tok.Token, ExpiresAt: tok.ExpiresAt, User: newUserView(u)}, "account created")
}

// Login POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	u, tok, err := h.Svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, application.ErrInvalidCredentials) {
			response.Error[any](c, http.StatusUnauthorized, "invalid credentials", nil)
			return
		}
		h.Logger.WithError(err).Error("login failed")
		response.Error[any](c, http.StatusInternalServerError, "error logging in", err.Error())
		return
	}

	response.Success(c, http.StatusOK, sessionView{Token: tok.Token, ExpiresAt: tok.ExpiresAt, User: newUserView(u)}, "login successful")
}

// Me GET /api/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	u, err := h.Svc.GetProfile(c.Request.Context(), uid)
	if err != nil {
		if errors.Is(err, application.ErrUserNotFound) {
			response.Error[any](c, http.StatusNotFound, "user not found", nil)
			return
		}
		h.Logger.WithError(err).Error("profile lookup failed")
		response.Error[any](c, http.StatusInternalServerError, "error fetching profile", err.Error())
		return
	}
	response.Success(c, http.StatusOK, newUserView(u), "current user")
}
