package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/enrollhub/backend/internal/interface/http"
	"github.com/enrollhub/backend/internal/interface/middleware"
	"github.com/enrollhub/backend/pkg/helpers"
)

// AuthModule wires the public signup/login endpoints and the authenticated
// /auth/me profile read.
type AuthModule struct {
	Handler *handlers.AuthHandler
	JWT     *helpers.JWTManager
}

func NewAuthModule(h *handlers.AuthHandler, jwt *helpers.JWTManager) *AuthModule {
	return &AuthModule{Handler: h, JWT: jwt}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	rg.POST("/auth/signup", m.Handler.Signup)
	rg.POST("/auth/login", m.Handler.Login)

	auth := rg.Group("/")
	auth.Use(middleware.Auth(m.JWT))
	{
		auth.GET("/auth/me", m.Handler.Me)
	}
}
