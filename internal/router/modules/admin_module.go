package modules

import (
	"github.com/gin-gonic/gin"

	"github.com/enrollhub/backend/internal/domain/entity"
	handlers "github.com/enrollhub/backend/internal/interface/http"
	"github.com/enrollhub/backend/internal/interface/middleware"
	"github.com/enrollhub/backend/pkg/helpers"
)

// AdminModule wires the admin-only catalog CRUD and user management routes.
type AdminModule struct {
	Handler *handlers.AdminHandler
	JWT     *helpers.JWTManager
}

func NewAdminModule(h *handlers.AdminHandler, jwt *helpers.JWTManager) *AdminModule {
	return &AdminModule{Handler: h, JWT: jwt}
}

func (m *AdminModule) Register(rg *gin.RouterGroup) {
	grp := rg.Group("/admin")
	grp.Use(middleware.Auth(m.JWT), middleware.RequireRole(entity.RoleAdmin))
	{
		grp.POST("/courses", m.Handler.CreateCourse)
		grp.GET("/courses", m.Handler.ListCourses)
		grp.PUT("/courses/:courseId", m.Handler.UpdateCourse)
		grp.DELETE("/courses/:courseId", m.Handler.DeleteCourse)

		grp.GET("/users", m.Handler.ListUsers)
		grp.DELETE("/users/:userId", m.Handler.DeleteUser)
	}
}
