package modules

import (
	"github.com/gin-gonic/gin"

	"github.com/enrollhub/backend/internal/domain/entity"
	handlers "github.com/enrollhub/backend/internal/interface/http"
	"github.com/enrollhub/backend/internal/interface/middleware"
	"github.com/enrollhub/backend/pkg/helpers"
)

// StudentModule wires the enrollment routes under /student.
// Course browsing is open to admins too; the enrollment transitions and
// my-courses are restricted to the student role.
type StudentModule struct {
	Handler *handlers.StudentHandler
	JWT     *helpers.JWTManager
}

func NewStudentModule(h *handlers.StudentHandler, jwt *helpers.JWTManager) *StudentModule {
	return &StudentModule{Handler: h, JWT: jwt}
}

func (m *StudentModule) Register(rg *gin.RouterGroup) {
	grp := rg.Group("/student")
	grp.Use(middleware.Auth(m.JWT))
	{
		grp.GET("/courses", middleware.RequireRole(entity.RoleStudent, entity.RoleAdmin), m.Handler.Courses)

		students := grp.Group("/")
		students.Use(middleware.RequireRole(entity.RoleStudent))
		{
			students.POST("/courses/:courseId/enroll", m.Handler.Enroll)
			students.POST("/courses/:courseId/unenroll", m.Handler.Unenroll)
			students.GET("/my-courses", m.Handler.MyCourses)
		}
	}
}
