package router

import (
	"github.com/enrollhub/backend/internal/application"
	"github.com/enrollhub/backend/internal/container"
	pginfra "github.com/enrollhub/backend/internal/infrastructure/postgres"
	handlers "github.com/enrollhub/backend/internal/interface/http"
	"github.com/enrollhub/backend/internal/router/modules"
)

// InitModules builds every feature module from the container singletons and
// registers it with the router registry. Called once during startup.
func InitModules(r *Registry) {
	cfg := container.GetConfig()
	logger := container.GetLogger()
	jwt := container.GetJWT()

	users := pginfra.NewUserRepository(container.GetPGPool())
	courses := pginfra.NewCourseRepository(container.GetPGPool())

	authSvc := application.NewAuthService(users, jwt, logger)
	enrollSvc := application.NewEnrollmentService(courses, container.GetRedis(), cfg.CatalogTTL, logger)
	courseSvc := application.NewCourseService(courses, container.GetRedis(), cfg.CatalogTTL, logger)
	userAdminSvc := application.NewUserAdminService(users, logger)

	r.Add(modules.NewHealthModule(handlers.NewHealthHandler()))
	r.Add(modules.NewAuthModule(handlers.NewAuthHandler(authSvc, logger), jwt))
	r.Add(modules.NewStudentModule(handlers.NewStudentHandler(enrollSvc, logger), jwt))
	r.Add(modules.NewAdminModule(handlers.NewAdminHandler(courseSvc, userAdminSvc, logger), jwt))
}
