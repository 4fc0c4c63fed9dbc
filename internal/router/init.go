package router

import (
	"github.com/taskify/taskify-api/internal/application"
	"github.com/taskify/taskify-api/internal/container"
	pginfra "github.com/taskify/taskify-api/internal/infrastructure/postgres"
	handlers "github.com/taskify/taskify-api/internal/interface/http"
	"github.com/taskify/taskify-api/internal/router/modules"
	"github.com/taskify/taskify-api/pkg/helpers"
)

func buildAuthModule() *modules.AuthModule {
	repo := pginfra.NewUserRepository(container.GetPGPool())

	service := application.NewAuthService(
		repo,
		helpers.NewBcryptPasswordService(),
		container.GetJWT(),
		container.GetRedis(),
		container.GetLogger(),
	)

	handler := handlers.NewAuthHandler(
		service,
		container.GetLogger(),
		container.GetConfig().CookieDomain,
		container.GetConfig().CookieSecure,
	)

	return modules.NewAuthModule(handler, container.GetJWT())
}

func buildTaskModule() *modules.TaskModule {
	repo := pginfra.NewTaskRepository(container.GetPGPool())

	service := application.NewTaskService(repo, container.GetLogger())

	handler := handlers.NewTaskHandler(service, container.GetLogger())

	return modules.NewTaskModule(handler, container.GetJWT())
}

// InitModules initializes all application modules and registers them with
// the router registry. Called once during startup.
func InitModules(r *Registry) {
	r.Add(buildAuthModule())
	r.Add(buildTaskModule())
	if container.GetConfig().DebugMetricsEnabled {
		r.Add(modules.NewDebugModule())
	}
}
