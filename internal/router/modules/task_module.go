package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/taskify/taskify-api/internal/container"
	handlers "github.com/taskify/taskify-api/internal/interface/http"
	"github.com/taskify/taskify-api/internal/interface/middleware"
	"github.com/taskify/taskify-api/pkg/helpers"
)

// TaskModule wires task HTTP handlers into routes, all behind auth.
type TaskModule struct {
	Handler *handlers.TaskHandler
	JWT     *helpers.JWTManager
}

func NewTaskModule(h *handlers.TaskHandler, jwt *helpers.JWTManager) *TaskModule {
	return &TaskModule{Handler: h, JWT: jwt}
}

func (m *TaskModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/tasks")
	auth.Use(middleware.Auth(container.GetRedis(), m.JWT))
	auth.Use(
		middleware.RateLimit(container.GetRedis(), 300, time.Minute, middleware.KeyByIP(), nil),
		middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID(), nil),
	)
	{
		auth.GET("", m.Handler.List)
		auth.GET("/filter", m.Handler.Filter)
		auth.POST("", m.Handler.Create)
		auth.PUT("/:id", m.Handler.Update)
		auth.DELETE("/:id", m.Handler.Delete)
	}
}
