package httptransport

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	sloggin "github.com/samber/slog-gin"
	"github.com/taskboard/api/internal/transport/http/handler"
	"github.com/taskboard/api/internal/transport/http/middleware"
)

func NewRouter(
	logger *slog.Logger,
	userHandler *handler.UserHandler,
	taskHandler *handler.TaskHandler,
	healthHandler *handler.HealthHandler,
	corsOrigins []string,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Security())
	r.Use(middleware.CORS(corsOrigins))
	r.Use(sloggin.New(logger))
	r.Use(middleware.Metrics())

	api := r.Group("/api")
	api.GET("/health", healthHandler.Check)

	users := api.Group("/users")
	users.GET("", userHandler.List)
	users.POST("", userHandler.Create)
	users.GET("/:id", userHandler.GetByID)
	users.PUT("/:id", userHandler.Update)
	users.DELETE("/:id", userHandler.Delete)

	tasks := api.Group("/tasks")
	tasks.GET("", taskHandler.List)
	tasks.POST("", taskHandler.Create)
	tasks.GET("/:id", taskHandler.GetByID)
	tasks.PUT("/:id", taskHandler.Update)
	tasks.PATCH("/:id/status", taskHandler.UpdateStatus)
	tasks.DELETE("/:id", taskHandler.Delete)

	return r
}
