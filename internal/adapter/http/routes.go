package http

import (
	"besttodo/internal/adapter/http/handlers"
	"besttodo/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
)

type RouteOptions struct {
	AuthSubjectHeader string
	CORSAllowOrigin   string
}

type Handlers struct {
	Health  *handlers.HealthHandler
	Tasks   *handlers.TaskHandler
	Folders *handlers.FolderHandler
}

func RegisterRoutes(r *gin.Engine, opts RouteOptions, h Handlers) {
	// Engine-level so preflight is answered on unmatched paths too.
	r.Use(middleware.CORSMiddleware(opts.CORSAllowOrigin), middleware.MetricsMiddleware())

	r.GET("/metrics", middleware.MetricsHandler())

	public := r.Group("")
	public.Use(middleware.LanguageMiddleware())
	{
		public.GET("/health", h.Health.CheckHealth)
		public.GET("/health/report", h.Health.CheckHealthReport)
	}

	api := r.Group("")
	api.Use(middleware.LanguageMiddleware(), middleware.AuthMiddleware(opts.AuthSubjectHeader))
	{
		api.POST("/tasks", h.Tasks.CreateTask)
		api.GET("/tasks", h.Tasks.ListTasks)
		api.GET("/tasks/:taskId", h.Tasks.GetTask)
		api.PUT("/tasks/:taskId", h.Tasks.UpdateTask)
		api.DELETE("/tasks/:taskId", h.Tasks.DeleteTask)

		api.POST("/folders", h.Folders.CreateFolder)
		api.GET("/folders", h.Folders.ListFolders)
		api.GET("/folders/:folderId", h.Folders.GetFolder)
		api.PUT("/folders/:folderId", h.Folders.UpdateFolder)
		api.DELETE("/folders/:folderId", h.Folders.DeleteFolder)
	}
}
