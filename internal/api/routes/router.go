package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/lanternml/cluster-core/internal/api/handlers"
	"github.com/lanternml/cluster-core/internal/api/middleware"
	"github.com/lanternml/cluster-core/internal/application"
)

// RegisterRoutes maps the HTTP surface onto the services. Everything
// except the health probe requires a valid token; per-resource
// authorization happens inside the services.
func RegisterRoutes(r *gin.Engine, services *application.Services) {
	h := handlers.New(services)

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	auth := r.Group("/")
	auth.Use(middleware.JWTAuthMiddleware())
	{
		jobs := auth.Group("/jobs")
		{
			jobs.POST("", h.Job.SubmitJob)
			jobs.GET("", h.Job.ListJobs)
			jobs.GET("/priorities", h.Job.GetJobPriorities)
			jobs.POST("/priorities", h.Job.UpdateJobPriorities)
			jobs.GET("/:id", h.Job.GetJobDetail)
			jobs.GET("/:id/status", h.Job.GetJobStatus)
			jobs.PUT("/:id/approve", h.Job.ApproveJob)
			jobs.PUT("/:id/kill", h.Job.KillJob)
			jobs.PUT("/:id/pause", h.Job.PauseJob)
			jobs.PUT("/:id/resume", h.Job.ResumeJob)
		}

		vcs := auth.Group("/vcs")
		{
			vcs.GET("", h.VC.ListVCs)
			vcs.GET("/:name", h.VC.GetVC)
			vcs.GET("/:name/storages", h.VC.ListStorages)

			vcs.POST("/:name", h.Admin.AddVC)
			vcs.PUT("/:name", h.Admin.UpdateVC)
			vcs.DELETE("/:name", h.Admin.DeleteVC)
			vcs.POST("/:name/storages", h.Admin.AddStorage)
			vcs.PUT("/:name/storages", h.Admin.UpdateStorage)
			vcs.DELETE("/:name/storages", h.Admin.DeleteStorage)
		}

		auth.GET("/cluster/status", h.VC.GetClusterStatus)
		auth.PUT("/acl", h.Admin.UpdateAce)
		auth.DELETE("/acl", h.Admin.DeleteAce)
	}
}
