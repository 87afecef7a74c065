package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/softdesk/backend/internal/handler"
	"github.com/softdesk/backend/internal/middleware"
	"gorm.io/gorm"
)

type Deps struct {
	DB                 *gorm.DB
	JWTSecret          string
	AuthHandler        *handler.AuthHandler
	UserHandler        *handler.UserHandler
	ProjectHandler     *handler.ProjectHandler
	ContributorHandler *handler.ContributorHandler
	IssueHandler       *handler.IssueHandler
	CommentHandler     *handler.CommentHandler
}

func Setup(r *gin.Engine, deps Deps) {
	r.Use(cors.Default())

	api := r.Group("/api/v1")

	// Public routes (no auth)
	api.POST("/users", deps.UserHandler.Create)
	api.POST("/auth/login", deps.AuthHandler.Login)

	// Authenticated routes
	authed := api.Group("")
	authed.Use(middleware.AuthMiddleware(deps.JWTSecret, deps.DB))
	{
		authed.GET("/auth/me", deps.AuthHandler.GetMe)

		users := authed.Group("/users")
		{
			users.GET("", deps.UserHandler.List)
			users.GET("/:id", deps.UserHandler.GetDetail)
			users.PUT("/:id", deps.UserHandler.Update)
			users.PATCH("/:id", deps.UserHandler.Update)
			users.DELETE("/:id", deps.UserHandler.Delete)
		}

		projects := authed.Group("/projects")
		{
			projects.POST("", deps.ProjectHandler.Create)
			projects.GET("", deps.ProjectHandler.List)
			projects.GET("/:id", deps.ProjectHandler.GetDetail)
			projects.PUT("/:id", deps.ProjectHandler.Update)
			projects.PATCH("/:id", deps.ProjectHandler.Update)
			projects.DELETE("/:id", deps.ProjectHandler.Delete)
		}

		contributors := authed.Group("/contributors")
		{
			contributors.POST("", deps.ContributorHandler.Create)
			contributors.GET("", deps.ContributorHandler.List)
			contributors.GET("/:id", deps.ContributorHandler.GetDetail)
			contributors.PUT("/:id", deps.ContributorHandler.Update)
			contributors.PATCH("/:id", deps.ContributorHandler.Update)
			contributors.DELETE("/:id", deps.ContributorHandler.Delete)
		}

		issues := authed.Group("/issues")
		{
			issues.POST("", deps.IssueHandler.Create)
			issues.GET("", deps.IssueHandler.List)
			issues.GET("/:id", deps.IssueHandler.GetDetail)
			issues.PUT("/:id", deps.IssueHandler.Update)
			issues.PATCH("/:id", deps.IssueHandler.Update)
			issues.DELETE("/:id", deps.IssueHandler.Delete)
		}

		comments := authed.Group("/comments")
		{
			comments.POST("", deps.CommentHandler.Create)
			comments.GET("", deps.CommentHandler.List)
			comments.GET("/:id", deps.CommentHandler.GetDetail)
			comments.PUT("/:id", deps.CommentHandler.Update)
			comments.PATCH("/:id", deps.CommentHandler.Update)
			comments.DELETE("/:id", deps.CommentHandler.Delete)
		}
	}
}
