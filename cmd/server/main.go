package main

import (
	"fmt"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/softdesk/backend/internal/config"
	"github.com/softdesk/backend/internal/handler"
	"github.com/softdesk/backend/internal/model"
	"github.com/softdesk/backend/internal/router"
	"github.com/softdesk/backend/internal/service"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func main() {
	// Load config
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	// Database. TranslateError lets unique-index violations surface
	// as gorm.ErrDuplicatedKey instead of driver errors.
	db, err := gorm.Open(mysql.Open(cfg.Database.DSN()), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("connect database: %v", err)
	}

	// Auto migrate
	if err := db.AutoMigrate(
		&model.User{},
		&model.Project{},
		&model.Contributor{},
		&model.Issue{},
		&model.Comment{},
	); err != nil {
		log.Fatalf("auto migrate: %v", err)
	}

	// Services
	authService := service.NewAuthService(db, cfg.JWT.Secret, cfg.JWT.ExpireHours)
	userService := service.NewUserService(db)
	projectService := service.NewProjectService(db)
	contributorService := service.NewContributorService(db)
	issueService := service.NewIssueService(db, cfg.Features.AssignableIssues)
	commentService := service.NewCommentService(db)

	// Handlers
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService, cfg.Pagination.UserPageSize)
	projectHandler := handler.NewProjectHandler(projectService)
	contributorHandler := handler.NewContributorHandler(contributorService, projectService)
	issueHandler := handler.NewIssueHandler(issueService)
	commentHandler := handler.NewCommentHandler(commentService)

	// Gin engine
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()

	// Setup routes
	router.Setup(r, router.Deps{
		DB:                 db,
		JWTSecret:          cfg.JWT.Secret,
		AuthHandler:        authHandler,
		UserHandler:        userHandler,
		ProjectHandler:     projectHandler,
		ContributorHandler: contributorHandler,
		IssueHandler:       issueHandler,
		CommentHandler:     commentHandler,
	})

	// Start server
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Printf("Server starting on %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("server run: %v", err)
	}
}
