package handlers

import (
	"net/http"
	"strings"

	"geopost-api/config"
	"geopost-api/helper"
	"geopost-api/middleware"
	"geopost-api/repositories"
	"geopost-api/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// NewRouter wires repositories, services and handlers onto a Gin engine.
// Shared between main and the test suites.
func NewRouter(db *gorm.DB, cfg *config.Config, keys config.KeyProvider) *gin.Engine {
	h := helper.NewHTTPHelper()

	// Repositories
	userRepo := repositories.NewUserRepository(db)
	postRepo := repositories.NewPostRepository(db)
	categoryRepo := repositories.NewCategoryRepository(db)

	// Services
	tokenService := services.NewTokenService(keys, cfg.Auth.TokenTTL)
	authService := services.NewAuthService(userRepo, tokenService)
	userService := services.NewUserService(userRepo)
	postService := services.NewPostService(postRepo, categoryRepo)
	categoryService := services.NewCategoryService(categoryRepo)

	// Handlers
	authHandler := NewAuthHandler(authService, h)
	userHandler := NewUserHandler(userService, h)
	postHandler := NewPostHandler(postService, h)
	categoryHandler := NewCategoryHandler(categoryService, h)

	router := gin.Default()
	router.Use(corsMiddleware(cfg.CORS))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	authenticated := middleware.Authenticated(tokenService, userRepo)

	// Users
	router.POST("/users/", authHandler.Register)
	router.POST("/login", authHandler.Login)
	router.POST("/logout", authHandler.Logout)
	router.GET("/users/", authenticated, userHandler.GetUsers)
	router.GET("/users/me/", authenticated, authHandler.GetProfile)
	router.PUT("/users/:id/update", authenticated, userHandler.UpdateUser)
	router.DELETE("/users/:id", authenticated, userHandler.DeleteUser)
	router.POST("/users/:id/set_vip", authenticated, middleware.RequireAdmin(), userHandler.SetVIP)

	// Posts
	posts := router.Group("/post")
	{
		posts.POST("/", authenticated, middleware.RequireVIP(), postHandler.CreatePost)
		posts.GET("/", postHandler.GetPosts)

		// Categories come before the :id routes so /post/categories/ does
		// not collide with /post/:id/.
		categories := posts.Group("/categories")
		{
			categories.GET("/", categoryHandler.GetCategories)
			categories.POST("/", authenticated, middleware.RequireAdmin(), categoryHandler.CreateCategory)
			categories.PUT("/:id/", authenticated, middleware.RequireAdmin(), categoryHandler.UpdateCategory)
			categories.DELETE("/:id/", authenticated, middleware.RequireAdmin(), categoryHandler.DeleteCategory)
		}

		posts.GET("/:id/", postHandler.GetPost)
		posts.PUT("/:id/", authenticated, postHandler.ReplacePost)
		posts.PATCH("/:id/", authenticated, postHandler.PatchPost)
		posts.DELETE("/:id/", authenticated, postHandler.DeletePost)
	}

	return router
}

func corsMiddleware(cors config.CORSConfig) gin.HandlerFunc {
	origins := strings.Join(cors.Origins, ", ")
	methods := strings.Join(cors.Methods, ", ")
	headers := strings.Join(cors.Headers, ", ")

	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", origins)
		c.Header("Access-Control-Allow-Methods", methods)
		c.Header("Access-Control-Allow-Headers", headers)

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
