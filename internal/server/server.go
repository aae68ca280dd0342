package server

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/jgrayburn/nc-news-api/internal/config"
	"github.com/jgrayburn/nc-news-api/internal/database"
	"github.com/jgrayburn/nc-news-api/internal/handlers"
)

// New creates and configures the HTTP server.
func New(cfg *config.Config) (*http.Server, database.Service, error) {
	db, err := database.New(cfg)
	if err != nil {
		return nil, nil, err
	}

	router := NewRouter(db.DB())

	server := &http.Server{
		Addr:         "0.0.0.0:" + cfg.Port,
		Handler:      router,
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	return server, db, nil
}

// NewRouter sets up all application routes.
func NewRouter(db *gorm.DB) *gin.Engine {
	r := gin.Default()

	// CORS configuration
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Accept", "Authorization", "Content-Type", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * 3600,
	}))

	r.Use(ErrorNormalizer())

	handler := handlers.NewHandler(db)

	api := r.Group("/api")
	{
		api.GET("", handler.Info.GetEndpoints)
		api.GET("/health", handler.Info.GetHealth)

		api.GET("/topics", handler.Topic.GetTopics)

		api.GET("/users", handler.User.GetUsers)

		api.GET("/articles", handler.Article.GetArticles)
		api.GET("/articles/:article_id", handler.Article.GetArticle)
		api.PATCH("/articles/:article_id", handler.Article.PatchArticle)

		api.GET("/articles/:article_id/comments", handler.Comment.GetComments)
		api.POST("/articles/:article_id/comments", handler.Comment.PostComment)

		api.DELETE("/comments/:comment_id", handler.Comment.DeleteComment)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Path not found!"})
	})

	return r
}
