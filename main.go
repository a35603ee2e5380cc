package main

import (
	"net/http"
	"os"
	"time"

	"paper-catalog/config"
	"paper-catalog/handlers"
	"paper-catalog/middleware"
	"paper-catalog/repositories"
	"paper-catalog/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Info().Msg("No .env file found")
	}

	config.InitLogger()

	// Initialize database
	db := config.InitDB()

	// Initialize repositories
	paperRepo := repositories.NewPaperRepository(db)
	authorRepo := repositories.NewAuthorRepository(db)

	// Initialize services
	paperService := services.NewPaperService(db, paperRepo)
	authorService := services.NewAuthorService(db, authorRepo)

	// Initialize handlers
	paperHandler := handlers.NewPaperHandler(paperService)
	authorHandler := handlers.NewAuthorHandler(authorService)

	// Setup router
	router := gin.New()
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept"},
		MaxAge:       12 * time.Hour,
	}))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	// API routes
	v1 := router.Group("/api/v1")
	{
		papers := v1.Group("/papers")
		{
			papers.POST("", paperHandler.CreatePaper)
			papers.GET("", paperHandler.GetPapers)
			papers.GET("/:id", paperHandler.GetPaper)
			papers.PUT("/:id", paperHandler.UpdatePaper)
			papers.DELETE("/:id", paperHandler.DeletePaper)
		}

		authors := v1.Group("/authors")
		{
			authors.POST("", authorHandler.CreateAuthor)
			authors.GET("", authorHandler.GetAuthors)
			authors.GET("/:id", authorHandler.GetAuthor)
			authors.PUT("/:id", authorHandler.UpdateAuthor)
			authors.DELETE("/:id", authorHandler.DeleteAuthor)
		}
	}

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Info().Str("port", port).Msg("Server starting")
	if err := http.ListenAndServe(":"+port, router); err != nil {
		log.Fatal().Err(err).Msg("Server stopped")
	}
}
