package mockapi

import (
	"time"

	"carexpert/config"
	"carexpert/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewEngine assembles the mock backend's gin engine: recovery, structured
// panic handler, per-IP rate limiting, and credentialed CORS for a browser
// client on another origin.
func NewEngine(store *Store) *gin.Engine {
	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(RateLimitMiddleware(config.AppConfig.MaxRequestsPerMin))
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:5173", "http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterRoutes(router, NewHandlers(store))
	return router
}
