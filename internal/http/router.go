package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"paw-match/internal/service"
)

// NewRouter configura el router de Gin con middlewares y rutas.
func NewRouter(
	logger *zap.Logger,
	jwtSvc *service.JWTService,
	ownerH *OwnerHandler,
	dogH *DogHandler,
	reviewH *ReviewHandler,
	breedH *BreedHandler,
	matchH *MatchHandler,
) *gin.Engine {
	r := gin.New()

	// Middlewares basicos: logging, recovery y JSON content-type.
	r.Use(zapLoggerMiddleware(logger), gin.Recovery(), jsonContentTypeMiddleware())

	authRequired := OwnerAuthMiddleware(jwtSvc)

	r.POST("/owners", ownerH.Register)
	auth := r.Group("/auth")
	auth.POST("/login", ownerH.Login)
	auth.POST("/refresh", ownerH.Refresh)
	auth.POST("/logout", ownerH.Logout)

	dogs := r.Group("/dogs")
	dogs.GET("", dogH.ListDogs)
	dogs.GET("/:id", dogH.GetDog)
	dogs.POST("", authRequired, dogH.CreateDog)
	dogs.PUT("/:id", authRequired, dogH.UpdateDog)
	dogs.DELETE("/:id", authRequired, dogH.DeleteDog)
	dogs.GET("/:id/similar", matchH.SimilarDogs)
	dogs.GET("/:id/feed", matchH.ForYouFeed)
	dogs.GET("/:id/matches", matchH.TopMatches)
	dogs.GET("/:id/reviews", reviewH.ListByDog)

	r.POST("/reviews", authRequired, reviewH.CreateReview)
	r.GET("/breeds", breedH.ListBreeds)
	r.POST("/sentiment", matchH.AnalyzeSentiment)

	return r
}

// zapLoggerMiddleware crea un middleware simple de logging con zap.
func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", latency),
			zap.String("client_ip", c.ClientIP()),
		)
	}
}

// jsonContentTypeMiddleware fuerza Content-Type: application/json en responses.
func jsonContentTypeMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Content-Type", "application/json")
		c.Next()
	}
}
