package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"paw-match/internal/config"
	"paw-match/internal/db"
	"paw-match/internal/email"
	apihttp "paw-match/internal/http"
	"paw-match/internal/repository"
	"paw-match/internal/sentiment"
	"paw-match/internal/service"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	ctx := context.Background()

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: loading .env: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	pool, err := db.NewPool(ctx, cfg)
	if err != nil {
		logger.Fatal("db connect", zap.Error(err))
	}
	defer pool.Close()

	ownerRepo := repository.NewPgOwnerRepository(pool)
	dogRepo := repository.NewPgDogRepository(pool)
	reviewRepo := repository.NewPgReviewRepository(pool)
	breedRepo := repository.NewPgBreedRepository(pool)

	emailSender := email.NewDisabledSender("email sender not configured")
	if cfg.SMTPHost != "" {
		sender, err := email.NewSMTPSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.SMTPFrom, cfg.SMTPFromName, cfg.SMTPUseTLS)
		if err != nil {
			logger.Warn("smtp sender init failed", zap.Error(err))
		} else {
			emailSender = sender
		}
	}

	var (
		loginLimiter service.LoginRateLimiter
		tokenStore   service.RefreshTokenStore
		sentCache    service.SentimentCache
		redisClient  *redis.Client
	)
	if cfg.RedisAddr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		ctxPing, cancel := context.WithTimeout(ctx, 2*time.Second)
		if err := redisClient.Ping(ctxPing).Err(); err != nil {
			logger.Warn("redis ping failed", zap.Error(err))
		} else {
			loginLimiter = service.NewRedisLoginRateLimiter(redisClient, 10*time.Minute, 5)
			tokenStore = service.NewRedisRefreshTokenStore(redisClient)
			sentCache = service.NewRedisSentimentCache(redisClient, time.Duration(cfg.SentimentCacheTTLSecs)*time.Second)
		}
		cancel()
	}
	if loginLimiter == nil {
		loginLimiter = service.NewLoginRateLimiter(10*time.Minute, 5)
	}

	jwtSvc := service.NewJWTServiceWithStore(
		cfg.JWTSecret,
		time.Duration(cfg.JWTAccessTTLMinutes)*time.Minute,
		time.Duration(cfg.JWTRefreshTTLMinutes)*time.Minute,
		tokenStore,
	)
	if cfg.JWTSecret == "" {
		logger.Warn("jwt secret not configured")
	}

	lexical := sentiment.NewLexicalAnalyzer()
	var analyzer sentiment.Analyzer = lexical
	if cfg.SentimentAPIURL != "" {
		analyzer = sentiment.NewHTTPAnalyzer(
			cfg.SentimentAPIURL,
			cfg.SentimentAPIKey,
			time.Duration(cfg.SentimentTimeoutSecs)*time.Second,
			lexical,
			logger,
		)
	}

	embedder := service.NewTraitEmbedder(cfg.SociabilityScale)
	engine := service.NewScoreEngine(cfg.CompatThreshold, cfg.CompatSmoothing)

	ownerSvc := service.NewOwnerService(logger, ownerRepo, loginLimiter)
	reviewSvc := service.NewReviewService(logger, reviewRepo, dogRepo, ownerRepo, emailSender)
	matchSvc := service.NewMatchService(logger, dogRepo, reviewRepo, analyzer, embedder, engine, sentCache)

	ownerHandler := apihttp.NewOwnerHandler(logger, ownerSvc, jwtSvc)
	dogHandler := apihttp.NewDogHandler(logger, dogRepo, embedder)
	reviewHandler := apihttp.NewReviewHandler(logger, reviewSvc, reviewRepo)
	breedHandler := apihttp.NewBreedHandler(logger, breedRepo)
	matchHandler := apihttp.NewMatchHandler(logger, matchSvc, analyzer)
	router := apihttp.NewRouter(logger, jwtSvc, ownerHandler, dogHandler, reviewHandler, breedHandler, matchHandler)

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Info("starting server", zap.String("port", cfg.HTTPPort))

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server error", zap.Error(err))
	}
}
