// Package server wires HTTP routing, middleware and handlers for the API.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"viewtube/internal/cache"
	"viewtube/internal/config"
	"viewtube/internal/database"
	"viewtube/internal/middleware"
	"viewtube/internal/models"
	"viewtube/internal/notifications"
	"viewtube/internal/repository"
	"viewtube/internal/service"
	"viewtube/internal/storage"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Server holds all dependencies and provides handlers
type Server struct {
	config *config.Config
	db     *gorm.DB
	redis  *redis.Client

	userRepo  repository.UserRepository
	videoRepo repository.VideoRepository

	videos        *service.VideoService
	comments      *service.CommentService
	tweets        *service.TweetService
	likes         *service.LikeService
	subscriptions *service.SubscriptionService
	playlists     *service.PlaylistService
	dashboard     *service.DashboardService

	uploader storage.Uploader
	notifier *notifications.Notifier
}

// NewServer creates a server instance with all dependencies connected.
func NewServer(cfg *config.Config) (*Server, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}

	cache.InitRedis(cfg.RedisURL)
	redisClient := cache.GetClient()

	var uploader storage.Uploader
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	uploader, err = storage.NewMinioUploader(ctx, cfg)
	if err != nil {
		// Thumbnail uploads degrade to 503; everything else keeps working.
		middleware.Logger.Warn("object storage unavailable", slog.Any("error", err))
		uploader = nil
	}

	return NewServerWithDeps(cfg, db, redisClient, uploader), nil
}

// NewServerWithDeps builds a server from externally constructed
// dependencies. Tests use it to inject sqlmock and miniredis.
func NewServerWithDeps(cfg *config.Config, db *gorm.DB, redisClient *redis.Client, uploader storage.Uploader) *Server {
	userRepo := repository.NewUserRepository(db)
	videoRepo := repository.NewVideoRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	tweetRepo := repository.NewTweetRepository(db)
	likeRepo := repository.NewLikeRepository(db)
	subRepo := repository.NewSubscriptionRepository(db)
	playlistRepo := repository.NewPlaylistRepository(db)
	statsRepo := repository.NewStatsRepository(db)

	return &Server{
		config:        cfg,
		db:            db,
		redis:         redisClient,
		userRepo:      userRepo,
		videoRepo:     videoRepo,
		videos:        service.NewVideoService(videoRepo),
		comments:      service.NewCommentService(commentRepo, videoRepo),
		tweets:        service.NewTweetService(tweetRepo, userRepo),
		likes:         service.NewLikeService(likeRepo, videoRepo, commentRepo, tweetRepo),
		subscriptions: service.NewSubscriptionService(subRepo, userRepo),
		playlists:     service.NewPlaylistService(playlistRepo, videoRepo),
		dashboard:     service.NewDashboardService(statsRepo, videoRepo),
		uploader:      uploader,
		notifier:      notifications.NewNotifier(redisClient, middleware.Logger),
	}
}

// SetupMiddleware configures middleware for the Fiber app
func (s *Server) SetupMiddleware(app *fiber.App) {
	app.Use(requestid.New())
	app.Use(helmet.New())
	app.Use(middleware.ContextMiddleware())
	app.Use(middleware.StructuredLogger())

	prom := middleware.InitMetrics("viewtube")
	prom.RegisterAt(app, "/metrics")
	app.Use(middleware.MetricsMiddleware(prom))

	origins := s.config.AllowedOrigins
	if origins == "" {
		origins = "http://localhost:5173,http://localhost:3000"
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
		MaxAge:           86400,
	}))
}

// SetupRoutes configures all routes for the application
func (s *Server) SetupRoutes(app *fiber.App) {
	api := app.Group("/api")

	api.Get("/health", s.HealthCheck)

	// Auth routes
	auth := api.Group("/auth")
	auth.Post("/signup", middleware.RateLimit(s.redis, 3, 10*time.Minute, "signup"), s.Signup)
	auth.Post("/login", middleware.RateLimit(s.redis, 10, 5*time.Minute, "login"), s.Login)
	auth.Post("/refresh", s.RefreshToken)
	auth.Post("/logout", s.Logout)

	// Public browse routes
	publicVideos := api.Group("/videos")
	publicVideos.Get("/", s.ListVideos)
	publicVideos.Get("/:id/comments", s.GetComments)
	publicVideos.Get("/:id", s.GetVideo)

	api.Get("/channels/:username/stats", s.GetChannelStats)
	api.Get("/users/:id/tweets", s.GetUserTweets)

	// Protected routes
	protected := api.Group("", middleware.AuthRequired(s.config.JWTSecret, s.userRepo.GetByID))

	videos := protected.Group("/videos")
	videos.Post("/", middleware.RateLimit(s.redis, 5, 5*time.Minute, "create_video"), s.CreateVideo)
	// Specific /:id/:resource routes BEFORE generic /:id routes
	videos.Post("/:id/comments", middleware.RateLimit(s.redis, 10, time.Minute, "create_comment"), s.CreateComment)
	videos.Post("/:id/like", s.ToggleVideoLike)
	videos.Post("/:id/publish-toggle", s.TogglePublish)
	videos.Post("/:id/thumbnail", s.UploadThumbnail)
	videos.Patch("/:id", s.UpdateVideo)
	videos.Delete("/:id", s.DeleteVideo)

	comments := protected.Group("/comments")
	comments.Post("/:id/like", s.ToggleCommentLike)
	comments.Patch("/:id", s.UpdateComment)
	comments.Delete("/:id", s.DeleteComment)

	tweets := protected.Group("/tweets")
	tweets.Post("/", middleware.RateLimit(s.redis, 10, time.Minute, "create_tweet"), s.CreateTweet)
	tweets.Post("/:id/like", s.ToggleTweetLike)
	tweets.Patch("/:id", s.UpdateTweet)
	tweets.Delete("/:id", s.DeleteTweet)

	likes := protected.Group("/likes")
	likes.Get("/videos", s.GetLikedVideos)

	subs := protected.Group("/subscriptions")
	subs.Post("/:channelId", s.ToggleSubscription)
	subs.Get("/", s.GetSubscribedChannels)
	subs.Get("/subscribers", s.GetSubscribers)

	playlists := protected.Group("/playlists")
	playlists.Post("/", s.CreatePlaylist)
	playlists.Get("/", s.GetMyPlaylists)
	playlists.Post("/:id/videos/:videoId", s.AddPlaylistVideo)
	playlists.Delete("/:id/videos/:videoId", s.RemovePlaylistVideo)
	playlists.Get("/:id", s.GetPlaylist)
	playlists.Patch("/:id", s.UpdatePlaylist)
	playlists.Delete("/:id", s.DeletePlaylist)

	dashboard := protected.Group("/dashboard")
	dashboard.Get("/videos", s.GetDashboardVideos)
}

// HealthCheck handles health check requests
func (s *Server) HealthCheck(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), 5*time.Second)
	defer cancel()

	dbStatus := "healthy"
	sqlDB, err := s.db.DB()
	if err != nil {
		dbStatus = "unhealthy"
	} else if err := sqlDB.PingContext(ctx); err != nil {
		dbStatus = "unhealthy"
	}

	redisStatus := "healthy"
	if s.redis != nil {
		if err := s.redis.Ping(ctx).Err(); err != nil {
			redisStatus = "unhealthy"
		}
	} else {
		redisStatus = "unavailable"
	}

	status := fiber.StatusOK
	if dbStatus == "unhealthy" {
		status = fiber.StatusServiceUnavailable
	}

	return c.Status(status).JSON(fiber.Map{
		"message": "ViewTube API",
		"version": "1.0.0",
		"checks": fiber.Map{
			"database": dbStatus,
			"redis":    redisStatus,
		},
		"time": time.Now(),
	})
}

// App builds the configured Fiber application.
func (s *Server) App() *fiber.App {
	app := fiber.New(fiber.Config{
		AppName: "ViewTube API",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			middleware.Logger.ErrorContext(c.UserContext(), "unhandled error", slog.Any("error", err))
			return models.RespondWithError(c, models.NewInternalError(err))
		},
	})
	s.SetupMiddleware(app)
	s.SetupRoutes(app)
	return app
}

// Start starts the server
func (s *Server) Start() error {
	app := s.App()
	middleware.Logger.Info("server starting", slog.String("port", s.config.Port))
	return app.Listen(":" + s.config.Port)
}

// Shutdown gracefully shuts down the server's backing connections.
func (s *Server) Shutdown(ctx context.Context) error {
	if err := database.Close(s.db); err != nil {
		middleware.Logger.Error("error closing database", slog.Any("error", err))
	}
	if s.redis != nil {
		if err := s.redis.Close(); err != nil {
			middleware.Logger.Error("error closing redis", slog.Any("error", err))
		}
	}
	middleware.Logger.Info("server shutdown complete")
	return nil
}
