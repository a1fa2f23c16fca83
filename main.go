package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
	"gorm.io/gorm"

	"github.com/Jammz-kekw/urob.to/internal/cache"
	"github.com/Jammz-kekw/urob.to/internal/config"
	"github.com/Jammz-kekw/urob.to/internal/database"
	"github.com/Jammz-kekw/urob.to/internal/handlers"
	"github.com/Jammz-kekw/urob.to/internal/logging"
	"github.com/Jammz-kekw/urob.to/internal/middleware"
	"github.com/Jammz-kekw/urob.to/internal/monitoring"
	"github.com/Jammz-kekw/urob.to/internal/repositories"
	"github.com/Jammz-kekw/urob.to/internal/services"
)

// Application holds all application dependencies and state
type Application struct {
	Config *config.Config
	Pool   *database.DatabasePool
	DB     *gorm.DB
	Cache  cache.Cache
	Redis  *redis.Client
	Router *gin.Engine
	Server *http.Server

	// Services
	UserService       services.UserService
	TagService        services.TagService
	AssignmentService services.AssignmentService
	TaskService       services.TaskService
	ProjectService    services.ProjectService
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("❌ Failed to load configuration: %v", err)
	}

	logging.Init(cfg.LogFile)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	app, err := initializeApplication(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to initialize application: %v", err)
	}

	app.setupRoutes()
	app.startServer()
}

func initializeApplication(cfg *config.Config) (*Application, error) {
	app := &Application{
		Config: cfg,
	}

	log.Println("🚀 Initializing urob.to backend...")
	log.Printf("📋 Environment: %s", cfg.Server.Environment)

	pool, err := repositories.Connect(cfg)
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}
	app.Pool = pool
	app.DB = pool.DB
	log.Println("✅ Database connected and configured")

	migrationConfig := &repositories.MigrationConfig{
		MigrationsPath: "file://migrations",
		DBName:         cfg.Database.Name,
		MaxRetries:     3,
		RetryDelay:     2 * time.Second,
	}
	if err := repositories.RunMigrations(app.DB, migrationConfig); err != nil {
		return nil, fmt.Errorf("database migration failed: %w", err)
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:         cfg.GetRedisAddr(),
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.DB,
		PoolSize:     cfg.Redis.PoolSize,
		MinIdleConns: cfg.Redis.MinIdleConns,
		MaxRetries:   cfg.Redis.MaxRetries,
		DialTimeout:  cfg.Redis.DialTimeout,
		ReadTimeout:  cfg.Redis.ReadTimeout,
		WriteTimeout: cfg.Redis.WriteTimeout,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Printf("⚠️  Redis unavailable: %v (continuing with memory cache)", err)
		app.Cache = cache.NewMemoryCache()
		log.Println("✅ Memory cache initialized (fallback mode)")
	} else {
		app.Redis = redisClient
		app.Cache = cache.NewRedisCacheFromClient(redisClient)
		log.Println("✅ Redis cache initialized")
	}

	app.UserService = services.NewUserService()
	app.TagService = services.NewTagService()
	app.AssignmentService = services.NewCachedAssignmentService(services.NewAssignmentService(), app.Cache)
	app.TaskService = services.NewCachedTaskService(services.NewTaskService(), app.Cache)
	app.ProjectService = services.NewCachedProjectService(services.NewProjectService(), app.Cache)

	log.Println("✅ All services initialized")

	return app, nil
}

func (app *Application) setupRoutes() {
	r := gin.New()

	// Global middleware stack (order matters!)
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(monitoring.MetricsMiddleware())
	r.Use(middleware.RecoveryWithLog())
	r.Use(middleware.SecureHeader())

	rateLimit := rate.Limit(float64(app.Config.RateLimit.RequestsPerMin) / 60.0)
	r.Use(middleware.RateLimiter(rateLimit, app.Config.RateLimit.BurstSize))

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Health and monitoring endpoints
	r.GET("/health", app.healthHandler())
	r.GET("/ready", app.readinessHandler())
	r.GET("/metrics", monitoring.MetricsHandler())

	userHandler := handlers.NewUserHandler(app.DB, app.UserService)
	userRoutes := r.Group("/users")
	{
		userRoutes.POST("", userHandler.CreateUser)
		userRoutes.GET("", userHandler.GetUsers)
		userRoutes.GET("/:id", userHandler.GetUserByID)
	}

	tagHandler := handlers.NewTagHandler(app.DB, app.TagService)
	tagRoutes := r.Group("/tags")
	{
		tagRoutes.POST("", tagHandler.CreateTag)
		tagRoutes.GET("", tagHandler.GetTags)
	}

	assignmentHandler := handlers.NewAssignmentHandler(app.DB, app.AssignmentService)
	assignmentRoutes := r.Group("/assignments")
	{
		assignmentRoutes.POST("", assignmentHandler.CreateAssignment)
		assignmentRoutes.GET("", assignmentHandler.GetAssignments)
	}

	projectHandler := handlers.NewProjectHandler(app.DB, app.ProjectService)
	projectRoutes := r.Group("/projects")
	{
		projectRoutes.POST("", projectHandler.CreateProject)
		projectRoutes.GET("", projectHandler.GetProjects)
		projectRoutes.GET("/:id", projectHandler.GetProjectByID)
		projectRoutes.PUT("/:id", projectHandler.UpdateProject)
		projectRoutes.DELETE("/:id", projectHandler.DeleteProject)
	}

	taskHandler := handlers.NewTaskHandler(app.DB, app.TaskService)
	taskRoutes := r.Group("/tasks")
	{
		taskRoutes.POST("", taskHandler.CreateTask)
		taskRoutes.GET("", taskHandler.GetTasks)
		taskRoutes.GET("/:id", taskHandler.GetTaskByID)
		taskRoutes.PUT("/:id", taskHandler.UpdateTask)
		taskRoutes.DELETE("/:id", taskHandler.DeleteTask)
	}

	app.Router = r
}

func (app *Application) startServer() {
	addr := app.Config.GetServerAddr()

	app.Server = &http.Server{
		Addr:         addr,
		Handler:      app.Router,
		ReadTimeout:  app.Config.Server.ReadTimeout,
		WriteTimeout: app.Config.Server.WriteTimeout,
		IdleTimeout:  app.Config.Server.IdleTimeout,
	}

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit

		log.Println("🛑 Shutting down server...")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := app.Server.Shutdown(ctx); err != nil {
			log.Printf("❌ Server forced to shutdown: %v", err)
		}

		app.cleanup()
		log.Println("✅ Server stopped gracefully")
	}()

	log.Printf("🚀 Server starting on %s", addr)
	log.Printf("💚 Health check at http://%s/health", addr)

	if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("❌ Server failed to start: %v", err)
	}
}

func (app *Application) cleanup() {
	log.Println("🧹 Cleaning up resources...")

	if app.Cache != nil {
		if err := app.Cache.Close(); err != nil {
			log.Printf("⚠️  Error closing cache: %v", err)
		}
	}

	if app.Pool != nil {
		if err := app.Pool.Close(); err != nil {
			log.Printf("⚠️  Error closing database: %v", err)
		}
	}

	log.Println("✅ Cleanup complete")
}

func (app *Application) healthHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}

func (app *Application) readinessHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := app.Pool.Health(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"ready":  false,
				"reason": "database not ready",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"ready":    true,
			"database": app.Pool.Stats(),
		})
	}
}
