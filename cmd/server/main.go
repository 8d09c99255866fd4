package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"or-control-backend/internal/config"
	"or-control-backend/internal/database"
	"or-control-backend/internal/handler"
	"or-control-backend/internal/middleware"
	"or-control-backend/internal/registry"
	"or-control-backend/internal/repository"
	"or-control-backend/internal/service"
	"or-control-backend/internal/session"
	"or-control-backend/pkg/utils"

	"github.com/gin-gonic/gin"
	gocache "github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"
)

func main() {
	// 1. Load configuration
	cfg := config.LoadConfig()
	log.Println("Configuration loaded successfully")

	// 2. Initialize JWT utilities with config
	utils.InitJWT(
		cfg.JWT.AccessSecret,
		cfg.JWT.RefreshSecret,
		cfg.JWT.AccessTokenExpiry,
		cfg.JWT.RefreshTokenExpiry,
	)

	// 3. Initialize database connection
	db := database.Connect(cfg)

	// 4. Initialize repositories
	userRepo := repository.NewUserRepo(db)
	auditRepo := repository.NewAuditRepo(db)
	keyRepo := repository.NewDisplayKeyRepo(db)

	// 5. Room state lives in memory only; seed the registry at boot
	rooms := registry.New(registry.SeedRooms(time.Now()))
	sessions := session.NewTracker(nil)

	// 6. Initialize services
	authService := service.NewAuthService(userRepo, auditRepo)
	roomService := service.NewRoomService(rooms, sessions, auditRepo, cfg.Dashboard.DialTheme, nil)
	keyService := service.NewDisplayKeyService(keyRepo, auditRepo)
	workerService := service.NewWorkerService(roomService, cfg.Dashboard.SweepInterval, cfg.Dashboard.EndTimeRetention)

	// 7. Start display sweeper in goroutine
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go workerService.Start(ctx)

	// 8. Setup Gin mode
	gin.SetMode(cfg.Server.GinMode)

	// 9. Setup Gin router
	r := gin.Default()

	// Apply CORS middleware
	r.Use(middleware.CORS(cfg))

	// 10. Register handlers
	authHandler := handler.NewAuthHandler(authService)
	roomHandler := handler.NewRoomHandler(roomService)
	panelHandler := handler.NewPanelHandler(roomService)
	keyHandler := handler.NewDisplayKeyHandler(keyService)

	// 11. Define routes
	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		utils.SuccessResponse(c, gin.H{
			"status":  "healthy",
			"service": "or-control-backend",
		})
	})

	// Auth routes (public, rate limited against brute force)
	auth := r.Group("/auth")
	auth.Use(middleware.RateLimiter(rate.Limit(5), 10))
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
		auth.POST("/refresh", authHandler.Refresh)
		auth.POST("/logout", authHandler.Logout)
	}

	// Dashboard routes (authenticated staff)
	dash := r.Group("/rooms")
	dash.Use(middleware.AuthMiddleware())
	{
		dash.GET("", roomHandler.GetGrid)
		dash.GET("/timeline", roomHandler.GetTimeline)
		dash.GET("/:room_id", roomHandler.GetDetail)
		dash.POST("/:room_id/open", roomHandler.OpenDetail)
		dash.POST("/:room_id/close", roomHandler.CloseDetail)
		dash.POST("/:room_id/pause", roomHandler.Pause)
		dash.POST("/:room_id/resume", roomHandler.Resume)
		dash.POST("/:room_id/advance", roomHandler.Advance)
		dash.POST("/:room_id/step", roomHandler.SetStep)
		dash.POST("/:room_id/emergency", roomHandler.ToggleEmergency)
		dash.POST("/:room_id/lock", roomHandler.ToggleLock)
		dash.PUT("/:room_id/end-time", roomHandler.SetEndTime)
		dash.PATCH("/:room_id/end-time/adjust", roomHandler.AdjustEndTime)
	}

	// Admin routes
	admin := r.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.RequireAdmin())
	{
		admin.POST("/display-keys", keyHandler.GenerateKey)
		admin.GET("/display-keys", keyHandler.ListKeys)
		admin.DELETE("/display-keys/:key_id", keyHandler.RevokeKey)
	}

	// Panel routes (wall displays with API keys, short response cache)
	panelCache := gocache.New(5*time.Second, time.Minute)
	panel := r.Group("/panel")
	panel.Use(middleware.DisplayKeyAuth(keyService), middleware.Cache(panelCache, 5*time.Second))
	{
		panel.GET("/rooms", panelHandler.GetRooms)
		panel.GET("/timeline", panelHandler.GetTimeline)
	}

	// 12. Setup graceful shutdown
	go func() {
		log.Printf("Server starting on port %s", cfg.Server.Port)
		if err := r.Run(":" + cfg.Server.Port); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	// Cancel background worker context
	cancel()
	log.Println("Server exited")
}
