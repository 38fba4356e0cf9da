package main

import (
	"context"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/websocket/v2"
	"github.com/joho/godotenv"

	"github.com/gigworkers/gigworkers_be/internal/config"
	"github.com/gigworkers/gigworkers_be/internal/db"
	"github.com/gigworkers/gigworkers_be/internal/handlers"
	"github.com/gigworkers/gigworkers_be/internal/middleware"
	"github.com/gigworkers/gigworkers_be/internal/models"
	"github.com/gigworkers/gigworkers_be/internal/realtime"
	"github.com/gigworkers/gigworkers_be/internal/session"
	"github.com/gigworkers/gigworkers_be/internal/services/workers"
	"github.com/gigworkers/gigworkers_be/internal/store"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	gdb, err := db.Connect(cfg.DBDSN)
	if err != nil {
		log.Fatal(err)
	}

	rdb := realtime.NewRedis(cfg.RedisAddr, cfg.RedisPassword)
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		log.Fatal("Redis not reachable:", err)
	}

	hub := realtime.NewHub()
	go hub.Run()
	go realtime.RelayWorkerEvents(context.Background(), rdb, hub)

	if err := gdb.AutoMigrate(&models.User{}, &models.WorkerProfile{}); err != nil {
		log.Fatal(err)
	}

	workerStore := store.NewGormWorkerStore(gdb)
	markers := session.NewRedisMarkerStore(rdb, time.Duration(cfg.SessionTTLMin)*time.Minute)
	workerSvc := workers.NewService(workerStore, markers, realtime.NewPublisher(rdb))

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.FrontendBaseURL,
		AllowMethods:     "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		ExposeHeaders:    "Content-Length",
		AllowCredentials: true,
	}))

	// keep preflights answered
	app.Options("/*", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusNoContent)
	})

	authH := &handlers.AuthHandler{
		DB:        gdb,
		JWTSecret: cfg.JWTSecret,
		Expires:   cfg.JWTExpiresMin,
	}
	googleH := &handlers.GoogleOAuthHandler{
		DB:              gdb,
		JWTSecret:       cfg.JWTSecret,
		Expires:         cfg.JWTExpiresMin,
		GoogleClientID:  cfg.GoogleClientID,
		GoogleSecret:    cfg.GoogleSecret,
		GoogleRedirect:  cfg.GoogleRedirect,
		FrontendBaseURL: cfg.FrontendBaseURL,
	}
	workerH := handlers.NewWorkerHandler(workerStore, workerSvc)
	catalogH := handlers.NewCatalogHandler()
	streamH := handlers.NewWorkerStreamHandler(hub)

	api := app.Group("/api", middleware.EnsureSession(cfg.SessionTTLMin*60))

	// public
	api.Post("/auth/register", authH.Register)
	api.Post("/auth/login", authH.Login)
	api.Post("/auth/logout", authH.Logout)
	api.Get("/auth/google/start", googleH.GoogleStart)
	api.Get("/auth/google/callback", googleH.GoogleCallback)

	api.Get("/catalog/cities", catalogH.GetCities)
	api.Get("/catalog/skills", catalogH.GetSkills)
	api.Get("/catalog/service-templates", catalogH.GetServiceTemplates)

	api.Get("/workers", workerH.ListPublic)
	api.Get("/workers/:id", workerH.GetDetail)

	// visitor actions, session-guarded but no login required
	api.Post("/workers/:id/like", workerH.Like)
	api.Post("/workers/:id/reviews", workerH.AddReview)

	// protected (JWT)
	protected := api.Group("/",
		middleware.JWTFromCookie(cfg.JWTSecret),
		middleware.AttachJWTLocals(),
	)

	protected.Get("/me/profile", workerH.MyProfile)
	protected.Post("/me/profile", workerH.CreateProfile)
	protected.Put("/me/profile", workerH.UpdateProfile)
	protected.Patch("/me/availability", workerH.ToggleAvailability)

	// whoami, for the navbar
	protected.Get("/me", func(c *fiber.Ctx) error {
		uid := c.Locals("userId")

		var user models.User
		if err := gdb.First(&user, "id = ?", uid).Error; err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"message": "User not found",
			})
		}

		return c.JSON(fiber.Map{
			"success": true,
			"data": fiber.Map{
				"id":    user.ID,
				"name":  user.Name,
				"email": user.Email,
			},
		})
	})

	// WebSocket endpoint for live worker updates
	app.Get("/ws/workers", websocket.New(streamH.WebSocketHandler))

	log.Fatal(app.Listen(":" + cfg.AppPort))
}
