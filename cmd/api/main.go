package main

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/mentorat/mentoring_backend/database"
	"github.com/mentorat/mentoring_backend/handlers"
	"github.com/mentorat/mentoring_backend/jobs"
	"github.com/mentorat/mentoring_backend/notifications"
	"github.com/mentorat/mentoring_backend/repository"
	"github.com/mentorat/mentoring_backend/routes"
	"github.com/mentorat/mentoring_backend/services"
)

func main() {
	db, err := database.Connect()
	if err != nil {
		log.Fatalf("🔥 Failed to connect to database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("🔥 Failed to run migrations: %v", err)
	}
	if err := database.SeedAdmin(db); err != nil {
		log.Fatalf("🔥 Failed to seed admin account: %v", err)
	}

	zlog, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("🔥 Failed to initialize logger: %v", err)
	}
	defer zlog.Sync()

	email := notifications.NewEmailService()
	repos := repository.NewRepository(db)

	assembler := services.NewSessionAssembler(repos.Mentee, repos.User, zlog)
	sessionService := services.NewSessionService(repos.Session, repos.Mentee, repos.Pricing, assembler, email, zlog)
	menteeService := services.NewMenteeService(repos.Mentee, repos.User, zlog)
	availabilityService := services.NewAvailabilityService(repos.Availability, zlog)
	pricingService := services.NewPricingService(repos.Pricing, zlog)

	reminder := jobs.NewReminderJob(repos.Session, assembler, email, zlog)
	c := cron.New()
	c.AddFunc("*/5 * * * *", reminder.Run)
	go c.Start()
	log.Println("✅ Cron job for session reminders scheduled successfully.")

	app := fiber.New(fiber.Config{
		Prefork:           false,
		AppName:           "Mentoring Backend",
		CaseSensitive:     true,
		StrictRouting:     true,
		EnablePrintRoutes: true,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}

			log.Printf("[ERROR] %v | Path: %s | Method: %s", err, c.Path(), c.Method())
			return c.Status(code).JSON(fiber.Map{
				"detail": err.Error(),
			})
		},
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins:  "*",
		AllowHeaders:  "Origin, Content-Type, Accept, Authorization",
		AllowMethods:  "GET, POST, PUT, PATCH, DELETE, OPTIONS",
		ExposeHeaders: "Content-Length, Authorization",
		MaxAge:        86400,
	}))

	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "success",
			"message": "Welcome to Mentoring API",
		})
	})

	routes.AuthRoutes(app, handlers.NewAuthHandler(repos.User))
	routes.SessionRoutes(app, handlers.NewSessionHandler(sessionService), handlers.NewVideocallHandler(sessionService))
	routes.MenteeRoutes(app, handlers.NewMenteeHandler(menteeService))
	routes.AvailabilityRoutes(app, handlers.NewAvailabilityHandler(availabilityService))
	routes.PricingRoutes(app, handlers.NewPricingHandler(pricingService))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "ok",
		})
	})

	log.Println("✅ Server is running on port 8080")
	if err := app.Listen(":8080"); err != nil {
		log.Fatalf("🔥 Server failed to start: %v", err)
	}
}
