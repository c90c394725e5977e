package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"tournament-hub/handlers"
	"tournament-hub/middleware"
	"tournament-hub/models"
	"tournament-hub/services"
	"tournament-hub/utils"
	"tournament-hub/workers"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  No .env file found, reading environment variables directly")
	}

	cfg, err := loadConfig()
	if err != nil {
		log.Fatal("invalid configuration: ", err)
	}

	app := fiber.New(fiber.Config{
		BodyLimit: 10 * 1024 * 1024, // banner uploads
	})

	allowedOrigins := make([]string, 0)
	for _, origin := range strings.Split(cfg.AllowedOrigins, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			allowedOrigins = append(allowedOrigins, origin)
		}
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins:     strings.Join(allowedOrigins, ","),
		AllowMethods:     "GET,POST,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization, X-Requested-With",
		AllowCredentials: true,
		MaxAge:           86400,
	}))

	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{})
	if err != nil {
		log.Fatal("failed to connect to database:", err)
	}

	// team_members backs the Team.Members association and is the membership
	// ledger at the same time.
	if err := db.SetupJoinTable(&models.Team{}, "Members", &models.TeamMember{}); err != nil {
		log.Fatal("failed to set up membership join table:", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Tournament{},
		&models.Team{},
		&models.TeamMember{},
	); err != nil {
		log.Fatal("failed to migrate database:", err)
	}

	if err := utils.InitR2(); err != nil {
		log.Fatal("failed to initialize R2 client:", err)
	}
	if !utils.R2Enabled() {
		log.Println("⚠️  R2 storage not configured — banner uploads disabled")
	}

	tokens := utils.NewTokenService(cfg.JWTSecret, 24*time.Hour)
	auth := middleware.RequireAuth(tokens)

	authService := services.NewAuthService(db, tokens, cfg.DiscordClientID, cfg.DiscordClientSecret, cfg.DiscordRedirectURI)
	userService := services.NewUserService(db)
	tournamentService := services.NewTournamentService(db)
	teamService := services.NewTeamService(db)

	handlers.SetupAuthRoutes(app, authService, userService, auth)
	handlers.SetupTournamentRoutes(app, tournamentService, teamService, auth)
	handlers.SetupTeamRoutes(app, teamService, auth)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.RetentionDays > 0 {
		retention := workers.NewRetentionWorker(db, cfg.RetentionDays)
		if err := retention.Start(ctx); err != nil {
			log.Fatal("failed to start retention worker:", err)
		}
		log.Printf("✅ Retention sweeper running (purging tournaments older than %d days)", cfg.RetentionDays)
	}

	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Printf("Server error: %v", err)
		}
	}()

	log.Printf("✅ Server running on http://localhost:%s", cfg.Port)
	log.Printf("✅ CORS configured for origins: %s", strings.Join(allowedOrigins, ","))

	<-ctx.Done()
	log.Println("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Printf("⚠️  Shutdown error: %v", err)
	}
}
