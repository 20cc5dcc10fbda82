package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/battersup/battersup-api/internal/config"
	"github.com/battersup/battersup-api/internal/database"
	"github.com/battersup/battersup-api/internal/handlers"
	authmw "github.com/battersup/battersup-api/internal/middleware"
	"github.com/battersup/battersup-api/internal/services"
	"github.com/m1z23r/drift/pkg/drift"
	"github.com/m1z23r/drift/pkg/middleware"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx := context.Background()

	db, err := database.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.Migrate(ctx); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	jwtService := services.NewJWTService(cfg.JWTSecret, cfg.JWTAccessExpiry, cfg.JWTRefreshExpiry)
	profileService := services.NewProfileService(db)
	tokenService := services.NewTokenService(db)
	leagueService := services.NewLeagueService(db, cfg.SeasonYearMin, cfg.SeasonYearMax)
	teamService := services.NewTeamService(db)
	fieldService := services.NewFieldService(db)
	codeService := services.NewSignupCodeService(db)
	redemptionService := services.NewRedemptionService(db)
	authzService := services.NewAuthorizationService(db)
	rosterService := services.NewRosterService(db)
	emailService := services.NewEmailService(cfg.SMTP)

	authHandler := handlers.NewAuthHandler(cfg, profileService, tokenService, jwtService)
	profileHandler := handlers.NewProfileHandler(profileService, authzService)
	leagueHandler := handlers.NewLeagueHandler(leagueService, authzService)
	teamHandler := handlers.NewTeamHandler(teamService, rosterService, authzService)
	fieldHandler := handlers.NewFieldHandler(fieldService, authzService)
	codeHandler := handlers.NewSignupCodeHandler(codeService, leagueService, authzService, emailService, cfg.BaseURL)
	joinHandler := handlers.NewJoinHandler(redemptionService, codeService, leagueService, teamService)

	app := drift.New()

	if cfg.IsProduction() {
		app.SetMode(drift.ReleaseMode)
	} else {
		app.SetMode(drift.DebugMode)
	}

	app.Use(middleware.Recovery())
	app.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept", "Authorization"},
		MaxAge:       86400,
	}))
	app.Use(middleware.BodyParser())

	api := app.Group("/api/v1")

	auth := api.Group("/auth")
	auth.Get("/:provider/consent", authHandler.GetConsentURL)
	auth.Get("/:provider/callback", authHandler.Callback)
	auth.Post("/exchange", authHandler.ExchangeCode)
	auth.Post("/refresh", authHandler.RefreshToken)
	auth.Post("/logout", authHandler.Logout)

	protected := api.Group("")
	protected.Use(authmw.Auth(jwtService))

	protected.Post("/auth/logout-all", authHandler.LogoutAll)

	protected.Get("/profiles/me", profileHandler.GetMe)
	protected.Patch("/profiles/me", profileHandler.UpdateMe)
	protected.Get("/profiles/me/roles", profileHandler.GetMyRoles)

	protected.Get("/leagues", leagueHandler.List)
	protected.Post("/leagues", leagueHandler.Create)
	protected.Get("/leagues/:leagueId", leagueHandler.Get)
	protected.Patch("/leagues/:leagueId", leagueHandler.Update)
	protected.Delete("/leagues/:leagueId", leagueHandler.Delete)

	protected.Get("/leagues/:leagueId/teams", teamHandler.List)
	protected.Post("/leagues/:leagueId/teams", teamHandler.Create)
	protected.Get("/leagues/:leagueId/teams/:teamId", teamHandler.Get)
	protected.Patch("/leagues/:leagueId/teams/:teamId", teamHandler.Update)
	protected.Delete("/leagues/:leagueId/teams/:teamId", teamHandler.Delete)

	protected.Get("/leagues/:leagueId/teams/:teamId/roster", teamHandler.GetRoster)
	protected.Patch("/leagues/:leagueId/teams/:teamId/roster/:entryId", teamHandler.UpdateRosterEntry)
	protected.Delete("/leagues/:leagueId/teams/:teamId/roster/:entryId", teamHandler.RemoveRosterEntry)

	protected.Get("/leagues/:leagueId/fields", fieldHandler.List)
	protected.Post("/leagues/:leagueId/fields", fieldHandler.Create)
	protected.Patch("/leagues/:leagueId/fields/:fieldId", fieldHandler.Update)
	protected.Delete("/leagues/:leagueId/fields/:fieldId", fieldHandler.Delete)

	protected.Get("/leagues/:leagueId/codes", codeHandler.List)
	protected.Post("/leagues/:leagueId/codes", codeHandler.Issue)
	protected.Post("/leagues/:leagueId/codes/:codeId/disable", codeHandler.Disable)

	protected.Post("/join", joinHandler.Join)

	api.Get("/health", func(c *drift.Context) {
		_ = c.JSON(200, map[string]string{"status": "ok"})
	})

	// Public join preview pages (no auth required)
	app.Get("/join/:code", joinHandler.ViewJoin)

	go func() {
		ticker := time.NewTicker(1 * time.Hour)
		for range ticker.C {
			_ = tokenService.CleanupExpired(context.Background())
		}
	}()

	go func() {
		addr := fmt.Sprintf(":%s", cfg.Port)
		log.Printf("Server starting on %s", addr)
		if err := app.Run(addr); err != nil {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
}
