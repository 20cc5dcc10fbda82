package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/battersup/battersup-api/internal/config"
	"github.com/battersup/battersup-api/internal/database"
	"github.com/battersup/battersup-api/internal/services"
	"github.com/google/uuid"
)

func main() {
	leagueFlag := flag.String("league", "", "league id the code belongs to (required)")
	roleFlag := flag.String("role", "", "role the code grants (required)")
	teamFlag := flag.String("team", "", "team id to scope the code to")
	maxUsesFlag := flag.Int("max-uses", 0, "maximum redemptions, 0 for unlimited")
	expiresFlag := flag.Duration("expires-in", 0, "time until the code expires, 0 for no expiry")
	issuerFlag := flag.String("issued-by", "", "user id recorded as the issuer (required)")
	flag.Parse()

	if *leagueFlag == "" || *roleFlag == "" || *issuerFlag == "" {
		fmt.Println("Usage: issue-code -league <id> -role <role> -issued-by <user-id> [-team <id>] [-max-uses N] [-expires-in 72h]")
		os.Exit(1)
	}

	leagueID, err := uuid.Parse(*leagueFlag)
	if err != nil {
		log.Fatalf("Invalid league id: %v", err)
	}

	issuerID, err := uuid.Parse(*issuerFlag)
	if err != nil {
		log.Fatalf("Invalid issuer id: %v", err)
	}

	var teamID *uuid.UUID
	if *teamFlag != "" {
		id, err := uuid.Parse(*teamFlag)
		if err != nil {
			log.Fatalf("Invalid team id: %v", err)
		}
		teamID = &id
	}

	var maxUses *int
	if *maxUsesFlag > 0 {
		maxUses = maxUsesFlag
	}

	var expiresAt *time.Time
	if *expiresFlag > 0 {
		t := time.Now().Add(*expiresFlag)
		expiresAt = &t
	}

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

	codeService := services.NewSignupCodeService(db)

	code, err := codeService.Issue(ctx, leagueID, *roleFlag, teamID, maxUses, expiresAt, issuerID)
	if err != nil {
		log.Fatalf("Failed to issue signup code: %v", err)
	}

	fmt.Printf("Issued code %s (role %s)\n", code.Code, code.Role)
	if code.TeamID != nil {
		fmt.Printf("  team:     %s\n", code.TeamID)
	}
	if code.MaxUses != nil {
		fmt.Printf("  max uses: %d\n", *code.MaxUses)
	}
	if code.ExpiresAt != nil {
		fmt.Printf("  expires:  %s\n", code.ExpiresAt.Format(time.RFC3339))
	}
}
