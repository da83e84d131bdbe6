package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"manmitra/backend/internal/api/handler"
	"manmitra/backend/internal/escalation"
	"manmitra/backend/internal/models"
	"manmitra/backend/internal/storage"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
	)
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     os.Getenv("REDIS_ADDR"),
		Password: os.Getenv("REDIS_PASSWORD"),
	})

	storageSvc := storage.NewStorageService(db, rdb)
	escalationSvc := escalation.NewService(storageSvc)

	if len(os.Args) < 2 {
		fmt.Println("Usage: admin <command> [args]")
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "token":
		if len(os.Args) < 3 {
			fmt.Println("Usage: admin token <role> [anon_id]")
			os.Exit(1)
		}
		role := os.Args[2]
		if role != models.RoleCounselor && role != models.RoleAdmin {
			fmt.Println("Role must be 'counselor' or 'admin'.")
			os.Exit(1)
		}
		anonID := uuid.New().String()
		if len(os.Args) > 3 {
			anonID = os.Args[3]
		}
		if _, err := storageSvc.SaveUserIfNotExists(anonID, role); err != nil {
			log.Fatalf("Error saving user: %v", err)
		}
		token, err := handler.GenerateToken(anonID, role)
		if err != nil {
			log.Fatalf("Error minting token: %v", err)
		}
		fmt.Printf("anon_id: %s\nrole: %s\ntoken: %s\n", anonID, role, token)
	case "list-alerts":
		status := "all"
		if len(os.Args) > 2 {
			status = os.Args[2]
		}
		alerts, err := escalationSvc.List(status)
		if err != nil {
			log.Fatalf("Error listing alerts: %v", err)
		}
		for _, a := range alerts {
			fmt.Printf("%s  %-12s  severity=%-6s  submission=%s  handled_by=%s\n",
				a.AlertID, a.Status, a.Severity, a.SourceSubmissionID, a.HandledBy)
		}
		fmt.Printf("%d alert(s).\n", len(alerts))
	case "ack":
		if len(os.Args) != 4 {
			fmt.Println("Usage: admin ack <alert_id> <counselor_id>")
			os.Exit(1)
		}
		alert, err := escalationSvc.Acknowledge(os.Args[2], os.Args[3])
		if err != nil {
			log.Fatalf("Error acknowledging alert: %v", err)
		}
		fmt.Printf("Alert %s acknowledged by %s.\n", alert.AlertID, alert.HandledBy)
	case "resolve":
		if len(os.Args) < 5 {
			fmt.Println("Usage: admin resolve <alert_id> <counselor_id> <notes...>")
			os.Exit(1)
		}
		notes := strings.Join(os.Args[4:], " ")
		alert, err := escalationSvc.Resolve(os.Args[2], os.Args[3], models.RoleAdmin, notes)
		if err != nil {
			log.Fatalf("Error resolving alert: %v", err)
		}
		fmt.Printf("Alert %s resolved.\n", alert.AlertID)
	case "unmute":
		if len(os.Args) != 3 {
			fmt.Println("Usage: admin unmute <author_ref>")
			os.Exit(1)
		}
		if err := storageSvc.UnmuteAuthor(os.Args[2]); err != nil {
			log.Fatalf("Error unmuting author: %v", err)
		}
		fmt.Printf("Author %s has been unmuted.\n", os.Args[2])
	default:
		fmt.Println("Unknown command")
		os.Exit(1)
	}
}
