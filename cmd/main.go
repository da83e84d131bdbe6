package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	"manmitra/backend/internal/alertfeed"
	"manmitra/backend/internal/api/handler"
	"manmitra/backend/internal/escalation"
	"manmitra/backend/internal/localization"
	"manmitra/backend/internal/models"
	"manmitra/backend/internal/moderation"
	"manmitra/backend/internal/notify"
	"manmitra/backend/internal/pipeline"
	"manmitra/backend/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func getenv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func setupDependencies() (*gorm.DB, *redis.Client) {
	// 1. PostgreSQL
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		getenv("DB_HOST", "localhost"),
		getenv("DB_USER", "user"),
		getenv("DB_PASSWORD", "password"),
		getenv("DB_NAME", "manmitradb"),
		getenv("DB_PORT", "5432"),
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect PostgreSQL: %v", err)
	}

	// 2. Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:     getenv("REDIS_ADDR", "localhost:6379"),
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0,
	})

	ctx := context.Background()
	if _, err := rdb.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect Redis: %v", err)
	}

	// 3. Migrations
	err = db.AutoMigrate(
		&models.User{},
		&models.TextSubmission{},
		&models.CrisisAlert{},
		&models.ModerationDecision{},
	)
	if err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	log.Println("Database and Redis connections established, migrations complete.")
	return db, rdb
}

func main() {
	log.Println("Starting ManMitra Backend...")

	if err := godotenv.Load(); err != nil {
		log.Println("Warning: Error loading .env file")
	}

	// 1. Dependencies
	db, rdb := setupDependencies()
	s := storage.NewStorageService(db, rdb)

	localizer, err := localization.NewLocalizer(getenv("LOCALES_DIR", "internal/localization/locales"))
	if err != nil {
		log.Fatalf("Failed to load helpline resources: %v", err)
	}

	// 2. Services
	escalationSvc := escalation.NewService(s)
	pipelineSvc := pipeline.NewService(s, escalationSvc, localizer)
	moderationSvc := moderation.NewService(s, escalationSvc)
	feed := alertfeed.NewHub(s)

	// 3. Background goroutines
	go feed.Run()                        // counselor live feed dispatcher
	go escalationSvc.RunGaugeRefresher() // pending-alert gauge poll

	if token := os.Getenv("TELEGRAM_BOT_TOKEN"); token != "" {
		chatID, err := strconv.ParseInt(os.Getenv("TELEGRAM_ALERT_CHAT_ID"), 10, 64)
		if err != nil {
			log.Fatalf("TELEGRAM_ALERT_CHAT_ID is not a valid chat ID: %v", err)
		}
		notifier, err := notify.NewTelegramNotifier(token, chatID, s)
		if err != nil {
			log.Fatalf("Failed to start Telegram notifier: %v", err)
		}
		go notifier.Run()
	}

	// 4. Gin and routing
	r := gin.Default()
	h := handler.NewHandler(pipelineSvc, moderationSvc, escalationSvc, feed, localizer)

	r.GET("/auth/anon", h.GetAnonID)
	r.GET("/helpline", h.GetHelpline)

	authed := r.Group("", handler.AuthRequired())
	authed.POST("/submissions", h.CreateSubmission)
	authed.POST("/content/check", h.CheckContent)

	staff := authed.Group("", handler.RequireRole(models.RoleCounselor, models.RoleAdmin))
	staff.GET("/moderation/queue", h.GetModerationQueue)
	staff.POST("/moderation/decisions", h.CreateDecision)
	staff.GET("/moderation/decisions/:postId", h.GetDecisionHistory)
	staff.GET("/alerts", h.ListAlerts)
	staff.GET("/alerts/stats", h.AlertStats)
	staff.POST("/alerts/:id/acknowledge", h.AcknowledgeAlert)
	staff.POST("/alerts/:id/resolve", h.ResolveAlert)
	staff.GET("/ws/alerts", h.ServeAlertFeed)

	server := &http.Server{
		Addr:              ":" + getenv("PORT", "8080"),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	log.Fatal(server.ListenAndServe())
}
