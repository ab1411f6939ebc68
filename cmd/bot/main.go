package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/KawiBot/Mantis/internal/config"
	"github.com/KawiBot/Mantis/internal/database"
	"github.com/KawiBot/Mantis/internal/handlers"
	"github.com/KawiBot/Mantis/internal/reminder"
	"github.com/KawiBot/Mantis/internal/trivia"
	"github.com/KawiBot/Mantis/migrator/sqlite"
	"github.com/joho/godotenv"
	"github.com/slack-go/slack"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	cfg := config.Load()

	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	log.Println("Running migrations...")
	if err := sqlite.Migrate(db.DB()); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Migrations completed successfully")

	reminderStore, err := reminder.NewStore(cfg.ReminderFilePath)
	if err != nil {
		log.Fatalf("Failed to load reminder store: %v", err)
	}
	defer func() {
		if err := reminderStore.Save(); err != nil {
			log.Printf("Failed to save reminder store on shutdown: %v", err)
		}
	}()

	slackClient := slack.New(cfg.SlackBotToken)

	dm := database.NewInstance(db)
	triviaService := trivia.New(trivia.NewClient(), dm)

	notifier := reminder.NewSlackNotifier(slackClient)
	sched := reminder.NewScheduler(reminderStore, notifier, cfg.PollInterval)
	sched.Start()
	defer sched.Stop()

	handler := handlers.New(slackClient, triviaService, reminderStore, sched, cfg.SlackSigningSecret)

	http.HandleFunc("/slack/commands", handler.HandleSlashCommand)
	http.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "OK")
	})

	log.Printf("Server starting on port %s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, nil); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
