package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"notebook/internal/audio"
	"notebook/internal/config"
	"notebook/internal/database"
	"notebook/internal/handlers"
	"notebook/internal/service"
	"notebook/internal/store"
	"notebook/internal/translate"
)

func main() {
	cfg := config.Load()

	// Local tier is always present
	localDB, err := database.OpenLocal(cfg.LocalDBPath)
	if err != nil {
		log.Fatalf("Failed to open local database: %v", err)
	}
	defer localDB.Close()

	if err := localDB.RunMigrations(cfg.MigrationsPath); err != nil {
		log.Fatalf("Failed to run local migrations: %v", err)
	}

	// Remote tier is optional; a failure here degrades to local-only
	var remoteDB *database.DB
	if cfg.RemoteEnabled() {
		remoteDB, err = database.OpenRemote(cfg.DatabaseType, cfg.DatabaseURL)
		if err != nil {
			log.Printf("Remote database unavailable, running local-only: %v", err)
		} else {
			defer remoteDB.Close()
			if err := remoteDB.RunMigrations(cfg.MigrationsPath); err != nil {
				log.Printf("Remote migrations failed, running local-only: %v", err)
				remoteDB.Close()
				remoteDB = nil
			} else {
				log.Printf("Remote database connected (type: %s)", cfg.DatabaseType)
			}
		}
	}

	tiered := store.New(localDB, remoteDB)
	defer tiered.Flush()

	snap, err := tiered.Load()
	if err != nil {
		log.Fatalf("Failed to load data: %v", err)
	}
	log.Printf("Loaded %d words, %d spelling histories from %s store",
		len(snap.Words), len(snap.Spelling), snap.Source)

	// Collaborators and services
	translator := translate.New()
	ttsService := audio.NewTTSService(filepath.Join(cfg.StaticFilesPath, "audio"))

	// Drop cached pronunciation clips for words no longer stored
	keep := make(map[string]bool)
	for _, w := range snap.Words {
		keep[strings.ToLower(strings.TrimSpace(w.Word))] = true
	}
	if err := ttsService.Prune(keep); err != nil {
		log.Printf("Warning: failed to prune audio cache: %v", err)
	}

	vocabService := service.NewVocabService(tiered, translator, snap)
	bankService := service.NewBankService(tiered, snap.Bank)
	examService := service.NewExamService(tiered, snap.Exams)
	feedbackService := service.NewFeedbackService(tiered, snap.Feedback)
	authService := service.NewAuthService(cfg.ParentPINHash, cfg.SessionSecret, cfg.SessionDuration)

	reportService, err := service.NewReportService(cfg.AWSRegion, cfg.ReportFromEmail,
		cfg.ReportFromName, cfg.ReportRecipients, vocabService)
	if err != nil {
		log.Fatalf("Failed to initialize report service: %v", err)
	}

	// Handlers
	middleware := handlers.NewMiddleware(authService)
	authHandler := handlers.NewAuthHandler(authService, cfg.SessionDuration)
	wordHandler := handlers.NewWordHandler(vocabService, ttsService)
	historyHandler := handlers.NewHistoryHandler(vocabService)
	practiceHandler := handlers.NewPracticeHandler(vocabService)
	notebookHandler := handlers.NewNotebookHandler(bankService, examService, feedbackService)

	mux := http.NewServeMux()

	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.Dir(cfg.StaticFilesPath))))

	mux.HandleFunc("POST /api/login", authHandler.Login)
	mux.HandleFunc("POST /api/logout", authHandler.Logout)

	mux.HandleFunc("GET /api/words", wordHandler.List)
	mux.HandleFunc("POST /api/words", wordHandler.Add)
	mux.HandleFunc("DELETE /api/words/{id}", middleware.RequireParent(wordHandler.Delete))
	mux.HandleFunc("GET /api/words/{id}/audio", wordHandler.Audio)

	mux.HandleFunc("GET /api/history/spelling", historyHandler.Spelling)
	mux.HandleFunc("GET /api/history/recognition", historyHandler.Recognition)

	mux.HandleFunc("GET /api/practice/session", practiceHandler.Session)
	mux.HandleFunc("POST /api/practice/regenerate", practiceHandler.Regenerate)
	mux.HandleFunc("POST /api/practice/submit", practiceHandler.Submit)

	mux.HandleFunc("GET /api/bank", notebookHandler.BankList)
	mux.HandleFunc("POST /api/bank", middleware.RequireParent(notebookHandler.BankAdd))
	mux.HandleFunc("DELETE /api/bank/{id}", middleware.RequireParent(notebookHandler.BankDelete))

	mux.HandleFunc("GET /api/exams", notebookHandler.ExamList)
	mux.HandleFunc("POST /api/exams", middleware.RequireParent(notebookHandler.ExamAdd))
	mux.HandleFunc("DELETE /api/exams/{id}", middleware.RequireParent(notebookHandler.ExamDelete))

	mux.HandleFunc("GET /api/feedback", notebookHandler.FeedbackGet)
	mux.HandleFunc("POST /api/feedback", middleware.RequireParent(notebookHandler.FeedbackSet))

	handler := handlers.Logging(mux)

	addr := ":" + cfg.ServerPort
	server := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Weekly progress report, Sunday evenings
	go runWeeklyReports(reportService)

	go func() {
		log.Printf("Server starting on http://localhost%s", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Server shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Shutdown error: %v", err)
	}
}

// runWeeklyReports sends the progress digest every Sunday at 18:00
func runWeeklyReports(reports *service.ReportService) {
	if !reports.IsEnabled() {
		return
	}

	for {
		time.Sleep(time.Until(nextSundayEvening(time.Now())))

		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		if err := reports.SendWeeklyReport(ctx); err != nil {
			log.Printf("Weekly report failed: %v", err)
		}
		cancel()
	}
}

func nextSundayEvening(now time.Time) time.Time {
	next := time.Date(now.Year(), now.Month(), now.Day(), 18, 0, 0, 0, now.Location())
	for next.Weekday() != time.Sunday || !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}
	return next
}
