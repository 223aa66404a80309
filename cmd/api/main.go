package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/cmlabs-hris/attendance-analytics-go/internal/config"
	appHTTP "github.com/cmlabs-hris/attendance-analytics-go/internal/handler/http"
	"github.com/cmlabs-hris/attendance-analytics-go/internal/pkg/database"
	"github.com/cmlabs-hris/attendance-analytics-go/internal/repository/postgresql"
	"github.com/cmlabs-hris/attendance-analytics-go/internal/service/analytics"
	"github.com/cmlabs-hris/attendance-analytics-go/internal/service/importer"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading config: ", err)
	}

	dsn := cfg.DatabaseURL()
	if err := database.RunMigrations(dsn); err != nil {
		log.Fatal("Error running migrations: ", err)
	}

	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		log.Fatal("Error connecting to database: ", err)
	}
	defer db.Close()

	sessionRepo := postgresql.NewSessionRepository(db)

	analyticsService := analytics.NewAnalyticsService(sessionRepo)
	importService := importer.NewImportService(sessionRepo)

	analyticsHandler := appHTTP.NewAnalyticsHandler(analyticsService)
	importHandler := appHTTP.NewImportHandler(importService)

	router := appHTTP.NewRouter(
		analyticsHandler,
		importHandler,
		cfg.App.Env,
		cfg.App.FrontendURL,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
