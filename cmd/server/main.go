package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"portfolio_api/internal/api"
	"portfolio_api/internal/app/service"
	"portfolio_api/internal/app/worker"
	"portfolio_api/internal/common/security"
	"portfolio_api/internal/domain/repository"
	"portfolio_api/internal/platform/config"
	"portfolio_api/internal/platform/database"
	"portfolio_api/internal/platform/queue"
)

func main() {
	// 1. Load Configuration
	config.Load()
	fmt.Println("Configuration loaded.")

	// 2. Initialize JWT
	security.InitJWT()
	fmt.Println("JWT initialized.")

	// 3. Initialize Database
	database.Connect()
	defer database.Close()

	// 4. Initialize Redis
	queue.ConnectRedis()
	defer queue.CloseRedis()

	// 5. Initialize Repositories
	userRepo := repository.NewPgUserRepository(database.DB)
	projectRepo := repository.NewPgProjectRepository(database.DB)
	skillRepo := repository.NewPgSkillRepository(database.DB)
	contactRepo := repository.NewPgContactRepository(database.DB)

	// 6. Initialize Services
	authService := service.NewAuthService(userRepo)
	projectService := service.NewProjectService(projectRepo)
	skillService := service.NewSkillService(skillRepo)
	contactService := service.NewContactService(contactRepo, queue.RDB, config.AppConfig.MailQueueName)

	// 7. Seed the admin account if configured
	if err := api.SeedAdmin(context.Background(), userRepo); err != nil {
		log.Fatalf("Failed to seed admin account: %v", err)
	}

	// 8. Start the mail worker
	mailWorker := worker.NewMailWorker(queue.RDB, contactRepo)
	workerCtx, workerCancel := context.WithCancel(context.Background())
	defer workerCancel()
	go mailWorker.Start(workerCtx)
	fmt.Println("Mail worker started.")

	// 9. Initialize Router & HTTP Server
	router := api.NewRouter(userRepo, authService, projectService, skillService, contactService)

	server := &http.Server{
		Addr:         ":" + config.AppConfig.APIPort,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// 10. Graceful Shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on port %s", config.AppConfig.APIPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Could not listen on %s: %v\n", config.AppConfig.APIPort, err)
		}
	}()
	log.Println("Server started successfully.")

	<-stop

	log.Println("Shutting down server...")
	workerCancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server shutdown failed: %v", err)
	}

	log.Println("Server and worker stopped gracefully.")
}
