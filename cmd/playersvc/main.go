package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/httprate"

	config "github.com/hoopstats/hoop-services/configs"
	"github.com/hoopstats/hoop-services/internal/playersvc/db"
	handlers "github.com/hoopstats/hoop-services/internal/playersvc/handlers"
	"github.com/hoopstats/hoop-services/internal/playersvc/service"
	"github.com/hoopstats/hoop-services/internal/playersvc/store"
	log "github.com/sirupsen/logrus"
)

const SERVICE_NAME = "player"

func init() {
	config.Logging(SERVICE_NAME + "_service")
	config.LoadEnv(SERVICE_NAME)
	config.CreateUniqueInstance(SERVICE_NAME)
}

func main() {

	// sqlite store file
	database, err := db.Connect(config.StorePath())
	if err != nil {
		log.Fatalf("Failed to open store: %v", err)
	}
	defer database.Close()
	log.Printf("sqlite store opened at %s", config.StorePath())

	playerStore := store.NewPlayerStore(database)
	playerService := service.NewPlayerService(playerStore)
	networkService := service.NewNetworkService()

	// Setup router
	r := chi.NewRouter()
	c := config.CORS()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(config.CustomLoggerMiddleware())
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(c.Handler)

	// to protect the service api from any over requests
	r.Use(httprate.LimitByIP(config.RateLimit(), 1*time.Minute))

	// Init handlers and routes
	h := handlers.NewHandler(playerService, networkService)
	h.SetRoutes(r)

	// Create server with timeout settings
	server := &http.Server{
		Addr:         ":" + config.ServicePort(),
		Handler:      r,
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe(): %v", err)
		}
	}()
	log.Infof("%s service running at port %s", SERVICE_NAME, server.Addr)

	// Wait for interrupt signal to gracefully shutdown the server
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("%s service shutdown Failed:%+v", SERVICE_NAME, err)
	}
	log.Infof("%s service gracefully stopped", SERVICE_NAME)
}
