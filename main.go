// main.go - Entry point for the food shop server

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-food-shop/config"
	"go-food-shop/database"
	"go-food-shop/logger"
	"go-food-shop/mqtt"
	"go-food-shop/routes"
	"go-food-shop/session"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

func main() {
	// STEP 1: Load configuration once; the session key never changes afterwards
	cfg := config.Load()
	logger.Setup(cfg.LogLevel, cfg.LogPretty)
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	// STEP 2: Open the store, create tables and seed the admin account
	if err := database.Connect(cfg.DBPath, cfg.DBMaxOpenConns); err != nil {
		log.Fatal().Err(err).Msg("database connection error")
	}
	defer database.Close()

	created, err := database.SeedAdmin(database.DB, cfg.AdminUsername, cfg.AdminPassword)
	if err != nil {
		log.Fatal().Err(err).Msg("seed admin user")
	}
	if created {
		log.Info().Str("username", cfg.AdminUsername).Msg("admin user created")
	} else {
		log.Info().Str("username", cfg.AdminUsername).Msg("admin user already exists")
	}
	log.Info().Str("path", cfg.DBPath).Msg("database initialized")

	// STEP 3: Optional MQTT publisher for placed orders
	opts := routes.Options{
		Sessions:     session.NewManager(cfg.SessionSecret, cfg.SessionTTL).WithSecureCookie(cfg.CookieSecure),
		StrictPrices: cfg.StrictPrices,
		StaticDir:    cfg.StaticDir,
	}
	if cfg.MQTTBroker != "" {
		client, err := mqtt.Connect(cfg.MQTTBroker, cfg.MQTTClientID, cfg.MQTTOrderTopic)
		if err != nil {
			log.Fatal().Err(err).Msg("MQTT connection error")
		}
		defer client.Close()
		opts.Notifier = client
		log.Info().Str("broker", cfg.MQTTBroker).Str("topic", cfg.MQTTOrderTopic).Msg("order notifications enabled")
	}

	// STEP 4: Router
	gin.SetMode(cfg.GinMode)
	r := gin.New()
	r.Use(logger.Middleware(), gin.Recovery())
	routes.Setup(r, opts)

	// STEP 5: Serve until interrupted
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		log.Info().Str("addr", srv.Addr).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}
}
