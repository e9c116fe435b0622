package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/velichko-dev/inkline/auth"
	"github.com/velichko-dev/inkline/config"
	"github.com/velichko-dev/inkline/controllers"
	"github.com/velichko-dev/inkline/db"
	"github.com/velichko-dev/inkline/db/upperdb"
	"github.com/velichko-dev/inkline/middleware"
	"github.com/velichko-dev/inkline/routes"
	"github.com/velichko-dev/inkline/services"
)

func main() {
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("invalid configuration: ", err)
	}

	database, err := connectDatabase(cfg)
	if err != nil {
		log.Fatal("received err when attempting to connect to DB: ", err)
	}
	defer database.Close()

	if cfg.InitDB {
		if err := upperdb.Bootstrap(database, cfg.DBDriver); err != nil {
			log.Fatal("an error occurred while applying the schema: ", err)
		}
		log.Info("database schema applied")
	}

	media, err := services.NewMediaStore(cfg.MediaRoot)
	if err != nil {
		log.Fatal("an error occurred while preparing the media root: ", err)
	}

	groups, err := controllers.NewGroupController(context.Background(), database)
	if err != nil {
		log.Fatal("an error occurred while initializing the group controller: ", err)
	}
	defer groups.Stop()

	router := routes.NewRouter(
		cfg,
		database,
		auth.NewSessions(cfg.SessionKey),
		services.NewPageCache(cfg.CacheTTL),
		media,
		groups,
		middleware.InitMetrics(),
	)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Info("server listening on :", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("error when attempting to run web server: ", err)
		}
	}()

	<-quit
	log.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("server forced to shutdown: ", err)
	}
	log.Info("server exiting")
}

func connectDatabase(cfg *config.Config) (db.Database, error) {
	if cfg.DBDriver == "sqlite" {
		return upperdb.NewSQLite(cfg.DBPath)
	}
	return upperdb.NewMySQL(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBName)
}
