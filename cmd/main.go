package main

import (
	"context"
	"database/sql"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/viper"

	"vent_sizing/internal/catalog"
	"vent_sizing/internal/handlers"
	"vent_sizing/internal/logger"
	"vent_sizing/internal/repository"
	"vent_sizing/internal/repository/db"
	"vent_sizing/internal/server"
	"vent_sizing/internal/service"
)

func main() {
	// init logger
	log := logger.Get(logger.InfoLevel)

	// load config.yml
	if err := loadConfig(); err != nil {
		log.Fatalw("error reading config", "err", err)
	}

	// open DB
	database, err := openDB(log)
	if err != nil {
		log.Fatalw("failed to init sqlite", "err", err)
	}
	defer func() {
		if cerr := database.Close(); cerr != nil {
			log.Fatalw("failed to close sqlite", "err", cerr)
		}
	}()

	// wire dependencies
	repos := repository.NewRepository(database)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	holder, err := bootstrapCatalog(ctx, repos, log)
	if err != nil {
		log.Fatalw("failed to load catalog", "err", err)
	}

	services := service.NewService(repos, holder, service.Config{
		SigningKey: viper.GetString("auth.signing_key"),
	})
	apiHandler := handlers.NewHandler(services, log)

	// optional workbook override of the seeded catalog
	if wb := viper.GetString("catalog.workbook"); wb != "" {
		if n, ierr := services.CatalogAccess.ImportXLSX(ctx, wb); ierr != nil {
			log.Errorw("catalog workbook import failed; keeping current catalog", "path", wb, "err", ierr)
		} else {
			log.Infow("catalog workbook imported", "path", wb, "curves", n)
		}
	}

	// start HTTP server
	srv := &server.Server{}
	runHTTPServer(srv, viper.GetString("port"), apiHandler, log)

	// graceful shutdown
	waitForShutdown(cancel, srv, log)
}

func loadConfig() error {
	viper.AddConfigPath("configs") // configs/config.yml
	viper.SetConfigName("config")
	return viper.ReadInConfig()
}

// openDB initializes the SQLite database using configuration.
func openDB(log *logger.Logger) (*sql.DB, error) {
	dbPath := viper.GetString("db.path")
	if dbPath == "" {
		log.Infow("db.path not set in config; using default file", "default", "app.db")
		dbPath = "app.db"
	}
	return db.InitDB(dbPath)
}

// bootstrapCatalog loads persisted fan curves, seeding the built-in catalog
// on first run so selection works out of the box.
func bootstrapCatalog(ctx context.Context, repos *repository.Repository, log *logger.Logger) (*service.CatalogHolder, error) {
	curves, err := repos.Catalog.LoadCurves(ctx)
	if err != nil {
		return nil, err
	}
	if len(curves) == 0 {
		curves = catalog.SeedCurves()
		if err := repos.Catalog.ReplaceCurves(ctx, curves); err != nil {
			return nil, err
		}
		log.Infow("seeded built-in fan curve catalog", "curves", len(curves))
	}
	cat, err := catalog.New(curves, catalog.SeedSupplyFans())
	if err != nil {
		return nil, err
	}
	return service.NewCatalogHolder(cat), nil
}

// runHTTPServer runs the HTTP server in a separate goroutine.
func runHTTPServer(srv *server.Server, port string, handler *handlers.Handler, log *logger.Logger) {
	go func() {
		if port == "" {
			port = "8080"
		}
		if err := srv.Run(port, handler.InitRoutes()); err != nil {
			log.Fatalw("error starting server", "err", err)
		}
	}()
}

// waitForShutdown listens for termination signals and performs graceful shutdown.
func waitForShutdown(cancel context.CancelFunc, srv *server.Server, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server...")

	// stop background goroutines
	cancel()

	// allow in-flight requests to complete
	ctx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalw("server forced to shutdown", "err", err)
	}
}
