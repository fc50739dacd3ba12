package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/danielhkuo/results-dashboard/cache"
	"github.com/danielhkuo/results-dashboard/cliparse"
	"github.com/danielhkuo/results-dashboard/db"
	"github.com/danielhkuo/results-dashboard/report"
	"github.com/danielhkuo/results-dashboard/router"
	"github.com/danielhkuo/results-dashboard/store"
)

const usage = `usage: results-dashboard [serve|seed|report] [flags]

  serve   run the HTTP server (default)
  seed    create the schema, insert demo data if empty, and exit
  report  print the dashboard statistics and exit`

func main() {
	command, args := splitCommand(os.Args[1:])
	if !knownCommand(command) {
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}

	// Parse configuration
	cliparse.LoadEnv()
	cfg, err := cliparse.ParseFlags(args)
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	if cfg.Debug {
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	ctx := context.Background()

	// Connect to the database
	dbConn, err := db.Open(ctx, db.Dialect(cfg.DatabaseType), cfg.DatabaseURL)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer dbConn.Close()

	// Create schema and demo data
	seeded, err := db.Bootstrap(ctx, dbConn, db.Dialect(cfg.DatabaseType), nil)
	if err != nil {
		slog.Error("database bootstrap failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Database ready", "type", cfg.DatabaseType, "seeded", seeded)

	switch command {
	case "serve":
		err = serve(ctx, dbConn, cfg)
	case "seed":
		// Bootstrap above already did the work
	case "report":
		err = printReport(ctx, dbConn)
	}

	if err != nil {
		slog.Error("command failed", "command", command, "error", err)
		os.Exit(1)
	}
}

// splitCommand separates an optional leading subcommand from the flags
func splitCommand(args []string) (string, []string) {
	if len(args) == 0 || len(args[0]) == 0 || args[0][0] == '-' {
		return "serve", args
	}
	return args[0], args[1:]
}

// knownCommand reports whether command is one main can run. It is checked
// before the database is opened so a typo never touches it.
func knownCommand(command string) bool {
	switch command {
	case "serve", "seed", "report":
		return true
	}
	return false
}

func serve(ctx context.Context, dbConn *sql.DB, cfg cliparse.Config) error {
	// Optional dashboard cache
	rdb, err := cache.Connect(ctx, cfg.RedisAddr)
	if err != nil {
		slog.Error("redis unavailable, continuing without dashboard cache", "error", err)
	}
	if rdb != nil {
		defer rdb.Close()
	}
	dash := cache.NewDashboard(rdb, cfg.CacheTTL)

	// Create router
	mux := router.NewRouter(dbConn, cfg, dash)

	// Create server
	server := http.Server{
		Handler:           mux,
		Addr:              cfg.Addr(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal, then let in-flight requests finish
		<-ctrlc
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Error("graceful shutdown failed", "error", err)
			server.Close()
		}
	}()

	// Start server
	slog.Info("Listening", "addr", cfg.Addr(), "cache", dash.Enabled())
	err = server.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	slog.Info("Server closed")
	return nil
}

func printReport(ctx context.Context, dbConn *sql.DB) error {
	d, err := store.New(dbConn).Dashboard(ctx)
	if err != nil {
		return err
	}
	report.Write(os.Stdout, d)
	return nil
}
