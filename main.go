package main

import (
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/danielhkuo/skills-matrix/catalog"
	"github.com/danielhkuo/skills-matrix/cliparse"
	"github.com/danielhkuo/skills-matrix/ledger"
	"github.com/danielhkuo/skills-matrix/middleware"
	"github.com/danielhkuo/skills-matrix/notify"
	"github.com/danielhkuo/skills-matrix/router"
	"github.com/danielhkuo/skills-matrix/session"
	"github.com/danielhkuo/skills-matrix/store"
)

func main() {
	// Local dev convenience; absence of a .env file is fine
	_ = godotenv.Load()

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// Load the skill catalog
	var cat *catalog.Catalog
	if cfg.CatalogPath != "" {
		cat, err = catalog.Load(cfg.CatalogPath)
		if err != nil {
			slog.Error("catalog load failed", "path", cfg.CatalogPath, "error", err)
			os.Exit(1)
		}
	} else {
		cat = catalog.Default()
	}
	if err := ledger.ValidateCatalog(cat); err != nil {
		slog.Error("catalog rejected", "skills", cat.Len(), "error", err)
		os.Exit(1)
	}
	slog.Info("Catalog ready", "skills", cat.Len())

	// Open the response store (creates the file and reconciles the
	// column schema against the catalog)
	st, err := store.Open(cfg.StorePath, cat, cfg.ExemptEmail)
	if err != nil {
		slog.Error("response store open failed", "path", cfg.StorePath, "error", err)
		os.Exit(1)
	}
	slog.Info("Response store ready", "path", cfg.StorePath, "responses", st.Count())

	// Outbound notification sink
	var notifier notify.Notifier = notify.Noop{}
	if cfg.SMTPAddr != "" {
		notifier = &notify.SMTP{
			Addr:     cfg.SMTPAddr,
			Username: cfg.SMTPUsername,
			Password: cfg.SMTPPassword,
			From:     cfg.NotifyFrom,
			To:       cfg.NotifyTo,
		}
		slog.Info("Notification sink enabled", "addr", cfg.SMTPAddr)
	}

	// Sessions and submission pipeline
	mgr := session.NewManager(cat)
	pipe := session.NewPipeline(st, notifier, cfg.ExemptEmail)

	// Create router
	mux := router.NewRouter(cat, mgr, pipe, st, cfg)

	// Create server
	server := http.Server{
		Handler: middleware.CORS(mux),
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		server.Close()
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}
