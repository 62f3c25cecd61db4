package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"liveline/internal/adapters/httpapi"
	"liveline/internal/application"
	"liveline/internal/config"
	"liveline/internal/infrastructure/database"
	"liveline/internal/infrastructure/i18n"
	"liveline/internal/infrastructure/notify"
	"liveline/internal/logger"
	"liveline/internal/wizard"
	"liveline/pkg/tz"
)

func main() {
	log, err := logger.Init()
	if err != nil {
		panic(err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Configuration invalide: %v", err)
	}

	ctx := context.Background()
	if err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
		log.Fatalf("❌ Erreur lors des migrations: %v", err)
	}
	pool, err := database.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("❌ Erreur lors de l'initialisation de la base de données: %v", err)
	}
	defer pool.Close()

	eventRepo := database.NewEventRepository(pool)
	rsvpRepo := database.NewRSVPRepository(pool)
	influencerRepo := database.NewInfluencerRepository(pool)

	translator := i18n.NewTranslator(cfg.DefaultLocale)
	loc := tz.Load(cfg.Timezone)

	eventService := application.NewEventService(eventRepo, cfg.BaseURL, loc)
	rsvpService := application.NewRSVPService(rsvpRepo, eventRepo, translator)
	analyticsService := application.NewAnalyticsService(eventRepo, rsvpRepo)
	sessionService := application.NewSessionService(influencerRepo, cfg.JWTSecret)
	notifier := notify.NewLogNotifier(translator, cfg.DefaultLocale, log)
	reminderService := application.NewReminderService(eventRepo, notifier, log)

	registry := wizard.NewRegistry(cfg.DraftTTL)
	handler := httpapi.NewHandler(eventService, rsvpService, analyticsService, registry, translator, loc)
	server := httpapi.NewServer(cfg.HTTPAddr, handler, sessionService, log)

	runCtx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	go reminderService.Run(runCtx, cfg.ReminderTick)
	go sweepDrafts(runCtx, registry)
	go func() {
		<-runCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Errorf("❌ Arrêt du serveur: %v", err)
		}
	}()

	if err := server.Start(); err != nil {
		log.Errorf("❌ Erreur lors du démarrage du serveur: %v", err)
		os.Exit(1)
	}
}

// sweepDrafts purge les sessions de wizard expirées.
func sweepDrafts(ctx context.Context, registry *wizard.Registry) {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			registry.Sweep(time.Now())
		}
	}
}
