package cli

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/spf13/cobra"

	"github.com/folio-cms/folio/internal/api/handlers"
	"github.com/folio-cms/folio/internal/cache"
	"github.com/folio-cms/folio/internal/config"
	"github.com/folio-cms/folio/internal/jobs"
	"github.com/folio-cms/folio/internal/repository"
	"github.com/folio-cms/folio/internal/server"
	"github.com/folio-cms/folio/internal/service"
	"github.com/folio-cms/folio/internal/telemetry"
)

// ServeCmd returns the serve command
func ServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the API server",
		Long:  "Start the folio API server on the specified port",
		RunE:  runServe,
	}

	cmd.Flags().StringP("port", "p", "8080", "Port to listen on")
	cmd.Flags().Bool("no-migrate", false, "Skip automatic database migrations on startup")

	return cmd
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if cfg.SentryDSN != "" {
		// Default to 10% sampling in production, 100% in development
		sampleRate := 0.1
		if cfg.Environment == "development" {
			sampleRate = 1.0
		}

		shutdownTelemetry, err := telemetry.Init(telemetry.Config{
			DSN:              cfg.SentryDSN,
			Environment:      cfg.Environment,
			TracesSampleRate: sampleRate,
			Debug:            cfg.Debug,
		})
		if err != nil {
			log.Printf("telemetry init failed (continuing without tracing): %v", err)
		} else {
			defer shutdownTelemetry()
		}
	}

	applyPortFlag(cmd, cfg)

	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer pool.Close()

	if err := pool.Ping(ctx); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}
	log.Println("connected to database")

	noMigrate, _ := cmd.Flags().GetBool("no-migrate")
	if !noMigrate {
		if err := runMigrations(cfg.DatabaseURL); err != nil {
			return fmt.Errorf("failed to run migrations: %w", err)
		}
	}

	var responseCache *cache.Cache
	if cfg.HasRedis() {
		responseCache, err = cache.Connect(ctx, cfg.RedisURL, cfg.CacheTTL())
		if err != nil {
			log.Printf("redis unavailable (continuing without cache): %v", err)
		} else {
			defer responseCache.Close()
			log.Println("connected to redis")
		}
	}

	projectRepo := repository.NewProjectRepository(pool)
	experienceRepo := repository.NewExperienceRepository(pool)
	skillRepo := repository.NewSkillRepository(pool)
	blogRepo := repository.NewBlogPostRepository(pool)
	certificationRepo := repository.NewCertificationRepository(pool)
	testimonialRepo := repository.NewTestimonialRepository(pool)
	faqRepo := repository.NewFAQRepository(pool)
	resourceRepo := repository.NewResourceRepository(pool)
	tagRepo := repository.NewTagRepository(pool)
	searchQueryRepo := repository.NewSearchQueryRepository(pool)
	contactRepo := repository.NewContactRepository(pool)
	newsletterRepo := repository.NewNewsletterRepository(pool)
	visitRepo := repository.NewVisitRepository(pool)

	suggestionSvc := service.NewSuggestionService(tagRepo, projectRepo, skillRepo, searchQueryRepo, responseCache)
	searchSvc := service.NewUniversalSearchService(service.Sources{
		Projects:       projectRepo,
		Experiences:    experienceRepo,
		Skills:         skillRepo,
		BlogPosts:      blogRepo,
		Certifications: certificationRepo,
		Testimonials:   testimonialRepo,
		FAQs:           faqRepo,
		Resources:      resourceRepo,
	}, searchQueryRepo, suggestionSvc)
	tagCloudSvc := service.NewTagCloudService(tagRepo, projectRepo, blogRepo, responseCache)

	recountWorker := jobs.NewWorker("tag-recount", jobs.NewTagRecountProcessor(tagCloudSvc), cfg.TagRecountInterval())
	go recountWorker.Start(ctx)
	log.Println("tag recount worker started")

	routerCfg := server.RouterConfig{
		SearchHandler:     handlers.NewSearchHandler(searchSvc, suggestionSvc, tagCloudSvc),
		ContentHandler:    handlers.NewContentHandler(projectRepo, blogRepo),
		ContactHandler:    handlers.NewContactHandler(contactRepo),
		NewsletterHandler: handlers.NewNewsletterHandler(newsletterRepo),
		FAQHandler:        handlers.NewFAQHandler(faqRepo),
		StatsHandler: handlers.NewStatsHandler(
			projectRepo, experienceRepo, skillRepo, searchQueryRepo,
			blogRepo, newsletterRepo, visitRepo,
		),
		VisitStore: visitRepo,
	}

	router := server.NewRouter(routerCfg)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Printf("starting server on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("shutting down...")

	recountWorker.Stop()

	shutdownCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Println("server exited")
	return nil
}

// applyPortFlag lets an explicitly set --port override the environment,
// even when the value happens to equal the flag default.
func applyPortFlag(cmd *cobra.Command, cfg *config.Config) {
	if cmd.Flags().Changed("port") {
		cfg.Port, _ = cmd.Flags().GetString("port")
	}
}

func runMigrations(databaseURL string) error {
	db, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return fmt.Errorf("failed to open database for migrations: %w", err)
	}
	defer db.Close()

	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("failed to create migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(
		"file://migrations",
		"postgres",
		driver,
	)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}

	err = m.Up()
	if err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	version, dirty, err := m.Version()
	if err != nil && err != migrate.ErrNilVersion {
		return fmt.Errorf("failed to get migration version: %w", err)
	}

	if err == migrate.ErrNilVersion {
		log.Println("migrations: database is up to date (no migrations applied)")
	} else if dirty {
		return fmt.Errorf("migration version %d is dirty - manual intervention required", version)
	} else if err == migrate.ErrNoChange {
		log.Printf("migrations: database is up to date (version %d)", version)
	} else {
		log.Printf("migrations: applied successfully (version %d)", version)
	}

	return nil
}
