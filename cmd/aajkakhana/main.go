package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/csrf"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/terraincognita07/aajkakhana/internal/api"
	"github.com/terraincognita07/aajkakhana/internal/cli"
	"github.com/terraincognita07/aajkakhana/internal/config"
	"github.com/terraincognita07/aajkakhana/internal/db"
	"github.com/terraincognita07/aajkakhana/internal/i18n"
	"github.com/terraincognita07/aajkakhana/internal/metrics"
	"github.com/terraincognita07/aajkakhana/internal/services"
)

const usage = `usage: aajkakhana [command]

commands:
  serve                  run the web display (default)
  today [en|hi]          print the current meal slot
  validate-menu <path>   check a JSON or YAML menu dataset
  reset-preferences      clear the stored language and theme`

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config init failed: %v", err)
	}
	time.Local = cfg.Location

	command, args := "serve", []string(nil)
	if len(os.Args) > 1 {
		command, args = os.Args[1], os.Args[2:]
	}

	if err := runCommand(cfg, command, args); err != nil {
		log.Fatalf("%s failed: %v", command, err)
	}
}

func runCommand(cfg *config.Config, command string, args []string) error {
	switch command {
	case "serve":
		return serve(cfg)
	case "today":
		language := ""
		if len(args) > 0 {
			language = args[0]
		}
		return runToday(cfg, language)
	case "validate-menu":
		if len(args) != 1 {
			return fmt.Errorf("validate-menu expects exactly one path\n%s", usage)
		}
		return cli.RunValidateMenuCommand(os.Stdout, args[0])
	case "reset-preferences":
		return cli.RunResetPreferencesCommand(os.Stdout, cfg.DBPath)
	case "help", "-h", "--help":
		fmt.Println(usage)
		return nil
	default:
		return fmt.Errorf("unknown command %q\n%s", command, usage)
	}
}

func runToday(cfg *config.Config, language string) error {
	i18nManager, err := i18n.NewBundledManager(cfg.DefaultLanguage)
	if err != nil {
		return fmt.Errorf("i18n init failed: %w", err)
	}

	cycle, err := services.LoadMenuCycle(cfg.MenuPath)
	if err != nil {
		return err
	}

	if language == "" {
		language = storedLocale(cfg, i18nManager.DefaultLanguage())
	}

	schedule := services.NewSchedule(nil, services.MenuEpoch(time.Local))
	return cli.RunTodayCommand(os.Stdout, services.BuildSnapshot(schedule, cycle), i18nManager, language)
}

func storedLocale(cfg *config.Config, fallback string) string {
	database, err := db.OpenSQLite(cfg.DBPath)
	if err != nil {
		log.Printf("today: preferences unavailable: %v", err)
		return fallback
	}
	defer db.Close(database)

	locale, err := services.NewSettingsService(db.NewPreferenceRepository(database), fallback, nil).Locale()
	if err != nil {
		log.Printf("today: read locale: %v", err)
		return fallback
	}
	return locale
}

func serve(cfg *config.Config) error {
	database, err := db.OpenSQLite(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("database init failed: %w", err)
	}
	defer db.Close(database)

	i18nManager, err := i18n.NewBundledManager(cfg.DefaultLanguage)
	if err != nil {
		return fmt.Errorf("i18n init failed: %w", err)
	}

	cycle, err := services.LoadMenuCycle(cfg.MenuPath)
	if err != nil {
		return err
	}

	repositories := db.NewRepositories(database)
	collector := metrics.NewCollector()
	schedule := services.NewSchedule(nil, services.MenuEpoch(time.Local))
	refresher := services.NewRefreshService(schedule, cycle, cfg.RefreshInterval, collector)
	settings := services.NewSettingsService(repositories.Preferences, i18nManager.DefaultLanguage(), collector)

	handler, err := api.NewHandler(api.Dependencies{
		Refresher:    refresher,
		Cycle:        cycle,
		Settings:     settings,
		I18n:         i18nManager,
		TemplatesDir: cfg.TemplatesDir,
		Metrics:      collector.Handler(),
	})
	if err != nil {
		return fmt.Errorf("handler init failed: %w", err)
	}

	app := newApp(handler, cfg.CookieSecure)

	lifecycleCtx, cancelLifecycle := context.WithCancel(context.Background())
	defer cancelLifecycle()
	refresher.Start(lifecycleCtx)

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	go func() {
		<-sigCtx.Done()
		cancelLifecycle()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.Printf("server shutdown failed: %v", err)
		}
	}()

	log.Printf("Aaj Ka Khana listening on http://0.0.0.0:%s (db: %s, tz: %s, refresh: %s)",
		cfg.Port, cfg.DBPath, cfg.Location.String(), refresher.Interval())
	return app.Listen(":" + cfg.Port)
}

func newApp(handler *api.Handler, cookieSecure bool) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "Aaj Ka Khana",
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(compress.New())
	app.Use(handler.PreferencesMiddleware)
	app.Use(csrf.New(csrfMiddlewareConfig(cookieSecure)))

	api.RegisterRoutes(app, handler)
	app.Use(handler.NotFound)
	return app
}

func csrfMiddlewareConfig(cookieSecure bool) csrf.Config {
	return csrf.Config{
		KeyLookup:      "form:csrf_token",
		CookieName:     "aajkakhana_csrf",
		CookieSameSite: "Lax",
		CookieHTTPOnly: true,
		CookieSecure:   cookieSecure,
		ContextKey:     "csrf",
	}
}
