package main

import (
	"os"
	"os/signal"
	"syscall"

	"rehber.link/configs"
	"rehber.link/configs/configsdatabase"
	"rehber.link/configs/configslog"
	"rehber.link/repositories"
	"rehber.link/routes"
	"rehber.link/services"
	"rehber.link/views"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func main() {
	configs.LoadEnv()
	configslog.InitLogger()
	defer configslog.SyncLogger()

	appConfig := configs.LoadAppConfig()
	contactConfig := configs.LoadContactConfig()

	configsdatabase.InitDB()
	defer configsdatabase.CloseDB()

	contactService := services.NewContactService(
		repositories.NewContactRepository(configsdatabase.GetDB()),
		contactConfig,
	)

	engine := views.NewEngine()
	engine.Reload(!appConfig.IsProduction())

	app := fiber.New(fiber.Config{
		AppName: appConfig.Name,
		Views:   engine,
	})

	routes.SetupRoutes(app, routes.Dependencies{
		ContactService: contactService,
		ContactConfig:  contactConfig,
		SessionStore:   configs.SetupSession(),
	})

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		configslog.SLog.Info("Sunucu kapatılıyor...")
		if err := app.Shutdown(); err != nil {
			configslog.Log.Error("Sunucu düzgün kapatılamadı", zap.Error(err))
		}
	}()

	configslog.Log.Info("Sunucu başlatılıyor",
		zap.String("addr", appConfig.Addr()),
		zap.String("env", appConfig.Env),
		zap.String("markup", string(contactConfig.Markup)),
		zap.Int("paginate_by", contactConfig.PaginateBy),
		zap.Bool("dashboard", contactConfig.DashboardEnabled),
	)
	if err := app.Listen(appConfig.Addr()); err != nil {
		configslog.Log.Error("Sunucu başlatılamadı", zap.Error(err))
	}
}
