package main

import (
	"os"
	"os/signal"
	"syscall"

	"kart.link/configs"
	"kart.link/configs/configsdatabase"
	"kart.link/configs/configslog"
	"kart.link/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/template/html/v2"
	"go.uber.org/zap"
)

func main() {
	configslog.InitLogger()
	defer configslog.Sync()

	configs.LoadEnv()

	if err := configsdatabase.ConnectDB(); err != nil {
		configslog.Log.Fatal("Veritabanı bağlantısı kurulamadı", zap.Error(err))
	}
	defer configsdatabase.CloseDB()

	engine := html.New("./views", ".html")
	app := fiber.New(fiber.Config{
		Views:             engine,
		PassLocalsToViews: true,
		AppName:           "kart.link",
	})

	app.Static("/assets", "./assets")
	app.Static("/uploads", "./uploads")
	routes.SetupRoutes(app)

	// Graceful shutdown: SIGINT/SIGTERM gelince dinleyici kapatılır.
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		configslog.SLog.Info("Kapatma sinyali alındı, sunucu durduruluyor...")
		if err := app.Shutdown(); err != nil {
			configslog.Log.Error("Sunucu kapatılırken hata", zap.Error(err))
		}
	}()

	addr := configs.Get().ListenAddr
	configslog.SLog.Infof("Sunucu dinlemede: %s", addr)
	if err := app.Listen(addr); err != nil {
		configslog.Log.Fatal("Sunucu başlatılamadı", zap.Error(err))
	}
}
