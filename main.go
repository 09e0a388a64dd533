package main

import (
	"os"
	"os/signal"
	"syscall"

	"vkart.link/configs/configsdatabase"
	"vkart.link/configs/configslog"
	"vkart.link/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/template/html/v2"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// .env opsiyoneldir; production'da değişkenler ortamdan gelir.
	_ = godotenv.Load()

	configslog.InitLogger()
	defer configslog.SyncLogger()

	configsdatabase.InitDB()
	defer configsdatabase.CloseDB()

	engine := html.New("./views", ".html")

	app := fiber.New(fiber.Config{
		AppName: "vkart.link",
		Views:   engine,
	})

	routes.SetupRoutes(app)

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "3000"
	}

	// Graceful shutdown: SIGINT/SIGTERM geldiğinde açık istekler tamamlanır.
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		configslog.SLog.Info("Kapatma sinyali alındı, sunucu durduruluyor...")
		_ = app.Shutdown()
	}()

	configslog.SLog.Infof("Sunucu :%s portunda başlıyor...", port)
	if err := app.Listen(":" + port); err != nil {
		configslog.Log.Fatal("Sunucu başlatılamadı", zap.Error(err))
	}
}
