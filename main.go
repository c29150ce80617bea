// @title Swift E-Learning API
// @version 1.0
// @description Backend layanan e-learning Swift: akun pelajar/mentor/admin, katalog materi dan video, serta tugas dengan penilaian otomatis.

// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization

package main

import (
	"flag"
	"log"

	"swift_elearning_backend/internal/app"
	"swift_elearning_backend/internal/config"
	"swift_elearning_backend/pkg/configwatcher"
	"swift_elearning_backend/pkg/logger"
)

func main() {
	migrateOnly := flag.Bool("migrate-only", false, "jalankan migrasi database lalu keluar")
	migrate := flag.Bool("migrate", false, "paksa migrasi database saat start")
	flag.Parse()

	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	cfg.ForceMigrate = *migrate || *migrateOnly
	cfg.MigrateOnly = *migrateOnly

	application := app.NewApp(cfg)
	defer logger.Log.Sync()

	if *migrateOnly {
		log.Println("Migrasi database selesai, keluar")
		return
	}

	go configwatcher.WatchConfig("configs/config.yaml", func(newCfg *config.Config) {
		logger.Log.Info("config file reloaded")
	})

	application.Run()
}
