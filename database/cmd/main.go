package main

import (
	"flag"

	"kart.link/configs"
	"kart.link/configs/configsdatabase"
	"kart.link/configs/configslog"
	"kart.link/database"
)

func main() {
	configslog.InitLogger()
	defer configslog.Sync()

	migrateFlag := flag.Bool("migrate", false, "Veritabanı migrasyonlarını çalıştır")
	seedFlag := flag.Bool("seed", false, "Başlangıç verilerini (seed) yükle")
	flag.Parse()

	configs.LoadEnv()
	if err := configsdatabase.ConnectDB(); err != nil {
		configslog.SLog.Fatalf("Veritabanına bağlanılamadı: %v", err)
	}
	defer configsdatabase.CloseDB()

	db := configsdatabase.GetDB()

	configslog.SLog.Info("Veritabanı başlatma işlemi çalıştırılıyor...")
	database.Initialize(db, *migrateFlag, *seedFlag)
	configslog.SLog.Info("Veritabanı başlatma işlemi tamamlandı.")
}
