package database

import (
	"kart.link/configs/configslog"
	"kart.link/database/migrations"
	"kart.link/database/seeders"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Initialize migrasyon ve seed adımlarını tek transaction içinde çalıştırır.
func Initialize(db *gorm.DB, migrate bool, seed bool) {
	if !migrate && !seed {
		configslog.SLog.Info("Migrate veya seed bayrağı belirtilmedi, işlem yapılmayacak.")
		return
	}

	tx := db.Begin()
	if tx.Error != nil {
		configslog.Log.Fatal("Veritabanı transaction başlatılamadı", zap.Error(tx.Error))
		return
	}

	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			configslog.Log.Fatal("Veritabanı başlatma işlemi başarısız oldu (panic)", zap.Any("panic_info", r))
		} else if err := tx.Error; err != nil && err != gorm.ErrInvalidTransaction {
			configslog.SLog.Warn("Başlatma sırasında hata oluştuğu için işlem geri alınıyor.", zap.Error(err))
			rbErr := tx.Rollback().Error
			if rbErr != nil && rbErr != gorm.ErrInvalidTransaction {
				configslog.Log.Error("Rollback sırasında ek hata oluştu", zap.Error(rbErr))
			}
		}
	}()

	configslog.SLog.Info("Veritabanı başlatma işlemi başlıyor...")

	if migrate {
		configslog.SLog.Info("Migrasyonlar çalıştırılıyor...")
		if err := RunMigrationsInOrder(tx); err != nil {
			configslog.Log.Error("Migrasyon başarısız oldu", zap.Error(err))
			return
		}
		configslog.SLog.Info("Migrasyonlar tamamlandı.")
	} else {
		configslog.SLog.Info("Migrate bayrağı belirtilmedi, migrasyon adımı atlanıyor.")
	}

	if seed {
		configslog.SLog.Info("Seeder'lar çalıştırılıyor...")
		if err := CheckAndRunSeeders(tx); err != nil {
			configslog.Log.Error("Seeding başarısız oldu", zap.Error(err))
			return
		}
		configslog.SLog.Info("Seeder'lar tamamlandı.")
	} else {
		configslog.SLog.Info("Seed bayrağı belirtilmedi, seeder adımı atlanıyor.")
	}

	configslog.SLog.Info("İşlem commit ediliyor...")
	if err := tx.Commit().Error; err != nil {
		tx.Error = err
		configslog.Log.Error("Commit başarısız oldu", zap.Error(err))
		return
	}

	configslog.SLog.Info("Veritabanı başlatma işlemi başarıyla tamamlandı")
}

// RunMigrationsInOrder tabloları bağımlılık sırasıyla migrate eder:
// users -> categories -> styles -> templates -> cards.
func RunMigrationsInOrder(db *gorm.DB) error {
	configslog.SLog.Info("Migrasyonlar sırayla çalıştırılıyor...")

	configslog.SLog.Info(" -> User migrasyonları çalıştırılıyor...")
	if err := migrations.MigrateUsersTable(db); err != nil {
		configslog.Log.Error("Users tablosu migrasyonu başarısız oldu", zap.Error(err))
		return err
	}
	configslog.SLog.Info(" -> User migrasyonları tamamlandı.")

	configslog.SLog.Info(" -> Category migrasyonları çalıştırılıyor...")
	if err := migrations.MigrateCategoriesTable(db); err != nil {
		configslog.Log.Error("Categories tablosu migrasyonu başarısız oldu", zap.Error(err))
		return err
	}
	configslog.SLog.Info(" -> Category migrasyonları tamamlandı.")

	configslog.SLog.Info(" -> VisualStyle migrasyonları çalıştırılıyor...")
	if err := migrations.MigrateStylesTable(db); err != nil {
		configslog.Log.Error("Visual_styles tablosu migrasyonu başarısız oldu", zap.Error(err))
		return err
	}
	configslog.SLog.Info(" -> VisualStyle migrasyonları tamamlandı.")

	configslog.SLog.Info(" -> Template migrasyonları çalıştırılıyor...")
	if err := migrations.MigrateTemplatesTable(db); err != nil {
		configslog.Log.Error("Templates tablosu migrasyonu başarısız oldu", zap.Error(err))
		return err
	}
	configslog.SLog.Info(" -> Template migrasyonları tamamlandı.")

	configslog.SLog.Info(" -> Card migrasyonları çalıştırılıyor...")
	if err := migrations.MigrateCardsTables(db); err != nil {
		configslog.Log.Error("Cards tabloları migrasyonu başarısız oldu", zap.Error(err))
		return err
	}
	configslog.SLog.Info(" -> Card migrasyonları tamamlandı.")

	configslog.SLog.Info("Tüm migrasyonlar başarıyla çalıştırıldı.")
	return nil
}

// CheckAndRunSeeders sistem kullanıcısını ve varsayılan şablon/stil setini
// idempotent olarak seed eder.
func CheckAndRunSeeders(db *gorm.DB) error {
	configslog.SLog.Info("Sistem kullanıcısı kontrol ediliyor/oluşturuluyor...")
	if err := seeders.SeedSystemUser(db); err != nil {
		configslog.Log.Error("Sistem kullanıcısı seed işlemi başarısız", zap.Error(err))
		return err
	}

	configslog.SLog.Info(" -> Varsayılan stil seeder çalıştırılıyor...")
	if err := seeders.SeedDefaultStyles(db); err != nil {
		configslog.Log.Error("Visual_styles tablosu seed edilemedi", zap.Error(err))
		return err
	}
	configslog.SLog.Info(" -> Varsayılan stil seeder tamamlandı.")

	configslog.SLog.Info(" -> Varsayılan şablon seeder çalıştırılıyor...")
	if err := seeders.SeedDefaultTemplates(db); err != nil {
		configslog.Log.Error("Templates tablosu seed edilemedi", zap.Error(err))
		return err
	}
	configslog.SLog.Info(" -> Varsayılan şablon seeder tamamlandı.")

	configslog.SLog.Info("Tüm seeder'lar başarıyla kontrol edildi/çalıştırıldı.")
	return nil
}
