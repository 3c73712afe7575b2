package seeders

import (
	"context"
	"errors"

	"kart.link/configs/configslog"
	"kart.link/models"
	"kart.link/pkg/cardconfig"

	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// SeedDefaultStyles başlangıç görsel stillerini idempotent olarak ekler.
func SeedDefaultStyles(db *gorm.DB) error {
	ctx := models.ContextWithUserID(context.Background(), 1)

	stylesToSeed := []models.VisualStyle{
		{
			Name:     "Klasik Mavi",
			IsActive: true,
			Preset: datatypes.NewJSONType(cardconfig.Params{
				ThemeType:    cardconfig.Str("color"),
				ThemeColor:   cardconfig.Str("#3b82f6"),
				HeaderType:   cardconfig.Str("classic"),
				HeaderHeight: cardconfig.Int(180),
			}),
		},
		{
			Name:     "Cam Kart",
			IsActive: true,
			Preset: datatypes.NewJSONType(cardconfig.Params{
				ThemeType:    cardconfig.Str("gradient"),
				ThemeGradient: cardconfig.Str("linear-gradient(135deg, #667eea 0%, #764ba2 100%)"),
				HeaderType:   cardconfig.Str("glass-card"),
				HeaderGlassy: cardconfig.Bool(true),
				BodyGlassy:   cardconfig.Bool(true),
				BodyOpacity:  cardconfig.Int(60),
			}),
		},
		{
			Name:     "Koyu Minimal",
			IsActive: true,
			Preset: datatypes.NewJSONType(cardconfig.Params{
				ThemeType:  cardconfig.Str("color"),
				ThemeColor: cardconfig.Str("#111827"),
				DarkMode:   cardconfig.Bool(true),
				HeaderType: cardconfig.Str("minimal"),
			}),
		},
	}

	var createdCount int64
	errorOccurred := false

	configslog.SLog.Info("Varsayılan stiller seed işlemi başlıyor...")

	for _, styleToSeed := range stylesToSeed {
		var existing models.VisualStyle
		result := db.Where("name = ?", styleToSeed.Name).First(&existing)

		if result.Error == nil {
			configslog.SLog.Debugf("Stil '%s' zaten mevcut, oluşturma atlanıyor.", styleToSeed.Name)
			continue
		} else if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
			configslog.Log.Error("Stil kontrol edilirken veritabanı hatası",
				zap.String("style_name", styleToSeed.Name), zap.Error(result.Error))
			errorOccurred = true
			continue
		}

		if err := db.WithContext(ctx).Create(&styleToSeed).Error; err != nil {
			configslog.Log.Error("Stil oluşturulamadı",
				zap.String("style_name", styleToSeed.Name), zap.Error(err))
			errorOccurred = true
			continue
		}
		createdCount++
	}

	if createdCount > 0 {
		configslog.SLog.Infof("%d adet yeni stil seed edildi.", createdCount)
	}
	if errorOccurred {
		return errors.New("stiller seed edilirken en az bir hata oluştu")
	}
	return nil
}
