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

// SeedDefaultTemplates başlangıç şablon setini idempotent olarak ekler.
// Yeni kurulumda kullanıcıların seçebileceği en az bir aktif şablon bulunmalı.
func SeedDefaultTemplates(db *gorm.DB) error {
	ctx := models.ContextWithUserID(context.Background(), 1)

	templatesToSeed := []models.Template{
		{
			Name:       "Classic",
			NameTR:     "Klasik",
			IsActive:   true,
			IsFeatured: true,
			SortOrder:  10,
			Config: datatypes.NewJSONType(cardconfig.Params{
				ThemeType:    cardconfig.Str("color"),
				ThemeColor:   cardconfig.Str("#3b82f6"),
				HeaderType:   cardconfig.Str("classic"),
				HeaderHeight: cardconfig.Int(180),
				BodyRadius:   cardconfig.Int(24),
				BodyAlign:    cardconfig.Str("center"),
			}),
		},
		{
			Name:       "Wave",
			NameTR:     "Dalga",
			IsActive:   true,
			IsFeatured: true,
			SortOrder:  20,
			Config: datatypes.NewJSONType(cardconfig.Params{
				ThemeType:     cardconfig.Str("gradient"),
				ThemeGradient: cardconfig.Str("linear-gradient(135deg, #06b6d4 0%, #3b82f6 100%)"),
				HeaderType:    cardconfig.Str("wave"),
				HeaderHeight:  cardconfig.Int(220),
			}),
		},
		{
			Name:      "Hero",
			NameTR:    "Tam Görsel",
			IsActive:  true,
			SortOrder: 30,
			Config: datatypes.NewJSONType(cardconfig.Params{
				ThemeType:   cardconfig.Str("image"),
				HeaderType:  cardconfig.Str("hero"),
				AvatarStyle: cardconfig.Str("none"),
				BodyGlassy:  cardconfig.Bool(true),
				BodyOpacity: cardconfig.Int(70),
			}),
		},
		{
			Name:      "Invitation",
			NameTR:    "Davetiye",
			IsActive:  true,
			SortOrder: 40,
			Config: datatypes.NewJSONType(cardconfig.Params{
				ThemeType:    cardconfig.Str("color"),
				ThemeColor:   cardconfig.Str("#7c3aed"),
				HeaderType:   cardconfig.Str("curved"),
				ShowOccasion: cardconfig.Bool(true),
				Occasion: cardconfig.OccasionParams{
					Glass:    cardconfig.Bool(true),
					Floating: cardconfig.Bool(true),
				},
			}),
		},
	}

	var createdCount int64
	errorOccurred := false

	configslog.SLog.Info("Varsayılan şablonlar seed işlemi başlıyor...")

	for _, templateToSeed := range templatesToSeed {
		var existing models.Template
		result := db.Where("name = ?", templateToSeed.Name).First(&existing)

		if result.Error == nil {
			configslog.SLog.Debugf("Şablon '%s' zaten mevcut, oluşturma atlanıyor.", templateToSeed.Name)
			continue
		} else if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
			configslog.Log.Error("Şablon kontrol edilirken veritabanı hatası",
				zap.String("template_name", templateToSeed.Name), zap.Error(result.Error))
			errorOccurred = true
			continue
		}

		if err := db.WithContext(ctx).Create(&templateToSeed).Error; err != nil {
			configslog.Log.Error("Şablon oluşturulamadı",
				zap.String("template_name", templateToSeed.Name), zap.Error(err))
			errorOccurred = true
			continue
		}
		createdCount++
	}

	if createdCount > 0 {
		configslog.SLog.Infof("%d adet yeni şablon seed edildi.", createdCount)
	}
	if errorOccurred {
		return errors.New("şablonlar seed edilirken en az bir hata oluştu")
	}
	return nil
}
