package models

import (
	"kart.link/pkg/cardconfig"

	"gorm.io/datatypes"
)

// Template yönetici tarafından yazılan, kartların benimseyebildiği yeniden
// kullanılabilir konfigürasyon paketi.
type Template struct {
	BaseModel
	// Çok yerelli görünen adlar.
	Name   string `gorm:"type:varchar(150);not null"`
	NameTR string `gorm:"type:varchar(150)"`

	CategoryID *uint `gorm:"index"` // Opsiyonel gruplama
	IsActive   bool  `gorm:"default:true;index"`
	IsFeatured bool  `gorm:"default:false;index"`
	// SortOrder listeleme anahtarı: öne çıkanlar önce, sonra SortOrder artan,
	// sonra yenilik.
	SortOrder int `gorm:"default:0"`
	// UsageCount bu şablonu kullanan canlı kart sayısı. En-iyi-çaba bakımı
	// yapılır (benimseme +1, ayrılma/silme -1); transactional tutarlılık
	// hedeflenmez.
	UsageCount int `gorm:"default:0"`

	Config datatypes.JSONType[cardconfig.Params] `gorm:"type:jsonb"`

	Category *Category `gorm:"foreignKey:CategoryID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;"`
}
