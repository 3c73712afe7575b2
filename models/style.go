package models

import (
	"kart.link/pkg/cardconfig"

	"gorm.io/datatypes"
)

// VisualStyle şablon oluştururken içe aktarılabilen küçük ön ayar: ağırlıklı
// olarak başlık geometrisi + tema alanlarını tohumlar. Render anında asla
// okunmaz; yalnız şablon yazım zamanında kullanılır.
type VisualStyle struct {
	BaseModel
	Name     string                                `gorm:"type:varchar(150);not null"`
	IsActive bool                                  `gorm:"default:true;index"`
	Preset   datatypes.JSONType[cardconfig.Params] `gorm:"type:jsonb"`
}
