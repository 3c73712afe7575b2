package models

import (
	"kart.link/pkg/cardconfig"

	"gorm.io/datatypes"
)

// CardDetail kartvizitin içerik ve görünüm detaylarını içerir.
type CardDetail struct {
	BaseModel
	CardID uint `gorm:"uniqueIndex;not null"` // cards.id FK

	// Kişisel Bilgiler
	Name    string `gorm:"type:varchar(150);not null"`
	Title   string `gorm:"type:varchar(150)"` // Ünvan (örn: Yazılım Geliştirici)
	Company string `gorm:"type:varchar(150)"`
	Bio     string `gorm:"type:text"`

	// İletişim Bilgileri
	Email    string `gorm:"type:varchar(150);index"`
	Phone    string `gorm:"type:varchar(30)"`
	WhatsApp string `gorm:"type:varchar(30)"`
	Website  string `gorm:"type:varchar(255)"`
	Address  string `gorm:"type:text"`

	// Profil görseli: upload servisinin döndürdüğü data-URI veya URL.
	// Çekirdek bunu opak bir görsel referansı olarak tüketir.
	ProfileImageURL string `gorm:"type:text"`

	// Sosyal bağlantılar: sıra korunur, tekillik zorlanmaz.
	SocialLinks datatypes.JSONSlice[cardconfig.SocialLink] `gorm:"type:jsonb"`

	// Overrides kartın şablon varsayılanlarını ezen görünüm parametreleri.
	// Şablonun Config'i ile aynı yapıdadır (paralel alan tasarımı); davet
	// (occasion) alt kaydı da bu yapının içindedir. JSON'da olmayan alan
	// "ayarlanmamış" demektir ve şablon değerine düşer.
	Overrides datatypes.JSONType[cardconfig.Params] `gorm:"type:jsonb"`
}
