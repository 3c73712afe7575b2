package models

// Card dijital kartvizitin ana kaydıdır. Slug kartın public URL kimliğidir
// ({origin}{path}?u={slug}); küçük harfe normalize edilir ve canlı bir URL
// tarafından kullanıldıktan sonra yalnız sil+yeniden-oluştur (yeniden
// adlandırma) yoluyla değişir.
type Card struct {
	BaseModel
	Slug          string `gorm:"type:varchar(64);uniqueIndex;not null"`
	CreatorUserID uint   `gorm:"index;not null"`
	TemplateID    uint   `gorm:"index;not null"` // templates.id FK
	IsEnabled     bool   `gorm:"default:true;index"`

	// GORM İlişkileri
	Template Template   `gorm:"foreignKey:TemplateID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;"`
	Detail   CardDetail `gorm:"foreignKey:CardID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}
