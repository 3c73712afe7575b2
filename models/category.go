package models

// Category şablonlar için düz (hiyerarşisiz) gruplama etiketi.
// Silinmesi şablonları silmez, yalnız CategoryID bağını koparır.
type Category struct {
	BaseModel
	Name     string `gorm:"type:varchar(100);uniqueIndex;not null"`
	IsActive bool   `gorm:"default:true;index"`
}
