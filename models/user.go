package models

import "golang.org/x/crypto/bcrypt"

// User platform kullanıcısı. Kimlik doğrulama akışlarının kendisi bu çekirdeğin
// kapsamı dışındadır; render katmanı yalnızca kimliği ve IsSystem bayrağını görür.
type User struct {
	BaseModel
	Name         string `gorm:"type:varchar(150);not null"`
	Email        string `gorm:"type:varchar(150);uniqueIndex;not null"`
	PasswordHash string `gorm:"type:varchar(255);not null"`
	// IsSystem yönetici (şablon/stil yazarı) bayrağı.
	IsSystem bool `gorm:"default:false;index"`
}

// SetPassword parolayı bcrypt ile hash'ler.
func (u *User) SetPassword(plain string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hash)
	return nil
}

// CheckPassword parolayı doğrular.
func (u *User) CheckPassword(plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(plain)) == nil
}
