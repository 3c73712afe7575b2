package utils

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"regexp"
	"strings"
)

// Slug kuralları: en az 3 karakter, yalnız [a-z0-9-]. Slug kartın public
// URL kimliğidir ve birincil anahtar gibi davranır.

var (
	ErrSlugTooShort    = errors.New("slug en az 3 karakter olmalıdır")
	ErrSlugInvalidChar = errors.New("slug yalnız küçük harf, rakam ve tire içerebilir")
)

var slugAllowed = regexp.MustCompile(`[^a-z0-9-]`)

// SanitizeSlug girdiyi slug biçimine indirger: küçük harfe çevirir, izin
// verilmeyen karakterleri atar. İdempotenttir: temiz bir slug değişmeden çıkar.
func SanitizeSlug(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return slugAllowed.ReplaceAllString(s, "")
}

// ValidateSlug sanitize edilmiş bir slug'ın kurallara uyduğunu doğrular.
func ValidateSlug(s string) error {
	if len(s) < 3 {
		return ErrSlugTooShort
	}
	if slugAllowed.MatchString(s) || s != strings.ToLower(s) {
		return ErrSlugInvalidChar
	}
	return nil
}

// RandomSlug yeni kartlar için varsayılan "ddd-ddd" biçiminde slug üretir
// (örn: 483-921). Çakışma kontrolü çağıranın işidir.
func RandomSlug() (string, error) {
	a, err := randomThreeDigits()
	if err != nil {
		return "", err
	}
	b, err := randomThreeDigits()
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%03d-%03d", a, b), nil
}

func randomThreeDigits() (int64, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000))
	if err != nil {
		return 0, err
	}
	return n.Int64(), nil
}
