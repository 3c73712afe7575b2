package geometry

import (
	"html/template"
	"strings"
)

// CustomAsset custom-asset başlık tipi için kullanıcı/yönetici kaynaklı
// görsel. Ham string enterpolasyonu yerine dar bir tip: ya raster görsel
// URL'si ya da kısıtlı inline vektör işaretlemesi taşır.
type CustomAsset struct {
	ImageURL string
	// Vector yalnızca NewVectorAsset süzgecinden geçen işaretlemeyi tutar.
	// template.HTML tipi süzgeç sonrası işaretlemenin görünümde kaçışsız
	// basılmasını sağlar; güven sınırı NewVectorAsset'tir.
	Vector template.HTML
}

// NewImageAsset raster görsel (URL veya data-URI) varlığı oluşturur.
func NewImageAsset(url string) *CustomAsset {
	if strings.TrimSpace(url) == "" {
		return nil
	}
	return &CustomAsset{ImageURL: url}
}

// NewVectorAsset inline vektör işaretlemesini güven sınırında süzerek kabul
// eder. Yalnızca <svg ...> kökü kabul edilir; script ve olay yakalayıcı
// içeren işaretleme reddedilir (nil döner). İçerik yönetici kaynaklı olsa da
// ham geçiş yapılmaz.
func NewVectorAsset(markup string) *CustomAsset {
	m := strings.TrimSpace(markup)
	if m == "" {
		return nil
	}
	lower := strings.ToLower(m)
	if !strings.HasPrefix(lower, "<svg") || !strings.HasSuffix(lower, "</svg>") {
		return nil
	}
	for _, banned := range []string{"<script", "javascript:", "onload=", "onerror=", "onclick=", "<foreignobject", "<iframe"} {
		if strings.Contains(lower, banned) {
			return nil
		}
	}
	return &CustomAsset{Vector: template.HTML(m)}
}

// IsVector varlığın inline vektör olup olmadığını söyler.
func (a *CustomAsset) IsVector() bool {
	return a != nil && a.Vector != ""
}
