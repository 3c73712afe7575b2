package sharetext

import (
	"fmt"
	"strings"
)

// Paylaşım metni: mesajlaşma uygulamalarına yapıştırılmak üzere, kart
// sahibinin adını, ünvanını ve public URL'yi içeren yerele bağlı şablon.

// Locale desteklenen yereller. Metinler yerel anahtarına göre seçilir;
// bilinmeyen yerel Türkçeye düşer.
type Locale string

const (
	LocaleTR Locale = "tr"
	LocaleEN Locale = "en"
)

// QRCaption kart üzerindeki QR bloğunun alt yazısı. Bilinmeyen yerel
// Türkçeye düşer.
func QRCaption(locale Locale) string {
	if locale == LocaleEN {
		return "View my card"
	}
	return "Kartımı görüntüle"
}

// Build paylaşım metnini üretir. Ünvan boşsa ünvan satırı atlanır.
func Build(locale Locale, name, title, url string) string {
	name = strings.TrimSpace(name)
	title = strings.TrimSpace(title)

	switch locale {
	case LocaleEN:
		if title != "" {
			return fmt.Sprintf("%s — %s\nHere is my digital business card: %s", name, title, url)
		}
		return fmt.Sprintf("%s\nHere is my digital business card: %s", name, url)
	default:
		if title != "" {
			return fmt.Sprintf("%s — %s\nDijital kartvizitim: %s", name, title, url)
		}
		return fmt.Sprintf("%s\nDijital kartvizitim: %s", name, url)
	}
}
