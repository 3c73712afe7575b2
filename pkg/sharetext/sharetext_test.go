package sharetext

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuild(t *testing.T) {
	out := Build(LocaleTR, "Jane Doe", "CTO", "https://kart.link/?u=abc-123")
	assert.Contains(t, out, "Jane Doe — CTO")
	assert.Contains(t, out, "https://kart.link/?u=abc-123")

	// Ünvan boşsa satır atlanır.
	out = Build(LocaleTR, "Jane Doe", "", "u")
	assert.NotContains(t, out, "—")

	out = Build(LocaleEN, "Jane Doe", "CTO", "u")
	assert.Contains(t, out, "digital business card")

	// Bilinmeyen yerel Türkçeye düşer.
	out = Build(Locale("de"), "Jane", "", "u")
	assert.Contains(t, out, "kartvizitim")
}

func TestQRCaption(t *testing.T) {
	assert.Equal(t, "Kartımı görüntüle", QRCaption(LocaleTR))
	assert.Equal(t, "View my card", QRCaption(LocaleEN))
	assert.Equal(t, "Kartımı görüntüle", QRCaption(Locale("de")))
}
