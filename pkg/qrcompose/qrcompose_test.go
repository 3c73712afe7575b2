package qrcompose

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCardURL(t *testing.T) {
	assert.Equal(t, "https://kart.link/?u=abc-123", CardURL("https://kart.link", "/", "abc-123"))
	assert.Equal(t, "https://kart.link/?u=abc-123", CardURL("https://kart.link/", "", "abc-123"))
	assert.Equal(t, "https://kart.link/c?u=abc-123", CardURL("https://kart.link", "c", "abc-123"))
}

// Üretilen istek URL'sindeki data parametresi decode edildiğinde birebir
// public kart URL'sini vermelidir.
func TestBuildURLRoundTrip(t *testing.T) {
	cardURL := CardURL("https://kart.link", "/", "abc-123")
	reqURL := BuildURL(cardURL, Options{Size: SizeShare, FGColor: "#111827", BGColor: "#ffffff"})

	parsed, err := url.Parse(reqURL)
	require.NoError(t, err)

	q := parsed.Query()
	assert.Equal(t, cardURL, q.Get("data"))
	assert.Equal(t, "300x300", q.Get("size"))
	assert.Equal(t, "111827", q.Get("color"), "hex'in başındaki # atılmalı")
	assert.Equal(t, "ffffff", q.Get("bgcolor"))
}

func TestBuildURLTransparentBackground(t *testing.T) {
	// Uç noktanın şeffaflık kavramı yok: moda uygun literal hex'e çevrilir.
	light, err := url.Parse(BuildURL("x", Options{BGColor: "transparent"}))
	require.NoError(t, err)
	assert.Equal(t, "ffffff", light.Query().Get("bgcolor"))

	dark, err := url.Parse(BuildURL("x", Options{BGColor: "transparent", DarkMode: true}))
	require.NoError(t, err)
	assert.Equal(t, "1f2937", dark.Query().Get("bgcolor"))
}

func TestBuildURLDefaults(t *testing.T) {
	parsed, err := url.Parse(BuildURL("x", Options{}))
	require.NoError(t, err)
	assert.Equal(t, "250x250", parsed.Query().Get("size"), "önizleme varsayılanı 250")
	assert.Equal(t, "000000", parsed.Query().Get("color"))
}

func TestCompose(t *testing.T) {
	d := Compose("https://kart.link", "/", "abc-123", 112, 2, 12, "#e5e7eb", Options{Size: SizePreview})
	assert.Equal(t, "https://kart.link/?u=abc-123", d.Payload)
	assert.Equal(t, 112, d.DisplaySize)
	assert.Equal(t, 2, d.BorderWidth)
	assert.Equal(t, 12, d.BorderRadius)
	assert.Contains(t, d.ImageURL, "api.qrserver.com")
}

func TestPNG(t *testing.T) {
	png, err := PNG("https://kart.link/?u=abc-123", 128, "#111827", "#ffffff")
	require.NoError(t, err)
	// PNG imzası
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, png[:4])

	// Bozuk renkler fallback ile sessizce karşılanır.
	_, err = PNG("x", 64, "mor", "şeffaf")
	assert.NoError(t, err)
}
