package cardconfig

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolvePrecedence(t *testing.T) {
	instance := Params{ThemeColor: Str("#ff0000"), HeaderHeight: Int(240)}
	template := Params{ThemeColor: Str("#00ff00"), HeaderHeight: Int(300), AvatarSize: Int(96)}

	r := Resolve(instance, template)

	// Kart override'ı şablonu ezer.
	assert.Equal(t, "#ff0000", r.ThemeColor)
	assert.Equal(t, 240, r.HeaderHeight)
	// Kart sessizse şablon değeri geçerli.
	assert.Equal(t, 96, r.AvatarSize)
	// İkisi de sessizse sabit fallback.
	assert.Equal(t, FallbackBodyRadius, r.BodyRadius)
	assert.Equal(t, FallbackHeaderType, r.HeaderType)
}

func TestResolveShowFlagConvention(t *testing.T) {
	// nil -> görünür
	r := Resolve(Params{}, Params{})
	assert.True(t, r.ShowName)
	assert.True(t, r.ShowBio)
	assert.True(t, r.ShowQR)

	// açıkça false -> gizli
	r = Resolve(Params{ShowBio: Bool(false)}, Params{})
	assert.False(t, r.ShowBio)

	// açıkça true -> görünür
	r = Resolve(Params{ShowBio: Bool(true)}, Params{})
	assert.True(t, r.ShowBio)

	// kartın true'su şablonun false'unu ezer
	r = Resolve(Params{ShowBio: Bool(true)}, Params{ShowBio: Bool(false)})
	assert.True(t, r.ShowBio)

	// kart sessizse şablonun false'u geçerli
	r = Resolve(Params{}, Params{ShowBio: Bool(false)})
	assert.False(t, r.ShowBio)
}

func TestResolveShowOccasionDefaultsOff(t *testing.T) {
	r := Resolve(Params{}, Params{})
	assert.False(t, r.ShowOccasion)

	r = Resolve(Params{}, Params{ShowOccasion: Bool(true)})
	assert.True(t, r.ShowOccasion)

	r = Resolve(Params{ShowOccasion: Bool(false)}, Params{ShowOccasion: Bool(true)})
	assert.False(t, r.ShowOccasion)
}

func TestResolveEmptyStringIsNotUnset(t *testing.T) {
	// Boş string geçerli bir override'dır; fallback'e düşmez.
	r := Resolve(Params{ThemeColor: Str("")}, Params{ThemeColor: Str("#00ff00")})
	assert.Equal(t, "", r.ThemeColor)
}

// JSON null sınırı: null yazılmış bir anahtar nil pointer'a unmarshal olur,
// yani "ayarlanmamış" sayılır ve bir alt katmana düşer. (Karar DESIGN.md'de.)
func TestResolveJSONNullMeansUnset(t *testing.T) {
	var instance Params
	require.NoError(t, json.Unmarshal([]byte(`{"showBio": null, "themeColor": null}`), &instance))

	assert.Nil(t, instance.ShowBio)
	assert.Nil(t, instance.ThemeColor)

	r := Resolve(instance, Params{ShowBio: Bool(false), ThemeColor: Str("#123456")})
	assert.False(t, r.ShowBio)
	assert.Equal(t, "#123456", r.ThemeColor)
}

func TestResolveOccasionFields(t *testing.T) {
	instance := Params{Occasion: OccasionParams{Title: Str("Düğünümüz"), InvitationYOffset: Int(-20)}}
	template := Params{Occasion: OccasionParams{Title: Str("Etkinlik"), Desc: Str("Açıklama"), GlassOpacity: Int(50)}}

	r := Resolve(instance, template)
	assert.Equal(t, "Düğünümüz", r.Occasion.Title)
	assert.Equal(t, "Açıklama", r.Occasion.Desc)
	assert.Equal(t, -20, r.Occasion.InvitationYOffset)
	assert.Equal(t, 50, r.Occasion.GlassOpacity)
	assert.Equal(t, FallbackOccasionBgColor, r.Occasion.BgColor)
}

func TestAlpha(t *testing.T) {
	assert.InDelta(t, 0.6, Alpha(60), 1e-9)
	assert.Equal(t, 0.0, Alpha(-5))
	assert.Equal(t, 1.0, Alpha(250))
}
