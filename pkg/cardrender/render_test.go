package cardrender

import (
	"testing"
	"time"

	"kart.link/pkg/cardconfig"
	"kart.link/pkg/sharetext"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testOpts = Options{
	Origin:   "https://kart.link",
	BasePath: "/",
	Now:      time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC),
}

func TestRenderModeExclusivity(t *testing.T) {
	content := Content{Slug: "abc-123", Name: "Jane Doe", Title: "Mühendis", Bio: "bio"}
	// Davet alanları dolu olsa bile showOccasion kapalıysa panel çizilmez.
	instance := cardconfig.Params{
		Occasion: cardconfig.OccasionParams{Title: cardconfig.Str("Düğün")},
	}

	v := Render(content, instance, cardconfig.Params{}, testOpts)
	std, ok := v.Block.(*StandardBlock)
	require.True(t, ok, "showOccasion kapalıyken standart blok beklenir")
	assert.NotNil(t, std.Name)

	// showOccasion açıkken standart blok asla çizilmez.
	instance.ShowOccasion = cardconfig.Bool(true)
	v = Render(content, instance, cardconfig.Params{}, testOpts)
	occ, ok := v.Block.(*OccasionBlock)
	require.True(t, ok, "showOccasion açıkken davet bloğu beklenir")
	assert.NotNil(t, occ.Panel.Title)
}

// Uçtan uca örnek: kart override'ı şablon varsayılanını ezer.
func TestRenderInstanceOverrideWinsOverTemplateDefault(t *testing.T) {
	content := Content{Slug: "abc-123", Name: "Jane Doe", Bio: "hidden text"}
	instance := cardconfig.Params{
		ShowName: cardconfig.Bool(true),
		ShowBio:  cardconfig.Bool(false),
	}
	template := cardconfig.Params{ShowBio: cardconfig.Bool(true)}

	v := Render(content, instance, template, testOpts)
	std := v.Block.(*StandardBlock)

	require.NotNil(t, std.Name)
	assert.Equal(t, "Jane Doe", std.Name.Text)
	assert.Nil(t, std.Bio, "kartın showBio:false değeri şablonun true'sunu ezmeli")
}

func TestRenderVisibilityDefault(t *testing.T) {
	content := Content{Slug: "a-1", Name: "Ad", Bio: "bio", Email: "a@b.c"}

	// Bayraklar hiç ayarlanmamışken her şey görünür.
	v := Render(content, cardconfig.Params{}, cardconfig.Params{}, testOpts)
	std := v.Block.(*StandardBlock)
	assert.NotNil(t, std.Name)
	assert.NotNil(t, std.Bio)
	assert.NotNil(t, v.Contact.Email)
	assert.NotNil(t, v.QR)
}

func TestRenderTitleCompanyJoin(t *testing.T) {
	content := Content{Slug: "a-1", Title: "CTO", Company: "Acme"}

	v := Render(content, cardconfig.Params{}, cardconfig.Params{}, testOpts)
	std := v.Block.(*StandardBlock)
	require.NotNil(t, std.TitleLine)
	assert.Equal(t, "CTO • Acme", std.TitleLine.Text)

	// Şirket gizliyse yalnız ünvan kalır, ayraç eklenmez.
	v = Render(content, cardconfig.Params{ShowCompany: cardconfig.Bool(false)}, cardconfig.Params{}, testOpts)
	std = v.Block.(*StandardBlock)
	assert.Equal(t, "CTO", std.TitleLine.Text)

	// İkisi de boşsa satır hiç yok.
	v = Render(Content{Slug: "a-1"}, cardconfig.Params{}, cardconfig.Params{}, testOpts)
	assert.Nil(t, v.Block.(*StandardBlock).TitleLine)
}

func TestRenderTotalOnEmptyContent(t *testing.T) {
	// Tüm opsiyonel alanlar boş: render yine geçerli bir ağaç üretmeli.
	v := Render(Content{Slug: "a-1"}, cardconfig.Params{}, cardconfig.Params{}, testOpts)

	assert.Nil(t, v.Avatar)
	assert.Nil(t, v.Social)
	std := v.Block.(*StandardBlock)
	assert.Nil(t, std.Name)
	assert.Nil(t, std.TitleLine)
	assert.Nil(t, std.Bio)
	assert.Nil(t, v.Contact.Email)
	// Public bağlamda rehbere-ekle pill'i isim olmasa da durur.
	require.Len(t, v.Contact.Pills, 1)
	assert.Equal(t, "save", v.Contact.Pills[0].Kind)
}

func TestRenderPreviewSuppressesSavePill(t *testing.T) {
	content := Content{Slug: "a-1", Phone: "+90 555 111 22 33", WhatsApp: "+90 (555) 111-22-33"}
	opts := testOpts
	opts.Preview = true

	v := Render(content, cardconfig.Params{}, cardconfig.Params{}, opts)
	kinds := make([]string, 0, len(v.Contact.Pills))
	for _, p := range v.Contact.Pills {
		kinds = append(kinds, p.Kind)
	}
	assert.Equal(t, []string{"phone", "whatsapp"}, kinds)

	// WhatsApp linki yalnız rakamlardan kurulur.
	assert.Equal(t, "https://wa.me/905551112233", v.Contact.Pills[1].Href)
}

func TestRenderOccasionCountdown(t *testing.T) {
	content := Content{Slug: "a-1", Name: "Jane"}
	instance := cardconfig.Params{
		ShowOccasion: cardconfig.Bool(true),
		Occasion: cardconfig.OccasionParams{
			Title: cardconfig.Str("Nişan"),
			Date:  cardconfig.Str("2026-05-02T13:01:01Z"), // now + 1g 1s 1d 1sn
		},
	}

	v := Render(content, instance, cardconfig.Params{}, testOpts)
	occ := v.Block.(*OccasionBlock)
	require.NotNil(t, occ.Panel.Countdown)
	assert.Equal(t, 1, occ.Panel.Countdown.Days)
	assert.Equal(t, 1, occ.Panel.Countdown.Hours)
	assert.Equal(t, 1, occ.Panel.Countdown.Minutes)
	assert.Equal(t, 1, occ.Panel.Countdown.Seconds)

	// Geçmiş tarih: panel durur, geri sayım tamamen bastırılır.
	instance.Occasion.Date = cardconfig.Str("2020-01-01T00:00:00Z")
	v = Render(content, instance, cardconfig.Params{}, testOpts)
	assert.Nil(t, v.Block.(*OccasionBlock).Panel.Countdown)
}

func TestRenderOccasionBlockMovesAsOneUnit(t *testing.T) {
	instance := cardconfig.Params{
		ShowOccasion: cardconfig.Bool(true),
		Occasion: cardconfig.OccasionParams{
			InvitationPrefix:  cardconfig.Str("Sayın"),
			InvitationWelcome: cardconfig.Str("Davetlisiniz"),
			InvitationYOffset: cardconfig.Int(-40),
		},
	}
	v := Render(Content{Slug: "a-1", Name: "Jane"}, instance, cardconfig.Params{}, testOpts)
	occ := v.Block.(*OccasionBlock)

	// Tek birleşik offset blok seviyesinde; elemanlarda ayrı offset yok.
	assert.Equal(t, -40, occ.OffsetY)
	require.NotNil(t, occ.Prefix)
	assert.Zero(t, occ.Prefix.OffsetY)
}

func TestRenderHeaderGlassComposition(t *testing.T) {
	instance := cardconfig.Params{
		HeaderType:    cardconfig.Str("curved"),
		HeaderGlassy:  cardconfig.Bool(true),
		HeaderOpacity: cardconfig.Int(40),
	}
	v := Render(Content{Slug: "a-1"}, instance, cardconfig.Params{}, testOpts)

	// Cam katmanı kırpmanın yerine geçmez, üstüne gelir.
	assert.NotEmpty(t, v.Header.Geometry.ClipPath)
	require.NotNil(t, v.Header.Glass)
	assert.Contains(t, v.Header.Glass.Fill, "0.40")

	// glass-card tipi bayraktan bağımsız cam zorlar.
	v = Render(Content{Slug: "a-1"}, cardconfig.Params{HeaderType: cardconfig.Str("glass-card")}, cardconfig.Params{}, testOpts)
	assert.NotNil(t, v.Header.Glass)
}

func TestRenderBackgroundKinds(t *testing.T) {
	v := Render(Content{Slug: "a-1"}, cardconfig.Params{
		ThemeType:  cardconfig.Str("image"),
		ThemeImage: cardconfig.Str("data:image/png;base64,xyz"),
	}, cardconfig.Params{}, testOpts)
	assert.Equal(t, "image", v.Background.Kind)
	assert.True(t, v.Background.Blurred)
	assert.Less(t, v.Background.Opacity, 1.0)

	// image seçilmiş ama görsel yoksa düz renge düşer.
	v = Render(Content{Slug: "a-1"}, cardconfig.Params{ThemeType: cardconfig.Str("image")}, cardconfig.Params{}, testOpts)
	assert.Equal(t, "color", v.Background.Kind)
}

func TestRenderAvatar(t *testing.T) {
	content := Content{Slug: "a-1", ProfileImage: "data:image/jpeg;base64,abc"}

	v := Render(content, cardconfig.Params{AvatarStyle: cardconfig.Str("squircle")}, cardconfig.Params{}, testOpts)
	require.NotNil(t, v.Avatar)
	assert.Equal(t, 25, v.Avatar.CornerPct)
	assert.Equal(t, cardconfig.FallbackAvatarSize, v.Avatar.SizePx)

	// style none veya görsel yoksa avatar düşer.
	assert.Nil(t, Render(content, cardconfig.Params{AvatarStyle: cardconfig.Str("none")}, cardconfig.Params{}, testOpts).Avatar)
	assert.Nil(t, Render(Content{Slug: "a-1"}, cardconfig.Params{}, cardconfig.Params{}, testOpts).Avatar)
}

func TestRenderSocialIconsTinted(t *testing.T) {
	content := Content{Slug: "a-1", Social: []cardconfig.SocialLink{
		{PlatformID: "github", URL: "https://github.com/jane"},
		{PlatformID: "x", URL: ""},
		{PlatformID: "github", URL: "https://github.com/jane2"}, // tekrar serbest
	}}
	v := Render(content, cardconfig.Params{SocialColor: cardconfig.Str("#123456")}, cardconfig.Params{}, testOpts)

	require.NotNil(t, v.Social)
	require.Len(t, v.Social.Icons, 2, "boş URL düşer, sıra ve tekrarlar korunur")
	assert.Equal(t, "#123456", v.Social.Icons[0].Color)

	// showSocial false tüm satırı gizler.
	v = Render(content, cardconfig.Params{ShowSocial: cardconfig.Bool(false)}, cardconfig.Params{}, testOpts)
	assert.Nil(t, v.Social)
}

func TestRenderQRBlock(t *testing.T) {
	v := Render(Content{Slug: "abc-123"}, cardconfig.Params{}, cardconfig.Params{}, testOpts)
	require.NotNil(t, v.QR)
	assert.Equal(t, "https://kart.link/?u=abc-123", v.QR.Descriptor.Payload)
	assert.Equal(t, cardconfig.FallbackQRSize, v.QR.Descriptor.DisplaySize)

	v = Render(Content{Slug: "abc-123"}, cardconfig.Params{ShowQR: cardconfig.Bool(false)}, cardconfig.Params{}, testOpts)
	assert.Nil(t, v.QR)
}

func TestRenderQRCaptionLocale(t *testing.T) {
	content := Content{Slug: "abc-123"}

	// Boş yerel Türkçeye düşer.
	v := Render(content, cardconfig.Params{}, cardconfig.Params{}, testOpts)
	require.NotNil(t, v.QR)
	assert.Equal(t, "Kartımı görüntüle", v.QR.Caption)

	opts := testOpts
	opts.Locale = sharetext.LocaleEN
	v = Render(content, cardconfig.Params{}, cardconfig.Params{}, opts)
	assert.Equal(t, "View my card", v.QR.Caption)
}

func TestRenderSideHeaderFullHeight(t *testing.T) {
	v := Render(Content{Slug: "a-1"}, cardconfig.Params{
		HeaderType:   cardconfig.Str("side-left"),
		HeaderHeight: cardconfig.Int(180),
	}, cardconfig.Params{}, testOpts)

	// Yan şerit %25 genişlik + tam boy; 180px yükseklik ekrana yazılmaz.
	assert.Equal(t, 25, v.Header.Geometry.WidthPct)
	assert.True(t, v.Header.Geometry.FullHeight)
}

func TestRenderTopBarForcedHeight(t *testing.T) {
	v := Render(Content{Slug: "a-1"}, cardconfig.Params{
		HeaderType:   cardconfig.Str("top-bar"),
		HeaderHeight: cardconfig.Int(500),
	}, cardconfig.Params{}, testOpts)
	assert.Equal(t, 12, v.Header.Geometry.Height)
}
