package services

import (
	"testing"
	"time"

	"kart.link/models"
	"kart.link/pkg/cardconfig"
	"kart.link/pkg/cardrender"
	"kart.link/pkg/sharetext"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func TestValidateCardInput(t *testing.T) {
	valid := CardInput{
		TemplateID: 1,
		Detail:     models.CardDetail{Name: "Ayşe Yılmaz"},
	}
	assert.NoError(t, ValidateCardInput(valid))

	noName := valid
	noName.Detail.Name = ""
	assert.ErrorIs(t, ValidateCardInput(noName), ErrCardNameRequired)

	noTemplate := valid
	noTemplate.TemplateID = 0
	assert.ErrorIs(t, ValidateCardInput(noTemplate), ErrCrdTemplateMissing)
}

func TestComposeCardViewMapsContentAndConfig(t *testing.T) {
	card := &models.Card{
		Slug: "ayse-yilmaz",
		Detail: models.CardDetail{
			Name:    "Ayşe Yılmaz",
			Title:   "Mimar",
			Email:   "ayse@example.com",
			Website: "example.com",
			SocialLinks: datatypes.NewJSONSlice([]cardconfig.SocialLink{
				{PlatformID: "instagram", URL: "https://instagram.com/ayse"},
			}),
			Overrides: datatypes.NewJSONType(cardconfig.Params{
				NameColor: cardconfig.Str("#ff0000"),
			}),
		},
		Template: models.Template{
			Config: datatypes.NewJSONType(cardconfig.Params{
				NameColor:  cardconfig.Str("#00ff00"),
				HeaderType: cardconfig.Str("classic"),
			}),
		},
	}

	view := ComposeCardView(card, "https://kart.link", "/", false, sharetext.LocaleTR, time.Now())

	assert.Equal(t, "ayse-yilmaz", view.Slug)

	// Kart override'ı şablon değerini ezer.
	standard, ok := view.Block.(*cardrender.StandardBlock)
	require.True(t, ok)
	require.NotNil(t, standard.Name)
	assert.Equal(t, "Ayşe Yılmaz", standard.Name.Text)
	assert.Equal(t, "#ff0000", standard.Name.Color)

	// Sosyal bağlantılar sırayla taşınır.
	require.NotNil(t, view.Social)
	require.Len(t, view.Social.Icons, 1)
	assert.Equal(t, "instagram", view.Social.Icons[0].PlatformID)

	// QR yükü public URL sözleşmesini taşır.
	require.NotNil(t, view.QR)
	assert.Equal(t, "https://kart.link/?u=ayse-yilmaz", view.QR.Descriptor.Payload)
}

func TestComposeCardViewPreviewMode(t *testing.T) {
	card := &models.Card{
		Slug: "test-kart",
		Detail: models.CardDetail{
			Name:  "Test",
			Phone: "+90 555 111 22 33",
		},
	}

	public := ComposeCardView(card, "https://kart.link", "/", false, sharetext.LocaleTR, time.Now())
	preview := ComposeCardView(card, "https://kart.link", "/", true, sharetext.LocaleTR, time.Now())

	hasSave := func(v cardrender.View) bool {
		for _, p := range v.Contact.Pills {
			if p.Kind == "save" {
				return true
			}
		}
		return false
	}

	// Rehbere ekle pill'i yalnız public görünümde bulunur.
	assert.True(t, hasSave(public))
	assert.False(t, hasSave(preview))
}
