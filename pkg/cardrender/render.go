package cardrender

import (
	"regexp"
	"strings"
	"time"

	"kart.link/pkg/cardconfig"
	"kart.link/pkg/countdown"
	"kart.link/pkg/geometry"
	"kart.link/pkg/qrcompose"
	"kart.link/pkg/sharetext"
)

// Options tek render geçişinin bağlamı.
type Options struct {
	// Origin + BasePath public kart URL'sini ve QR yükünü belirler.
	Origin   string
	BasePath string
	// Preview true ise "rehbere ekle" butonu bastırılır (önizlemede kayıt
	// anlamsızdır).
	Preview bool
	// Now geri sayım hesabının referans anı. Sıfır değer time.Now demektir.
	Now time.Time
	// Locale yerele bağlı metinleri (QR alt yazısı) seçer. Boş değer
	// Türkçeye düşer.
	Locale sharetext.Locale
}

const squircleCornerPct = 25 // 22-28 bandının ortası

// Render çözümlenmiş konfigürasyon + kart içeriğinden eksiksiz görsel ağacı
// üretir. TOTALDİR: sözdizimsel olarak geçerli her girdi için geçerli bir
// View döner, eksik opsiyonel alan ilgili elemanı sessizce düşürür, asla
// hata/panik üretilmez.
func Render(content Content, instance, template cardconfig.Params, opts Options) View {
	cfg := cardconfig.Resolve(instance, template)
	if opts.Now.IsZero() {
		opts.Now = time.Now()
	}

	v := View{
		Slug:       content.Slug,
		DarkMode:   cfg.DarkMode,
		Background: buildBackground(cfg),
		Header:     buildHeader(cfg),
		Body:       buildBody(cfg),
		Avatar:     buildAvatar(cfg, content),
		Contact:    buildContact(cfg, content, opts),
		Social:     buildSocial(cfg, content),
		QR:         buildQR(cfg, content, opts),
	}

	// Mod anahtarı: tam olarak bir içerik bloğu.
	if cfg.ShowOccasion {
		v.Block = buildOccasionBlock(cfg, content, opts.Now)
	} else {
		v.Block = buildStandardBlock(cfg, content)
	}
	return v
}

// buildBackground tema katmanını kurar. Başlık şeklinden bağımsızdır.
func buildBackground(cfg cardconfig.Resolved) Background {
	switch cfg.ThemeType {
	case "image":
		if cfg.ThemeImage != "" {
			// Görsel her şeyin arkasında bulanık/ölçekli ve düşük opaklıkta.
			return Background{Kind: "image", Value: cfg.ThemeImage, Blurred: true, Opacity: 0.25}
		}
		// Görsel seçilmemişse düz renge düş.
		return Background{Kind: "color", Value: cfg.ThemeColor, Opacity: 1}
	case "gradient":
		return Background{Kind: "gradient", Value: cfg.ThemeGradient, Opacity: 1}
	default:
		return Background{Kind: "color", Value: cfg.ThemeColor, Opacity: 1}
	}
}

func buildHeader(cfg cardconfig.Resolved) HeaderView {
	var asset *geometry.CustomAsset
	if geometry.HeaderShape(cfg.HeaderType) == geometry.ShapeCustomAsset {
		if cfg.HeaderCustomVector != "" {
			asset = geometry.NewVectorAsset(cfg.HeaderCustomVector)
		}
		if asset == nil {
			asset = geometry.NewImageAsset(cfg.HeaderCustomImage)
		}
	}

	geo := geometry.HeaderBox(geometry.HeaderShape(cfg.HeaderType), cfg.HeaderHeight, asset)

	fill := cfg.HeaderColor
	if fill == "" {
		// Başlık rengi ayarlanmamışsa tema dolgusu kullanılır.
		if cfg.ThemeType == "gradient" {
			fill = cfg.ThemeGradient
		} else {
			fill = cfg.ThemeColor
		}
	}

	h := HeaderView{Geometry: geo, Fill: fill}

	// Cam katmanı şekil kırpmasının üstüne kompoze edilir.
	if cfg.HeaderGlassy || geo.ForceGlass {
		g := geometry.GlassOverlay(cfg.DarkMode, cfg.HeaderOpacity)
		h.Glass = &g
	}

	if p := geometry.Tile(geometry.PatternType(cfg.PatternType), cfg.PatternOpacity, cfg.PatternScale, cfg.DarkMode); p.Type != geometry.PatternNone {
		h.Pattern = &p
	}
	return h
}

func buildBody(cfg cardconfig.Resolved) BodyView {
	b := BodyView{
		Geometry: geometry.BodyBox(geometry.HeaderShape(cfg.HeaderType), cfg.HeaderHeight, cfg.BodyOffsetY),
		RadiusPx: cfg.BodyRadius,
		Align:    cfg.BodyAlign,
	}
	if cfg.BodyGlassy {
		g := geometry.GlassOverlay(cfg.DarkMode, cfg.BodyOpacity)
		b.Glass = &g
	}
	return b
}

func buildAvatar(cfg cardconfig.Resolved, content Content) *AvatarView {
	if cfg.AvatarStyle == "none" || content.ProfileImage == "" {
		return nil
	}
	a := &AvatarView{
		ImageURL:    content.ProfileImage,
		Shape:       cfg.AvatarStyle,
		SizePx:      cfg.AvatarSize,
		BorderWidth: cfg.AvatarBorderWidth,
		BorderColor: cfg.AvatarBorderColor,
		OffsetY:     cfg.AvatarOffsetY,
	}
	if a.Shape == "squircle" {
		a.CornerPct = squircleCornerPct
	}
	return a
}

func buildStandardBlock(cfg cardconfig.Resolved, content Content) *StandardBlock {
	b := &StandardBlock{}

	if cfg.ShowName && content.Name != "" {
		b.Name = &Element{Text: content.Name, Color: cfg.NameColor, OffsetY: cfg.NameOffsetY}
	}

	// Ünvan + şirket: ikisi de görünür ve doluysa " • " ile birleşir.
	var parts []string
	if cfg.ShowTitle && content.Title != "" {
		parts = append(parts, content.Title)
	}
	if cfg.ShowCompany && content.Company != "" {
		parts = append(parts, content.Company)
	}
	if len(parts) > 0 {
		b.TitleLine = &Element{Text: strings.Join(parts, " • "), Color: cfg.TitleColor, OffsetY: cfg.TitleOffsetY}
	}

	if cfg.ShowBio && content.Bio != "" {
		b.Bio = &Element{Text: content.Bio, Color: cfg.BioColor, OffsetY: cfg.BioOffsetY}
	}
	return b
}

func buildOccasionBlock(cfg cardconfig.Resolved, content Content, now time.Time) *OccasionBlock {
	oc := cfg.Occasion
	b := &OccasionBlock{OffsetY: oc.InvitationYOffset}

	if oc.InvitationPrefix != "" {
		b.Prefix = &Element{Text: oc.InvitationPrefix, Color: oc.PrefixColor}
	}
	if content.Name != "" {
		b.Name = &Element{Text: content.Name, Color: oc.NameColor}
	}
	if oc.InvitationWelcome != "" {
		b.Welcome = &Element{Text: oc.InvitationWelcome, Color: oc.WelcomeColor}
	}

	panel := OccasionPanel{MapURL: oc.MapURL, BgColor: oc.BgColor, Floating: oc.Floating}
	if oc.Title != "" {
		panel.Title = &Element{Text: oc.Title, Color: oc.TitleColor}
	}
	if oc.Desc != "" {
		panel.Desc = &Element{Text: oc.Desc}
	}
	if oc.Glass {
		g := geometry.GlassOverlay(cfg.DarkMode, oc.GlassOpacity)
		panel.Glass = &g
	}

	// Geri sayım: hedef tarih ayarlıysa ve dolmamışsa. Bozuk/geçmiş tarih
	// "dolmuş" sayılır, panel geri sayımsız render edilir.
	if oc.Date != "" {
		if snap, ok := countdown.RemainingFromISO(oc.Date, now); ok {
			panel.Countdown = &snap
		}
	}

	b.Panel = panel
	return b
}

var nonDigits = regexp.MustCompile(`\D`)

func buildContact(cfg cardconfig.Resolved, content Content, opts Options) ContactView {
	cv := ContactView{OffsetY: cfg.ContactOffsetY}

	if cfg.ShowEmail && content.Email != "" {
		cv.Email = &LinkElement{Label: content.Email, Href: "mailto:" + content.Email, Color: cfg.ContactColor}
	}
	if cfg.ShowWebsite && content.Website != "" {
		href := content.Website
		if !strings.HasPrefix(href, "http://") && !strings.HasPrefix(href, "https://") {
			href = "https://" + href
		}
		cv.Website = &LinkElement{Label: content.Website, Href: href, Color: cfg.ContactColor}
	}

	// Pill butonlar: veri mevcut VE açıkça gizlenmemişse, her biri bağımsız.
	if cfg.ShowPhone && content.Phone != "" {
		cv.Pills = append(cv.Pills, Pill{Kind: "phone", Label: "Ara", Href: "tel:" + content.Phone, Color: cfg.ContactColor})
	}
	if cfg.ShowWhatsApp && content.WhatsApp != "" {
		cv.Pills = append(cv.Pills, Pill{
			Kind:  "whatsapp",
			Label: "WhatsApp",
			Href:  "https://wa.me/" + nonDigits.ReplaceAllString(content.WhatsApp, ""),
			Color: cfg.ContactColor,
		})
	}
	// Rehbere ekle: önizleme bağlamında tamamen bastırılır.
	if !opts.Preview {
		cv.Pills = append(cv.Pills, Pill{
			Kind:  "save",
			Label: "Rehbere Ekle",
			Href:  strings.TrimSuffix(opts.Origin, "/") + "/k/" + content.Slug + "/vcard",
			Color: cfg.ContactColor,
		})
	}
	return cv
}

func buildSocial(cfg cardconfig.Resolved, content Content) *SocialView {
	if !cfg.ShowSocial || len(content.Social) == 0 {
		return nil
	}
	sv := &SocialView{OffsetY: cfg.SocialOffsetY}
	for _, link := range content.Social {
		if link.URL == "" {
			continue
		}
		sv.Icons = append(sv.Icons, SocialIcon{PlatformID: link.PlatformID, URL: link.URL, Color: cfg.SocialColor})
	}
	if len(sv.Icons) == 0 {
		return nil
	}
	return sv
}

func buildQR(cfg cardconfig.Resolved, content Content, opts Options) *QRView {
	if !cfg.ShowQR {
		return nil
	}
	d := qrcompose.Compose(
		opts.Origin, opts.BasePath, content.Slug,
		cfg.QRSize, cfg.QRBorderWidth, cfg.QRBorderRadius, cfg.QRBorderColor,
		qrcompose.Options{
			Size:     qrcompose.SizePreview,
			FGColor:  cfg.QRColor,
			BGColor:  cfg.QRBgColor,
			DarkMode: cfg.DarkMode,
		},
	)
	return &QRView{Descriptor: d, Caption: sharetext.QRCaption(opts.Locale), OffsetY: cfg.QROffsetY}
}
