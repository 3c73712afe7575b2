package cardrender

import (
	"kart.link/pkg/cardconfig"
	"kart.link/pkg/countdown"
	"kart.link/pkg/geometry"
	"kart.link/pkg/qrcompose"
)

// Content render edilecek kartın içerik alanları. Persistans modeline
// bağımlılık yoktur; servis katmanı CardDetail'den bu yapıya kopyalar.
type Content struct {
	Slug         string
	Name         string
	Title        string
	Company      string
	Bio          string
	Email        string
	Phone        string
	WhatsApp     string
	Website      string
	ProfileImage string
	Social       []cardconfig.SocialLink
}

// View bir kartın eksiksiz görsel ağacı. Şablon katmanı yalnızca bu yapıyı
// tüketir; render sırasında başka kaynak okunmaz (global durum yok, çoklu
// kart aynı anda çapraz bulaşma olmadan render edilebilir).
type View struct {
	Slug     string
	DarkMode bool

	Background Background
	Header     HeaderView
	Body       BodyView
	Avatar     *AvatarView

	// İçerik modu: birleşik tip. Standard ve Occasion'dan tam olarak biri
	// doludur; karşılıklı dışlama yapısal garantidir.
	Block Block

	Contact ContactView
	Social  *SocialView
	QR      *QRView
}

// Background kartın en arka katmanı. Başlık kendi dolgusunu bunun üstüne
// ayrıca çizer.
type Background struct {
	Kind    string // color | gradient | image
	Value   string // renk, gradient tanımı veya görsel referansı
	Blurred bool   // image türünde arka plan bulanık/ölçekli çizilir
	Opacity float64
}

// HeaderView başlık katmanı: geometri + dolgu + opsiyonel cam ve desen.
type HeaderView struct {
	Geometry geometry.Header
	// Fill başlık dolgusu (renk ya da gradient). Custom asset varsa boş olabilir.
	Fill    string
	Glass   *geometry.Glass
	Pattern *geometry.Pattern
}

// BodyView içerik alanı yerleşimi.
type BodyView struct {
	Geometry geometry.Body
	RadiusPx int
	Align    string // start | center | end
	Glass    *geometry.Glass
}

// AvatarView avatar maskesi ve çerçevesi. Başlık/gövde dikişine demirlenir.
type AvatarView struct {
	ImageURL    string
	Shape       string // circle | squircle
	CornerPct   int    // squircle köşe yuvarlaması (%)
	SizePx      int
	BorderWidth int
	BorderColor string
	OffsetY     int
}

// Block içerik modu birleşik tipi.
type Block interface{ isBlock() }

// Element tek metin elemanı: metin + renk + bağımsız dikey nudge.
type Element struct {
	Text    string
	Color   string
	OffsetY int
}

// StandardBlock standart kimlik bloğu. nil alan "eleman yok" demektir.
type StandardBlock struct {
	Name      *Element
	TitleLine *Element // ünvan • şirket (ikisi de varsa " • " ile birleşik)
	Bio       *Element // alıntı panelinde gösterilir
}

func (*StandardBlock) isBlock() {}

// OccasionBlock davet/etkinlik bloğu. OffsetY (invitationYOffset) prefix,
// isim, karşılama ve paneli TEK birim olarak kaydırır.
type OccasionBlock struct {
	Prefix  *Element
	Name    *Element
	Welcome *Element
	Panel   OccasionPanel
	OffsetY int
}

func (*OccasionBlock) isBlock() {}

// OccasionPanel davet bloğunun ayrık "etkinlik kartı" paneli.
type OccasionPanel struct {
	Title *Element
	Desc  *Element
	// Countdown yalnızca hedef tarih ayarlıysa VE süresi dolmamışsa doludur.
	Countdown *countdown.Snapshot
	MapURL    string
	BgColor   string
	Glass     *geometry.Glass
	Floating  bool
}

// ContactView iletişim öğeleri: satır içi linkler + eşit genişlikli pill butonlar.
type ContactView struct {
	Email   *LinkElement
	Website *LinkElement
	Pills   []Pill
	OffsetY int
}

// LinkElement satır içi iletişim linki.
type LinkElement struct {
	Label string
	Href  string
	Color string
}

// Pill tek satırda eşit genişlikli buton (telefon / whatsapp / rehbere ekle).
type Pill struct {
	Kind  string // phone | whatsapp | save
	Label string
	Href  string
	Color string
}

// SocialView sarmalanan sosyal ikon satırı.
type SocialView struct {
	Icons   []SocialIcon
	OffsetY int
}

// SocialIcon tek sosyal bağlantı ikonu.
type SocialIcon struct {
	PlatformID string
	URL        string
	Color      string
}

// QRView kompoze QR bloğu + başlık altı yazısı.
type QRView struct {
	Descriptor qrcompose.Descriptor
	Caption    string
	OffsetY    int
}
