package cardconfig

// Params bir kartın render edilebilir tüm görsel parametrelerini tutar.
// Aynı yapı hem kartın kendi override'ları (CardDetail.Overrides) hem de
// şablonun varsayılanları (Template.Config) için kullanılır; çözümleme
// (Resolve) bu iki paralel kaydı alan alan birleştirir.
//
// Her alan pointer'dır: nil "ayarlanmamış" demektir ve bir alt katmana
// düşülür. JSON'da olmayan anahtar da, açıkça null yazılmış anahtar da nil
// olarak unmarshal edilir; ikisi de "ayarlanmamış" sayılır.
type Params struct {
	// Tema
	ThemeType     *string `json:"themeType,omitempty"` // color | gradient | image
	ThemeColor    *string `json:"themeColor,omitempty"`
	ThemeGradient *string `json:"themeGradient,omitempty"`
	ThemeImage    *string `json:"themeImage,omitempty"` // data-URI veya URL
	DarkMode      *bool   `json:"darkMode,omitempty"`

	// Başlık (header)
	HeaderType         *string `json:"headerType,omitempty"`
	HeaderHeight       *int    `json:"headerHeight,omitempty"`
	HeaderColor        *string `json:"headerColor,omitempty"`
	HeaderGlassy       *bool   `json:"headerGlassy,omitempty"`
	HeaderOpacity      *int    `json:"headerOpacity,omitempty"` // 0-100
	HeaderCustomImage  *string `json:"headerCustomImage,omitempty"`
	HeaderCustomVector *string `json:"headerCustomVector,omitempty"`

	// Desen (pattern) katmanı
	PatternType    *string `json:"patternType,omitempty"` // dots | grid | lines | cross | none
	PatternOpacity *int    `json:"patternOpacity,omitempty"` // 0-100
	PatternScale   *int    `json:"patternScale,omitempty"`   // 20-300

	// Avatar
	AvatarStyle       *string `json:"avatarStyle,omitempty"` // circle | squircle | none
	AvatarSize        *int    `json:"avatarSize,omitempty"`
	AvatarBorderWidth *int    `json:"avatarBorderWidth,omitempty"`
	AvatarBorderColor *string `json:"avatarBorderColor,omitempty"`
	AvatarOffsetY     *int    `json:"avatarOffsetY,omitempty"`

	// Gövde (body)
	BodyOffsetY *int    `json:"bodyOffsetY,omitempty"`
	BodyRadius  *int    `json:"bodyRadius,omitempty"`
	BodyAlign   *string `json:"bodyAlign,omitempty"` // start | center | end
	BodyGlassy  *bool   `json:"bodyGlassy,omitempty"`
	BodyOpacity *int    `json:"bodyOpacity,omitempty"` // 0-100

	// Eleman renkleri
	NameColor    *string `json:"nameColor,omitempty"`
	TitleColor   *string `json:"titleColor,omitempty"`
	BioColor     *string `json:"bioColor,omitempty"`
	SocialColor  *string `json:"socialColor,omitempty"`
	ContactColor *string `json:"contactColor,omitempty"`
	QRColor      *string `json:"qrColor,omitempty"`
	QRBgColor    *string `json:"qrBgColor,omitempty"` // hex veya "transparent"

	// Görünürlük bayrakları. Sözleşme: SADECE açıkça false gizler;
	// nil ve true görünür demektir. (bkz. Resolve / resolveShow)
	ShowName     *bool `json:"showName,omitempty"`
	ShowTitle    *bool `json:"showTitle,omitempty"`
	ShowCompany  *bool `json:"showCompany,omitempty"`
	ShowBio      *bool `json:"showBio,omitempty"`
	ShowEmail    *bool `json:"showEmail,omitempty"`
	ShowPhone    *bool `json:"showPhone,omitempty"`
	ShowWhatsApp *bool `json:"showWhatsapp,omitempty"`
	ShowWebsite  *bool `json:"showWebsite,omitempty"`
	ShowSocial   *bool `json:"showSocial,omitempty"`
	ShowQR       *bool `json:"showQr,omitempty"`

	// Mod anahtarı: true ise davet (occasion) bloğu, değilse standart blok.
	// Diğer bayrakların aksine varsayılanı false'tur.
	ShowOccasion *bool `json:"showOccasion,omitempty"`

	// Dikey nudge offset'leri (px). Ek görsel kaydırmadır, kardeş
	// elemanların yerleşimini etkilemez.
	NameOffsetY    *int `json:"nameOffsetY,omitempty"`
	TitleOffsetY   *int `json:"titleOffsetY,omitempty"`
	BioOffsetY     *int `json:"bioOffsetY,omitempty"`
	ContactOffsetY *int `json:"contactOffsetY,omitempty"`
	SocialOffsetY  *int `json:"socialOffsetY,omitempty"`
	QROffsetY      *int `json:"qrOffsetY,omitempty"`

	// QR bloğu kozmetik sarmalayıcısı
	QRSize         *int    `json:"qrSize,omitempty"`
	QRBorderWidth  *int    `json:"qrBorderWidth,omitempty"`
	QRBorderColor  *string `json:"qrBorderColor,omitempty"`
	QRBorderRadius *int    `json:"qrBorderRadius,omitempty"`

	// Davet/etkinlik alt kaydı
	Occasion OccasionParams `json:"occasion,omitempty"`
}

// OccasionParams davet modunun alt kaydı. Params ile aynı pointer sözleşmesi.
type OccasionParams struct {
	Title  *string `json:"title,omitempty"`
	Desc   *string `json:"desc,omitempty"`
	Date   *string `json:"date,omitempty"` // ISO 8601; geçersiz/geçmiş tarih "süresi dolmuş" sayılır
	MapURL *string `json:"mapUrl,omitempty"`

	PrefixColor  *string `json:"prefixColor,omitempty"`
	NameColor    *string `json:"nameColor,omitempty"`
	WelcomeColor *string `json:"welcomeColor,omitempty"`
	TitleColor   *string `json:"titleColor,omitempty"`
	BgColor      *string `json:"bgColor,omitempty"`

	Glass        *bool `json:"glass,omitempty"`
	GlassOpacity *int  `json:"glassOpacity,omitempty"` // 0-100
	Floating     *bool `json:"floating,omitempty"`

	InvitationPrefix  *string `json:"invitationPrefix,omitempty"`
	InvitationWelcome *string `json:"invitationWelcome,omitempty"`
	InvitationYOffset *int    `json:"invitationYOffset,omitempty"`
}

// SocialLink kart üzerindeki tek bir sosyal medya bağlantısı.
// Sıra korunur, tekillik zorlanmaz.
type SocialLink struct {
	PlatformID string `json:"platformId"`
	URL        string `json:"url"`
}

// Yardımcı kurucular (testlerde ve servis katmanında literal yazımı kısaltır).

func Str(s string) *string { return &s }
func Int(i int) *int       { return &i }
func Bool(b bool) *bool    { return &b }
