package cardconfig

// Bu dosya üç katmanlı çözümleme kuralının tek adresidir:
//
//	1. kartın kendi override'ı (nil değilse)
//	2. şablonun config değeri (nil değilse)
//	3. alan bazlı sabit fallback
//
// Kaynak ne olursa olsun birleştirme SADECE buradaki resolve* fonksiyonları
// üzerinden yapılır; editör, şablon oluşturucu ve public görünüm aynı
// fonksiyonu paylaşır.

// Alan bazlı sabit fallback değerleri.
const (
	FallbackThemeType     = "color"
	FallbackThemeColor    = "#3b82f6"
	FallbackThemeGradient = "linear-gradient(135deg, #3b82f6 0%, #8b5cf6 100%)"

	FallbackHeaderType    = "classic"
	FallbackHeaderHeight  = 180
	FallbackHeaderOpacity = 60

	FallbackPatternType    = "none"
	FallbackPatternOpacity = 20
	FallbackPatternScale   = 100

	FallbackAvatarStyle       = "circle"
	FallbackAvatarSize        = 120
	FallbackAvatarBorderWidth = 4
	FallbackAvatarBorderColor = "#ffffff"

	FallbackBodyRadius  = 24
	FallbackBodyAlign   = "center"
	FallbackBodyOpacity = 70

	FallbackNameColor    = "#111827"
	FallbackTitleColor   = "#6b7280"
	FallbackBioColor     = "#4b5563"
	FallbackSocialColor  = "#3b82f6"
	FallbackContactColor = "#3b82f6"
	FallbackQRColor      = "#111827"
	FallbackQRBgColor    = "transparent"

	FallbackQRSize         = 112
	FallbackQRBorderColor  = "#e5e7eb"
	FallbackQRBorderRadius = 12

	FallbackOccasionPrefixColor  = "#9ca3af"
	FallbackOccasionNameColor    = "#111827"
	FallbackOccasionWelcomeColor = "#6b7280"
	FallbackOccasionTitleColor   = "#111827"
	FallbackOccasionBgColor      = "rgba(255,255,255,0.9)"
	FallbackOccasionGlassOpacity = 80
)

// Resolved çözümlenmiş, pointer içermeyen nihai parametre kümesi.
// Renderer yalnızca bu yapıyı tüketir.
type Resolved struct {
	ThemeType     string
	ThemeColor    string
	ThemeGradient string
	ThemeImage    string
	DarkMode      bool

	HeaderType         string
	HeaderHeight       int
	HeaderColor        string // boş ise tema rengi kullanılır
	HeaderGlassy       bool
	HeaderOpacity      int
	HeaderCustomImage  string
	HeaderCustomVector string

	PatternType    string
	PatternOpacity int
	PatternScale   int

	AvatarStyle       string
	AvatarSize        int
	AvatarBorderWidth int
	AvatarBorderColor string
	AvatarOffsetY     int

	BodyOffsetY int
	BodyRadius  int
	BodyAlign   string
	BodyGlassy  bool
	BodyOpacity int

	NameColor    string
	TitleColor   string
	BioColor     string
	SocialColor  string
	ContactColor string
	QRColor      string
	QRBgColor    string

	ShowName     bool
	ShowTitle    bool
	ShowCompany  bool
	ShowBio      bool
	ShowEmail    bool
	ShowPhone    bool
	ShowWhatsApp bool
	ShowWebsite  bool
	ShowSocial   bool
	ShowQR       bool
	ShowOccasion bool

	NameOffsetY    int
	TitleOffsetY   int
	BioOffsetY     int
	ContactOffsetY int
	SocialOffsetY  int
	QROffsetY      int

	QRSize         int
	QRBorderWidth  int
	QRBorderColor  string
	QRBorderRadius int

	Occasion ResolvedOccasion
}

// ResolvedOccasion davet alt kaydının çözümlenmiş hali.
type ResolvedOccasion struct {
	Title  string
	Desc   string
	Date   string
	MapURL string

	PrefixColor  string
	NameColor    string
	WelcomeColor string
	TitleColor   string
	BgColor      string

	Glass        bool
	GlassOpacity int
	Floating     bool

	InvitationPrefix  string
	InvitationWelcome string
	InvitationYOffset int
}

// Resolve kart override'ları ile şablon config'ini alan alan birleştirir.
func Resolve(instance, template Params) Resolved {
	return Resolved{
		ThemeType:     resolveStr(instance.ThemeType, template.ThemeType, FallbackThemeType),
		ThemeColor:    resolveStr(instance.ThemeColor, template.ThemeColor, FallbackThemeColor),
		ThemeGradient: resolveStr(instance.ThemeGradient, template.ThemeGradient, FallbackThemeGradient),
		ThemeImage:    resolveStr(instance.ThemeImage, template.ThemeImage, ""),
		DarkMode:      resolveFlag(instance.DarkMode, template.DarkMode, false),

		HeaderType:         resolveStr(instance.HeaderType, template.HeaderType, FallbackHeaderType),
		HeaderHeight:       resolveInt(instance.HeaderHeight, template.HeaderHeight, FallbackHeaderHeight),
		HeaderColor:        resolveStr(instance.HeaderColor, template.HeaderColor, ""),
		HeaderGlassy:       resolveFlag(instance.HeaderGlassy, template.HeaderGlassy, false),
		HeaderOpacity:      resolveInt(instance.HeaderOpacity, template.HeaderOpacity, FallbackHeaderOpacity),
		HeaderCustomImage:  resolveStr(instance.HeaderCustomImage, template.HeaderCustomImage, ""),
		HeaderCustomVector: resolveStr(instance.HeaderCustomVector, template.HeaderCustomVector, ""),

		PatternType:    resolveStr(instance.PatternType, template.PatternType, FallbackPatternType),
		PatternOpacity: resolveInt(instance.PatternOpacity, template.PatternOpacity, FallbackPatternOpacity),
		PatternScale:   resolveInt(instance.PatternScale, template.PatternScale, FallbackPatternScale),

		AvatarStyle:       resolveStr(instance.AvatarStyle, template.AvatarStyle, FallbackAvatarStyle),
		AvatarSize:        resolveInt(instance.AvatarSize, template.AvatarSize, FallbackAvatarSize),
		AvatarBorderWidth: resolveInt(instance.AvatarBorderWidth, template.AvatarBorderWidth, FallbackAvatarBorderWidth),
		AvatarBorderColor: resolveStr(instance.AvatarBorderColor, template.AvatarBorderColor, FallbackAvatarBorderColor),
		AvatarOffsetY:     resolveInt(instance.AvatarOffsetY, template.AvatarOffsetY, 0),

		BodyOffsetY: resolveInt(instance.BodyOffsetY, template.BodyOffsetY, 0),
		BodyRadius:  resolveInt(instance.BodyRadius, template.BodyRadius, FallbackBodyRadius),
		BodyAlign:   resolveStr(instance.BodyAlign, template.BodyAlign, FallbackBodyAlign),
		BodyGlassy:  resolveFlag(instance.BodyGlassy, template.BodyGlassy, false),
		BodyOpacity: resolveInt(instance.BodyOpacity, template.BodyOpacity, FallbackBodyOpacity),

		NameColor:    resolveStr(instance.NameColor, template.NameColor, FallbackNameColor),
		TitleColor:   resolveStr(instance.TitleColor, template.TitleColor, FallbackTitleColor),
		BioColor:     resolveStr(instance.BioColor, template.BioColor, FallbackBioColor),
		SocialColor:  resolveStr(instance.SocialColor, template.SocialColor, FallbackSocialColor),
		ContactColor: resolveStr(instance.ContactColor, template.ContactColor, FallbackContactColor),
		QRColor:      resolveStr(instance.QRColor, template.QRColor, FallbackQRColor),
		QRBgColor:    resolveStr(instance.QRBgColor, template.QRBgColor, FallbackQRBgColor),

		ShowName:     resolveShow(instance.ShowName, template.ShowName),
		ShowTitle:    resolveShow(instance.ShowTitle, template.ShowTitle),
		ShowCompany:  resolveShow(instance.ShowCompany, template.ShowCompany),
		ShowBio:      resolveShow(instance.ShowBio, template.ShowBio),
		ShowEmail:    resolveShow(instance.ShowEmail, template.ShowEmail),
		ShowPhone:    resolveShow(instance.ShowPhone, template.ShowPhone),
		ShowWhatsApp: resolveShow(instance.ShowWhatsApp, template.ShowWhatsApp),
		ShowWebsite:  resolveShow(instance.ShowWebsite, template.ShowWebsite),
		ShowSocial:   resolveShow(instance.ShowSocial, template.ShowSocial),
		ShowQR:       resolveShow(instance.ShowQR, template.ShowQR),
		ShowOccasion: resolveFlag(instance.ShowOccasion, template.ShowOccasion, false),

		NameOffsetY:    resolveInt(instance.NameOffsetY, template.NameOffsetY, 0),
		TitleOffsetY:   resolveInt(instance.TitleOffsetY, template.TitleOffsetY, 0),
		BioOffsetY:     resolveInt(instance.BioOffsetY, template.BioOffsetY, 0),
		ContactOffsetY: resolveInt(instance.ContactOffsetY, template.ContactOffsetY, 0),
		SocialOffsetY:  resolveInt(instance.SocialOffsetY, template.SocialOffsetY, 0),
		QROffsetY:      resolveInt(instance.QROffsetY, template.QROffsetY, 0),

		QRSize:         resolveInt(instance.QRSize, template.QRSize, FallbackQRSize),
		QRBorderWidth:  resolveInt(instance.QRBorderWidth, template.QRBorderWidth, 0),
		QRBorderColor:  resolveStr(instance.QRBorderColor, template.QRBorderColor, FallbackQRBorderColor),
		QRBorderRadius: resolveInt(instance.QRBorderRadius, template.QRBorderRadius, FallbackQRBorderRadius),

		Occasion: resolveOccasion(instance.Occasion, template.Occasion),
	}
}

func resolveOccasion(instance, template OccasionParams) ResolvedOccasion {
	return ResolvedOccasion{
		Title:  resolveStr(instance.Title, template.Title, ""),
		Desc:   resolveStr(instance.Desc, template.Desc, ""),
		Date:   resolveStr(instance.Date, template.Date, ""),
		MapURL: resolveStr(instance.MapURL, template.MapURL, ""),

		PrefixColor:  resolveStr(instance.PrefixColor, template.PrefixColor, FallbackOccasionPrefixColor),
		NameColor:    resolveStr(instance.NameColor, template.NameColor, FallbackOccasionNameColor),
		WelcomeColor: resolveStr(instance.WelcomeColor, template.WelcomeColor, FallbackOccasionWelcomeColor),
		TitleColor:   resolveStr(instance.TitleColor, template.TitleColor, FallbackOccasionTitleColor),
		BgColor:      resolveStr(instance.BgColor, template.BgColor, FallbackOccasionBgColor),

		Glass:        resolveFlag(instance.Glass, template.Glass, false),
		GlassOpacity: resolveInt(instance.GlassOpacity, template.GlassOpacity, FallbackOccasionGlassOpacity),
		Floating:     resolveFlag(instance.Floating, template.Floating, false),

		InvitationPrefix:  resolveStr(instance.InvitationPrefix, template.InvitationPrefix, ""),
		InvitationWelcome: resolveStr(instance.InvitationWelcome, template.InvitationWelcome, ""),
		InvitationYOffset: resolveInt(instance.InvitationYOffset, template.InvitationYOffset, 0),
	}
}

// resolveStr string alan için üç katmanlı çözümleme.
// Boş string geçerli bir override'dır, fallback'e DÜŞÜLMEZ; yalnızca nil düşer.
func resolveStr(instance, template *string, fallback string) string {
	if instance != nil {
		return *instance
	}
	if template != nil {
		return *template
	}
	return fallback
}

func resolveInt(instance, template *int, fallback int) int {
	if instance != nil {
		return *instance
	}
	if template != nil {
		return *template
	}
	return fallback
}

// resolveFlag genel bool çözümlemesi (mod anahtarları gibi varsayılanı
// false olabilen alanlar için).
func resolveFlag(instance, template *bool, fallback bool) bool {
	if instance != nil {
		return *instance
	}
	if template != nil {
		return *template
	}
	return fallback
}

// resolveShow görünürlük bayrağı sözleşmesi: bir eleman SADECE açıkça
// false ayarlanmışsa gizlidir. nil her iki katmanda da "görünür" demektir.
// "Falsy gizler" şeklindeki bir kısayol burada hatadır; boş string ya da 0
// bu fonksiyonun konusu bile değildir, yalnız *bool çözümlenir.
func resolveShow(instance, template *bool) bool {
	return resolveFlag(instance, template, true)
}

// Alpha 0-100 aralığında saklanan opaklığı 0-1 alfa kanalına çevirir.
// Aralık dışı değerler kırpılır.
func Alpha(opacity int) float64 {
	if opacity < 0 {
		opacity = 0
	}
	if opacity > 100 {
		opacity = 100
	}
	return float64(opacity) / 100.0
}
