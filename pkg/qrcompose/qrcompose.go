package qrcompose

import (
	"fmt"
	"image/color"
	"net/url"
	"strings"

	qrcode "github.com/skip2/go-qrcode"
)

// Harici QR görsel uç noktası. Composer ağ çağrısı yapmaz; yalnızca bu uç
// noktaya istek URL'si kurar.
const endpoint = "https://api.qrserver.com/v1/create-qr-code/"

// Kaynak çözünürlükler: kart önizlemesi 250, paylaşım ekranı 300 kullanır.
const (
	SizePreview = 250
	SizeShare   = 300
)

// Options QR görsel isteğinin parametreleri.
type Options struct {
	Size    int    // kaynak px (250/300); 0 ise SizePreview
	FGColor string // hex; baştaki # uç noktaya gönderilmeden atılır
	BGColor string // hex veya "transparent"
	// DarkMode "transparent" arka planın hangi literal hex'e çevrileceğini
	// belirler; uç noktanın şeffaflık kavramı yoktur.
	DarkMode bool
}

// Descriptor kompoze edilmiş QR bloğu: görsel isteği + kozmetik sarmalayıcı.
// Kenarlık/yarıçap/boyut görselin etrafındaki süslemedir, QR yüküne dahil değildir.
type Descriptor struct {
	ImageURL     string
	Payload      string // QR'a gömülen veri (public kart URL'si)
	DisplaySize  int    // px, sarmalayıcı görünüm boyutu
	BorderWidth  int
	BorderColor  string
	BorderRadius int
}

// CardURL kartın public URL'sini üretir: {origin}{path}?u={slug}
//
// Düz query-parametresi şeması kasıtlıdır: tek sayfalık istemci, sunucu
// tarafı yönlendirme desteği olmayan herhangi bir statik host üzerinde
// parametreyi kendisi çözebilir. Bu biçim dış sözleşmedir; host varsayımından
// bağımsız değiştirilemez.
func CardURL(origin, basePath, slug string) string {
	origin = strings.TrimSuffix(origin, "/")
	if basePath == "" {
		basePath = "/"
	}
	if !strings.HasPrefix(basePath, "/") {
		basePath = "/" + basePath
	}
	return origin + basePath + "?u=" + url.QueryEscape(slug)
}

// BuildURL verilen veri için harici uç nokta istek URL'sini kurar.
// Saf string üretimidir; ağ çağrısı yapılmaz.
func BuildURL(data string, o Options) string {
	size := o.Size
	if size <= 0 {
		size = SizePreview
	}

	fg := strings.TrimPrefix(o.FGColor, "#")
	if fg == "" {
		fg = "000000"
	}

	bg := strings.TrimPrefix(o.BGColor, "#")
	if bg == "" || strings.EqualFold(bg, "transparent") {
		// Uç noktada şeffaflık yok: moda uygun literal hex'e çevrilir.
		if o.DarkMode {
			bg = "1f2937"
		} else {
			bg = "ffffff"
		}
	}

	q := url.Values{}
	q.Set("size", fmt.Sprintf("%dx%d", size, size))
	q.Set("data", data)
	q.Set("color", fg)
	q.Set("bgcolor", bg)
	return endpoint + "?" + q.Encode()
}

// Compose kart için tam QR blok tanımlayıcısını üretir.
func Compose(origin, basePath, slug string, displaySize, borderWidth, borderRadius int, borderColor string, o Options) Descriptor {
	payload := CardURL(origin, basePath, slug)
	return Descriptor{
		ImageURL:     BuildURL(payload, o),
		Payload:      payload,
		DisplaySize:  displaySize,
		BorderWidth:  borderWidth,
		BorderColor:  borderColor,
		BorderRadius: borderRadius,
	}
}

// PNG aynı yükü platformun kendi ürettiği PNG olarak render eder
// (harici uç noktaya bağımlı kalmayan /qr.png rotası için).
func PNG(payload string, size int, fgHex, bgHex string) ([]byte, error) {
	if size <= 0 {
		size = SizePreview
	}
	qr, err := qrcode.New(payload, qrcode.Medium)
	if err != nil {
		return nil, fmt.Errorf("qr üretilemedi: %w", err)
	}
	qr.ForegroundColor = parseHexColor(fgHex, color.Black)
	qr.BackgroundColor = parseHexColor(bgHex, color.White)
	return qr.PNG(size)
}

// parseHexColor #rgb/#rrggbb hex rengini çözer; çözülemezse fallback döner.
func parseHexColor(s string, fallback color.Color) color.Color {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) == 3 {
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}
	if len(s) != 6 {
		return fallback
	}
	var r, g, b uint8
	if _, err := fmt.Sscanf(s, "%02x%02x%02x", &r, &g, &b); err != nil {
		return fallback
	}
	return color.RGBA{R: r, G: g, B: b, A: 255}
}
