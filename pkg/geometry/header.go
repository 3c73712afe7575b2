package geometry

import (
	"fmt"
	"strings"

	"kart.link/pkg/cardconfig"
)

// HeaderShape başlık şekli tanımlayıcısı. 16 değerli kapalı küme.
type HeaderShape string

const (
	ShapeClassic     HeaderShape = "classic"
	ShapeOverlay     HeaderShape = "overlay"
	ShapeCurved      HeaderShape = "curved"
	ShapeDiagonal    HeaderShape = "diagonal"
	ShapeSplitLeft   HeaderShape = "split-left"
	ShapeSplitRight  HeaderShape = "split-right"
	ShapeWave        HeaderShape = "wave"
	ShapeSideLeft    HeaderShape = "side-left"
	ShapeSideRight   HeaderShape = "side-right"
	ShapeFloating    HeaderShape = "floating"
	ShapeGlassCard   HeaderShape = "glass-card"
	ShapeModernSplit HeaderShape = "modern-split"
	ShapeTopBar      HeaderShape = "top-bar"
	ShapeMinimal     HeaderShape = "minimal"
	ShapeHero        HeaderShape = "hero"
	ShapeCustomAsset HeaderShape = "custom-asset"
)

// Tip bazlı zorunlu yükseklikler; yapılandırılmış headerHeight'ı ezerler.
const (
	topBarHeight  = 12
	minimalHeight = 4
	heroHeight    = 350
)

// Header bir başlık elemanının somut kutu tanımıdır.
type Header struct {
	Shape  HeaderShape
	Height int // px; tip bazlı zorlamalar uygulanmış hali

	// ClipPath CSS clip-path eşdeğeri (polygon/ellipse). Boşsa kırpma yok.
	ClipPath string

	// Overlay true ise başlık içerik gövdesinin ALTINDA (z-order) durur ve
	// gövde yukarı çekilerek üstüne bindirilir.
	Overlay bool

	// Side "left"/"right" ise başlık %25 genişlikte dikey şerittir.
	// FullHeight bu şeritlerde piksel yüksekliği yerine %100 boy demektir.
	Side       string
	WidthPct   int // 100 veya 25
	FullHeight bool

	// Floating/glass-card varyantları: kenarlardan içe çekme + köşe yuvarlama.
	InsetPx  int
	RadiusPx int

	// ForceGlass glass-card tipinde şekil gereği zorunlu translüsenliktir;
	// headerGlassy bayrağından bağımsızdır.
	ForceGlass bool

	// Custom varlık (yalnız custom-asset tipi doldurur).
	Asset *CustomAsset
}

// HeaderBox şekil tanımlayıcısı + yükseklikten somut başlık kutusu üretir.
// Bilinmeyen tip classic'e düşer; render asla hata üretmez.
func HeaderBox(shape HeaderShape, heightPx int, asset *CustomAsset) Header {
	h := Header{Shape: shape, Height: heightPx, WidthPct: 100}

	switch shape {
	case ShapeClassic:
		// tam genişlik dikdörtgen, olduğu gibi
	case ShapeOverlay:
		h.Overlay = true
	case ShapeCurved:
		// alt kenar üst-merkeze ankorlu tam genişlik elips yayı
		h.ClipPath = "ellipse(100% 100% at 50% 0%)"
	case ShapeDiagonal:
		// soldan %85, sağdan %100 yüksekliğe inen düz kesik
		h.ClipPath = "polygon(0 0, 100% 0, 100% 100%, 0 85%)"
	case ShapeSplitLeft:
		h.ClipPath = "polygon(0 0, 100% 0, 100% 100%, 0 60%)"
	case ShapeSplitRight:
		h.ClipPath = "polygon(0 0, 100% 0, 100% 60%, 0 100%)"
	case ShapeWave:
		h.ClipPath = wavePolygon()
	case ShapeSideLeft:
		h.Side = "left"
		h.WidthPct = 25
		h.FullHeight = true
	case ShapeSideRight:
		h.Side = "right"
		h.WidthPct = 25
		h.FullHeight = true
	case ShapeFloating:
		h.InsetPx = 16
		h.RadiusPx = 32
	case ShapeGlassCard:
		h.InsetPx = 24
		h.RadiusPx = 40
		h.ForceGlass = true
	case ShapeModernSplit:
		// sağ alt köşe %100 -> %75 genişliğe diyagonal kesik, sol kenar tam boy
		h.ClipPath = "polygon(0 0, 100% 0, 100% 75%, 75% 100%, 0 100%)"
	case ShapeTopBar:
		h.Height = topBarHeight
	case ShapeMinimal:
		h.Height = minimalHeight
	case ShapeHero:
		h.Height = heroHeight
	case ShapeCustomAsset:
		h.Asset = asset
	default:
		h.Shape = ShapeClassic
	}
	return h
}

// wavePolygon alt kenarı 13 noktalı sabit dalga formuyla değiştiren polygon.
// İki üst köşe + 13 dalga noktası; dalga sağdan sola süpürülür.
func wavePolygon() string {
	xs := []int{100, 92, 83, 75, 67, 58, 50, 42, 33, 25, 17, 8, 0}
	ys := []int{85, 90, 95, 90, 85, 90, 95, 90, 85, 90, 95, 90, 85}

	parts := make([]string, 0, len(xs)+2)
	parts = append(parts, "0 0", "100% 0")
	for i := range xs {
		parts = append(parts, fmt.Sprintf("%d%% %d%%", xs[i], ys[i]))
	}
	return "polygon(" + strings.Join(parts, ", ") + ")"
}

// Glass başlık üstüne bindirilen translüsen katman tanımı. Şekil kırpmasının
// YERİNE geçmez, üzerine kompoze edilir.
type Glass struct {
	Fill         string // rgba() dolgu
	BlurPx       int
	BottomBorder string
}

// GlassOverlay headerGlassy (veya glass-card zorlaması) için katman üretir.
// Koyu modda koyuya yakın, açık modda beyaza yakın dolgu; alfa = opacity/100.
func GlassOverlay(dark bool, opacity int) Glass {
	alpha := cardconfig.Alpha(opacity)
	fill := fmt.Sprintf("rgba(255, 255, 255, %.2f)", alpha)
	border := "1px solid rgba(0, 0, 0, 0.08)"
	if dark {
		fill = fmt.Sprintf("rgba(15, 15, 20, %.2f)", alpha)
		border = "1px solid rgba(255, 255, 255, 0.08)"
	}
	return Glass{Fill: fill, BlurPx: 12, BottomBorder: border}
}
