package geometry

import "fmt"

// Body içerik alanının başlığa göre yerleşim tanımı.
type Body struct {
	// MarginTop başlığın altındaki dikey konum (px). Negatif değer gövdeyi
	// başlığın üstüne bindirir.
	MarginTop int

	// Yan şerit başlıklarda gövdenin yatay içe çekilmesi (yüzde).
	InsetLeftPct  int
	InsetRightPct int
}

// Gövde dikey yerleşim kuralları.
const (
	defaultBodyPullUp = -60 // varsayılan: 60px yukarı çek, başlıkla bindir
	sideBodyMargin    = 40
	overlayFactor     = 0.4
)

// BodyBox başlık tipine göre gövde yerleşimini hesaplar.
// bodyOffsetY her durumda toplama eklenen yapılandırılabilir kaydırmadır.
func BodyBox(shape HeaderShape, headerHeight, bodyOffsetY int) Body {
	b := Body{}
	switch shape {
	case ShapeOverlay:
		b.MarginTop = int(overlayFactor * float64(headerHeight))
	case ShapeSideLeft:
		b.MarginTop = sideBodyMargin
		b.InsetLeftPct = 28
		b.InsetRightPct = 2
	case ShapeSideRight:
		b.MarginTop = sideBodyMargin
		b.InsetLeftPct = 2
		b.InsetRightPct = 28
	default:
		b.MarginTop = defaultBodyPullUp
	}
	b.MarginTop += bodyOffsetY
	return b
}

// PatternType başlık dolgusunun üstünde tekrar eden desen katmanı.
type PatternType string

const (
	PatternNone  PatternType = "none"
	PatternDots  PatternType = "dots"
	PatternGrid  PatternType = "grid"
	PatternLines PatternType = "lines"
	PatternCross PatternType = "cross"
)

// Pattern render'a hazır desen katmanı.
type Pattern struct {
	Type    PatternType
	CellPx  int     // taban 20x20 hücrenin ölçeklenmiş boyutu
	Tint    string  // koyu modda beyaz, açık modda siyah
	Opacity float64 // 0-1
	// CSS background-image eşdeğeri; Tile boşsa desen yok demektir.
	Tile string
}

const patternBaseCell = 20

// Tile desen katmanını üretir. scalePct 20-300 aralığına kırpılır.
func Tile(p PatternType, opacityPct, scalePct int, dark bool) Pattern {
	if p == "" || p == PatternNone {
		return Pattern{Type: PatternNone}
	}
	if scalePct < 20 {
		scalePct = 20
	}
	if scalePct > 300 {
		scalePct = 300
	}

	tint := "rgba(0,0,0,1)"
	if dark {
		tint = "rgba(255,255,255,1)"
	}

	cell := patternBaseCell * scalePct / 100

	var tile string
	switch p {
	case PatternDots:
		tile = fmt.Sprintf("radial-gradient(%s 1.5px, transparent 1.5px)", tint)
	case PatternGrid:
		tile = fmt.Sprintf("linear-gradient(%s 1px, transparent 1px), linear-gradient(90deg, %s 1px, transparent 1px)", tint, tint)
	case PatternLines:
		tile = fmt.Sprintf("linear-gradient(45deg, %s 1px, transparent 1px)", tint)
	case PatternCross:
		tile = fmt.Sprintf("linear-gradient(%s 1px, transparent 1px), linear-gradient(90deg, %s 1px, transparent 1px), linear-gradient(45deg, %s 1px, transparent 1px)", tint, tint, tint)
	default:
		return Pattern{Type: PatternNone}
	}

	if opacityPct < 0 {
		opacityPct = 0
	}
	if opacityPct > 100 {
		opacityPct = 100
	}

	return Pattern{
		Type:    p,
		CellPx:  cell,
		Tint:    tint,
		Opacity: float64(opacityPct) / 100.0,
		Tile:    tile,
	}
}
