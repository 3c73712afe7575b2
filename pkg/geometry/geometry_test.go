package geometry

import (
	"html/template"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeaderBoxForcedHeights(t *testing.T) {
	// Tip bazlı yükseklik, yapılandırılan değeri ezer.
	assert.Equal(t, 12, HeaderBox(ShapeTopBar, 500, nil).Height)
	assert.Equal(t, 4, HeaderBox(ShapeMinimal, 500, nil).Height)
	assert.Equal(t, 350, HeaderBox(ShapeHero, 80, nil).Height)

	// Diğer tipler yapılandırılan yüksekliği korur.
	assert.Equal(t, 500, HeaderBox(ShapeClassic, 500, nil).Height)
	assert.Equal(t, 180, HeaderBox(ShapeCurved, 180, nil).Height)
}

func TestHeaderBoxShapes(t *testing.T) {
	h := HeaderBox(ShapeCurved, 180, nil)
	assert.Equal(t, "ellipse(100% 100% at 50% 0%)", h.ClipPath)

	h = HeaderBox(ShapeDiagonal, 180, nil)
	assert.Equal(t, "polygon(0 0, 100% 0, 100% 100%, 0 85%)", h.ClipPath)

	// split-left ve split-right birbirinin aynası
	l := HeaderBox(ShapeSplitLeft, 180, nil)
	r := HeaderBox(ShapeSplitRight, 180, nil)
	assert.Contains(t, l.ClipPath, "0 60%")
	assert.Contains(t, r.ClipPath, "100% 60%")
	assert.NotEqual(t, l.ClipPath, r.ClipPath)

	h = HeaderBox(ShapeOverlay, 180, nil)
	assert.True(t, h.Overlay)
	assert.Empty(t, h.ClipPath)
}

func TestHeaderBoxWaveHasThirteenBottomPoints(t *testing.T) {
	h := HeaderBox(ShapeWave, 180, nil)
	// 2 üst köşe + 13 dalga noktası = 15 nokta
	points := strings.Split(strings.TrimSuffix(strings.TrimPrefix(h.ClipPath, "polygon("), ")"), ", ")
	assert.Len(t, points, 15)
}

func TestHeaderBoxSideStrips(t *testing.T) {
	l := HeaderBox(ShapeSideLeft, 180, nil)
	assert.Equal(t, "left", l.Side)
	assert.Equal(t, 25, l.WidthPct)
	// Yan şerit tam boydur; yapılandırılan yükseklik uygulanmaz.
	assert.True(t, l.FullHeight)

	r := HeaderBox(ShapeSideRight, 180, nil)
	assert.Equal(t, "right", r.Side)
	assert.True(t, r.FullHeight)

	assert.False(t, HeaderBox(ShapeClassic, 180, nil).FullHeight)
}

func TestHeaderBoxFloatingAndGlassCard(t *testing.T) {
	f := HeaderBox(ShapeFloating, 180, nil)
	assert.Equal(t, 16, f.InsetPx)
	assert.Equal(t, 32, f.RadiusPx)
	assert.False(t, f.ForceGlass)

	g := HeaderBox(ShapeGlassCard, 180, nil)
	assert.Equal(t, 24, g.InsetPx)
	assert.Equal(t, 40, g.RadiusPx)
	assert.True(t, g.ForceGlass)
}

func TestHeaderBoxUnknownShapeFallsBackToClassic(t *testing.T) {
	h := HeaderBox(HeaderShape("yok-boyle-bir-sey"), 200, nil)
	assert.Equal(t, ShapeClassic, h.Shape)
	assert.Equal(t, 200, h.Height)
}

func TestBodyBox(t *testing.T) {
	// Varsayılan: 60px yukarı bindirme.
	assert.Equal(t, -60, BodyBox(ShapeClassic, 180, 0).MarginTop)

	// overlay: headerHeight * 0.4 pozitif marj.
	assert.Equal(t, 72, BodyBox(ShapeOverlay, 180, 0).MarginTop)

	// side-* : 40px + yatay inset.
	b := BodyBox(ShapeSideLeft, 180, 0)
	assert.Equal(t, 40, b.MarginTop)
	assert.Equal(t, 28, b.InsetLeftPct)
	assert.Equal(t, 2, b.InsetRightPct)

	b = BodyBox(ShapeSideRight, 180, 0)
	assert.Equal(t, 2, b.InsetLeftPct)
	assert.Equal(t, 28, b.InsetRightPct)

	// bodyOffsetY her tipte toplanır.
	assert.Equal(t, -35, BodyBox(ShapeClassic, 180, 25).MarginTop)
	assert.Equal(t, 97, BodyBox(ShapeOverlay, 180, 25).MarginTop)
}

func TestGlassOverlay(t *testing.T) {
	light := GlassOverlay(false, 60)
	assert.Contains(t, light.Fill, "rgba(255, 255, 255, 0.60)")
	dark := GlassOverlay(true, 80)
	assert.Contains(t, dark.Fill, "0.80")
	assert.NotEqual(t, light.Fill, dark.Fill)
	assert.Equal(t, 12, dark.BlurPx)
	assert.NotEmpty(t, dark.BottomBorder)
}

func TestTile(t *testing.T) {
	p := Tile(PatternDots, 50, 100, false)
	assert.Equal(t, 20, p.CellPx)
	assert.InDelta(t, 0.5, p.Opacity, 1e-9)
	assert.Contains(t, p.Tile, "radial-gradient")

	// ölçek kırpma: 20-300
	assert.Equal(t, 4, Tile(PatternGrid, 50, 10, false).CellPx)
	assert.Equal(t, 60, Tile(PatternGrid, 50, 300, false).CellPx)
	assert.Equal(t, 60, Tile(PatternGrid, 50, 900, false).CellPx)

	// koyu mod beyaz tint
	assert.Contains(t, Tile(PatternLines, 50, 100, true).Tint, "255,255,255")

	// none / bilinmeyen -> desen yok
	assert.Empty(t, Tile(PatternNone, 50, 100, false).Tile)
	assert.Empty(t, Tile(PatternType("bilinmeyen"), 50, 100, false).Tile)
}

func TestCustomAssetGate(t *testing.T) {
	assert.Nil(t, NewImageAsset("   "))
	assert.NotNil(t, NewImageAsset("https://cdn.kart.link/h.png"))

	ok := NewVectorAsset(`<svg viewBox="0 0 10 10"><path d="M0 0h10v10z"/></svg>`)
	assert.True(t, ok.IsVector())

	assert.Nil(t, NewVectorAsset(`<div>hile</div>`))
	assert.Nil(t, NewVectorAsset(`<svg onload=alert(1)></svg>`))
	assert.Nil(t, NewVectorAsset(`<svg><script>alert(1)</script></svg>`))
}

func TestVectorAssetRendersUnescaped(t *testing.T) {
	a := NewVectorAsset(`<svg viewBox="0 0 10 10"><path d="M0 0h10v10z"/></svg>`)
	require.NotNil(t, a)

	// Süzgeçten geçen işaretleme html/template içinde olduğu gibi basılır.
	tpl := template.Must(template.New("v").Parse(`<div>{{.Vector}}</div>`))
	var out strings.Builder
	require.NoError(t, tpl.Execute(&out, a))
	assert.Contains(t, out.String(), `<svg viewBox="0 0 10 10">`)
	assert.NotContains(t, out.String(), "&lt;svg")
}
