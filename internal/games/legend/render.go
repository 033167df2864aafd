package legend

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/tui-legend/internal/core"
)

// One terminal cell covers 16×32 canvas pixels. Fills are painted at half a
// cell of vertical resolution and composed with the upper half block.
const (
	pxPerCol  = 16
	pxPerRow  = 32
	pxPerHalf = pxPerRow / 2
	upperHalf = '▀'
)

// glyph is the terminal look of a sprite. A non-default bg paints the whole
// sprite box; fill repeats the rune over every covered cell instead of only
// the center one.
type glyph struct {
	r    rune
	fg   core.Color
	bg   core.Color
	fill bool
}

var tileGlyphs = map[Sprite]glyph{
	"default":      {bg: core.ColorSand},
	"default-grey": {bg: core.ColorGray},
	"stairs":       {r: '≡', fg: core.ColorBlack, bg: core.ColorDarkGray, fill: true},
	"tree":         {r: '♣', fg: core.ColorBrightGreen, bg: core.ColorDarkGreen},
	"white-tree":   {r: '♣', fg: core.ColorBrightWhite, bg: core.ColorGray},
	"grave":        {r: '†', fg: core.ColorBrightWhite, bg: core.ColorGray},
	"single-wall":  {r: '▓', fg: core.ColorBrown, bg: core.ColorSand, fill: true},

	"single-red-wall": {r: '▓', fg: core.ColorRed, bg: core.ColorSand, fill: true},
}

// spritePrefixes are matched in order, so longer names come first.
var spritePrefixes = []struct {
	prefix string
	g      glyph
}{
	{"white-wall", glyph{r: '▒', fg: core.ColorBrightWhite, bg: core.ColorGray, fill: true}},
	{"wall", glyph{r: '▒', fg: core.ColorOrange, bg: core.ColorBrown, fill: true}},
	{"monument", glyph{r: '█', fg: core.ColorDarkGreen, bg: core.ColorDarkGreen, fill: true}},
	{"blue-octorok", glyph{r: 'o', fg: core.ColorBrightBlue}},
	{"blue-moblin", glyph{r: 'M', fg: core.ColorBrightBlue}},
	{"blue-tektite", glyph{r: 'x', fg: core.ColorBrightBlue}},
	{"octorok", glyph{r: 'o', fg: core.ColorBrightRed}},
	{"moblin", glyph{r: 'M', fg: core.ColorOrange}},
	{"tektite", glyph{r: 'x', fg: core.ColorBrightRed}},
	{"killed1", glyph{r: '*', fg: core.ColorBrightWhite}},
	{"killed2", glyph{r: '·', fg: core.ColorWhite}},
	{"full-heart", glyph{r: '♥', fg: core.ColorBrightRed}},
	{"half-heart", glyph{r: '♥', fg: core.ColorRed}},
	{"empty-heart", glyph{r: '♡', fg: core.ColorGray}},
	{"clock", glyph{r: '◷', fg: core.ColorBrightYellow}},
	{"fireball", glyph{r: '•', fg: core.ColorOrange}},
	{"link-win", glyph{r: '☺', fg: core.ColorBrightGreen}},
}

var directionGlyphs = map[string][4]rune{
	//         up   right down left
	"link-":  {'▲', '►', '▼', '◄'},
	"sword-": {'│', '─', '│', '─'},
	"arrow-": {'↑', '→', '↓', '←'},
}

var directionColors = map[string]core.Color{
	"link-":  core.ColorBrightGreen,
	"sword-": core.ColorBrightWhite,
	"arrow-": core.ColorBrown,
}

// glyphFor resolves a sprite name. Unknown sprites render as '?'.
func glyphFor(s Sprite) glyph {
	if g, ok := tileGlyphs[s]; ok {
		return g
	}
	name := string(s)
	for _, p := range spritePrefixes {
		if strings.HasPrefix(name, p.prefix) {
			return p.g
		}
	}
	for prefix, runes := range directionGlyphs {
		rest, ok := strings.CutPrefix(name, prefix)
		if !ok {
			continue
		}
		for i, dir := range [...]string{"up", "right", "down", "left"} {
			if strings.HasPrefix(rest, dir) {
				return glyph{r: runes[i], fg: directionColors[prefix]}
			}
		}
	}
	return glyph{r: '?', fg: core.ColorMagenta}
}

// shadeOf returns the darker tone a shaded color takes.
func shadeOf(c core.Color) core.Color {
	switch c {
	case core.ColorSand, core.ColorOrange:
		return core.ColorBrown
	case core.ColorGreen, core.ColorBrightGreen:
		return core.ColorDarkGreen
	case core.ColorWhite, core.ColorBrightWhite:
		return core.ColorGray
	case core.ColorBlack, core.ColorDarkGray, core.ColorDarkGreen, core.ColorBrown:
		return core.ColorBlack
	case core.ColorBrightRed:
		return core.ColorRed
	}
	return core.ColorDarkGray
}

// raster is the composed frame: colors per half cell and glyphs per cell.
type raster struct {
	cols, rows int
	halves     [][]core.Color
	glyphs     [][]core.Cell
}

func newRaster(canvasW, canvasH float64) *raster {
	r := &raster{
		cols: int(math.Ceil(canvasW / pxPerCol)),
		rows: int(math.Ceil(canvasH / pxPerRow)),
	}
	r.halves = make([][]core.Color, r.rows*2)
	for i := range r.halves {
		r.halves[i] = make([]core.Color, r.cols)
		for j := range r.halves[i] {
			r.halves[i][j] = core.ColorBlack
		}
	}
	r.glyphs = make([][]core.Cell, r.rows)
	for i := range r.glyphs {
		r.glyphs[i] = make([]core.Cell, r.cols)
	}
	return r
}

func (r *raster) paint(x, y, w, h float64, c core.Color) {
	rect := core.Scale(x, y, w, h, pxPerCol, pxPerHalf)
	for j := max(rect.Y, 0); j < min(rect.Bottom(), r.rows*2); j++ {
		for i := max(rect.X, 0); i < min(rect.Right(), r.cols); i++ {
			r.halves[j][i] = c
		}
	}
}

// clearGlyphs removes the glyphs of cells a box covers completely.
func (r *raster) clearGlyphs(x, y, w, h float64) {
	left, top := int(math.Ceil(x/pxPerCol)), int(math.Ceil(y/pxPerRow))
	right, bottom := int(math.Floor((x+w)/pxPerCol)), int(math.Floor((y+h)/pxPerRow))
	for j := max(top, 0); j < min(bottom, r.rows); j++ {
		for i := max(left, 0); i < min(right, r.cols); i++ {
			r.glyphs[j][i] = core.Cell{}
		}
	}
}

func (r *raster) put(col, row int, ch rune, fg core.Color) {
	if col < 0 || col >= r.cols || row < 0 || row >= r.rows {
		return
	}
	r.glyphs[row][col] = core.Cell{Rune: ch, Fg: fg}
}

func (r *raster) shade(x, y, w, h float64) {
	rect := core.Scale(x, y, w, h, pxPerCol, pxPerHalf)
	for j := max(rect.Y, 0); j < min(rect.Bottom(), r.rows*2); j++ {
		for i := max(rect.X, 0); i < min(rect.Right(), r.cols); i++ {
			r.halves[j][i] = shadeOf(r.halves[j][i])
			if j%2 == 0 && r.glyphs[j/2][i].Rune != 0 {
				r.glyphs[j/2][i].Fg = shadeOf(r.glyphs[j/2][i].Fg)
			}
		}
	}
}

func (r *raster) sprite(op DrawOp) {
	g := glyphFor(op.Sprite)
	b := op.Box
	if g.bg != core.ColorDefault {
		r.paint(b.X, b.Y, b.W, b.H, g.bg)
		r.clearGlyphs(b.X, b.Y, b.W, b.H)
	}
	if g.r == 0 {
		return
	}
	if g.fill {
		rect := core.Scale(b.X, b.Y, b.W, b.H, pxPerCol, pxPerRow)
		for j := rect.Y; j < rect.Bottom(); j++ {
			for i := rect.X; i < rect.Right(); i++ {
				r.put(i, j, g.r, g.fg)
			}
		}
		return
	}
	cx, cy := b.Center()
	r.put(int(math.Floor(cx/pxPerCol)), int(math.Floor(cy/pxPerRow)), g.r, g.fg)
}

func (r *raster) text(op DrawOp) {
	runes := []rune(op.Text)
	col := int(math.Floor(op.Box.X / pxPerCol))
	switch op.Align {
	case AlignCenter:
		col -= len(runes) / 2
	case AlignRight:
		col -= len(runes)
	}
	row := int(math.Floor(op.Box.Y / pxPerRow))
	for i, ch := range runes {
		r.put(col+i, row, ch, op.Color)
	}
}

func (r *raster) apply(d *DisplayList) {
	for _, op := range d.Ops {
		b := op.Box
		switch op.Kind {
		case OpFill:
			r.paint(b.X, b.Y, b.W, b.H, op.Color)
			r.clearGlyphs(b.X, b.Y, b.W, b.H)
		case OpShade:
			r.shade(b.X, b.Y, b.W, b.H)
		case OpSprite:
			r.sprite(op)
		case OpText:
			r.text(op)
		}
	}
}

func (r *raster) cell(col, row int) core.Cell {
	top, bottom := r.halves[row*2][col], r.halves[row*2+1][col]
	if g := r.glyphs[row][col]; g.Rune != 0 {
		return core.Cell{Rune: g.Rune, Fg: g.Fg, Bg: top}
	}
	if top == bottom {
		return core.Cell{Rune: ' ', Bg: top}
	}
	return core.Cell{Rune: upperHalf, Fg: top, Bg: bottom}
}

// CanvasCells returns the terminal size, in cells, of a canvas in pixels.
func CanvasCells(canvasW, canvasH float64) (int, int) {
	return int(math.Ceil(canvasW / pxPerCol)), int(math.Ceil(canvasH / pxPerRow))
}

// RenderDisplay rasterizes a display list centered into dst. A screen too
// small for the canvas shows the size it needs instead.
func RenderDisplay(d *DisplayList, canvasW, canvasH float64, dst *core.Screen) {
	r := newRaster(canvasW, canvasH)
	if dst.Width() < r.cols || dst.Height() < r.rows {
		dst.FillRect(core.NewRect(0, 0, dst.Width(), dst.Height()), core.Cell{Rune: ' ', Bg: core.ColorBlack})
		dst.DrawTextCentered(dst.Height()/2, fmt.Sprintf("terminal too small: need %dx%d", r.cols, r.rows), core.ColorYellow)
		return
	}
	r.apply(d)

	ox, oy := (dst.Width()-r.cols)/2, (dst.Height()-r.rows)/2
	for row := range r.rows {
		for col := range r.cols {
			dst.SetCell(ox+col, oy+row, r.cell(col, row))
		}
	}
}
