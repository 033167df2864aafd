package legend

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-legend/internal/config"
	"github.com/vovakirdan/tui-legend/internal/core"
)

func render(d *DisplayList, w, h float64, screenW, screenH int) *core.Screen {
	scr := core.NewScreen(screenW, screenH)
	RenderDisplay(d, w, h, scr)
	return scr
}

func TestRenderFill(t *testing.T) {
	var d DisplayList
	d.Fill(0, 0, 32, 64, core.ColorRed)
	scr := render(&d, 64, 64, 4, 2)

	tests := []struct {
		x, y int
		want core.Cell
	}{
		{0, 0, core.Cell{Rune: ' ', Bg: core.ColorRed}},
		{1, 1, core.Cell{Rune: ' ', Bg: core.ColorRed}},
		{2, 0, core.Cell{Rune: ' ', Bg: core.ColorBlack}},
	}
	for _, tt := range tests {
		if got := scr.GetCell(tt.x, tt.y); got != tt.want {
			t.Errorf("GetCell(%d, %d) = %+v, expected %+v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestRenderHalfCell(t *testing.T) {
	var d DisplayList
	d.Fill(0, 0, 16, 16, core.ColorGreen)
	scr := render(&d, 64, 64, 4, 2)

	want := core.Cell{Rune: '▀', Fg: core.ColorGreen, Bg: core.ColorBlack}
	if got := scr.GetCell(0, 0); got != want {
		t.Errorf("GetCell(0, 0) = %+v, expected %+v", got, want)
	}
}

func TestRenderText(t *testing.T) {
	tests := []struct {
		name  string
		x     float64
		align Align
		col   int
	}{
		{"left", 32, AlignLeft, 2},
		{"center", 64, AlignCenter, 3},
		{"right", 128, AlignRight, 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d DisplayList
			d.Text("HI", tt.x, 40, core.ColorWhite, tt.align)
			scr := render(&d, 128, 64, 8, 2)

			if got := scr.GetCell(tt.col, 1); got.Rune != 'H' || got.Fg != core.ColorWhite {
				t.Errorf("GetCell(%d, 1) = %+v, expected a white H", tt.col, got)
			}
			if got := scr.GetCell(tt.col+1, 1).Rune; got != 'I' {
				t.Errorf("GetCell(%d, 1).Rune = %q, expected I", tt.col+1, got)
			}
		})
	}
}

func TestRenderSprites(t *testing.T) {
	var d DisplayList
	d.Sprite("stairs", 0, 0, 32, 32)
	d.Sprite("no-such-sprite", 64, 0, 32, 32)
	d.Sprite("link-left1", 0, 32, 32, 32)
	scr := render(&d, 128, 64, 8, 2)

	for col := range 2 {
		if got := scr.GetCell(col, 0); got.Rune != '≡' || got.Bg != core.ColorDarkGray {
			t.Errorf("GetCell(%d, 0) = %+v, expected stairs", col, got)
		}
	}
	if got := scr.GetCell(2, 0).Rune; got == '≡' {
		t.Error("stairs drawn outside their box")
	}
	if got := scr.GetCell(5, 0); got.Rune != '?' || got.Fg != core.ColorMagenta {
		t.Errorf("GetCell(5, 0) = %+v, expected the unknown sprite marker", got)
	}
	if got := scr.GetCell(1, 1); got.Rune != '◄' || got.Fg != core.ColorBrightGreen {
		t.Errorf("GetCell(1, 1) = %+v, expected the player facing left", got)
	}
}

func TestRenderFillCoversGlyphs(t *testing.T) {
	var d DisplayList
	d.Text("X", 0, 0, core.ColorWhite, AlignLeft)
	d.Fill(0, 0, 64, 64, core.ColorBlue)
	scr := render(&d, 64, 64, 4, 2)

	if got := scr.GetCell(0, 0); got.Rune != ' ' || got.Bg != core.ColorBlue {
		t.Errorf("GetCell(0, 0) = %+v, expected the fill to hide the text", got)
	}
}

func TestRenderCentersCanvas(t *testing.T) {
	var d DisplayList
	d.Fill(0, 0, 64, 64, core.ColorRed)
	scr := render(&d, 64, 64, 8, 4)

	if got := scr.GetCell(2, 1).Bg; got != core.ColorRed {
		t.Errorf("GetCell(2, 1).Bg = %v, expected the canvas offset by (2, 1)", got)
	}
	if got := scr.GetCell(1, 1).Bg; got == core.ColorRed {
		t.Error("canvas drawn outside its centered area")
	}
}

func TestRenderTooSmall(t *testing.T) {
	var d DisplayList
	d.Fill(0, 0, 1024, 768, core.ColorRed)
	scr := render(&d, 1024, 768, 40, 5)

	if !strings.Contains(scr.Row(2), "terminal too small: need 64x24") {
		t.Errorf("Row(2) = %q, expected the size message", scr.Row(2))
	}
}

func TestCanvasCells(t *testing.T) {
	if w, h := CanvasCells(1024, 768); w != 64 || h != 24 {
		t.Errorf("CanvasCells() = (%d, %d), expected (64, 24)", w, h)
	}
}

func TestRenderGameFrame(t *testing.T) {
	s := newTestSim(t, config.DefaultWorld(), core.NewRandom(1), nil)
	enterRun(s)
	frame(s)

	w, h := CanvasCells(s.Canvas())
	scr := core.NewScreen(w, h)
	RenderDisplay(s.Display(), 1024, 768, scr)

	if !strings.Contains(scr.String(), "SCORE: 0/8") {
		t.Error("HUD score missing from the rendered frame")
	}
	if !strings.ContainsRune(scr.String(), '▲') {
		t.Error("player missing from the rendered frame")
	}
}
