// Package render draws a level on a terminal screen.
package render

import (
	"fmt"
	"math"

	cfg "github.com/automoto/lavarun/config"
	"github.com/automoto/lavarun/shared/actor"
	"github.com/automoto/lavarun/shared/world"
	"github.com/gdamore/tcell/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Glyphs for grid cells and actors.
const (
	GlyphWall     = '#'
	GlyphLava     = '~'
	GlyphPlayer   = '@'
	GlyphCoin     = 'o'
	GlyphFireball = '*'
)

var (
	styleDefault  = tcell.StyleDefault
	styleWall     = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleLava     = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleCoin     = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleFireball = tcell.StyleDefault.Foreground(tcell.ColorOrangeRed).Bold(true)
	stylePlayer   = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	styleDead     = tcell.StyleDefault.Foreground(tcell.ColorDarkRed)
	styleStatus   = tcell.StyleDefault.Reverse(true)
	styleWon      = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	styleLost     = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
)

// Status is the text shown under the level.
type Status struct {
	Level   string
	Index   int
	Count   int
	Attempt int
	Elapsed float64
}

// Terminal draws levels on a tcell screen. It is used from one goroutine.
type Terminal struct {
	screen tcell.Screen

	banner       *gween.Tween
	bannerStatus world.Status
	bannerRow    float32
}

func NewTerminal(screen tcell.Screen) *Terminal {
	return &Terminal{screen: screen}
}

// Viewport returns the level column and row drawn at the top-left corner,
// keeping the player in view when the level is larger than the screen.
func (t *Terminal) Viewport(lvl *world.Level) (int, int) {
	w, h := t.screen.Size()
	h -= cfg.Terminal.StatusHeight
	return scroll(lvl, w, h)
}

func scroll(lvl *world.Level, viewW, viewH int) (int, int) {
	if lvl.Player == nil {
		return 0, 0
	}
	cx := lvl.Player.Pos.X + lvl.Player.Size.X/2
	cy := lvl.Player.Pos.Y + lvl.Player.Size.Y/2
	return clampView(int(cx)-viewW/2, lvl.Width, viewW), clampView(int(cy)-viewH/2, lvl.Height, viewH)
}

func clampView(offset, size, view int) int {
	if offset > size-view {
		offset = size - view
	}
	if offset < 0 {
		offset = 0
	}
	return offset
}

// Draw renders lvl and the status line. dt is the time since the previous
// frame and drives the won/lost banner.
func (t *Terminal) Draw(lvl *world.Level, status Status, dt float64) {
	t.screen.Clear()
	w, h := t.screen.Size()
	viewH := h - cfg.Terminal.StatusHeight
	ox, oy := scroll(lvl, w, viewH)

	for y := 0; y < viewH; y++ {
		for x := 0; x < w; x++ {
			switch lvl.Cell(x+ox, y+oy) {
			case world.ObstacleWall:
				t.screen.SetContent(x, y, GlyphWall, nil, styleWall)
			case world.ObstacleLava:
				t.screen.SetContent(x, y, GlyphLava, nil, styleLava)
			}
		}
	}

	for _, a := range lvl.Actors {
		glyph, style := actorGlyph(a, lvl.Status)
		x := int(math.Floor(a.Pos.X+a.Size.X/2)) - ox
		y := int(math.Floor(a.Pos.Y+a.Size.Y/2)) - oy
		if x < 0 || y < 0 || x >= w || y >= viewH {
			continue
		}
		t.screen.SetContent(x, y, glyph, nil, style)
	}

	t.drawStatus(lvl, status, w, viewH)
	t.drawBanner(lvl.Status, w, viewH, dt)
	t.screen.Show()
}

func actorGlyph(a *actor.Actor, status world.Status) (rune, tcell.Style) {
	switch a.Kind() {
	case actor.KindPlayer:
		if status == world.StatusLost {
			return GlyphPlayer, styleDead
		}
		return GlyphPlayer, stylePlayer
	case actor.KindCoin:
		return GlyphCoin, styleCoin
	case actor.KindFireball:
		return GlyphFireball, styleFireball
	}
	return '?', styleDefault
}

func (t *Terminal) drawStatus(lvl *world.Level, s Status, w, row int) {
	coins := 0
	for _, a := range lvl.Actors {
		if a.Kind() == actor.KindCoin {
			coins++
		}
	}
	line := fmt.Sprintf(" level %d/%d %s  attempt %d  coins %d  %.1fs ",
		s.Index+1, s.Count, s.Level, s.Attempt, coins, s.Elapsed)
	for x := 0; x < w; x++ {
		t.screen.SetContent(x, row, ' ', nil, styleStatus)
	}
	t.DrawText(0, row, line, styleStatus)
}

// drawBanner slides a won/lost message down from the top while the level
// counts down its finish delay.
func (t *Terminal) drawBanner(status world.Status, w, viewH int, dt float64) {
	if status == world.StatusNone {
		t.banner = nil
		t.bannerStatus = world.StatusNone
		t.bannerRow = 0
		return
	}
	if t.banner == nil || t.bannerStatus != status {
		target := float32(viewH / 2)
		t.banner = gween.New(0, target, float32(cfg.Terminal.BannerTime), ease.OutQuad)
		t.bannerStatus = status
		t.bannerRow = 0
	}
	t.bannerRow, _ = t.banner.Update(float32(dt))

	text, style := " YOU WON ", styleWon
	if status == world.StatusLost {
		text, style = " YOU DIED ", styleLost
	}
	t.DrawText((w-len(text))/2, int(t.bannerRow), text, style)
}

// BannerRow returns the row of the won/lost banner.
func (t *Terminal) BannerRow() int {
	return int(t.bannerRow)
}

// DrawText writes s starting at (x, y), clipped to the screen.
func (t *Terminal) DrawText(x, y int, s string, style tcell.Style) {
	w, h := t.screen.Size()
	if y < 0 || y >= h {
		return
	}
	for _, r := range s {
		if x >= w {
			return
		}
		if x >= 0 {
			t.screen.SetContent(x, y, r, nil, style)
		}
		x++
	}
}

// DrawMessage clears the screen and centres a single line of text.
func (t *Terminal) DrawMessage(msg string) {
	t.screen.Clear()
	w, h := t.screen.Size()
	t.DrawText((w-len(msg))/2, h/2, msg, styleWon)
	t.screen.Show()
}
