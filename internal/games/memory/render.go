package memory

import (
	"fmt"
	"math"
	"strconv"

	"github.com/vovakirdan/tui-memory/internal/core"
)

// Card face glyphs by MatchID (cycling).
var faceGlyphs = []rune{'♠', '♥', '♦', '♣', '★', '☀', '☂', '♪', '☯', '⚑', '✿', '☘'}

// Card face colors by MatchID (cycling).
var faceColors = []core.Color{
	core.ColorBrightRed, core.ColorBrightGreen, core.ColorBrightYellow,
	core.ColorBrightCyan, core.ColorRed, core.ColorGreen, core.ColorYellow, core.ColorCyan,
}

const (
	backFill = '░'
	edgeRune = '┃'
)

// FaceGlyph returns the glyph drawn on a card face.
func FaceGlyph(id int) rune {
	if id <= 0 {
		return '?'
	}
	return faceGlyphs[(id-1)%len(faceGlyphs)]
}

func faceColor(id int) core.Color {
	if id <= 0 {
		return core.ColorWhite
	}
	return faceColors[(id-1)%len(faceColors)]
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.round == nil {
		return
	}
	snap := g.round.Snapshot()

	switch snap.State {
	case StateAtMenu:
		renderMenu(dst, snap)
		return
	case StatePlaying:
		renderHUD(dst, snap)
		renderCards(dst, snap)
		renderBonuses(dst, snap)
	case StateWon:
		renderHUD(dst, snap)
		renderOverlay(dst, "FINISH", "You win!", core.ColorBrightGreen)
	case StateLost:
		renderHUD(dst, snap)
		renderCards(dst, snap)
		renderOverlay(dst, "TIME OUT", "You lost the game!", core.ColorBrightRed)
	}
}

func renderMenu(dst *core.Screen, snap Snapshot) {
	if len(snap.Levels) == 0 {
		return
	}
	top := snap.Levels[0].Bounds.Y
	dst.DrawTextCentered(max(top-4, 0), "M E M O R Y   M A T C H", core.ColorBrightCyan)
	dst.DrawTextCentered(max(top-2, 0), "Choose a level", core.ColorWhite)

	for _, lvl := range snap.Levels {
		color := core.ColorCyan
		if lvl.Armed {
			color = core.ColorBrightYellow
		}
		dst.DrawBox(lvl.Bounds, color)
		dst.DrawTextIn(lvl.Bounds, lvl.Name, color)
		info := fmt.Sprintf("%dx%d %s", Rows, lvl.Columns, FormatClock(lvl.Budget))
		dst.DrawText(lvl.Bounds.X+(lvl.Bounds.W-len(info))/2, lvl.Bounds.Bottom(), info, core.ColorGray)
	}

	dst.DrawTextCentered(snap.Levels[0].Bounds.Bottom()+3, "click a level or press 1/2/3", core.ColorGray)
}

func renderHUD(dst *core.Screen, snap Snapshot) {
	dst.DrawText(1, 0, "MEMORY", core.ColorBrightCyan)

	stats := fmt.Sprintf("Score %d  Pairs %d/%d  Streak %d", snap.Score, snap.Pairs, snap.PairsTotal, snap.Streak)
	dst.DrawTextCentered(0, stats, core.ColorWhite)

	clock := FormatClock(snap.Remaining)
	color := core.ColorBrightGreen
	if snap.Urgent {
		color = core.ColorBrightRed
	}
	for _, b := range snap.Bonuses {
		if b.Kind == BonusFreezeTime && b.State == BonusUsing {
			color = core.ColorBrightCyan
		}
	}
	dst.DrawText(dst.Width()-len(clock)-1, 0, clock, color)
}

func renderCards(dst *core.Screen, snap Snapshot) {
	for _, c := range snap.Cards {
		renderCard(dst, c)
	}
}

func renderCard(dst *core.Screen, c CardView) {
	r := c.Bounds
	switch c.Phase {
	case PhaseTurnStart, PhaseTurnMiddle:
		// Edge-on: a thin sliver in the middle of the slot.
		mid := r.X + r.W/2
		color := core.ColorGray
		if c.FaceUp {
			color = faceColor(c.MatchID)
		}
		for y := r.Y; y < r.Bottom(); y++ {
			dst.SetColor(mid, y, edgeRune, color)
		}
		return
	}

	switch {
	case c.Matched:
		dst.DrawBox(r, core.ColorBrightGreen)
		drawFace(dst, r, c.MatchID, core.ColorBrightGreen)
	case c.FaceUp:
		color := faceColor(c.MatchID)
		dst.DrawBox(r, color)
		drawFace(dst, r, c.MatchID, color)
	default:
		dst.DrawBox(r, core.ColorBlue)
		dst.FillRect(core.NewRect(r.X+1, r.Y+1, r.W-2, r.H-2), backFill, core.ColorBlue)
	}
}

func drawFace(dst *core.Screen, r core.Rect, id int, color core.Color) {
	inner := core.NewRect(r.X+1, r.Y+1, r.W-2, r.H-2)
	if inner.H >= 2 {
		dst.DrawTextIn(core.NewRect(inner.X, inner.Y, inner.W, 1), string(FaceGlyph(id)), color)
		dst.DrawTextIn(core.NewRect(inner.X, inner.Bottom()-1, inner.W, 1), strconv.Itoa(id), color)
		return
	}
	dst.DrawTextIn(inner, string(FaceGlyph(id)), color)
}

func renderBonuses(dst *core.Screen, snap Snapshot) {
	for _, b := range snap.Bonuses {
		label := b.Label
		var color core.Color
		switch b.State {
		case BonusNotActive:
			color = core.ColorGray
			label = "locked"
		case BonusNotUsed:
			color = core.ColorBrightCyan
		case BonusUsing:
			color = core.ColorBrightYellow
			label = fmt.Sprintf("%s %ds", b.Label, int(math.Ceil(b.Left.Seconds())))
		case BonusUsed:
			color = core.ColorGray
		}
		dst.DrawBox(b.Bounds, color)
		dst.DrawTextIn(core.NewRect(b.Bounds.X+1, b.Bounds.Y, b.Bounds.W-2, b.Bounds.H), label, color)
	}
}

func renderOverlay(dst *core.Screen, title, msg string, color core.Color) {
	w := max(len(msg)+6, 24)
	h := 7
	box := core.NewRect((dst.Width()-w)/2, (dst.Height()-h)/2, w, h)
	dst.FillRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, color)
	dst.DrawTextIn(core.NewRect(box.X, box.Y+1, box.W, 1), title, color)
	dst.DrawTextIn(core.NewRect(box.X, box.Y+3, box.W, 1), msg, core.ColorWhite)
	dst.DrawTextIn(core.NewRect(box.X, box.Y+5, box.W, 1), "R: menu  Q: quit", core.ColorGray)
}
