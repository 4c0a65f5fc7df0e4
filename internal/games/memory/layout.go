package memory

import (
	"github.com/vovakirdan/tui-memory/internal/config"
	"github.com/vovakirdan/tui-memory/internal/core"
)

// Rows is the fixed number of card rows on every board.
const Rows = 3

// Layout computes screen rectangles for cards and buttons.
type Layout struct {
	cfg     config.LayoutConfig
	screenW int
	screenH int
}

// NewLayout creates a layout for a screen of the given size.
func NewLayout(cfg config.LayoutConfig, screenW, screenH int) Layout {
	return Layout{cfg: cfg, screenW: screenW, screenH: screenH}
}

// Fits reports whether a board with the given columns fits the configured width.
func (l Layout) Fits(columns int) bool {
	if l.cfg.MaxWidth <= 0 {
		return true
	}
	return l.cfg.BoardWidth(columns) <= l.cfg.MaxWidth
}

// Card returns the rectangle of the card at p on a board with the given columns.
// The board is centered horizontally.
func (l Layout) Card(columns int, p Pos) core.Rect {
	left := (l.screenW - l.cfg.BoardWidth(columns)) / 2
	return core.NewRect(
		left+p.Col*(l.cfg.CardWidth+l.cfg.GapX),
		l.cfg.Top+p.Row*(l.cfg.CardHeight+l.cfg.GapY),
		l.cfg.CardWidth,
		l.cfg.CardHeight,
	)
}

// Bonuses returns n bonus buttons in a row below the board.
func (l Layout) Bonuses(n int) []core.Rect {
	return core.CenteredRow(n, l.cfg.ButtonWidth, l.cfg.ButtonHeight, l.cfg.ButtonGap, l.screenW, l.cfg.BonusRow)
}

// Levels returns n level buttons in a row centered on the screen.
func (l Layout) Levels(n int) []core.Rect {
	y := (l.screenH - l.cfg.ButtonHeight) / 2
	return core.CenteredRow(n, l.cfg.ButtonWidth, l.cfg.ButtonHeight, l.cfg.ButtonGap, l.screenW, y)
}
