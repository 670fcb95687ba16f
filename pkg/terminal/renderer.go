// Package terminal runs the game on a tcell screen.
//
// World coordinates are scaled down to terminal cells; every sprite becomes
// a run of one glyph as wide as the scaled entity.
package terminal

import (
	"github.com/gdamore/tcell/v2"

	"github.com/decker502/invaders/pkg/components"
)

// Glyph is how a sprite looks in the terminal.
type Glyph struct {
	Rune  rune
	Style tcell.Style
}

// DefaultGlyphs returns the glyph of every sprite.
func DefaultGlyphs() map[components.SpriteID]Glyph {
	style := tcell.StyleDefault
	tierColors := [components.AlienTierCount]tcell.Color{tcell.ColorWhite, tcell.ColorAqua, tcell.ColorFuchsia}
	tierRunes := [components.AlienTierCount][2]rune{{'M', 'W'}, {'X', 'x'}, {'O', 'o'}}

	glyphs := map[components.SpriteID]Glyph{
		components.SpritePlayer:         {'A', style.Foreground(tcell.ColorGreen).Bold(true)},
		components.SpriteAlienDestroyed: {'*', style.Foreground(tcell.ColorOrange)},
		components.SpritePlayerBullet:   {'|', style.Foreground(tcell.ColorWhite)},
		components.SpriteAlienBullet:    {'!', style.Foreground(tcell.ColorRed)},
	}
	for tier := 0; tier < components.AlienTierCount; tier++ {
		s := style.Foreground(tierColors[tier])
		glyphs[components.AlienSprite(tier, components.PhaseA)] = Glyph{tierRunes[tier][0], s}
		glyphs[components.AlienSprite(tier, components.PhaseB)] = Glyph{tierRunes[tier][1], s}
	}
	return glyphs
}

// Renderer implements game.Renderer on a tcell screen.
type Renderer struct {
	screen tcell.Screen
	world  components.Bounds
	glyphs map[components.SpriteID]Glyph
	sizes  map[components.SpriteID]components.Bounds
}

// NewRenderer creates a renderer mapping a world of the given size onto the
// whole screen.
//
// Parameters:
//   - screen: an initialised tcell screen
//   - world: the logical playfield size
//   - glyphs: sprite appearance; sprites without a glyph are not drawn
//   - sizes: entity size per sprite in world units; missing means one cell
func NewRenderer(screen tcell.Screen, world components.Bounds, glyphs map[components.SpriteID]Glyph, sizes map[components.SpriteID]components.Bounds) *Renderer {
	return &Renderer{
		screen: screen,
		world:  world,
		glyphs: glyphs,
		sizes:  sizes,
	}
}

// ClearFrame implements game.Renderer.
func (r *Renderer) ClearFrame() {
	r.screen.Clear()
}

// CellOf maps a world position to a terminal cell.
func (r *Renderer) CellOf(x, y int) (int, int) {
	cols, rows := r.screen.Size()
	return scale(x, cols, r.world.Width), scale(y, rows, r.world.Height)
}

func scale(v, cells, world int) int {
	if world <= 0 {
		return 0
	}
	// floor division, so positions left of or above the field stay outside
	n := v * cells
	if n < 0 && n%world != 0 {
		return n/world - 1
	}
	return n / world
}

// DrawEntity implements game.Renderer.
func (r *Renderer) DrawEntity(sprite components.SpriteID, x, y int) {
	g, ok := r.glyphs[sprite]
	if !ok {
		return
	}
	cols, rows := r.screen.Size()
	cx, cy := r.CellOf(x, y)
	if cy < 0 || cy >= rows {
		return
	}

	width := 1
	if size, ok := r.sizes[sprite]; ok {
		if w := scale(size.Width, cols, r.world.Width); w > 1 {
			width = w
		}
	}
	for i := 0; i < width; i++ {
		if cx+i >= 0 && cx+i < cols {
			r.screen.SetContent(cx+i, cy, g.Rune, nil, g.Style)
		}
	}
}

// PresentFrame implements game.Renderer.
func (r *Renderer) PresentFrame() {
	r.screen.Show()
}

// DrawBanner writes msg centred on the screen and shows it.
func (r *Renderer) DrawBanner(msg string) {
	cols, rows := r.screen.Size()
	style := tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	x := (cols - len(msg)) / 2
	if x < 0 {
		x = 0
	}
	for i, ch := range msg {
		r.screen.SetContent(x+i, rows/2, ch, nil, style)
	}
	r.screen.Show()
}
