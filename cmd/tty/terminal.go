package main

import (
	"image/color"
	"math"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"starfighter/game"
	"starfighter/view"
)

const (
	// Each terminal cell stands for this many pixels of the playfield
	cellWidth  = 8.0
	cellHeight = 16.0

	frameInterval = 16 * time.Millisecond // ~60 FPS
)

// Terminal runs one star fighter game inside a tcell screen. It is the
// viewport of the game: the playfield is the cell grid scaled by the cell size.
type Terminal struct {
	screen tcell.Screen
	state  *game.State
	scene  *view.Scene
	logger *log.Logger

	cols, rows int

	// Wall clock the simulation time is measured from
	start time.Time

	// Button 1 state of the previous mouse event, to fire once per press
	buttonDown bool
}

// NewTerminal creates a game at level 1 drawn into screen
func NewTerminal(screen tcell.Screen, cfg game.Config, def *game.CatalogConfig, rng *rand.Rand, logger *log.Logger) *Terminal {
	screen.EnableMouse()
	screen.HideCursor()

	t := &Terminal{
		screen: screen,
		scene:  view.NewScene(),
		logger: logger,
		start:  time.Now(),
	}
	t.cols, t.rows = screen.Size()

	catalog := game.NewCatalog(def, cfg, t, rng)
	t.state = game.NewState(cfg, catalog, t, logger)
	t.state.Attach(t.scene.Sinks())
	return t
}

// Size implements game.Viewport
func (t *Terminal) Size() (float64, float64) {
	return float64(t.cols) * cellWidth, float64(t.rows) * cellHeight
}

// handleEvent processes one screen event, returning false to quit
func (t *Terminal) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
			(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
			return false
		}

	case *tcell.EventMouse:
		x, y := ev.Position()
		t.state.OnPointerMove((float64(x)+0.5)*cellWidth, (float64(y)+0.5)*cellHeight)

		down := ev.Buttons()&tcell.Button1 != 0
		if down && !t.buttonDown {
			t.state.OnPointerClick()
		}
		t.buttonDown = down

	case *tcell.EventResize:
		t.cols, t.rows = t.screen.Size()
		t.screen.Sync()
		t.logger.Debug("terminal resized", "cols", t.cols, "rows", t.rows)

	case nil:
		// The screen was finalized
		return false
	}

	return true
}

// tick advances the game to now and redraws
func (t *Terminal) tick(now time.Time) {
	t.state.Update(now.Sub(t.start).Seconds())
	t.draw()
}

func (t *Terminal) run() {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := t.screen.PollEvent()
			eventChan <- ev
			if ev == nil {
				return
			}
		}
	}()

	for {
		select {
		case ev := <-eventChan:
			if !t.handleEvent(ev) {
				return
			}

		case now := <-ticker.C:
			t.tick(now)
		}
	}
}

func (t *Terminal) cleanup() {
	t.screen.Fini()
}

// draw renders the scene into the cell grid
func (t *Terminal) draw() {
	bg := blend(view.BackgroundColor, t.scene.Background, 1)
	base := tcell.StyleDefault.Background(bg)

	t.screen.Clear()
	t.fill(0, 0, t.cols, t.rows, ' ', base)
	t.drawBarrel(base)

	for _, sp := range t.scene.Sprites() {
		col, row := cellAt(sp.Pos.X-sp.Width/2, sp.Pos.Y-sp.Height/2)
		cols := max(1, int(math.Round(sp.Width/cellWidth)))
		rows := max(1, int(math.Round(sp.Height/cellHeight)))

		style := base.Foreground(toTcell(view.SpriteColor(sp)))
		if sp.Kind == view.KindShot {
			t.fill(col, row, cols, rows, '•', style)
		} else {
			t.fill(col, row, cols, rows, '▼', style)
		}
	}

	style := base.Foreground(toTcell(view.TextColor))
	for i, line := range t.scene.StatusLines() {
		t.print(1, i, line, style)
	}

	if t.scene.ModalVisible() {
		t.drawModal()
	}

	t.screen.Show()
}

// drawBarrel plots the barrel from its anchor to its tip, one point per cell height
func (t *Terminal) drawBarrel(base tcell.Style) {
	cfg := t.state.Config()
	anchor := game.BarrelAnchor(t, cfg)
	dir := game.Direction(t.scene.BarrelRotation - math.Pi/2)

	style := base.Foreground(toTcell(view.BarrelColor))
	steps := max(1, int(cfg.BarrelLength/cellHeight*2))
	for i := 0; i <= steps; i++ {
		p := anchor.Add(dir.Scale(cfg.BarrelLength * float64(i) / float64(steps)))
		col, row := cellAt(p.X, p.Y)
		t.setCell(col, row, '█', style)
	}
}

// drawModal draws the message box centered on the screen. Terminal cells
// have no alpha, so the box color is mixed into the backdrop by the modal opacity.
func (t *Terminal) drawModal() {
	msg := t.scene.Message
	opacity := min(1, t.scene.ModalOpacity)

	width := len(msg.Title)
	for _, line := range msg.Lines {
		width = max(width, len(line))
	}
	width += 4
	height := len(msg.Lines) + 4

	left := (t.cols - width) / 2
	top := (t.rows - height) / 2

	boxColor := blend(view.BackgroundColor, view.ModalColor, opacity)
	box := tcell.StyleDefault.Background(boxColor)
	t.fill(left, top, width, height, ' ', box)

	text := box.Foreground(blend(view.BackgroundColor, view.TextColor, opacity))
	t.print(left+(width-len(msg.Title))/2, top+1, msg.Title, text.Bold(true))
	for i, line := range msg.Lines {
		t.print(left+(width-len(line))/2, top+3+i, line, text)
	}
}

func (t *Terminal) fill(col, row, cols, rows int, ch rune, style tcell.Style) {
	for y := row; y < row+rows; y++ {
		for x := col; x < col+cols; x++ {
			t.setCell(x, y, ch, style)
		}
	}
}

func (t *Terminal) print(col, row int, str string, style tcell.Style) {
	for _, ch := range str {
		t.setCell(col, row, ch, style)
		col++
	}
}

func (t *Terminal) setCell(col, row int, ch rune, style tcell.Style) {
	if col < 0 || row < 0 || col >= t.cols || row >= t.rows {
		return
	}
	t.screen.SetContent(col, row, ch, nil, style)
}

// cellAt returns the cell containing a playfield point
func cellAt(x, y float64) (int, int) {
	return int(math.Floor(x / cellWidth)), int(math.Floor(y / cellHeight))
}

func toTcell(clr color.Color) tcell.Color {
	c, ok := colorful.MakeColor(clr)
	if !ok {
		return tcell.ColorDefault
	}
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// blend composites over onto base, scaling the alpha of over by opacity
func blend(base color.NRGBA, over color.Color, opacity float64) tcell.Color {
	b, _ := colorful.MakeColor(base)
	o, ok := colorful.MakeColor(over)
	if !ok {
		return toTcell(base)
	}

	_, _, _, a := over.RGBA()
	r, g, bl := b.BlendRgb(o, float64(a)/0xffff*opacity).Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(bl))
}
