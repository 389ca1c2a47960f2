// Package tui is the terminal renderer: a cell editor driven by the keyboard
// cursor or the mouse, and a text-mode first-person view.
package tui

import (
	"fmt"
	"image"
	"image/color"
	"log"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
	"github.com/leonelquinteros/gotext"

	"mazecaster/pkg/engine/input"
	"mazecaster/pkg/engine/terminal"
	"mazecaster/pkg/engine/world"
	"mazecaster/pkg/game/gameplay"
	"mazecaster/pkg/game/renderer"
	"mazecaster/pkg/game/state"
)

// Icons for the editor grid. Each cell is two characters wide so the grid
// keeps roughly square proportions.
const (
	IconWall    = "██"
	IconPassage = "  "
	cellWidth   = 2
	panelGap    = 2
)

// Key repeat timing. Terminals report presses only, so a movement key counts
// as held until no repeat arrives within holdWindow.
const (
	holdWindow     = 150 * time.Millisecond
	debounceWindow = 120 * time.Millisecond
)

// panelButtons are the clickable editor buttons, left to right
var panelButtons = []struct {
	key, label string
	action     input.Action
}{
	{"P", "BUTTON_PLAY", input.ActionStartPlay},
	{"Q", "BUTTON_QUIT", input.ActionQuit},
}

var (
	styleWall    = tcell.StyleDefault.Background(rgb(renderer.ColorWall)).Foreground(rgb(renderer.ColorWall))
	stylePassage = tcell.StyleDefault.Background(rgb(renderer.ColorPassage))
	styleCursor  = tcell.StyleDefault.Background(tcell.ColorRed)
	styleText    = tcell.StyleDefault.Foreground(rgb(renderer.ColorText))
	styleTitle   = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	styleSubtle  = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleMessage = tcell.StyleDefault.Foreground(tcell.ColorDarkCyan)
	styleButton  = tcell.StyleDefault.Background(rgb(renderer.ColorButton)).Foreground(rgb(renderer.ColorButtonFG))
)

// TUIRenderer is the terminal-based renderer implementation
type TUIRenderer struct {
	settings renderer.Settings
	screen   tcell.Screen

	debouncer *input.Debouncer
	hold      *holdState

	// cursor is the edit-mode keyboard cursor
	cursor world.Position

	// mouseDown tracks the primary button so drags don't toggle repeatedly
	mouseDown bool

	// buttons holds the panel buttons as last drawn, in screen cells
	buttons []renderer.Button

	game *state.Game
}

// New creates a new TUI renderer on the process terminal
func New(settings renderer.Settings) *TUIRenderer {
	return &TUIRenderer{
		settings:  settings,
		debouncer: input.NewDebouncer(debounceWindow),
		hold:      newHoldState(holdWindow),
		cursor:    world.Position{Row: 1, Col: 1},
	}
}

// NewWithScreen creates a renderer on an existing screen
func NewWithScreen(settings renderer.Settings, screen tcell.Screen) *TUIRenderer {
	t := New(settings)
	t.screen = screen
	return t
}

// Init initializes the terminal screen
func (t *TUIRenderer) Init() error {
	if t.screen == nil {
		screen, err := tcell.NewScreen()
		if err != nil {
			return fmt.Errorf("tui: %w", err)
		}
		t.screen = screen
	}
	if err := t.screen.Init(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	t.screen.EnableMouse()
	t.screen.SetStyle(tcell.StyleDefault)
	t.screen.Clear()
	log.Printf("TUI renderer initialized")
	return nil
}

// Run polls terminal events and advances the game once per tick until the
// player quits.
func (t *TUIRenderer) Run(g *state.Game) error {
	t.game = g
	defer t.screen.Fini()

	done := make(chan struct{})
	defer close(done)
	events := t.pollEvents(done)

	ticker := time.NewTicker(t.settings.TickInterval())
	defer ticker.Stop()

	var pending []input.Intent
	t.draw()
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			pending = append(pending, t.handleEvent(ev)...)

		case now := <-ticker.C:
			gameplay.Update(g, pending, t.hold.movement(now), t.settings.Move)
			pending = pending[:0]
			if g.Quit {
				return nil
			}
			t.draw()
		}
	}
}

// pollEvents forwards screen events until the screen is finalized or done
// is closed. The returned channel is closed when forwarding stops.
func (t *TUIRenderer) pollEvents(done <-chan struct{}) <-chan tcell.Event {
	events := make(chan tcell.Event, 100)
	go func() {
		defer close(events)
		for {
			ev := t.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()
	return events
}

// GetViewportSize returns the screen size in character cells
func (t *TUIRenderer) GetViewportSize() (rows, cols int) {
	if t.screen != nil {
		cols, rows = t.screen.Size()
		if cols > 0 && rows > 0 {
			return rows, cols
		}
	}
	cols, rows = terminal.GetSize()
	return rows, cols
}

// handleEvent turns one terminal event into zero or more intents
func (t *TUIRenderer) handleEvent(ev tcell.Event) []input.Intent {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return t.handleKey(ev)

	case *tcell.EventMouse:
		return t.handleMouse(ev)

	case *tcell.EventResize:
		t.screen.Sync()
	}
	return nil
}

func (t *TUIRenderer) handleKey(ev *tcell.EventKey) []input.Intent {
	code := keyCode(ev)
	if code == "" {
		return nil
	}

	if t.game != nil && t.game.Mode == state.ModeEdit && t.editKey(code) {
		return nil
	}

	raw := input.RawInput{Device: input.DeviceTerminal, Code: code, Timestamp: ev.When()}
	if input.IsHeld(input.MapToIntent(input.NewDebouncedInput(raw)).Action) {
		t.hold.press(code, raw.Timestamp)
		return nil
	}

	debounced, ok := t.debouncer.Accept(raw)
	if !ok {
		return nil
	}
	intent := input.MapToIntent(debounced)
	if intent.Action == input.ActionNone {
		return nil
	}
	return []input.Intent{intent}
}

// editKey moves the editor cursor with the arrow keys and toggles the cell
// under it with x. It reports whether the key was consumed.
func (t *TUIRenderer) editKey(code string) bool {
	grid := t.game.Grid
	next := t.cursor
	switch code {
	case "arrow_up":
		next = next.Step(world.North, 1)
	case "arrow_down":
		next = next.Step(world.South, 1)
	case "arrow_left":
		next = next.Step(world.West, 1)
	case "arrow_right":
		next = next.Step(world.East, 1)
	case "x":
		gameplay.ToggleAt(t.game, t.cursor.Row, t.cursor.Col)
		return true
	default:
		return false
	}
	if grid.IsValidPosition(next.Row, next.Col) {
		t.cursor = next
	}
	return true
}

// handleMouse presses a panel button or toggles the clicked editor cell
func (t *TUIRenderer) handleMouse(ev *tcell.EventMouse) []input.Intent {
	down := ev.Buttons()&tcell.Button1 != 0
	pressed := down && !t.mouseDown
	t.mouseDown = down
	if !pressed || t.game == nil {
		return nil
	}

	x, y := ev.Position()
	if intents := renderer.ButtonIntents(t.buttons, t.game.Mode, x, y); intents != nil {
		return intents
	}
	if t.game.Mode != state.ModeEdit {
		return nil
	}
	row, col := y, x/cellWidth
	if t.game.Grid.IsValidPosition(row, col) {
		t.cursor = world.Position{Row: row, Col: col}
		gameplay.ToggleAt(t.game, row, col)
	}
	return nil
}

// keyCode converts a tcell key event to a binding code
func keyCode(ev *tcell.EventKey) string {
	switch ev.Key() {
	case tcell.KeyUp:
		return "arrow_up"
	case tcell.KeyDown:
		return "arrow_down"
	case tcell.KeyLeft:
		return "arrow_left"
	case tcell.KeyRight:
		return "arrow_right"
	case tcell.KeyEnter:
		return "enter"
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return "backspace"
	case tcell.KeyEscape:
		return "escape"
	case tcell.KeyTab:
		return "tab"
	case tcell.KeyF8:
		return "f8"
	case tcell.KeyCtrlC:
		return "quit"
	case tcell.KeyRune:
		r := ev.Rune()
		if r == ' ' {
			return "space"
		}
		return string(unicode.ToLower(r))
	}
	return ""
}

// draw renders the current mode and shows the frame
func (t *TUIRenderer) draw() {
	if t.game == nil {
		return
	}
	t.screen.Clear()
	if t.game.Mode == state.ModePlay {
		t.drawView()
	} else {
		t.drawEditor()
	}
	t.screen.Show()
}

func (t *TUIRenderer) drawEditor() {
	g := t.game
	g.Grid.ForEachCell(func(row, col int, s world.CellState) {
		icon, style := IconPassage, stylePassage
		if s == world.Wall {
			icon, style = IconWall, styleWall
		}
		if row == t.cursor.Row && col == t.cursor.Col {
			style = styleCursor
		}
		t.putString(col*cellWidth, row, icon, style)
	})

	x := g.Grid.Cols()*cellWidth + panelGap
	y := 0
	t.putString(x, y, gotext.Get("WINDOW_TITLE"), styleTitle)
	y += 2
	for _, line := range []string{
		gotext.Get("PANEL_PRESS_ENTER") + " " + gotext.Get("PANEL_GENERATE"),
		gotext.Get("PANEL_SEED") + g.SeedText,
		gotext.Get("PANEL_RANDOM_1") + " " + gotext.Get("PANEL_RANDOM_2"),
		gotext.Get("PANEL_CLEAR_1") + " " + gotext.Get("PANEL_CLEAR_2"),
	} {
		t.putString(x, y, line, styleText)
		y++
	}
	y++
	t.buttons = t.buttons[:0]
	bx := x
	for _, b := range panelButtons {
		text := " " + b.key + " " + gotext.Get(b.label) + " "
		w := utf8.RuneCountInString(text)
		t.putString(bx, y, text, styleButton)
		t.buttons = append(t.buttons, renderer.Button{
			Label:  b.label,
			Bounds: image.Rect(bx, y, bx+w, y+1),
			Action: b.action,
		})
		bx += w + 1
	}
	y += 2
	t.putString(x, y, gotext.Get("TUI_EDIT_HINT"), styleSubtle)
	y += 2
	t.drawMessages(x, y)
}

func (t *TUIRenderer) drawView() {
	cols, rows := t.screen.Size()
	viewRows := max(rows-2, 0)
	frame := renderer.ASCIIFrame(t.game.Grid, t.game.Pose, t.settings.Raycast, cols, viewRows)
	for y, line := range frame {
		for x, gl := range line {
			ch := gl.Ch
			if ch == 0 {
				ch = ' '
			}
			style := tcell.StyleDefault.Foreground(rgb(gl.Color))
			if ch == ' ' {
				style = tcell.StyleDefault.Background(rgb(gl.Color))
			}
			t.screen.SetContent(x, y, ch, nil, style)
		}
	}
	t.putString(0, viewRows, gotext.Get("PLAY_HINT"), styleSubtle)
	if n := len(t.game.Messages); n > 0 {
		t.putString(0, viewRows+1, t.game.Messages[n-1], styleMessage)
	}
}

func (t *TUIRenderer) drawMessages(x, y int) {
	for i, msg := range t.game.Messages {
		t.putString(x, y+i, msg, styleMessage)
	}
}

func (t *TUIRenderer) putString(x, y int, s string, style tcell.Style) {
	for i, r := range []rune(s) {
		t.screen.SetContent(x+i, y, r, nil, style)
	}
}

func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// holdState emulates key-up events for a terminal: a code stays held until
// window passes without a repeat.
type holdState struct {
	window time.Duration
	last   map[string]time.Time
}

func newHoldState(window time.Duration) *holdState {
	return &holdState{window: window, last: make(map[string]time.Time)}
}

func (h *holdState) press(code string, at time.Time) {
	h.last[code] = at
}

// codes returns the codes still held at now, dropping expired ones
func (h *holdState) codes(now time.Time) []string {
	var held []string
	for code, at := range h.last {
		if now.Sub(at) > h.window {
			delete(h.last, code)
			continue
		}
		held = append(held, code)
	}
	return held
}

func (h *holdState) movement(now time.Time) gameplay.MovementInput {
	return gameplay.MovementFromActions(input.HeldActions(h.codes(now)))
}
