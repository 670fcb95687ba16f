package terminal

import (
	"github.com/gdamore/tcell/v2"

	"github.com/decker502/invaders/pkg/game"
)

// Input implements game.InputSource over a channel of tcell events.
//
// Events are produced by a goroutine blocked in PollEvent; translation
// happens in PollInput on the loop goroutine, which never blocks.
type Input struct {
	screen tcell.Screen
	events <-chan tcell.Event
	quit   bool
}

// NewInput creates an input source reading events. screen is synced on
// resize and may be nil.
func NewInput(screen tcell.Screen, events <-chan tcell.Event) *Input {
	return &Input{screen: screen, events: events}
}

// PollInput implements game.InputSource.
func (in *Input) PollInput() game.Action {
	for {
		select {
		case ev, ok := <-in.events:
			if !ok {
				return game.ActionNone
			}
			if action := in.translate(ev); action != game.ActionNone {
				return action
			}
		default:
			return game.ActionNone
		}
	}
}

// QuitRequested reports whether the player asked to leave.
func (in *Input) QuitRequested() bool {
	return in.quit
}

func (in *Input) translate(ev tcell.Event) game.Action {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			in.quit = true
		case tcell.KeyLeft:
			return game.ActionMoveLeft
		case tcell.KeyRight:
			return game.ActionMoveRight
		case tcell.KeyUp:
			return game.ActionFire
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'a', 'h':
				return game.ActionMoveLeft
			case 'd', 'l':
				return game.ActionMoveRight
			case ' ', 'w', 'k':
				return game.ActionFire
			case 'q':
				in.quit = true
			}
		}
	case *tcell.EventResize:
		if in.screen != nil {
			in.screen.Sync()
		}
	}
	return game.ActionNone
}
