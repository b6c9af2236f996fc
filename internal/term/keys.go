package term

import (
	"github.com/gdamore/tcell/v2"

	"sandfall/internal/input"
)

// translate feeds a tcell key event to the controller. It reports false for
// keys the controller does not know.
func translate(ctrl *input.Controller, ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyUp:
		ctrl.HandleKey(input.KeyUp)
	case tcell.KeyDown:
		ctrl.HandleKey(input.KeyDown)
	case tcell.KeyLeft:
		ctrl.HandleKey(input.KeyLeft)
	case tcell.KeyRight:
		ctrl.HandleKey(input.KeyRight)
	case tcell.KeyEscape, tcell.KeyCtrlC:
		ctrl.HandleKey(input.KeyQuit)
	case tcell.KeyRune:
		ctrl.HandleRune(ev.Rune())
	default:
		return false
	}
	return true
}
