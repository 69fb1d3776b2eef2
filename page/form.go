package page

import (
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/archive/events"
)

// FormKey is the outcome of one key press in the booking form
type FormKey int

const (
	FormIgnored FormKey = iota
	FormEdited
	FormSubmit
	FormCancel
)

// EditText applies a key press to the reason field
// Returns the new text and what the press meant
func EditText(text string, k *events.KeyPayload) (string, FormKey) {
	switch k.Key {
	case tcell.KeyEnter:
		return text, FormSubmit
	case tcell.KeyEscape:
		return text, FormCancel
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		r := []rune(text)
		if len(r) == 0 {
			return text, FormIgnored
		}
		return string(r[:len(r)-1]), FormEdited
	case tcell.KeyCtrlU:
		if text == "" {
			return text, FormIgnored
		}
		return "", FormEdited
	case tcell.KeyRune:
		if !unicode.IsPrint(k.Rune) {
			return text, FormIgnored
		}
		return text + string(k.Rune), FormEdited
	}
	return text, FormIgnored
}
