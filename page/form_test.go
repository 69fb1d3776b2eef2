package page

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/archive/events"
)

func TestEditText(t *testing.T) {
	tests := []struct {
		name string
		text string
		key  events.KeyPayload
		want string
		kind FormKey
	}{
		{"rune", "hi", events.KeyPayload{Key: tcell.KeyRune, Rune: '!'}, "hi!", FormEdited},
		{"unicode", "", events.KeyPayload{Key: tcell.KeyRune, Rune: 'ü'}, "ü", FormEdited},
		{"backspace", "hé", events.KeyPayload{Key: tcell.KeyBackspace2}, "h", FormEdited},
		{"backspace empty", "", events.KeyPayload{Key: tcell.KeyBackspace}, "", FormIgnored},
		{"clear", "abc", events.KeyPayload{Key: tcell.KeyCtrlU}, "", FormEdited},
		{"enter", "abc", events.KeyPayload{Key: tcell.KeyEnter}, "abc", FormSubmit},
		{"escape", "abc", events.KeyPayload{Key: tcell.KeyEscape}, "abc", FormCancel},
		{"arrow", "abc", events.KeyPayload{Key: tcell.KeyLeft}, "abc", FormIgnored},
	}
	for _, tt := range tests {
		got, kind := EditText(tt.text, &tt.key)
		if got != tt.want || kind != tt.kind {
			t.Errorf("%s: expected %q/%d, got %q/%d", tt.name, tt.want, tt.kind, got, kind)
		}
	}
}
