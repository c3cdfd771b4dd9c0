package input

import (
	"errors"
	"fmt"
	"strings"
)

// Action is a paddle-movement intent or the pause toggle
type Action int

const (
	None Action = iota
	LeftUp
	LeftDown
	RightUp
	RightDown
	TogglePause
)

var actionName = map[Action]string{
	None:        "none",
	LeftUp:      "left_up",
	LeftDown:    "left_down",
	RightUp:     "right_up",
	RightDown:   "right_down",
	TogglePause: "toggle_pause",
}

func (a Action) String() string {
	if name, ok := actionName[a]; ok {
		return name
	}
	return fmt.Sprintf("action(%d)", int(a))
}

// IsMovement reports whether the action moves a paddle
func (a Action) IsMovement() bool {
	return a >= LeftUp && a <= RightDown
}

// Canonical key names shared by the frontends. Letter and digit keys use their
// lowercase character.
const (
	KeyUp     = "up"
	KeyDown   = "down"
	KeyLeft   = "left"
	KeyRight  = "right"
	KeyTab    = "tab"
	KeySpace  = "space"
	KeyEnter  = "enter"
	KeyEscape = "escape"
)

var ErrInvalidBindings = errors.New("invalid key bindings")

// Bindings names the key for every action
type Bindings struct {
	LeftUp    string
	LeftDown  string
	RightUp   string
	RightDown string
	Pause     string
}

// DefaultBindings: w/s for the left player, arrows for the right, tab pauses.
func DefaultBindings() Bindings {
	return Bindings{
		LeftUp:    "w",
		LeftDown:  "s",
		RightUp:   KeyUp,
		RightDown: KeyDown,
		Pause:     KeyTab,
	}
}

// KeyMap translates key names into actions
type KeyMap struct {
	bindings map[string]Action
}

// NewKeyMap validates the bindings: every action needs its own key.
func NewKeyMap(b Bindings) (*KeyMap, error) {
	pairs := []struct {
		key    string
		action Action
	}{
		{b.LeftUp, LeftUp},
		{b.LeftDown, LeftDown},
		{b.RightUp, RightUp},
		{b.RightDown, RightDown},
		{b.Pause, TogglePause},
	}

	m := &KeyMap{bindings: make(map[string]Action, len(pairs))}
	for _, p := range pairs {
		key := Normalize(p.key)
		if key == "" {
			return nil, fmt.Errorf("%w: no key for %s", ErrInvalidBindings, p.action)
		}
		if prev, exists := m.bindings[key]; exists {
			return nil, fmt.Errorf("%w: key %q bound to both %s and %s", ErrInvalidBindings, key, prev, p.action)
		}
		m.bindings[key] = p.action
	}

	return m, nil
}

// Resolve returns the action bound to key. Unbound keys resolve to None, false.
func (m *KeyMap) Resolve(key string) (Action, bool) {
	action, ok := m.bindings[Normalize(key)]
	if !ok {
		return None, false
	}
	return action, true
}

// Normalize lowercases and trims a key name
func Normalize(key string) string {
	return strings.ToLower(strings.TrimSpace(key))
}

// keyCodes maps physical key codes that are not a single character
var keyCodes = map[string]string{
	"ArrowUp":    KeyUp,
	"ArrowDown":  KeyDown,
	"ArrowLeft":  KeyLeft,
	"ArrowRight": KeyRight,
	"Tab":        KeyTab,
	"Space":      KeySpace,
	"Enter":      KeyEnter,
	"Escape":     KeyEscape,
}

// FromKeyCode converts a physical key code such as "ArrowUp", "Digit1" or "A"
// to the canonical key name. Codes with no canonical name map to "".
func FromKeyCode(code string) string {
	if name, ok := keyCodes[code]; ok {
		return name
	}

	code = strings.TrimPrefix(code, "Digit")
	if len(code) == 1 {
		return strings.ToLower(code)
	}
	return ""
}

// IsQuit reports whether key ends the match
func IsQuit(key string) bool {
	return Normalize(key) == KeyEscape
}
