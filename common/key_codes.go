package common

// Virtual key codes for cross-platform input handling.
// These values match GLFW key codes which use ASCII values for printable keys.
// Reference: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw#Key
const (
	KeyW         = 87  // W key (ASCII)
	KeyA         = 65  // A key (ASCII)
	KeyS         = 83  // S key (ASCII)
	KeyD         = 68  // D key (ASCII)
	KeyQ         = 81  // Q key (ASCII)
	KeyE         = 69  // E key (ASCII)
	KeyC         = 67  // C key (ASCII)
	KeySpace     = 32  // Spacebar (ASCII)
	KeyMinus     = 45  // - key (ASCII)
	KeyEqual     = 61  // = key (ASCII)
	KeyBackspace = 259 // Backspace key (GLFW)
	KeyEsc       = 256 // Escape key (GLFW)
)

// Navigation keys
const (
	KeyRight = 262 // Right arrow (GLFW)
	KeyLeft  = 263 // Left arrow (GLFW)
	KeyDown  = 264 // Down arrow (GLFW)
	KeyUp    = 265 // Up arrow (GLFW)
	KeyHome  = 268 // Home (GLFW)
)

// Additional non-printable keys
const (
	KeyKPSubtract = 333 // Keypad - (GLFW)
	KeyKPAdd      = 334 // Keypad + (GLFW)
	KeyLeftShift  = 340 // Left Shift (GLFW)
	KeyRightShift = 344 // Right Shift (GLFW)
)

// keyNames maps the configurable binding names to their key codes.
var keyNames = map[string]uint32{
	"w":          KeyW,
	"a":          KeyA,
	"s":          KeyS,
	"d":          KeyD,
	"q":          KeyQ,
	"e":          KeyE,
	"c":          KeyC,
	"space":      KeySpace,
	"minus":      KeyMinus,
	"equal":      KeyEqual,
	"backspace":  KeyBackspace,
	"esc":        KeyEsc,
	"right":      KeyRight,
	"left":       KeyLeft,
	"down":       KeyDown,
	"up":         KeyUp,
	"home":       KeyHome,
	"kpsubtract": KeyKPSubtract,
	"kpadd":      KeyKPAdd,
	"leftshift":  KeyLeftShift,
	"rightshift": KeyRightShift,
}

// KeyCode looks up a key code by its binding name (case-sensitive, lower case).
// Single letters and digits map to their GLFW (ASCII) codes.
//
// Parameters:
//   - name: the binding name, e.g. "w" or "leftshift"
//
// Returns:
//   - uint32: the key code
//   - bool: false if the name is unknown
func KeyCode(name string) (uint32, bool) {
	if code, ok := keyNames[name]; ok {
		return code, true
	}
	if len(name) == 1 {
		switch c := name[0]; {
		case c >= 'a' && c <= 'z':
			return uint32(c - 'a' + 'A'), true
		case c >= '0' && c <= '9':
			return uint32(c), true
		}
	}
	return 0, false
}
