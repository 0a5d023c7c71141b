package input

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Carmen-Shannon/freecam/common"
)

// Action is a camera control bound to a key. The string values match the keys of the
// input.bindings config section.
type Action string

const (
	ActionForward   Action = "forward"
	ActionBackward  Action = "backward"
	ActionLeft      Action = "left"
	ActionRight     Action = "right"
	ActionUp        Action = "up"
	ActionDown      Action = "down"
	ActionRollLeft  Action = "rollLeft"
	ActionRollRight Action = "rollRight"
	ActionYawLeft   Action = "yawLeft"
	ActionYawRight  Action = "yawRight"
	ActionPitchUp   Action = "pitchUp"
	ActionPitchDown Action = "pitchDown"
	ActionBoost     Action = "boost"
	ActionRecenter  Action = "recenter"
	ActionFaster    Action = "faster"
	ActionSlower    Action = "slower"
)

// Actions lists every bindable action.
var Actions = []Action{
	ActionForward, ActionBackward, ActionLeft, ActionRight, ActionUp, ActionDown,
	ActionRollLeft, ActionRollRight, ActionYawLeft, ActionYawRight,
	ActionPitchUp, ActionPitchDown, ActionBoost, ActionRecenter, ActionFaster, ActionSlower,
}

// Bindings maps actions to key codes.
type Bindings map[Action]uint32

// DefaultBindings returns the stock layout: WASD movement, Space/C vertical, Q/E roll,
// arrow keys for yaw and pitch, Shift boost, Backspace recenter, keypad +/- speed.
func DefaultBindings() Bindings {
	return Bindings{
		ActionForward:   common.KeyW,
		ActionBackward:  common.KeyS,
		ActionLeft:      common.KeyA,
		ActionRight:     common.KeyD,
		ActionUp:        common.KeySpace,
		ActionDown:      common.KeyC,
		ActionRollLeft:  common.KeyQ,
		ActionRollRight: common.KeyE,
		ActionYawLeft:   common.KeyLeft,
		ActionYawRight:  common.KeyRight,
		ActionPitchUp:   common.KeyUp,
		ActionPitchDown: common.KeyDown,
		ActionBoost:     common.KeyLeftShift,
		ActionRecenter:  common.KeyBackspace,
		ActionFaster:    common.KeyKPAdd,
		ActionSlower:    common.KeyKPSubtract,
	}
}

// ResolveBindings converts config binding names into key codes. Actions missing from
// names keep their default key.
//
// Parameters:
//   - names: action name to key name, as read from config
//
// Returns:
//   - Bindings: the resolved bindings
//   - error: error listing every unknown action or key name
func ResolveBindings(names map[string]string) (Bindings, error) {
	known := make(map[string]Action, len(Actions))
	for _, a := range Actions {
		known[strings.ToLower(string(a))] = a
	}

	out := DefaultBindings()
	var problems []string
	for name, key := range names {
		action, ok := known[strings.ToLower(name)]
		if !ok {
			problems = append(problems, fmt.Sprintf("unknown action %q", name))
			continue
		}
		code, ok := common.KeyCode(strings.ToLower(key))
		if !ok {
			problems = append(problems, fmt.Sprintf("unknown key %q for %s", key, action))
			continue
		}
		out[action] = code
	}

	if len(problems) > 0 {
		sort.Strings(problems)
		return nil, fmt.Errorf("invalid input bindings: %s", strings.Join(problems, "; "))
	}
	return out, nil
}
