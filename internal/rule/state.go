// Package rule implements the totalistic Life-family rule tables: the
// per-cell state type, the neighborhood descriptor encoding, and the
// transit/implication lookup tables built from a born/live rule spec.
package rule

// State is the state of a single cell.
type State uint8

// Cell state values. UNK must stay distinct from any neighbor-count so the
// descriptor packing in Descriptor can tell "ones" from "unknowns" apart.
const (
	OFF State = 0x00
	ON  State = 0x01
	UNK State = 0x10
)

func (s State) String() string {
	switch s {
	case OFF:
		return "off"
	case ON:
		return "on"
	case UNK:
		return "unknown"
	default:
		return "invalid"
	}
}

// states enumerates the three possible cell states, used when exhaustively
// building the lookup tables.
var states = [3]State{OFF, ON, UNK}

// Spec is a totalistic birth/survival rule: born[n] is whether an OFF cell
// with n ON neighbors is born, live[n] is whether an ON cell with n ON
// neighbors survives, for n in 0..=8.
type Spec struct {
	Born [9]bool
	Live [9]bool
}

// Life is the standard Conway rule, B3/S23.
var Life = Spec{
	Born: [9]bool{false, false, false, true, false, false, false, false, false},
	Live: [9]bool{false, false, true, true, false, false, false, false, false},
}

// bornState/liveState convert the Spec's bools into the State values the
// table builders work with (OFF or ON, never UNK).
func (s Spec) bornState(n int) State {
	if s.Born[n] {
		return ON
	}
	return OFF
}

func (s Spec) liveState(n int) State {
	if s.Live[n] {
		return ON
	}
	return OFF
}

// nextState is the one-step transition of a cell in state `state` with
// exactly `onCount` known ON neighbors (all other neighbors known OFF).
// UNK propagates only when born/live disagree for this onCount.
func (s Spec) nextState(state State, onCount int) State {
	switch state {
	case ON:
		return s.liveState(onCount)
	case OFF:
		return s.bornState(onCount)
	case UNK:
		b, l := s.bornState(onCount), s.liveState(onCount)
		if b == l {
			return b
		}
		return UNK
	default:
		return UNK
	}
}
