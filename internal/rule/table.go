package rule

// Flags records, for a given descriptor, what the previous-generation cell
// (and its unknown neighbors) can be forced to once the current cell's
// descriptor is known.
type Flags uint8

const (
	N0IC0   Flags = 0x01 // new cell 0 implies current cell 0
	N0IC1   Flags = 0x02 // new cell 0 implies current cell 1
	N1IC0   Flags = 0x04 // new cell 1 implies current cell 0
	N1IC1   Flags = 0x08 // new cell 1 implies current cell 1
	N0ICUN0 Flags = 0x10 // new cell 0 implies current unknown neighbors 0
	N0ICUN1 Flags = 0x20 // new cell 0 implies current unknown neighbors 1
	N1ICUN0 Flags = 0x40 // new cell 1 implies current unknown neighbors 0
	N1ICUN1 Flags = 0x80 // new cell 1 implies current unknown neighbors 1
)

// Table holds the precomputed transit and implication lookup tables for a
// given Spec. Both are indexed by a Descriptor value (0..255) and built
// once, by exhaustive enumeration, at construction.
type Table struct {
	Spec   Spec
	Transit [256]State
	Implic  [256]Flags
}

// NewTable builds the transit and implication tables for spec.
func NewTable(spec Spec) *Table {
	t := &Table{Spec: spec}
	t.buildTransit()
	t.buildImplic()
	return t
}

func (t *Table) buildTransit() {
	for _, state := range states {
		for offCount := 8; offCount >= 0; offCount-- {
			for onCount := 0; onCount+offCount <= 8; onCount++ {
				desc := descFromCounts(state, offCount, onCount)
				t.Transit[desc] = t.Spec.transition(state, offCount, onCount)
			}
		}
	}
}

func (t *Table) buildImplic() {
	for _, state := range states {
		for offCount := 8; offCount >= 0; offCount-- {
			for onCount := 0; onCount+offCount <= 8; onCount++ {
				desc := descFromCounts(state, offCount, onCount)
				t.Implic[desc] = t.Spec.implication(state, offCount, onCount)
			}
		}
	}
}

// transition determines the forced next-generation state of a cell in
// `state` with offCount known-OFF and onCount known-ON neighbors (the rest
// unknown). Returns UNK unless every completion of the unknown neighbors
// agrees.
func (s Spec) transition(state State, offCount, onCount int) State {
	unkCount := 8 - offCount - onCount
	onAlways, offAlways := true, true

	for i := 0; i <= unkCount; i++ {
		switch s.nextState(state, onCount+i) {
		case ON:
			offAlways = false
		case OFF:
			onAlways = false
		default:
			return UNK
		}
	}

	switch {
	case onAlways:
		return ON
	case offAlways:
		return OFF
	default:
		return UNK
	}
}

// implication determines what forcing the descriptor's next-generation
// state implies about the previous-generation cell and its unknown
// neighbors.
func (s Spec) implication(state State, offCount, onCount int) Flags {
	unkCount := 8 - offCount - onCount
	var flags Flags

	if state == UNK {
		flags |= N0IC0 | N0IC1 | N1IC0 | N1IC1

		for i := 0; i <= unkCount; i++ {
			switch s.nextState(OFF, onCount+i) {
			case ON:
				flags &^= N1IC1
			case OFF:
				flags &^= N0IC1
			}

			switch s.nextState(ON, onCount+i) {
			case ON:
				flags &^= N1IC0
			case OFF:
				flags &^= N0IC0
			}
		}
	}

	if unkCount == 0 {
		return flags
	}

	flags |= N0ICUN0 | N0ICUN1 | N1ICUN0 | N1ICUN1

	if state == OFF || state == UNK {
		switch s.nextState(OFF, onCount) {
		case ON:
			flags &^= N1ICUN1
		case OFF:
			flags &^= N0ICUN1
		}

		switch s.nextState(OFF, onCount+unkCount) {
		case ON:
			flags &^= N1ICUN0
		case OFF:
			flags &^= N0ICUN0
		}
	}

	if state == ON || state == UNK {
		switch s.nextState(ON, onCount) {
		case ON:
			flags &^= N1ICUN1
		case OFF:
			flags &^= N0ICUN1
		}

		switch s.nextState(ON, onCount+unkCount) {
		case ON:
			flags &^= N1ICUN0
		case OFF:
			flags &^= N0ICUN0
		}
	}

	for i := 1; i <= unkCount-1; i++ {
		if state == OFF || state == UNK {
			switch s.nextState(OFF, onCount+i) {
			case ON:
				flags &^= N1ICUN0 | N1ICUN1
			case OFF:
				flags &^= N0ICUN0 | N0ICUN1
			}
		}

		if state == ON || state == UNK {
			switch s.nextState(ON, onCount+i) {
			case ON:
				flags &^= N1ICUN0 | N1ICUN1
			case OFF:
				flags &^= N0ICUN0 | N0ICUN1
			}
		}
	}

	return flags
}
