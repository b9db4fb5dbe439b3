package rule

import (
	"fmt"
	"strings"
)

// ParseRule parses a rule string in one of four forms: "born/live",
// "born,live", "Bxxx/Syyy", "Bxxx,Syyy" (each digit 0..8 naming a
// neighbor count), or a Wolfram hex-encoded value whose bit pairs
// (low to high) give, for each n = 0..8, (born[n], live[n]).
func ParseRule(s string) (Spec, error) {
	var spec Spec

	if s == "" {
		return spec, fmt.Errorf("rule: empty rule string")
	}

	if !strings.ContainsAny(s, ",/") {
		return parseWolframHex(s)
	}

	sep := "/"
	if !strings.Contains(s, "/") {
		sep = ","
	}

	parts := strings.SplitN(s, sep, 2)
	if len(parts) != 2 {
		return spec, fmt.Errorf("rule: malformed rule string %q", s)
	}

	born := strings.TrimPrefix(strings.TrimPrefix(parts[0], "B"), "b")
	live := strings.TrimPrefix(strings.TrimPrefix(parts[1], "S"), "s")

	if err := parseDigits(born, &spec.Born); err != nil {
		return spec, err
	}
	if err := parseDigits(live, &spec.Live); err != nil {
		return spec, err
	}

	return spec, nil
}

func parseDigits(s string, out *[9]bool) error {
	for _, ch := range s {
		if ch < '0' || ch > '8' {
			return fmt.Errorf("rule: invalid neighbor-count digit %q", ch)
		}
		out[ch-'0'] = true
	}
	return nil
}

// parseWolframHex decodes a hex-encoded 10-bit Wolfram rule value. The
// original program's guard against rules needing more than 10 bits
// (`if (i & ~0x3ff) return FALSE`) tests a leftover loop counter instead
// of the accumulated bits — a dormant no-op, since i is always 9 by the
// time that line runs and 9 & ~0x3ff == 0 always (see DESIGN.md). This
// implementation enforces the intended contract instead: reject any
// value using a bit outside the low 10.
func parseWolframHex(s string) (Spec, error) {
	var spec Spec
	var bits uint32

	for _, ch := range s {
		var digit uint32
		switch {
		case ch >= '0' && ch <= '9':
			digit = uint32(ch - '0')
		case ch >= 'a' && ch <= 'f':
			digit = uint32(ch-'a') + 10
		case ch >= 'A' && ch <= 'F':
			digit = uint32(ch-'A') + 10
		default:
			return spec, fmt.Errorf("rule: invalid hex digit %q", ch)
		}
		bits = (bits << 4) + digit
	}

	if bits&^0x3ff != 0 {
		return spec, fmt.Errorf("rule: hex rule %q uses more than 10 bits", s)
	}

	for n := 0; n < 9; n++ {
		if bits&0x01 != 0 {
			spec.Born[n] = true
		}
		if bits&0x02 != 0 {
			spec.Live[n] = true
		}
		bits >>= 2
	}

	return spec, nil
}

// String renders spec back into canonical "Bxxx/Syyy" form, the same
// normalization setRules performs for printouts.
func (s Spec) String() string {
	var b strings.Builder
	b.WriteByte('B')
	for n := 0; n < 9; n++ {
		if s.Born[n] {
			fmt.Fprintf(&b, "%d", n)
		}
	}
	b.WriteString("/S")
	for n := 0; n < 9; n++ {
		if s.Live[n] {
			fmt.Fprintf(&b, "%d", n)
		}
	}
	return b.String()
}

// IsLife reports whether spec is the standard Conway rule B3/S23.
func (s Spec) IsLife() bool {
	return s.String() == "B3/S23"
}
