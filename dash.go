package tess

import "math"

// Dash is a dash pattern for stroking: alternating drawn and skipped
// lengths along a contour. Lengths[0] is drawn, Lengths[1] skipped and
// so on. An odd number of entries behaves as if the list were written
// out twice, so a single entry gives equal dashes and gaps.
type Dash struct {
	// Lengths holds the alternating draw/skip lengths.
	Lengths []float64

	// Offset is the starting offset into the pattern. The contour
	// begins at this distance into the pattern cycle.
	Offset float64
}

// NewDash creates a dash pattern from alternating draw/skip lengths.
// Negative lengths are made positive. Returns nil when no positive
// length is given, which stands for a solid line.
//
// Examples:
//
//	NewDash(5, 3)        // 5 units drawn, 3 units skipped
//	NewDash(10, 5, 2, 5) // 10 drawn, 5 skipped, 2 drawn, 5 skipped
//	NewDash(5)           // equivalent to NewDash(5, 5)
func NewDash(lengths ...float64) *Dash {
	if len(lengths) == 0 {
		return nil
	}
	positive := false
	for _, l := range lengths {
		if l > 0 {
			positive = true
			break
		}
	}
	if !positive {
		return nil
	}

	normalized := make([]float64, len(lengths))
	for i, l := range lengths {
		normalized[i] = math.Abs(l)
	}
	return &Dash{Lengths: normalized}
}

// WithOffset returns a copy of the Dash with the given offset.
func (d *Dash) WithOffset(offset float64) *Dash {
	if d == nil {
		return nil
	}
	return &Dash{Lengths: d.Lengths, Offset: offset}
}

// PatternLength returns the length of one full pattern cycle. Odd
// length lists count twice, matching their repetition behavior.
func (d *Dash) PatternLength() float64 {
	if d == nil || len(d.Lengths) == 0 {
		return 0
	}
	var total float64
	for _, l := range d.Lengths {
		total += l
	}
	if len(d.Lengths)%2 != 0 {
		total *= 2
	}
	return total
}

// NormalizedOffset returns Offset reduced into [0, PatternLength).
func (d *Dash) NormalizedOffset() float64 {
	if d == nil {
		return 0
	}
	period := d.PatternLength()
	if period <= 0 {
		return 0
	}
	off := math.Mod(d.Offset, period)
	if off < 0 {
		off += period
	}
	return off
}

// IsDashed reports whether the pattern actually draws dashes rather
// than a solid line. A nil Dash is solid.
func (d *Dash) IsDashed() bool {
	if d == nil || len(d.Lengths) == 0 {
		return false
	}
	for _, l := range d.Lengths {
		if l > 0 {
			return true
		}
	}
	return false
}

// Clone creates a deep copy of the Dash.
func (d *Dash) Clone() *Dash {
	if d == nil {
		return nil
	}
	lengths := make([]float64, len(d.Lengths))
	copy(lengths, d.Lengths)
	return &Dash{Lengths: lengths, Offset: d.Offset}
}

// pattern returns the effective even-length pattern, duplicating odd
// length lists.
func (d *Dash) pattern() []float64 {
	if d == nil || len(d.Lengths) == 0 {
		return nil
	}
	if len(d.Lengths)%2 == 0 {
		return d.Lengths
	}
	doubled := make([]float64, 0, 2*len(d.Lengths))
	doubled = append(doubled, d.Lengths...)
	doubled = append(doubled, d.Lengths...)
	return doubled
}
