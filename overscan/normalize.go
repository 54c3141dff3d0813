package overscan

import (
	"github.com/mastercactapus/overscan/gcode"
)

const (
	armLaser   = "M03 S0"
	powerOff   = "M05"
	returnHome = "G0 X0 Y0 S0"
)

type directive int

const (
	directiveOther directive = iota
	directiveFeedRate
	directiveSpindle
)

// classifyDirective recognizes `G1 F..` feed rate lines and M3/M4/M5
// spindle lines. Anything that does not parse is directiveOther.
func classifyDirective(s string) directive {
	b, err := gcode.ParseBlock(s)
	if err != nil || len(b) == 0 {
		return directiveOther
	}

	switch {
	case b[0].W == 'M' && b[0].ModalGroup() == gcode.ModalGroupSpindle:
		return directiveSpindle
	case b[0] == (gcode.Word{W: 'G', Arg: 1}) && len(b) > 1 && b[1].W == 'F':
		return directiveFeedRate
	}
	return directiveOther
}

// pass returns the output for a line outside of any group.
func (e *Engine) pass(s string) []string {
	if !e.policy.normalizes() {
		return []string{s}
	}

	switch classifyDirective(s) {
	case directiveSpindle:
		e.stats.Dropped++
		return nil
	case directiveFeedRate:
		if e.cur.Armed {
			e.stats.Dropped++
			return nil
		}
		e.cur.Armed = true
		e.stats.Inserted++
		return []string{s, armLaser}
	}

	return []string{s}
}
