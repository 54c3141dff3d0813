package overscan

import (
	"github.com/mastercactapus/overscan/coord"
	"github.com/mastercactapus/overscan/gcode"
)

type segment struct{}

func (segment) grammar() gcode.Grammar { return gcode.SegmentGrammar }
func (segment) normalizes() bool       { return true }

func (s segment) step(e *Engine, l *line) {
	if !l.motion {
		e.emit(e.pass(l.text)...)
		return
	}
	if e.cur.apply(l.cmd) != gcode.MotionRapid {
		e.emit(l.text)
		return
	}

	entry := e.cur.Pos
	var side []string
	for {
		n, err := e.peek()
		if err != nil {
			break
		}
		if !n.motion {
			e.next()
			side = append(side, e.pass(n.text)...)
			continue
		}
		if n.cmd.Motion() != gcode.MotionLinear {
			// another rapid, explicit or modal: nothing was cut
			break
		}
		e.next()
		s.cut(e, l.text, side, entry, n.cmd)
		return
	}

	e.stats.Groups++
	e.stats.Degenerate++
	e.emit(l.text)
	e.emit(side...)
}

// cut emits a rapid/cut pair with overscan moves before and after it.
// Diagonal cuts get no offset; their overscan moves land on the entry
// and exit points.
func (segment) cut(e *Engine, rapid string, side []string, entry coord.Point, cmd gcode.Command) {
	exit := e.cur.resolve(cmd)
	d := e.opt.Distance

	before, after := entry, exit
	switch {
	case coord.Near(exit.Y, entry.Y):
		if exit.X > entry.X {
			before.X, after.X = entry.X-d, exit.X+d
		} else {
			before.X, after.X = entry.X+d, exit.X-d
		}
		e.stats.Overscans++
	case coord.Near(exit.X, entry.X):
		if exit.Y > entry.Y {
			before.Y, after.Y = entry.Y-d, exit.Y+d
		} else {
			before.Y, after.Y = entry.Y+d, exit.Y-d
		}
		e.stats.Overscans++
	default:
		e.stats.Degenerate++
	}
	e.stats.Groups++

	e.synth(overscanMove(before))
	e.emit(rapid)
	e.emit(side...)
	e.emit(cmd.WithPower(e.opt.Power))
	e.synth(overscanMove(after))

	e.cur.Pos = after
	e.cur.Mode = gcode.MotionLinear
}
