package overscan

import (
	"math"

	"github.com/mastercactapus/overscan/coord"
	"github.com/mastercactapus/overscan/gcode"
)

type scanline struct{}

func (scanline) grammar() gcode.Grammar { return gcode.ScanlineGrammar }
func (scanline) normalizes() bool       { return false }

func (s scanline) step(e *Engine, l *line) {
	if !l.motion {
		e.emit(e.pass(l.text)...)
		return
	}

	e.cur.apply(l.cmd)
	y := e.cur.Pos.Y

	lines := []string{l.text}
	xs := []float64{e.cur.Pos.X}
	for {
		n, err := e.peek()
		if err != nil || !n.motion {
			break
		}
		if ok, ny := n.cmd.Arg('Y'); ok && !coord.Near(ny, y) {
			break
		}
		e.next()
		e.cur.apply(n.cmd)
		lines = append(lines, n.text)
		xs = append(xs, e.cur.Pos.X)
	}
	e.cur.Pos.Y = y

	s.bracket(e, lines, xs, y)
}

// bracket emits the group between rapid moves past its lowest and
// highest X. The first two points decide which side comes first.
func (scanline) bracket(e *Engine, lines []string, xs []float64, y float64) {
	e.stats.Groups++
	if len(xs) < 2 {
		e.stats.Degenerate++
		e.emit(lines...)
		return
	}

	xMin, xMax := xs[0], xs[0]
	for _, x := range xs[1:] {
		xMin = math.Min(xMin, x)
		xMax = math.Max(xMax, x)
	}
	near := overscanMove(coord.Point{X: xMin - e.opt.Distance, Y: y})
	far := overscanMove(coord.Point{X: xMax + e.opt.Distance, Y: y})

	if xs[0] < xs[1] {
		e.synth(near)
		e.emit(lines...)
		e.synth(far)
	} else {
		e.synth(far)
		e.emit(lines...)
		e.synth(near)
	}
	e.stats.Overscans++
}
