package overscan

import (
	"github.com/mastercactapus/overscan/coord"
	"github.com/mastercactapus/overscan/gcode"
)

// Cursor is the state carried from one line to the next.
type Cursor struct {
	Pos  coord.Point
	Mode gcode.Motion

	// Armed is set once the laser arm directive has been emitted after
	// the first feed rate line.
	Armed bool
}

// apply moves the cursor to the command's target and returns the
// resulting motion mode. A command without a G-word keeps the mode.
func (c *Cursor) apply(cmd gcode.Command) gcode.Motion {
	if m := cmd.Motion(); m != gcode.MotionUnknown {
		c.Mode = m
	}
	c.Pos = c.resolve(cmd)
	return c.Mode
}

// resolve returns the command's target, taking omitted axes from
// the cursor.
func (c Cursor) resolve(cmd gcode.Command) coord.Point {
	p := c.Pos
	if ok, x := cmd.Arg('X'); ok {
		p.X = x
	}
	if ok, y := cmd.Arg('Y'); ok {
		p.Y = y
	}
	return p
}
