package vm

import (
	"errors"

	"github.com/mastercactapus/overscan/coord"
	"github.com/mastercactapus/overscan/gcode"
)

// Summary describes the moves of a program.
type Summary struct {
	Moves      int `json:"moves"`
	RapidMoves int `json:"rapidMoves"`
	CutMoves   int `json:"cutMoves"`

	RapidDistance float64 `json:"rapidDistance"`
	CutDistance   float64 `json:"cutDistance"`

	// Min and Max bound every cut move.
	Min coord.Point `json:"min"`
	Max coord.Point `json:"max"`

	// Skipped counts lines that could not be interpreted.
	Skipped int `json:"skipped"`
}

// Machine tracks position and modal state while running blocks.
type Machine struct {
	pos   coord.Point
	modal [256]float64

	sum Summary
}

func NewMachine() *Machine {
	m := &Machine{}

	// using grbl defaults
	m.modal[gcode.ModalGroupMotion] = 0
	m.modal[gcode.ModalGroupDistanceMode] = 90
	m.modal[gcode.ModalGroupUnits] = 21
	m.modal[gcode.ModalGroupSpindle] = 5

	return m
}

func (m Machine) Inches() bool         { return m.modal[gcode.ModalGroupUnits] == 20 }
func (m Machine) RelativeMotion() bool { return m.modal[gcode.ModalGroupDistanceMode] == 91 }
func (m Machine) Rapid() bool          { return m.modal[gcode.ModalGroupMotion] == 0 }

func (m Machine) Pos() coord.Point { return m.pos }
func (m Machine) Summary() Summary { return m.sum }

func isSupported(g gcode.Word) bool {
	if g.IsAxis() {
		return true
	}

	switch g.W {
	case 'G':
		switch g.Arg {
		case 0, 1, 17, 20, 21, 90, 91, 94:
			return true
		}
	case 'M':
		switch g.Arg {
		case 2, 3, 4, 5, 8, 9, 30:
			return true
		}
	case 'F', 'S':
		return true
	}

	return false
}

func applyBlock(p coord.Point, b gcode.Block, mul float64) (coord.Point, bool) {
	var moved bool
	for _, g := range b {
		switch g.W {
		case 'X':
			p.X = g.Arg * mul
			moved = true
		case 'Y':
			p.Y = g.Arg * mul
			moved = true
		}
	}

	return p, moved
}

// Run applies a block. Unsupported words leave the machine untouched.
func (m *Machine) Run(b gcode.Block) error {
	for _, g := range b {
		if !isSupported(g) {
			return errors.New("unsupported code: " + g.String())
		}
	}
	for _, g := range b {
		mg := g.ModalGroup()
		if mg != gcode.ModalGroupNone && mg != gcode.ModalGroupNonModal {
			m.modal[mg] = g.Arg
		}
	}

	mul := 1.0
	if m.Inches() {
		mul = 25.4
	}

	var next coord.Point
	var moved bool
	if m.RelativeMotion() {
		var delta coord.Point
		delta, moved = applyBlock(coord.Point{}, b, mul)
		next = m.pos.Add(delta)
	} else {
		next, moved = applyBlock(m.pos, b, mul)
	}
	if !moved {
		return nil
	}

	m.record(m.pos, next)
	m.pos = next
	return nil
}

func (m *Machine) record(from, to coord.Point) {
	dist := from.Distance(to)
	m.sum.Moves++
	if m.Rapid() {
		m.sum.RapidMoves++
		m.sum.RapidDistance += dist
		return
	}

	if m.sum.CutMoves == 0 {
		m.sum.Min, m.sum.Max = from, from
	}
	m.sum.CutMoves++
	m.sum.CutDistance += dist
	m.sum.Min = m.sum.Min.Min(from).Min(to)
	m.sum.Max = m.sum.Max.Max(from).Max(to)
}

// Summarize runs every line through a fresh machine starting at the
// origin.
func Summarize(lines []string) Summary {
	m := NewMachine()
	for _, s := range lines {
		b, err := gcode.ParseBlock(s)
		if err == nil {
			err = m.Run(b)
		}
		if err != nil {
			m.sum.Skipped++
		}
	}
	return m.Summary()
}
