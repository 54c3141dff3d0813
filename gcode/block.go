package gcode

import (
	"strings"
)

type Block []Word

func (b Block) Arg(w byte) (bool, float64) {
	for _, g := range b {
		if g.W == w {
			return true, g.Arg
		}
	}
	return false, 0
}
func (b Block) SetArg(w byte, val float64) {
	for i, g := range b {
		if g.W == w {
			b[i].Arg = val
			return
		}
	}
}

func (b Block) Has(w byte) bool {
	ok, _ := b.Arg(w)
	return ok
}

// Modal returns the first word of the block belonging to the group.
func (b Block) Modal(m ModalGroup) (bool, Word) {
	for _, g := range b {
		if g.ModalGroup() == m {
			return true, g
		}
	}
	return false, Word{}
}

func (b Block) String() string {
	s := make([]string, len(b))
	for i, w := range b {
		s[i] = w.String()
	}
	return strings.Join(s, " ")
}

// Format is like String but renders axis values with a fixed
// number of decimals.
func (b Block) Format(prec int) string {
	s := make([]string, len(b))
	for i, w := range b {
		s[i] = w.Format(prec)
	}
	return strings.Join(s, " ")
}
