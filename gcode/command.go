package gcode

import (
	"regexp"
	"strconv"
	"strings"
)

// Motion is the movement mode selected by a G-word.
type Motion int

const (
	// MotionUnknown means no G-word was given.
	MotionUnknown Motion = iota
	MotionRapid
	MotionLinear
)

func (m Motion) String() string {
	switch m {
	case MotionRapid:
		return "rapid"
	case MotionLinear:
		return "linear"
	}
	return "unknown"
}

// Grammar selects which lines are recognized as motion commands.
type Grammar int

const (
	// ScanlineGrammar accepts `G0|G1 X.. [Y..] [S..]` at the start of
	// a line, ignoring anything after it.
	ScanlineGrammar Grammar = iota

	// SegmentGrammar accepts `[G0|G00|G1|G01] [X..] [Y..] [S..]` as the
	// whole line. At least one of X or Y is required.
	SegmentGrammar
)

const number = `([-+]?\d*\.?\d+)`

var (
	rxScanline = regexp.MustCompile(`^(G[01])\s+X` + number + `(?:\s+Y` + number + `)?(?:\s+S(\d+))?`)
	rxSegment  = regexp.MustCompile(`^(?:(G0?[01])\s*)?(?:X` + number + `\s*)?(?:Y` + number + `\s*)?(?:S(\d+))?$`)

	commandWords = [...]byte{'G', 'X', 'Y', 'S'}
)

// Command is a recognized motion line.
type Command struct {
	// Block holds the G, X, Y and S words present on the line.
	Block
	Raw string

	power []int
}

// Classify returns the motion command on line, or false if line is
// not one. Numbers that fail to parse make the line non-motion.
func (g Grammar) Classify(line string) (Command, bool) {
	rx := rxScanline
	if g == SegmentGrammar {
		rx = rxSegment
	}

	m := rx.FindStringSubmatchIndex(line)
	if m == nil {
		return Command{}, false
	}

	cmd := Command{Raw: line, Block: make(Block, 0, len(commandWords))}
	for i, w := range commandWords {
		start, end := m[2+2*i], m[3+2*i]
		if start < 0 {
			continue
		}
		text := line[start:end]
		if w == 'G' {
			text = text[1:]
		}
		v, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return Command{}, false
		}
		cmd.Block = append(cmd.Block, Word{W: w, Arg: v})
		if w == 'S' {
			cmd.power = []int{start - 1, end}
		}
	}

	if !cmd.Has('X') && !cmd.Has('Y') {
		return Command{}, false
	}

	return cmd, true
}

// Motion reports the mode named by the line's G-word.
func (c Command) Motion() Motion {
	ok, g := c.Arg('G')
	switch {
	case !ok:
		return MotionUnknown
	case g == 0:
		return MotionRapid
	}
	return MotionLinear
}

// WithPower returns the original line with its S word (if any)
// removed and `S<power>` appended with 3 decimals.
func (c Command) WithPower(power float64) string {
	s := c.Raw
	if c.power != nil {
		s = s[:c.power[0]] + s[c.power[1]:]
	}
	return strings.TrimRight(s, " \t") + " S" + strconv.FormatFloat(power, 'f', 3, 64)
}
