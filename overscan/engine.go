package overscan

import (
	"io"

	"github.com/mastercactapus/overscan/coord"
	"github.com/mastercactapus/overscan/gcode"
)

// Stats counts what the engine did to a program.
type Stats struct {
	Lines      int `json:"lines"`
	Groups     int `json:"groups"`
	Overscans  int `json:"overscans"`
	Degenerate int `json:"degenerate"`
	Dropped    int `json:"dropped"`
	Inserted   int `json:"inserted"`
}

type policy interface {
	grammar() gcode.Grammar

	// normalizes is true if directives are rewritten and the
	// shutdown sequence is appended.
	normalizes() bool

	// step consumes l, and possibly more lines through peek/next,
	// emitting output for all of them.
	step(e *Engine, l *line)
}

type line struct {
	text   string
	cmd    gcode.Command
	motion bool
}

// Engine reads a program from a gcode.Reader and returns it with
// overscan moves added.
type Engine struct {
	opt    Options
	policy policy
	gr     gcode.Reader

	cur   Cursor
	stats Stats

	pending *line
	err     error

	buf  []string
	bufN int
	done bool
}

type Config struct {
	Options

	Reader gcode.Reader
}

var _ gcode.Reader = &Engine{}

func New(cfg Config) (*Engine, error) {
	err := cfg.Options.Validate()
	if err != nil {
		return nil, err
	}
	pol, _ := ParsePolicy(string(cfg.Policy))

	e := &Engine{
		opt: cfg.Options,
		gr:  cfg.Reader,
	}
	e.opt.Policy = pol
	switch pol {
	case Segment:
		e.policy = segment{}
	default:
		e.policy = scanline{}
	}

	return e, nil
}

// Process runs the engine over lines.
func Process(lines []string, opt Options) ([]string, Stats, error) {
	e, err := New(Config{Options: opt, Reader: &gcode.LinesReader{Lines: lines}})
	if err != nil {
		return nil, Stats{}, err
	}
	out, err := gcode.ReadAll(e)
	if err != nil {
		return nil, Stats{}, err
	}
	return out, e.Stats(), nil
}

func (e *Engine) Stats() Stats   { return e.stats }
func (e *Engine) Cursor() Cursor { return e.cur }

func (e *Engine) Read() (string, error) {
	for e.bufN == len(e.buf) {
		if e.done {
			return "", io.EOF
		}
		e.buf = e.buf[:0]
		e.bufN = 0

		l, err := e.next()
		if err == io.EOF {
			if e.policy.normalizes() {
				e.synth(powerOff, returnHome)
			}
			e.done = true
			continue
		}
		if err != nil {
			return "", err
		}
		e.policy.step(e, l)
	}

	e.bufN++
	return e.buf[e.bufN-1], nil
}

// peek returns the next input line without consuming it.
func (e *Engine) peek() (*line, error) {
	if e.pending == nil && e.err == nil {
		s, err := e.gr.Read()
		if err != nil {
			e.err = err
		} else {
			e.pending = e.classify(s)
		}
	}
	if e.pending != nil {
		return e.pending, nil
	}
	return nil, e.err
}

func (e *Engine) next() (*line, error) {
	l, err := e.peek()
	e.pending = nil
	return l, err
}

func (e *Engine) classify(s string) *line {
	e.stats.Lines++
	cmd, ok := e.policy.grammar().Classify(s)
	return &line{text: s, cmd: cmd, motion: ok}
}

func (e *Engine) emit(lines ...string) {
	e.buf = append(e.buf, lines...)
}

// synth emits lines that were not part of the input.
func (e *Engine) synth(lines ...string) {
	e.stats.Inserted += len(lines)
	e.emit(lines...)
}

// overscanMove renders a laser-off rapid move to p.
func overscanMove(p coord.Point) string {
	return gcode.Block{
		{W: 'G', Arg: 0},
		{W: 'X', Arg: p.X},
		{W: 'Y', Arg: p.Y},
		{W: 'S', Arg: 0},
	}.Format(3) + " (overscan)"
}
