package gcode

import (
	"io"
	"strings"
)

// Reader is a stream of program lines, ending with io.EOF.
type Reader interface {
	Read() (string, error)
}

type LinesReader struct {
	Lines []string
	n     int
}

func (b *LinesReader) Read() (string, error) {
	if b.n == len(b.Lines) {
		return "", io.EOF
	}

	b.n++
	return b.Lines[b.n-1], nil
}

// ReadAll drains r, returning every line read before io.EOF.
func ReadAll(r Reader) ([]string, error) {
	var lines []string
	for {
		s, err := r.Read()
		if err == io.EOF {
			return lines, nil
		}
		if err != nil {
			return nil, err
		}
		lines = append(lines, s)
	}
}

// Lines splits data the same way Parser does.
func Lines(data string) []string {
	lines, _ := ReadAll(NewParser(strings.NewReader(data)))
	return lines
}
