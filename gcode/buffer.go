package gcode

import (
	"bytes"
	"io"
)

// Buffer exposes a Reader as an io.Reader, joining lines with a
// single '\n'. No newline follows the last line.
type Buffer struct {
	gr  Reader
	buf bytes.Buffer
	n   int
	err error
}

var _ io.Reader = &Buffer{}

func NewBuffer(r Reader) *Buffer {
	return &Buffer{gr: r}
}
func (b *Buffer) Buffered() []byte { return b.buf.Bytes() }

func (b *Buffer) Read(p []byte) (n int, err error) {
	var line string
	for b.err == nil && b.buf.Len() < len(p) {
		line, b.err = b.gr.Read()
		if b.err != nil {
			break
		}
		if b.n > 0 {
			b.buf.WriteByte('\n')
		}
		b.buf.WriteString(line)
		b.n++
	}

	if b.buf.Len() > 0 {
		return b.buf.Read(p)
	}
	return 0, b.err
}
