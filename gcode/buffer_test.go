package gcode

import (
	"errors"
	"io"
	"io/ioutil"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuffer_Read(t *testing.T) {
	gr := &LinesReader{Lines: []string{"G0 X1", "M5"}}

	b := NewBuffer(gr)

	buf := make([]byte, 10)
	n, err := b.Read(buf)
	assert.NoError(t, err)
	assert.Equal(t, 8, n)
	assert.Equal(t, []byte("G0 X1\nM5"), buf[:n])

	n, err = b.Read(buf)
	assert.Error(t, err)
	assert.Equal(t, io.EOF, err)
	assert.Equal(t, 0, n)
}

func TestBuffer_SmallReads(t *testing.T) {
	gr := &LinesReader{Lines: []string{"G0 X1 Y2", "", "G1 X3"}}

	data, err := ioutil.ReadAll(NewBuffer(gr))
	assert.NoError(t, err)
	assert.Equal(t, "G0 X1 Y2\n\nG1 X3", string(data))
}

type failReader struct{ err error }

func (f failReader) Read() (string, error) { return "", f.err }

func TestBuffer_Error(t *testing.T) {
	boom := errors.New("boom")
	_, err := ioutil.ReadAll(NewBuffer(failReader{err: boom}))
	assert.Equal(t, boom, err)
}
