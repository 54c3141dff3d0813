package gcode

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
)

// ErrInvalidBlock is returned by ParseBlock for text that is not a
// sequence of words.
var ErrInvalidBlock = errors.New("invalid or unhandled line")

// Parser reads a G-code program line by line.
type Parser struct{ br *bufio.Reader }

var _ Reader = &Parser{}

func NewParser(r io.Reader) *Parser {
	if br, ok := r.(*bufio.Reader); ok {
		return &Parser{br: br}
	}

	return &Parser{br: bufio.NewReader(r)}
}

// Read returns the next line with surrounding whitespace (including
// any CR) removed. Blank lines are returned as empty strings.
func (p *Parser) Read() (string, error) {
	s, err := p.br.ReadString('\n')
	if err == io.EOF && s != "" {
		err = nil
	}
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(s), nil
}

var (
	rx        = regexp.MustCompile(`^([A-Z][0-9.+\-]+)+$`)
	rxSplit   = regexp.MustCompile(`[A-Z][0-9.+\-]+`)
	rxComment = regexp.MustCompile(`\([^)]*\)`)
	rxSpace   = regexp.MustCompile(`\s+`)
)

// ParseBlock splits a single line into words. Comments are stripped;
// a line holding nothing else results in an empty block.
func ParseBlock(s string) (Block, error) {
	s = strings.SplitN(s, ";", 2)[0]
	s = rxComment.ReplaceAllString(s, "")
	s = rxSpace.ReplaceAllString(s, "")
	s = strings.ToUpper(s)

	if s == "" {
		return Block{}, nil
	}

	if !rx.MatchString(s) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidBlock, s)
	}

	codes := rxSplit.FindAllString(s, -1)
	res := make(Block, len(codes))

	for i, c := range codes {
		v, err := strconv.ParseFloat(c[1:], 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrInvalidBlock, c)
		}
		res[i] = Word{W: c[0], Arg: v}
	}

	return res, nil
}
