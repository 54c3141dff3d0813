package main

import (
	"fmt"
	"strings"

	gocnc "github.com/joushou/gocnc/gcode"
	gocncvm "github.com/joushou/gocnc/vm"
)

// dumpMoves re-reads a program with gocnc and prints its move list.
func dumpMoves(lines []string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("gocnc: %v", r)
		}
	}()

	doc, err := gocnc.Parse(strings.Join(lines, "\n"))
	if err != nil {
		return err
	}

	var m gocncvm.Machine
	m.Init()
	m.Process(doc)
	m.Dump()

	return nil
}
