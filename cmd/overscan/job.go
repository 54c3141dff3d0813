package main

import (
	"io"
	"os"

	"github.com/mastercactapus/overscan/gcode"
	"github.com/mastercactapus/overscan/overscan"
	"github.com/mastercactapus/overscan/vm"
)

type job struct {
	Input  string          `json:"input,omitempty"`
	Output string          `json:"output,omitempty"`
	Policy overscan.Policy `json:"policy"`
	Stats  overscan.Stats  `json:"stats"`
	Before vm.Summary      `json:"before"`
	After  vm.Summary      `json:"after"`

	lines []string
}

func runJob(lines []string, opt overscan.Options) (*job, error) {
	out, stats, err := overscan.Process(lines, opt)
	if err != nil {
		return nil, err
	}
	return &job{
		Policy: opt.Policy,
		Stats:  stats,
		Before: vm.Summarize(lines),
		After:  vm.Summarize(out),
		lines:  out,
	}, nil
}

func (j *job) WriteTo(w io.Writer) (int64, error) {
	return io.Copy(w, gcode.NewBuffer(&gcode.LinesReader{Lines: j.lines}))
}

func readLines(name string) ([]string, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return gcode.ReadAll(gcode.NewParser(f))
}

func writeLines(name string, j *job) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	_, err = j.WriteTo(f)
	if err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
