package overscan

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func scanlineOptions(d float64) Options {
	opt := DefaultOptions()
	opt.Distance = d
	return opt
}

func TestScanline_Ascending(t *testing.T) {
	out, stats, err := Process([]string{
		"G21",
		"G1 X10 Y5 S200",
		"G1 X15",
		"G1 X20 Y5",
		"M5",
	}, scanlineOptions(2))
	assert.NoError(t, err)
	assert.Equal(t, []string{
		"G21",
		"G0 X8.000 Y5.000 S0 (overscan)",
		"G1 X10 Y5 S200",
		"G1 X15",
		"G1 X20 Y5",
		"G0 X22.000 Y5.000 S0 (overscan)",
		"M5",
	}, out)
	assert.Equal(t, Stats{Lines: 5, Groups: 1, Overscans: 1, Inserted: 2}, stats)
}

func TestScanline_Descending(t *testing.T) {
	out, _, err := Process([]string{
		"G1 X20 Y5",
		"G1 X15",
		"G1 X10",
	}, scanlineOptions(2))
	assert.NoError(t, err)
	assert.Equal(t, []string{
		"G0 X22.000 Y5.000 S0 (overscan)",
		"G1 X20 Y5",
		"G1 X15",
		"G1 X10",
		"G0 X8.000 Y5.000 S0 (overscan)",
	}, out)
}

func TestScanline_ExtentNotEndpoints(t *testing.T) {
	out, _, err := Process([]string{
		"G1 X5 Y0",
		"G1 X9",
		"G1 X1",
	}, scanlineOptions(2))
	assert.NoError(t, err)
	assert.Equal(t, "G0 X-1.000 Y0.000 S0 (overscan)", out[0])
	assert.Equal(t, "G0 X11.000 Y0.000 S0 (overscan)", out[len(out)-1])
}

func TestScanline_SinglePoint(t *testing.T) {
	in := []string{
		"G1 X3 Y1",
		"G1 X4 Y2",
	}
	out, stats, err := Process(in, scanlineOptions(2))
	assert.NoError(t, err)
	assert.Equal(t, in, out)
	assert.Equal(t, 2, stats.Groups)
	assert.Equal(t, 2, stats.Degenerate)
	assert.Equal(t, 0, stats.Inserted)
}

func TestScanline_YTolerance(t *testing.T) {
	out, stats, err := Process([]string{
		"G1 X1 Y5",
		"G1 X2 Y5.0000005",
		"G1 X3 Y5.1",
		"G1 X1",
	}, scanlineOptions(1))
	assert.NoError(t, err)
	assert.Equal(t, []string{
		"G0 X0.000 Y5.000 S0 (overscan)",
		"G1 X1 Y5",
		"G1 X2 Y5.0000005",
		"G0 X3.000 Y5.000 S0 (overscan)",
		"G0 X4.000 Y5.100 S0 (overscan)",
		"G1 X3 Y5.1",
		"G1 X1",
		"G0 X0.000 Y5.100 S0 (overscan)",
	}, out)
	assert.Equal(t, 2, stats.Overscans)
}

func TestScanline_CarriedY(t *testing.T) {
	out, _, err := Process([]string{
		"G1 X1",
		"G1 X2",
	}, scanlineOptions(2))
	assert.NoError(t, err)
	assert.Equal(t, "G0 X-1.000 Y0.000 S0 (overscan)", out[0])

	out, _, err = Process([]string{
		"G1 X1 Y1",
		"G1 X2",
		"(comment)",
		"G1 X3",
		"G1 X4",
	}, scanlineOptions(2))
	assert.NoError(t, err)
	assert.Equal(t, []string{
		"G0 X-1.000 Y1.000 S0 (overscan)",
		"G1 X1 Y1",
		"G1 X2",
		"G0 X4.000 Y1.000 S0 (overscan)",
		"(comment)",
		"G0 X1.000 Y1.000 S0 (overscan)",
		"G1 X3",
		"G1 X4",
		"G0 X6.000 Y1.000 S0 (overscan)",
	}, out)
}

func TestScanline_PassThrough(t *testing.T) {
	in := []string{
		"M3 S1000",
		"G1 F1200",
		"G1 F1200",
		"",
		"G1 Xbad Y1",
		"M5",
	}
	out, stats, err := Process(in, scanlineOptions(2))
	assert.NoError(t, err)
	assert.Equal(t, in, out)
	assert.Equal(t, 0, stats.Dropped)
}

func TestScanline_ZeroDistanceRerun(t *testing.T) {
	first, _, err := Process([]string{
		"G1 X1 Y5 S100",
		"G1 X5",
		"G1 X9",
	}, scanlineOptions(2))
	assert.NoError(t, err)

	second, _, err := Process(first, scanlineOptions(0))
	assert.NoError(t, err)
	assert.Equal(t, []string{
		"G0 X-1.000 Y5.000 S0 (overscan)",
		"G0 X-1.000 Y5.000 S0 (overscan)",
		"G1 X1 Y5 S100",
		"G1 X5",
		"G1 X9",
		"G0 X11.000 Y5.000 S0 (overscan)",
		"G0 X11.000 Y5.000 S0 (overscan)",
	}, second)
}
