package overscan

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Policy selects how motion lines are grouped.
type Policy string

const (
	// Scanline groups consecutive motion lines sharing one Y value.
	Scanline Policy = "scanline"

	// Segment pairs each rapid move with the cut that follows it, and
	// normalizes feed rate and spindle directives.
	Segment Policy = "segment"
)

var ErrUnknownPolicy = errors.New("unknown overscan policy")

// ParsePolicy accepts a policy name or one of its aliases. An empty
// name is Scanline.
func ParsePolicy(name string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "scanline", "lines", "a":
		return Scanline, nil
	case "segment", "flatcam", "b":
		return Segment, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownPolicy, name)
}

type Options struct {
	Policy Policy

	// Distance is how far (mm) to travel past each group's extent.
	Distance float64

	// Power is the S value forced onto cut lines by the Segment policy.
	Power float64
}

// DefaultOptions returns the scanline policy with 2mm of overscan.
func DefaultOptions() Options {
	return Options{
		Policy:   Scanline,
		Distance: 2.0,
		Power:    60.0,
	}
}

func (o Options) Validate() error {
	if _, err := ParsePolicy(string(o.Policy)); err != nil {
		return err
	}
	if math.IsNaN(o.Distance) || math.IsInf(o.Distance, 0) || o.Distance < 0 {
		return fmt.Errorf("invalid overscan distance: %g", o.Distance)
	}
	if math.IsNaN(o.Power) || math.IsInf(o.Power, 0) || o.Power < 0 {
		return fmt.Errorf("invalid laser power: %g", o.Power)
	}
	return nil
}
