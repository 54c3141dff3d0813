package main

import (
	"errors"
	"flag"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/mastercactapus/overscan/overscan"
)

type Config struct {
	Input  string
	Output string

	Options overscan.Options

	Stats bool
	Dump  bool

	Addr    string
	DataDir string
}

// loadConfig reads defaults from the environment (and .env), then
// applies command line flags.
func loadConfig(args []string, usage io.Writer) (*Config, error) {
	_ = godotenv.Load()

	def := overscan.DefaultOptions()

	fs := flag.NewFlagSet("overscan", flag.ContinueOnError)
	fs.SetOutput(usage)

	distance := fs.Float64("overscan", envFloat("OVERSCAN_DISTANCE", def.Distance), "Overscan distance in mm.")
	power := fs.Float64("S", envFloat("OVERSCAN_POWER", def.Power), "Laser power written to cut moves (segment policy).")
	fs.Float64Var(power, "power", *power, "Same as -S.")
	policy := fs.String("policy", envString("OVERSCAN_POLICY", string(def.Policy)), "Grouping policy, 'scanline' or 'segment'.")
	output := fs.String("o", "", "Output file (default: <input>_overscan<ext>).")
	stats := fs.Bool("stats", false, "Log a move summary of the input and output.")
	dump := fs.Bool("dump", false, "Dump the moves of the output as parsed by gocnc.")
	addr := fs.String("serve", envString("OVERSCAN_ADDR", ""), "Serve the HTTP API on this address instead of processing a file.")
	dir := fs.String("dir", envString("OVERSCAN_DATA_DIR", "./data"), "Data directory to use with -serve.")

	err := fs.Parse(args)
	if err != nil {
		return nil, err
	}

	pol, err := overscan.ParsePolicy(*policy)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Output:  *output,
		Stats:   *stats,
		Dump:    *dump,
		Addr:    *addr,
		DataDir: *dir,
	}
	cfg.Options = overscan.Options{
		Policy:   pol,
		Distance: *distance,
		Power:    *power,
	}
	err = cfg.Options.Validate()
	if err != nil {
		return nil, err
	}

	if cfg.Addr == "" {
		if fs.NArg() != 1 {
			fs.Usage()
			return nil, errors.New("expected exactly one input file")
		}
		cfg.Input = fs.Arg(0)
	}

	return cfg, nil
}

func envString(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func envFloat(key string, def float64) float64 {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return def
	}
	return v
}
