package main

import (
	"io/ioutil"
	"testing"

	"github.com/mastercactapus/overscan/overscan"
	"github.com/stretchr/testify/assert"
)

func TestLoadConfig(t *testing.T) {
	cfg, err := loadConfig([]string{"-overscan", "3", "-policy", "b", "in.nc"}, ioutil.Discard)
	assert.NoError(t, err)
	assert.Equal(t, "in.nc", cfg.Input)
	assert.Equal(t, overscan.Options{Policy: overscan.Segment, Distance: 3, Power: 60}, cfg.Options)
	assert.Equal(t, "", cfg.Addr)
}

func TestLoadConfig_Env(t *testing.T) {
	t.Setenv("OVERSCAN_POWER", "80")
	t.Setenv("OVERSCAN_DISTANCE", "1.5")
	t.Setenv("OVERSCAN_POLICY", "segment")

	cfg, err := loadConfig([]string{"in.nc"}, ioutil.Discard)
	assert.NoError(t, err)
	assert.Equal(t, overscan.Options{Policy: overscan.Segment, Distance: 1.5, Power: 80}, cfg.Options)

	cfg, err = loadConfig([]string{"-S", "50", "in.nc"}, ioutil.Discard)
	assert.NoError(t, err)
	assert.Equal(t, 50.0, cfg.Options.Power)

	t.Setenv("OVERSCAN_DISTANCE", "lots")
	cfg, err = loadConfig([]string{"in.nc"}, ioutil.Discard)
	assert.NoError(t, err)
	assert.Equal(t, 2.0, cfg.Options.Distance)
}

func TestLoadConfig_Errors(t *testing.T) {
	_, err := loadConfig(nil, ioutil.Discard)
	assert.Error(t, err)

	_, err = loadConfig([]string{"a.nc", "b.nc"}, ioutil.Discard)
	assert.Error(t, err)

	_, err = loadConfig([]string{"-overscan", "-1", "in.nc"}, ioutil.Discard)
	assert.Error(t, err)

	_, err = loadConfig([]string{"-policy", "spiral", "in.nc"}, ioutil.Discard)
	assert.Error(t, err)
}

func TestLoadConfig_Serve(t *testing.T) {
	cfg, err := loadConfig([]string{"-serve", ":9091", "-dir", "/tmp/jobs"}, ioutil.Discard)
	assert.NoError(t, err)
	assert.Equal(t, ":9091", cfg.Addr)
	assert.Equal(t, "/tmp/jobs", cfg.DataDir)
}
