// Package config reads jc62 settings from TOML files.
package config

import (
	"errors"
	"io"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/ezrec/jc62/machine"
	"github.com/ezrec/jc62/memory"
	"github.com/ezrec/jc62/trace"
	"github.com/ezrec/jc62/translate"
)

var f = translate.From

var (
	ErrMaxStepsInvalid = errors.New(f("max_steps invalid"))
	ErrKeyUnknown      = errors.New(f("key unknown"))
)

// Cell is a memory cell preset.
type Cell struct {
	Address string `toml:"address"`
	Label   string `toml:"label"`
	Value   string `toml:"value"`
}

// Config holds the settings of a session.
type Config struct {
	Verbose  bool              `toml:"verbose"`
	MaxSteps int               `toml:"max_steps"`
	Format   trace.Format      `toml:"format"`
	Defines  map[string]string `toml:"defines"`
	Memory   []Cell            `toml:"memory"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		MaxSteps: machine.DEFAULT_MAX_STEPS,
		Format:   trace.FORMAT_TEXT,
	}
}

// Decode reads settings over the defaults.
func Decode(input io.Reader) (cfg *Config, err error) {
	cfg = Default()

	meta, err := toml.NewDecoder(input).Decode(cfg)
	if err != nil {
		return
	}

	if undecoded := meta.Undecoded(); len(undecoded) != 0 {
		err = errors.Join(ErrKeyUnknown, errors.New(undecoded[0].String()))
		return
	}

	err = cfg.Validate()
	return
}

// Load reads settings from a file.
func Load(path string) (cfg *Config, err error) {
	inf, err := os.Open(path)
	if err != nil {
		return
	}
	defer inf.Close()

	return Decode(inf)
}

// Validate checks the settings.
func (cfg *Config) Validate() (err error) {
	cfg.Format, err = trace.ParseFormat(string(cfg.Format))
	if err != nil {
		return
	}

	if cfg.MaxSteps < 0 {
		return ErrMaxStepsInvalid
	}

	for _, cell := range cfg.Memory {
		_, err = memory.ParseAddress(cell.Address)
		if err != nil {
			return
		}
	}

	return
}

// Presets converts the memory settings for the machine.
func (cfg *Config) Presets() (presets []machine.Preset) {
	for _, cell := range cfg.Memory {
		value := cell.Value
		if len(value) == 0 {
			value = memory.NULL_VALUE
		}
		presets = append(presets, machine.Preset{
			Address: cell.Address,
			Label:   cell.Label,
			Value:   value,
		})
	}

	return
}
