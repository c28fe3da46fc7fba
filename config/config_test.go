package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ezrec/jc62/machine"
	"github.com/ezrec/jc62/memory"
	"github.com/ezrec/jc62/trace"
)

const sample = `
verbose = true
max_steps = 100
format = "json"

[defines]
LIMIT = "10"

[[memory]]
address = "0a"
label = "x"
value = "10"

[[memory]]
address = "0B"
label = "y"
`

func TestDefault(t *testing.T) {
	assert := assert.New(t)

	cfg := Default()

	assert.False(cfg.Verbose)
	assert.Equal(machine.DEFAULT_MAX_STEPS, cfg.MaxSteps)
	assert.Equal(trace.FORMAT_TEXT, cfg.Format)
	assert.NoError(cfg.Validate())
	assert.Empty(cfg.Presets())
}

func TestDecode(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	cfg, err := Decode(strings.NewReader(sample))
	require.NoError(err)

	assert.True(cfg.Verbose)
	assert.Equal(100, cfg.MaxSteps)
	assert.Equal(trace.FORMAT_JSON, cfg.Format)
	assert.Equal(map[string]string{"LIMIT": "10"}, cfg.Defines)
	assert.Equal([]machine.Preset{
		{Address: "0a", Label: "x", Value: "10"},
		{Address: "0B", Label: "y", Value: "0"},
	}, cfg.Presets())
}

func TestDecode_Partial(t *testing.T) {
	assert := assert.New(t)

	cfg, err := Decode(strings.NewReader(`verbose = true`))
	assert.NoError(err)
	assert.Equal(machine.DEFAULT_MAX_STEPS, cfg.MaxSteps)
	assert.Equal(trace.FORMAT_TEXT, cfg.Format)
}

func TestDecode_Errors(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name string
		text string
		err  error
	}){
		{"format", `format = "xml"`, trace.ErrFormatInvalid},
		{"max_steps", `max_steps = -1`, ErrMaxStepsInvalid},
		{"address", "[[memory]]\naddress = \"100\"\nlabel = \"x\"", memory.ErrAddressInvalid},
		{"unknown", `colour = "red"`, ErrKeyUnknown},
		{"syntax", `verbose = `, nil},
	}

	for _, entry := range table {
		_, err := Decode(strings.NewReader(entry.text))
		assert.Error(err, entry.name)
		if entry.err != nil {
			assert.ErrorIs(err, entry.err, entry.name)
		}
	}
}

func TestLoad(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	path := filepath.Join(t.TempDir(), "jc62.toml")
	require.NoError(os.WriteFile(path, []byte(sample), 0644))

	cfg, err := Load(path)
	require.NoError(err)
	assert.Len(cfg.Memory, 2)

	_, err = Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(err, os.ErrNotExist)
}
