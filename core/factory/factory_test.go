package factory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct{ Port int }

type sampleConf struct {
	Port int `json:"port"`
}

func TestRegistry_Create(t *testing.T) {
	reg := NewRegistry[*sample]()
	require.NoError(t, reg.Register("s", func(conf map[string]any) (*sample, error) {
		var c sampleConf
		if err := Decode(conf, &c); err != nil {
			return nil, err
		}
		return &sample{Port: c.Port}, nil
	}))

	inst, err := reg.Create(ModuleConfig{Type: "s", Conf: map[string]any{"port": 9091}})
	require.NoError(t, err)
	assert.Equal(t, 9091, inst.Port)

	// values from environment overrides arrive as strings
	inst, err = reg.Create(ModuleConfig{Type: "s", Conf: map[string]any{"port": "9092"}})
	require.NoError(t, err)
	assert.Equal(t, 9092, inst.Port)
}

func TestRegistry_Errors(t *testing.T) {
	reg := NewRegistry[int]()
	require.NoError(t, reg.Register("x", func(map[string]any) (int, error) { return 1, nil }))
	assert.Error(t, reg.Register("x", func(map[string]any) (int, error) { return 2, nil }))
	assert.Error(t, reg.Register("y", nil))

	_, err := reg.Create(ModuleConfig{Type: "z"})
	assert.ErrorContains(t, err, `unknown module type "z"`)
	assert.Equal(t, []string{"x"}, reg.Names())
}
