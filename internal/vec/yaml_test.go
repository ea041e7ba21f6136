package vec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestVector3d_YAML(t *testing.T) {
	out, err := yaml.Marshal(New(1, 0, -2))
	require.NoError(t, err)
	assert.Equal(t, "[1, 0, -2]\n", string(out))

	var v Vector3d[float64]
	require.NoError(t, yaml.Unmarshal([]byte("[0.5, 1, -2.25]"), &v))
	assert.Equal(t, New(0.5, 1, -2.25), v)
}

func TestVector3d_YAMLInStruct(t *testing.T) {
	type scene struct {
		Origin Vector3d[int]            `yaml:"origin"`
		Points map[string]Vector3d[int] `yaml:"points"`
	}
	src := "origin: [1, 2, 3]\npoints:\n  a: [4, 5, 6]\n"

	var s scene
	require.NoError(t, yaml.Unmarshal([]byte(src), &s))
	assert.Equal(t, New(1, 2, 3), s.Origin)
	assert.Equal(t, New(4, 5, 6), s.Points["a"])

	out, err := yaml.Marshal(s)
	require.NoError(t, err)

	var back scene
	require.NoError(t, yaml.Unmarshal(out, &back))
	assert.Equal(t, s, back)
}

func TestVector3d_YAMLRejects(t *testing.T) {
	var v Vector3d[int]

	err := yaml.Unmarshal([]byte("[1, 2]"), &v)
	assert.ErrorIs(t, err, ErrComponentCount)

	err = yaml.Unmarshal([]byte("[1, 2, 3, 4]"), &v)
	assert.ErrorIs(t, err, ErrComponentCount)

	err = yaml.Unmarshal([]byte("{x: 1}"), &v)
	assert.Error(t, err)
}
