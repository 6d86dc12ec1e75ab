package lootbag

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDrop_Defaults(t *testing.T) {
	d, err := NewDrop().Build()
	require.NoError(t, err)

	assert.Equal(t, "", d.Path)
	assert.Equal(t, 0, d.Depth)
	assert.Equal(t, 1.0, d.Luck)
	assert.Equal(t, Stack{Min: 1, Max: 1}, d.Stack)
	assert.False(t, d.Modify)
}

func TestDropBuilder_Setters(t *testing.T) {
	d, err := NewDrop().
		Path("weapons/legendary").
		Depth(3).
		Luck(0.25).
		Stack(2, 5).
		Modify(true).
		Build()
	require.NoError(t, err)

	assert.Equal(t, "weapons/legendary", d.Path)
	assert.Equal(t, 3, d.Depth)
	assert.Equal(t, 0.25, d.Luck)
	assert.Equal(t, Stack{Min: 2, Max: 5}, d.Stack)
	assert.True(t, d.Modify)
}

func TestDropBuilder_Validation(t *testing.T) {
	tests := []struct {
		name  string
		build func() (Drop, error)
	}{
		{
			name:  "negative depth",
			build: func() (Drop, error) { return NewDrop().Depth(-1).Build() },
		},
		{
			name:  "luck below zero",
			build: func() (Drop, error) { return NewDrop().Luck(-0.1).Build() },
		},
		{
			name:  "luck above one",
			build: func() (Drop, error) { return NewDrop().Luck(1.1).Build() },
		},
		{
			name:  "inverted stack",
			build: func() (Drop, error) { return NewDrop().Stack(5, 2).Build() },
		},
		{
			name:  "negative stack min",
			build: func() (Drop, error) { return NewDrop().Stack(-1, 2).Build() },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.build()
			assert.ErrorIs(t, err, ErrInvalidDrop)
		})
	}
}

func TestDropBuilder_MustBuild(t *testing.T) {
	assert.NotPanics(t, func() { NewDrop().Luck(0.5).MustBuild() })
	assert.Panics(t, func() { NewDrop().Luck(2.0).MustBuild() })
}

func TestDropBuilder_AnyDepth(t *testing.T) {
	d := NewDrop().AnyDepth().MustBuild()
	assert.Greater(t, d.Depth, 1<<30)
}
