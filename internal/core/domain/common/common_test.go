package common

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOptional(t *testing.T) {
	assert := require.New(t)

	optionalFloat := NewOptional(0.9, true)
	assert.Equal(0.9, optionalFloat.Value)
	assert.True(optionalFloat.IsPresent)
	assert.Equal("[0.9]", optionalFloat.String())

	optionalString := NewOptional("foo", false)
	assert.Equal("foo", optionalString.Value)
	assert.False(optionalString.IsPresent)
	assert.Equal("[-]", optionalString.String())
}

func TestAbsent(t *testing.T) {
	assert := require.New(t)

	score := Absent[float64]()
	assert.False(score.IsPresent)
	assert.Zero(score.Value)
}
