package oauth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateState(t *testing.T) {
	state1, err := GenerateState()
	require.NoError(t, err)
	assert.NotEmpty(t, state1)

	state2, err := GenerateState()
	require.NoError(t, err)
	assert.NotEqual(t, state1, state2)
}
