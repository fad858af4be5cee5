package uuid

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewGameID(t *testing.T) {
	gen := New()

	first := gen.NewGameID()
	require.Len(t, first, 32)
	require.Regexp(t, "^[0-9a-f]{32}$", first)
	require.NotEqual(t, first, gen.NewGameID())
}
