package initchecker

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type dependency struct{}

func TestCheckInit(t *testing.T) {
	t.Run(`filled dependencies check`, func(t *testing.T) {
		require.NotPanics(t, func() {
			CheckInit("store", &dependency{}, "validator", dependency{})
		})
	})

	t.Run(`nil dependency check`, func(t *testing.T) {
		require.PanicsWithValue(t, "store dependency not initialized", func() {
			CheckInit("store", nil)
		})
		var typedNil *dependency
		require.PanicsWithValue(t, "files dependency not initialized", func() {
			CheckInit("files", typedNil)
		})
	})

	t.Run(`malformed arguments check`, func(t *testing.T) {
		require.Panics(t, func() { CheckInit("store") })
		require.Panics(t, func() { CheckInit(1, &dependency{}) })
	})
}
