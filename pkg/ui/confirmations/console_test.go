package confirmations_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/arthur-debert/packsmith/pkg/ui/confirmations"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPause(t *testing.T) {
	t.Run("waits for a line", func(t *testing.T) {
		var out bytes.Buffer
		err := confirmations.Pause(strings.NewReader("\n"), &out, "")
		require.NoError(t, err)
		assert.Contains(t, out.String(), confirmations.DefaultPausePrompt)
	})

	t.Run("EOF is not an error", func(t *testing.T) {
		var out bytes.Buffer
		err := confirmations.Pause(strings.NewReader(""), &out, "Hold on")
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(out.String(), "Hold on"))
	})
}
