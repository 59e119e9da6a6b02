package gemini

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseResult(t *testing.T) {
	t.Run("plain JSON", func(t *testing.T) {
		got, err := parseResult(`{"anomalyDetected": true, "anomalyDescription": "Late 5 days in a row."}`)
		require.NoError(t, err)
		assert.True(t, got.AnomalyDetected)
		assert.Equal(t, "Late 5 days in a row.", got.AnomalyDescription)
	})

	t.Run("fenced JSON", func(t *testing.T) {
		got, err := parseResult("```json\n{\"anomalyDetected\": false, \"anomalyDescription\": \"\"}\n```")
		require.NoError(t, err)
		assert.False(t, got.AnomalyDetected)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := parseResult("the model rambled instead")
		assert.Error(t, err)
	})
}
