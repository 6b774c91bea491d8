package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimestampUnmarshal(t *testing.T) {
	t.Run("zone-less LocalDateTime", func(t *testing.T) {
		var ts Timestamp
		require.NoError(t, json.Unmarshal([]byte(`"2024-05-01T12:30:00"`), &ts))
		assert.Equal(t, 2024, ts.Year())
		assert.Equal(t, 30, ts.Minute())
	})

	t.Run("RFC3339", func(t *testing.T) {
		var ts Timestamp
		require.NoError(t, json.Unmarshal([]byte(`"2024-05-01T12:30:00Z"`), &ts))
		assert.Equal(t, 12, ts.Hour())
	})

	t.Run("null stays zero", func(t *testing.T) {
		var ts Timestamp
		require.NoError(t, json.Unmarshal([]byte(`null`), &ts))
		assert.True(t, ts.IsZero())
	})

	t.Run("garbage is an error", func(t *testing.T) {
		var ts Timestamp
		assert.Error(t, json.Unmarshal([]byte(`"yesterday"`), &ts))
	})
}

func TestAverageRating(t *testing.T) {
	assert.Zero(t, AverageRating(nil))
	reviews := []Review{{Rating: 5}, {Rating: 4}, {Rating: 3}}
	assert.InDelta(t, 4.0, AverageRating(reviews), 1e-9)
}
