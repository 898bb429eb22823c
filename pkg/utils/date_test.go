package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDateTime(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected time.Time
	}{
		{
			name:     "RFC3339 em UTC",
			value:    "2024-06-15T10:30:00Z",
			expected: time.Date(2024, 6, 15, 10, 30, 0, 0, time.UTC),
		},
		{
			name:     "RFC3339 com offset é convertido para UTC",
			value:    "2024-06-15T10:30:00-03:00",
			expected: time.Date(2024, 6, 15, 13, 30, 0, 0, time.UTC),
		},
		{
			name:     "datetime sem timezone é interpretado em UTC",
			value:    "2024-06-15T10:30:00",
			expected: time.Date(2024, 6, 15, 10, 30, 0, 0, time.UTC),
		},
		{
			name:     "datetime com espaço",
			value:    "2024-06-15 10:30:00",
			expected: time.Date(2024, 6, 15, 10, 30, 0, 0, time.UTC),
		},
		{
			name:     "data pura",
			value:    "2024-06-15",
			expected: time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed, err := ParseDateTime(tt.value)
			require.NoError(t, err)
			assert.True(t, tt.expected.Equal(parsed), "esperado %s, obtido %s", tt.expected, parsed)
		})
	}
}

func TestParseDateTime_Invalid(t *testing.T) {
	for _, value := range []string{"", "15/06/2024", "ontem", "2024-13-40"} {
		_, err := ParseDateTime(value)
		assert.Error(t, err, "entrada: %q", value)
	}
}

func TestParseDate(t *testing.T) {
	parsed, err := ParseDate("2024-06-15")
	require.NoError(t, err)
	assert.True(t, time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC).Equal(*parsed))

	// Vazio não é erro: o chamador decide o default
	empty, err := ParseDate("")
	require.NoError(t, err)
	assert.True(t, empty.IsZero())

	for _, value := range []string{"15/06/2024", "2024-13-01", "ontem", "2024-06-15T00:00:00Z"} {
		_, err := ParseDate(value)
		assert.Error(t, err, "entrada: %q", value)
	}
}

func TestGenerateID(t *testing.T) {
	id, err := GenerateID()
	require.NoError(t, err)
	assert.Len(t, id, 10)

	other, err := GenerateID()
	require.NoError(t, err)
	assert.NotEqual(t, id, other)
}
