package retry

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPolicy() Policy {
	return Policy{
		MaxRetries:   3,
		BaseDelay:    time.Millisecond,
		MaxDelay:     5 * time.Millisecond,
		JitterFactor: 0,
	}
}

func TestDo_RetriesUntilSuccess(t *testing.T) {
	attempts := 0

	err := testPolicy().Do(func() error {
		attempts++
		if attempts < 3 {
			return assert.AnError
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 3, attempts)
}

func TestDo_ExhaustsRetries(t *testing.T) {
	attempts := 0

	err := testPolicy().Do(func() error {
		attempts++
		return assert.AnError
	})

	assert.ErrorIs(t, err, assert.AnError)
	// Primeira execução mais MaxRetries tentativas
	assert.Equal(t, 4, attempts)
}

func TestDo_PermanentStopsImmediately(t *testing.T) {
	attempts := 0

	err := testPolicy().Do(func() error {
		attempts++
		return Permanent(assert.AnError)
	})

	assert.ErrorIs(t, err, assert.AnError)
	assert.Equal(t, 1, attempts)
}
