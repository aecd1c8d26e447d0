package homework

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatus_Approved(t *testing.T) {
	record := map[string]any{
		"homework_name": "X",
		"status":        "approved",
	}

	message, err := ParseStatus(record)
	require.NoError(t, err)

	verdict, ok := Verdict("approved")
	require.True(t, ok)

	assert.Contains(t, message, `"X"`)
	assert.Contains(t, message, verdict)

	// Pure function: same input, same output.
	again, err := ParseStatus(record)
	require.NoError(t, err)
	assert.Equal(t, message, again)
}

func TestParseStatus_AllCatalogStatuses(t *testing.T) {
	for _, status := range []string{StatusApproved, StatusReviewing, StatusRejected} {
		message, err := ParseStatus(map[string]any{
			"homework_name": "hw",
			"status":        status,
		})
		require.NoError(t, err, "status %s", status)

		verdict, ok := Verdict(status)
		require.True(t, ok)
		assert.Contains(t, message, verdict)
	}
}

func TestParseStatus_Errors(t *testing.T) {
	tests := []struct {
		name   string
		record any
		kind   error
	}{
		{
			name:   "not an object",
			record: []any{"hw1"},
			kind:   ErrShape,
		},
		{
			name:   "missing homework_name",
			record: map[string]any{"status": "approved"},
			kind:   ErrShape,
		},
		{
			name:   "missing status",
			record: map[string]any{"homework_name": "hw1"},
			kind:   ErrShape,
		},
		{
			name: "unknown status",
			record: map[string]any{
				"homework_name": "hw1",
				"status":        "burned",
			},
			kind: ErrUnknownStatus,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseStatus(tt.record)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.kind), "want %v, got %v", tt.kind, err)
		})
	}
}

func TestVerdict_UnknownStatus(t *testing.T) {
	_, ok := Verdict("pending")
	assert.False(t, ok)
}
