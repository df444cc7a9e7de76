package telemetry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMaskEmail(t *testing.T) {
	assert.Equal(t, "j***@example.com", MaskEmail("jane@example.com"))
	assert.Equal(t, "***", MaskEmail("no-at-sign"))
	assert.Equal(t, "***", MaskEmail("@example.com"))
}

func TestMaskPhone(t *testing.T) {
	assert.Equal(t, "***89", MaskPhone("+44123456789"))
	assert.Equal(t, "***", MaskPhone("12"))
}

func TestRedactArgs_MasksContactFieldsOnly(t *testing.T) {
	args := map[string]any{
		"guestEmail": "jane@example.com",
		"guestPhone": "+44123456789",
		"guestName":  "Jane Doe",
		"guests":     2,
	}

	out := RedactArgs(args)
	assert.Equal(t, "j***@example.com", out["guestEmail"])
	assert.Equal(t, "***89", out["guestPhone"])
	assert.Equal(t, "Jane Doe", out["guestName"])
	assert.Equal(t, 2, out["guests"])

	// the input map stays untouched
	assert.Equal(t, "jane@example.com", args["guestEmail"])
}
