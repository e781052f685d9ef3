package ui

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCopyToClipboard(t *testing.T) {
	original := writeClipboard
	t.Cleanup(func() { writeClipboard = original })

	var copied string
	writeClipboard = func(text string) error {
		copied = text
		return nil
	}

	require.NoError(t, CopyToClipboard("ten till noon"))
	assert.Equal(t, "ten till noon", copied)
}

func TestCopyToClipboard_Error(t *testing.T) {
	original := writeClipboard
	t.Cleanup(func() { writeClipboard = original })

	clipErr := errors.New("no clipboard utility")
	writeClipboard = func(string) error { return clipErr }

	err := CopyToClipboard("noon")
	assert.ErrorIs(t, err, clipErr)
	assert.Contains(t, err.Error(), "failed to copy to clipboard")
}
