package ui_test

import (
	"errors"
	"testing"

	"github.com/sgaunet/fuzzy-clock/internal/logger"
	"github.com/sgaunet/fuzzy-clock/internal/ui"
	"github.com/sgaunet/fuzzy-clock/pkg/fuzzyclock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakePrompter records the prompt it receives and returns a canned answer.
type fakePrompter struct {
	answer        string
	err           error
	gotOptions    []string
	gotDefault    string
	selectInvoked bool
}

func (f *fakePrompter) Select(_ string, options []string, defaultOption string) (string, error) {
	f.selectInvoked = true
	f.gotOptions = options
	f.gotDefault = defaultOption
	return f.answer, f.err
}

func TestSelectResolution(t *testing.T) {
	tests := []struct {
		name    string
		answer  string
		current fuzzyclock.Resolution
		want    fuzzyclock.Resolution
	}{
		{"pick five", "5 minutes", fuzzyclock.Ten, fuzzyclock.Five},
		{"pick ten", "10 minutes", fuzzyclock.Five, fuzzyclock.Ten},
		{"pick fifteen", "15 minutes", fuzzyclock.Five, fuzzyclock.Fifteen},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prompter := &fakePrompter{answer: tt.answer}
			selector := ui.NewResolutionSelectorWith(prompter)
			selector.SetLogger(logger.NoLogger())

			got, err := selector.SelectResolution(tt.current)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, []string{"5 minutes", "10 minutes", "15 minutes"}, prompter.gotOptions)
			assert.Equal(t, tt.current.String()+" minutes", prompter.gotDefault)
		})
	}
}

func TestSelectResolution_PromptError(t *testing.T) {
	promptErr := errors.New("interrupted")
	selector := ui.NewResolutionSelectorWith(&fakePrompter{err: promptErr})

	_, err := selector.SelectResolution(fuzzyclock.Five)
	assert.ErrorIs(t, err, promptErr)
}

func TestSelectResolution_UnknownAnswer(t *testing.T) {
	prompter := &fakePrompter{answer: "7 minutes"}
	selector := ui.NewResolutionSelectorWith(prompter)

	_, err := selector.SelectResolution(fuzzyclock.Five)
	require.Error(t, err)
	assert.True(t, prompter.selectInvoked)
	assert.Contains(t, err.Error(), "7 minutes")
}

func TestFormatPhrase_NoColor(t *testing.T) {
	ui.DisableColor()

	assert.Equal(t, "quarter past three", ui.FormatPhrase("quarter past three"))
}
