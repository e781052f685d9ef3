// Package ui provides terminal interaction for fuzzy-clock: the interactive
// resolution prompt, phrase colorizing and clipboard output.
package ui

import (
	"errors"
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/sgaunet/bullets"
	"github.com/sgaunet/fuzzy-clock/pkg/fuzzyclock"
)

var errUnknownOption = errors.New("unknown resolution option")

// Prompter asks the user to pick one of several options.
type Prompter interface {
	Select(message string, options []string, defaultOption string) (string, error)
}

// SurveyPrompter implements Prompter with an interactive survey select.
type SurveyPrompter struct{}

// Select shows a single-choice prompt and returns the chosen option.
func (SurveyPrompter) Select(message string, options []string, defaultOption string) (string, error) {
	var selected string
	prompt := &survey.Select{
		Message: message,
		Options: options,
		Default: defaultOption,
	}
	if err := survey.AskOne(prompt, &selected); err != nil {
		return "", fmt.Errorf("failed to get selection: %w", err)
	}
	return selected, nil
}

// ResolutionSelector prompts for a fuzzy clock resolution.
type ResolutionSelector struct {
	prompter Prompter
	log      *bullets.Logger
}

// NewResolutionSelector creates a selector backed by an interactive survey prompt.
func NewResolutionSelector() *ResolutionSelector {
	return NewResolutionSelectorWith(SurveyPrompter{})
}

// NewResolutionSelectorWith creates a selector backed by the given prompter.
func NewResolutionSelectorWith(prompter Prompter) *ResolutionSelector {
	return &ResolutionSelector{prompter: prompter}
}

// SetLogger sets the logger used for debug output.
func (rs *ResolutionSelector) SetLogger(log *bullets.Logger) {
	rs.log = log
}

// SelectResolution asks the user for a resolution, preselecting current.
func (rs *ResolutionSelector) SelectResolution(current fuzzyclock.Resolution) (fuzzyclock.Resolution, error) {
	options := make([]string, len(fuzzyclock.Resolutions))
	byLabel := make(map[string]fuzzyclock.Resolution, len(fuzzyclock.Resolutions))
	defaultOption := ""
	for i, r := range fuzzyclock.Resolutions {
		label := resolutionLabel(r)
		options[i] = label
		byLabel[label] = r
		if r == current {
			defaultOption = label
		}
	}

	selected, err := rs.prompter.Select("Choose resolution:", options, defaultOption)
	if err != nil {
		return 0, err
	}

	r, ok := byLabel[selected]
	if !ok {
		return 0, fmt.Errorf("%w: %q", errUnknownOption, selected)
	}
	if rs.log != nil {
		rs.log.Debug("Resolution selected: " + resolutionLabel(r))
	}
	return r, nil
}

func resolutionLabel(r fuzzyclock.Resolution) string {
	return r.String() + " minutes"
}
