package cli

import (
	"errors"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
)

// ErrCanceled indicates that the user has interrupted the program, e.g. by using Ctrl + C.
var ErrCanceled = errors.New("canceled")

type Validator func(ans any) error

// Input asks the user to input a line of text.
func Input(prompt string, required bool, defaultValue string, validators ...Validator) (string, error) {
	opts := make([]survey.AskOpt, 0, len(validators)+1)
	if required {
		opts = append(opts, survey.WithValidator(survey.Required))
	}
	for _, v := range validators {
		opts = append(opts, survey.WithValidator(survey.Validator(v)))
	}

	var result string
	err := survey.AskOne(&survey.Input{
		Message: prompt,
		Default: defaultValue,
	}, &result, opts...)
	if err == terminal.InterruptErr {
		err = ErrCanceled
	}
	return result, err
}

// YesNo asks the user a yes/no question.
func YesNo(question string, defaultValue bool) (yes bool, err error) {
	err = survey.AskOne(&survey.Confirm{
		Message: question,
		Default: defaultValue,
	}, &yes)
	if err == terminal.InterruptErr {
		err = ErrCanceled
	}
	return yes, err
}

// Select asks the user to select an option. It returns the index of the chosen option.
// defaultIndex is preselected if it is a valid index.
func Select(msg string, options []string, defaultIndex int) (int, error) {
	prompt := &survey.Select{
		Message: msg,
		Options: options,
	}
	if defaultIndex >= 0 && defaultIndex < len(options) {
		prompt.Default = options[defaultIndex]
	}
	var index int
	err := survey.AskOne(prompt, &index, survey.WithValidator(survey.Required))
	if err == terminal.InterruptErr {
		err = ErrCanceled
	}
	return index, err
}
