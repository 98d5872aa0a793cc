package core

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInput = errors.New("both weather and mood are required")
	ErrEmptyResult  = errors.New("no prompt was returned from the AI model")
	ErrProvider     = errors.New("prompt request failed")
)

// ConfigError reports a missing credential. The message is shown to the user
// as is, so it says how to fix the problem.
type ConfigError struct {
	Key string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("Missing %s. Add it to your .env file as %s=your_key_here or run `lofistudio profile add`", e.Key, e.Key)
}
