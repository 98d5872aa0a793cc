package models

import "strings"

// GenericFailureMessage is shown when a failure carries no text of its own.
const GenericFailureMessage = "Something went wrong. Please try again."

type Phase int

const (
	Idle Phase = iota
	Loading
	Succeeded
	Failed
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Loading:
		return "loading"
	case Succeeded:
		return "succeeded"
	case Failed:
		return "failed"
	}
	return "unknown"
}

// GenerationState holds exactly one of Idle, Loading, Succeeded(prompt) or
// Failed(message). text is the prompt or the message depending on phase.
type GenerationState struct {
	phase Phase
	text  string
}

func IdleState() GenerationState {
	return GenerationState{phase: Idle}
}

func LoadingState() GenerationState {
	return GenerationState{phase: Loading}
}

func SucceededState(prompt string) GenerationState {
	return GenerationState{phase: Succeeded, text: prompt}
}

func FailedState(message string) GenerationState {
	return GenerationState{phase: Failed, text: message}
}

func (s GenerationState) Phase() Phase {
	return s.phase
}

func (s GenerationState) IsLoading() bool {
	return s.phase == Loading
}

// Prompt returns the generated prompt when the state is Succeeded.
func (s GenerationState) Prompt() (string, bool) {
	if s.phase != Succeeded {
		return "", false
	}
	return s.text, true
}

// ErrorMessage returns the failure message when the state is Failed.
func (s GenerationState) ErrorMessage() (string, bool) {
	if s.phase != Failed {
		return "", false
	}
	return s.text, true
}

// FailureMessage turns an error into the text shown in the error banner.
func FailureMessage(err error) string {
	if err == nil {
		return GenericFailureMessage
	}
	if msg := strings.TrimSpace(err.Error()); msg != "" {
		return msg
	}
	return GenericFailureMessage
}
