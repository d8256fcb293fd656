package util

import (
	"errors"
	"strings"
)

var (
	ErrModuleNotFound   = errors.New("module not found")
	ErrStepMismatch     = errors.New("operation not allowed at the current step")
	ErrNoPreviousStep   = errors.New("already at the first step")
	ErrNoActiveSession  = errors.New("module has not been entered")
	ErrIntroModule      = errors.New("the introduction module has no step workflow")
	ErrNotIntroModule   = errors.New("only the introduction module can be acknowledged directly")
	ErrQuizNotPassed    = errors.New("no passing quiz score on record")
	ErrNotOnboarded     = errors.New("onboarding required")
	ErrAlreadyOnboarded = errors.New("identity already exists")
	ErrSchemaMismatch   = errors.New("that file does not look like an OECD Explorer export")
	ErrMalformedImport  = errors.New("import failed: the file is not a valid OECD Explorer export")
	ErrInvalidSettings  = errors.New("invalid integration settings")
)

// ValidationError 前进条件未满足，停留在当前步骤
type ValidationError struct {
	Step     string
	Problems []string
}

func (e *ValidationError) Error() string {
	return e.Step + ": " + strings.Join(e.Problems, "; ")
}

func NewValidationError(step string, problems ...string) *ValidationError {
	return &ValidationError{Step: step, Problems: problems}
}

func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
