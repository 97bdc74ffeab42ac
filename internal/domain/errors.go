package domain

import "errors"

var (
	ErrInvalidVibe          = errors.New("invalid vibe")
	ErrIncompleteDetails    = errors.New("name, email and brief are required")
	ErrSubmissionInProgress = errors.New("submission already in progress")
	ErrInvalidStep          = errors.New("action not allowed at current step")
)
