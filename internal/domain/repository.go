package domain

import (
	"context"
	"errors"
)

var ErrProgressNotFound = errors.New("intake progress not found")

// ProgressStore keeps the serialized progress of an intake form, scoped by session
type ProgressStore interface {
	Load(ctx context.Context, sessionID string) ([]byte, error)
	Save(ctx context.Context, sessionID string, data []byte) error
	Clear(ctx context.Context, sessionID string) error
}

// SubmissionRepository stores submitted project briefs
type SubmissionRepository interface {
	CreateSubmission(ctx context.Context, submission *IntakeSubmission) error
}
