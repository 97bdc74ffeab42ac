package repository

import (
	"context"
	"errors"
	"time"

	"studio-site/internal/database"
	"studio-site/internal/domain"

	"github.com/google/uuid"
)

const createSubmissionsTable = `
CREATE TABLE IF NOT EXISTS intake_submissions (
       id         UUID PRIMARY KEY,
       session_id TEXT NOT NULL,
       vibe       TEXT NOT NULL,
       name       TEXT NOT NULL,
       email      TEXT NOT NULL,
       company    TEXT NOT NULL DEFAULT '',
       brief      TEXT NOT NULL,
       created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);`

const insertSubmissionQuery = `
INSERT INTO intake_submissions (id, session_id, vibe, name, email, company, brief, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8);`

const recentSubmissionsQuery = `
SELECT id, session_id, vibe, name, email, company, brief, created_at
  FROM intake_submissions
 ORDER BY created_at DESC
 LIMIT $1;`

type SubmissionRepository struct {
	db database.DB
}

var _ domain.SubmissionRepository = (*SubmissionRepository)(nil)

// NewSubmissionRepository creates a submission repository backed by db
func NewSubmissionRepository(db database.DB) *SubmissionRepository {
	if db == nil {
		panic("database cannot be nil")
	}

	return &SubmissionRepository{
		db: db,
	}
}

// EnsureSchema creates the submissions table when missing
func (rpt *SubmissionRepository) EnsureSchema(ctx context.Context) error {
	return rpt.db.Exec(ctx, createSubmissionsTable)
}

// CreateSubmission stores a submitted brief, assigning id and timestamp when unset
func (rpt *SubmissionRepository) CreateSubmission(ctx context.Context, submission *domain.IntakeSubmission) error {
	if submission == nil {
		return errors.New("submission cannot be nil")
	}

	if submission.ID == uuid.Nil {
		submission.ID = uuid.New()
	}
	if submission.CreatedAt.IsZero() {
		submission.CreatedAt = time.Now().UTC()
	}

	return rpt.db.Exec(ctx, insertSubmissionQuery,
		submission.ID,
		submission.SessionID,
		string(submission.Vibe),
		submission.Name,
		submission.Email,
		submission.Company,
		submission.Brief,
		submission.CreatedAt,
	)
}

// RecentSubmissions lists the latest submissions, newest first
func (rpt *SubmissionRepository) RecentSubmissions(ctx context.Context, limit int) ([]*domain.IntakeSubmission, error) {
	if limit <= 0 {
		return nil, errors.New("invalid limit")
	}

	var submissions []*domain.IntakeSubmission
	if err := rpt.db.QueryStruct(ctx, &submissions, recentSubmissionsQuery, limit); err != nil {
		return nil, err
	}

	return submissions, nil
}
