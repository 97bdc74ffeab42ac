package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"studio-site/internal/domain"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLister struct {
	subs   []*domain.IntakeSubmission
	err    error
	limit  int
	closed bool
}

func (f *fakeLister) RecentSubmissions(_ context.Context, limit int) ([]*domain.IntakeSubmission, error) {
	f.limit = limit
	return f.subs, f.err
}

func (f *fakeLister) open(context.Context) (submissionLister, func(), error) {
	return f, func() { f.closed = true }, nil
}

func run(t *testing.T, open openFunc, args ...string) (string, string, error) {
	t.Helper()
	color.NoColor = true

	var stdout, stderr bytes.Buffer
	cmd := newRootCmd(open, &stdout, &stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func sample() []*domain.IntakeSubmission {
	return []*domain.IntakeSubmission{{
		SessionID: "s1",
		Vibe:      domain.VibeWeb,
		Name:      "Ada",
		Email:     "ada@example.com",
		Company:   "Acme",
		Brief:     "A fast store\nwith " + strings.Repeat("x", 100),
		CreatedAt: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
	}}
}

func TestListCommand(t *testing.T) {
	lister := &fakeLister{subs: sample()}

	out, _, err := run(t, lister.open, "list", "--limit", "5")
	require.NoError(t, err)

	assert.Equal(t, 5, lister.limit)
	assert.True(t, lister.closed)
	assert.Contains(t, out, "1 recent submissions")
	assert.Contains(t, out, "Ada <ada@example.com> · Acme")
	assert.Contains(t, out, "A fast store with xxx")
	assert.Contains(t, out, "…")
}

func TestListCommand_DefaultLimitAndEmpty(t *testing.T) {
	lister := &fakeLister{}

	out, _, err := run(t, lister.open, "list")
	require.NoError(t, err)
	assert.Equal(t, defaultLimit, lister.limit)
	assert.Contains(t, out, "No submissions yet.")
}

func TestListCommand_JSON(t *testing.T) {
	lister := &fakeLister{subs: sample()}

	out, _, err := run(t, lister.open, "list", "--json")
	require.NoError(t, err)

	var got []domain.IntakeSubmission
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "ada@example.com", got[0].Email)
}

func TestListCommand_Errors(t *testing.T) {
	noDB := func(context.Context) (submissionLister, func(), error) { return nil, nil, errNoDatabase }
	_, errOut, err := run(t, noDB, "list")
	assert.ErrorIs(t, err, errNoDatabase)
	assert.Contains(t, errOut, "DATABASE_URL is not set")

	failing := &fakeLister{err: errors.New("invalid limit")}
	_, errOut, err = run(t, failing.open, "list", "--limit", "0")
	assert.Error(t, err)
	assert.Contains(t, errOut, "Error listing submissions: invalid limit")
	assert.True(t, failing.closed)
}
