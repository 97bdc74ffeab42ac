package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"studio-site/internal/domain"

	"github.com/gookit/event"
)

// IntakeService drives the three-step intake form: select vibe, details, confirmation
type IntakeService struct {
	store       domain.ProgressStore
	submissions domain.SubmissionRepository
	events      *event.Manager
	logger      domain.Logger
	delay       time.Duration

	mu       sync.Mutex
	inflight map[string]struct{}
}

// NewIntakeService creates the intake state machine. submissions may be nil,
// in which case briefs are only acknowledged.
func NewIntakeService(
	store domain.ProgressStore,
	submissions domain.SubmissionRepository,
	events *event.Manager,
	delay time.Duration,
	logger domain.Logger,
) *IntakeService {
	return &IntakeService{
		store:       store,
		submissions: submissions,
		events:      events,
		logger:      logger,
		delay:       delay,
		inflight:    make(map[string]struct{}),
	}
}

// Load returns the session's form, rehydrated from persisted progress when available
func (s *IntakeService) Load(ctx context.Context, sessionID string) *domain.IntakeForm {
	form := &domain.IntakeForm{
		SessionID: sessionID,
		Step:      domain.StepSelectVibe,
	}

	data, err := s.store.Load(ctx, sessionID)
	if err != nil {
		if !errors.Is(err, domain.ErrProgressNotFound) {
			s.logger.WithError(err).WithField("session", sessionID).Warn("Failed to load intake progress")
		}
		return form
	}

	var progress domain.IntakeProgress
	if err := json.Unmarshal(data, &progress); err != nil {
		s.logger.WithError(err).WithField("session", sessionID).Debug("Discarding malformed intake progress")
		_ = s.store.Clear(ctx, sessionID)
		return form
	}

	if progress.Vibe != domain.VibeNone && !progress.Vibe.Valid() {
		progress.Vibe = domain.VibeNone
	}

	form.Vibe = progress.Vibe
	form.IntakeDetails = domain.IntakeDetails{
		Name:    progress.Name,
		Email:   progress.Email,
		Company: progress.Company,
		Brief:   progress.Brief,
	}

	if form.Vibe != domain.VibeNone {
		form.Step = domain.StepDetails
	}

	return form
}

// SelectVibe records the vibe and advances to the details step
func (s *IntakeService) SelectVibe(ctx context.Context, form *domain.IntakeForm, vibe domain.Vibe) error {
	if !vibe.Valid() {
		return fmt.Errorf("%w: %q", domain.ErrInvalidVibe, vibe)
	}
	if form.Step == domain.StepConfirmation {
		return domain.ErrInvalidStep
	}

	form.Vibe = vibe
	form.Step = domain.StepDetails
	s.persist(ctx, form)
	return nil
}

// UpdateDetails replaces the free-text fields and persists them
func (s *IntakeService) UpdateDetails(ctx context.Context, form *domain.IntakeForm, details domain.IntakeDetails) error {
	if form.Step == domain.StepConfirmation {
		return domain.ErrInvalidStep
	}

	form.IntakeDetails = details
	s.persist(ctx, form)
	return nil
}

// Back returns from details to vibe selection, keeping entered fields
func (s *IntakeService) Back(ctx context.Context, form *domain.IntakeForm) error {
	if form.Step != domain.StepDetails {
		return domain.ErrInvalidStep
	}

	form.Step = domain.StepSelectVibe
	s.persist(ctx, form)
	return nil
}

// DetailsComplete reports whether the details step may be submitted
func DetailsComplete(d domain.IntakeDetails) bool {
	return strings.TrimSpace(d.Name) != "" &&
		strings.TrimSpace(d.Email) != "" &&
		strings.TrimSpace(d.Brief) != ""
}

// Submit validates the details, waits out the submission delay and moves to confirmation.
// A cancelled ctx abandons the submission and leaves the form on the details step.
func (s *IntakeService) Submit(ctx context.Context, form *domain.IntakeForm) error {
	if form.Step != domain.StepDetails {
		return domain.ErrInvalidStep
	}
	if !DetailsComplete(form.IntakeDetails) {
		return domain.ErrIncompleteDetails
	}

	if !s.begin(form.SessionID) {
		return domain.ErrSubmissionInProgress
	}
	defer s.end(form.SessionID)

	form.Submitting = true
	defer func() { form.Submitting = false }()

	timer := time.NewTimer(s.delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
	}

	submission := &domain.IntakeSubmission{
		SessionID: form.SessionID,
		Vibe:      form.Vibe,
		Name:      strings.TrimSpace(form.Name),
		Email:     strings.TrimSpace(form.Email),
		Company:   strings.TrimSpace(form.Company),
		Brief:     strings.TrimSpace(form.Brief),
		CreatedAt: time.Now().UTC(),
	}
	s.saveSubmission(ctx, submission)

	form.Submitted = true
	form.Step = domain.StepConfirmation
	s.clear(ctx, form.SessionID)

	s.logger.WithFields(map[string]any{
		"session": form.SessionID,
		"vibe":    string(form.Vibe),
	}).Info("Intake form submitted")

	if s.events != nil {
		s.events.MustFire(domain.EventIntakeSubmitted, event.M{
			"submission": submission,
		})
	}

	return nil
}

// Reset clears every field and persisted progress, returning to vibe selection
func (s *IntakeService) Reset(ctx context.Context, form *domain.IntakeForm) {
	sessionID := form.SessionID
	*form = domain.IntakeForm{
		SessionID: sessionID,
		Step:      domain.StepSelectVibe,
	}
	s.clear(ctx, sessionID)
}

// saveSubmission stores the submission when a repository is configured; failures never reach the visitor
func (s *IntakeService) saveSubmission(ctx context.Context, submission *domain.IntakeSubmission) {
	if s.submissions == nil {
		return
	}

	if err := s.submissions.CreateSubmission(ctx, submission); err != nil {
		s.logger.WithError(err).WithField("session", submission.SessionID).Error("Failed to store intake submission")
	}
}

func (s *IntakeService) persist(ctx context.Context, form *domain.IntakeForm) {
	data, err := json.Marshal(domain.IntakeProgress{
		Vibe:    form.Vibe,
		Name:    form.Name,
		Email:   form.Email,
		Company: form.Company,
		Brief:   form.Brief,
	})
	if err != nil {
		s.logger.WithError(err).Error("Failed to encode intake progress")
		return
	}

	if err := s.store.Save(ctx, form.SessionID, data); err != nil {
		s.logger.WithError(err).WithField("session", form.SessionID).Warn("Failed to save intake progress")
	}
}

func (s *IntakeService) clear(ctx context.Context, sessionID string) {
	if err := s.store.Clear(ctx, sessionID); err != nil {
		s.logger.WithError(err).WithField("session", sessionID).Warn("Failed to clear intake progress")
	}
}

func (s *IntakeService) begin(sessionID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, busy := s.inflight[sessionID]; busy {
		return false
	}
	s.inflight[sessionID] = struct{}{}
	return true
}

func (s *IntakeService) end(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.inflight, sessionID)
}
