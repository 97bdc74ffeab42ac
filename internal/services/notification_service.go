package services

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"studio-site/internal/catalog"
	"studio-site/internal/domain"
	"studio-site/internal/domain/dto"

	"github.com/gookit/event"
)

// NotifyOutcome describes what happened to one notification attempt
type NotifyOutcome string

const (
	OutcomeSkippedMissingParams NotifyOutcome = "skipped_missing_params"
	OutcomeSkippedUnconfigured  NotifyOutcome = "skipped_unconfigured"
	OutcomeDelivered            NotifyOutcome = "delivered"
	OutcomeFailed               NotifyOutcome = "failed"
)

const (
	landingAlertColor = 0x3b82f6
	intakeAlertColor  = 0x22c55e
)

// NotificationService dispatches best-effort lead alerts. Failures are logged and never retried.
type NotificationService struct {
	events    *event.Manager
	notifiers []domain.Notifier
	timeout   time.Duration
	logger    domain.Observability
	now       func() time.Time

	wg sync.WaitGroup
}

// NewNotificationService creates the service; nil notifiers are ignored
func NewNotificationService(
	events *event.Manager,
	timeout time.Duration,
	logger domain.Observability,
	notifiers ...domain.Notifier,
) *NotificationService {
	configured := make([]domain.Notifier, 0, len(notifiers))
	for _, n := range notifiers {
		if n != nil {
			configured = append(configured, n)
		}
	}

	return &NotificationService{
		events:    events,
		notifiers: configured,
		timeout:   timeout,
		logger:    logger,
		now:       time.Now,
	}
}

// Configured reports whether at least one notifier is available
func (s *NotificationService) Configured() bool {
	return len(s.notifiers) > 0
}

// RegisterEventListeners subscribes the service to landing and intake events.
// Dispatch runs in its own goroutine so publishers never wait on the network.
func (s *NotificationService) RegisterEventListeners() {
	s.events.On(domain.EventLandingPersonalized, event.ListenerFunc(func(e event.Event) error {
		pc, ok := e.Get("context").(domain.PersonalizationContext)
		if !ok {
			s.logger.Warn("Ignoring landing event without personalization context")
			return nil
		}

		s.async(func(ctx context.Context) { s.NotifyLanding(ctx, pc) })
		return nil
	}))

	s.events.On(domain.EventIntakeSubmitted, event.ListenerFunc(func(e event.Event) error {
		submission, ok := e.Get("submission").(*domain.IntakeSubmission)
		if !ok {
			s.logger.Warn("Ignoring intake event without submission")
			return nil
		}

		s.async(func(ctx context.Context) { s.NotifyIntake(ctx, submission) })
		return nil
	}))
}

// Wait blocks until every in-flight dispatch has finished
func (s *NotificationService) Wait() {
	s.wg.Wait()
}

// NotifyLanding alerts on a magic link visit. Both company and ref are required.
func (s *NotificationService) NotifyLanding(ctx context.Context, pc domain.PersonalizationContext) NotifyOutcome {
	if !pc.Personalized() {
		return OutcomeSkippedMissingParams
	}
	if !s.Configured() {
		s.logger.Debug("No lead notifier configured, skipping landing alert")
		return OutcomeSkippedUnconfigured
	}

	industry := catalog.Industry(pc.IndustryKey)
	alert := &dto.LeadAlert{
		Content: fmt.Sprintf(
			"🎯 **Lead Alert!**\n\nSomeone from **%s** just opened their personalized %s landing page.",
			pc.CompanyName, industry.Name,
		),
		Embeds: []dto.AlertEmbed{{
			Title: "Magic Link Clicked",
			Fields: []dto.AlertField{
				{Name: "Company", Value: pc.CompanyName, Inline: true},
				{Name: "Industry", Value: industry.Name, Inline: true},
				{Name: "Reference", Value: pc.ReferenceCode, Inline: true},
			},
			Color:     landingAlertColor,
			Timestamp: s.now().UTC().Format(time.RFC3339),
		}},
	}

	return s.dispatch(ctx, alert, s.logger.WithFields(map[string]any{
		"company": pc.CompanyName,
		"ref":     pc.ReferenceCode,
	}))
}

// NotifyIntake alerts on a submitted project brief
func (s *NotificationService) NotifyIntake(ctx context.Context, submission *domain.IntakeSubmission) NotifyOutcome {
	if !s.Configured() {
		return OutcomeSkippedUnconfigured
	}

	company := submission.Company
	if strings.TrimSpace(company) == "" {
		company = "—"
	}

	alert := &dto.LeadAlert{
		Content: fmt.Sprintf("📨 **New project brief** from **%s**", submission.Name),
		Embeds: []dto.AlertEmbed{{
			Title: "Start Project Submitted",
			Fields: []dto.AlertField{
				{Name: "Vibe", Value: string(submission.Vibe), Inline: true},
				{Name: "Email", Value: submission.Email, Inline: true},
				{Name: "Company", Value: company, Inline: true},
				{Name: "Brief", Value: truncate(submission.Brief, 1000)},
			},
			Color:     intakeAlertColor,
			Timestamp: s.now().UTC().Format(time.RFC3339),
		}},
	}

	return s.dispatch(ctx, alert, s.logger.WithField("session", submission.SessionID))
}

func (s *NotificationService) dispatch(ctx context.Context, alert *dto.LeadAlert, log domain.Logger) NotifyOutcome {
	var delivered, failed []string

	for _, n := range s.notifiers {
		if err := n.Notify(ctx, alert); err != nil {
			log.WithError(err).WithField("notifier", n.Name()).Warn("Lead alert not delivered")
			failed = append(failed, n.Name())
			continue
		}
		delivered = append(delivered, n.Name())
	}

	if len(failed) > 0 {
		s.logger.Failure(fmt.Sprintf("Lead alert failed on %s (%d of %d notifiers)",
			strings.Join(failed, ", "), len(failed), len(s.notifiers)))
		return OutcomeFailed
	}

	s.logger.Success("Lead alert delivered via " + strings.Join(delivered, ", "))
	return OutcomeDelivered
}

func (s *NotificationService) async(fn func(ctx context.Context)) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
		defer cancel()

		fn(ctx)
	}()
}

func truncate(s string, limit int) string {
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	return string(r[:limit]) + "…"
}
