package services

import (
	"bytes"
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"studio-site/internal/domain"
	"studio-site/internal/domain/dto"
	"studio-site/internal/logger"

	"github.com/gookit/event"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingNotifier struct {
	name string
	err  error

	mu     sync.Mutex
	alerts []*dto.LeadAlert
}

func (r *recordingNotifier) Name() string { return r.name }

func (r *recordingNotifier) Notify(_ context.Context, alert *dto.LeadAlert) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.alerts = append(r.alerts, alert)
	return r.err
}

func (r *recordingNotifier) received() []*dto.LeadAlert {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*dto.LeadAlert(nil), r.alerts...)
}

func fixedClock() time.Time {
	return time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
}

func newNotificationService(notifiers ...domain.Notifier) *NotificationService {
	svc := NewNotificationService(event.NewManager("test"), time.Second, logger.Discard(), notifiers...)
	svc.now = fixedClock
	return svc
}

func TestNotifyLanding_SkipsWithoutCompanyOrRef(t *testing.T) {
	rec := &recordingNotifier{name: "rec"}
	svc := newNotificationService(rec)

	cases := []domain.PersonalizationContext{
		{IndustryKey: "fashion"},
		{IndustryKey: "fashion", CompanyName: "Acme"},
		{IndustryKey: "fashion", ReferenceCode: "agent001"},
	}
	for _, pc := range cases {
		assert.Equal(t, OutcomeSkippedMissingParams, svc.NotifyLanding(context.Background(), pc))
	}
	assert.Empty(t, rec.received())
}

func TestNotifyLanding_SkipsWhenUnconfigured(t *testing.T) {
	svc := newNotificationService()

	outcome := svc.NotifyLanding(context.Background(), domain.PersonalizationContext{
		IndustryKey:   "fashion",
		CompanyName:   "Acme",
		ReferenceCode: "agent001",
	})
	assert.Equal(t, OutcomeSkippedUnconfigured, outcome)
	assert.False(t, svc.Configured())
}

func TestNotifyLanding_Delivers(t *testing.T) {
	rec := &recordingNotifier{name: "rec"}
	svc := newNotificationService(rec, nil)

	outcome := svc.NotifyLanding(context.Background(), domain.PersonalizationContext{
		IndustryKey:   "Real-Estate",
		CompanyName:   "Acme",
		ReferenceCode: "agent001",
	})
	require.Equal(t, OutcomeDelivered, outcome)

	alerts := rec.received()
	require.Len(t, alerts, 1)
	alert := alerts[0]

	assert.Contains(t, alert.Content, "Lead Alert!")
	assert.Contains(t, alert.Content, "Acme")
	require.Len(t, alert.Embeds, 1)

	embed := alert.Embeds[0]
	assert.Equal(t, "Magic Link Clicked", embed.Title)
	assert.Equal(t, landingAlertColor, embed.Color)
	assert.Equal(t, "2024-05-01T12:00:00Z", embed.Timestamp)
	assert.Equal(t, []dto.AlertField{
		{Name: "Company", Value: "Acme", Inline: true},
		{Name: "Industry", Value: "Real Estate", Inline: true},
		{Name: "Reference", Value: "agent001", Inline: true},
	}, embed.Fields)
}

func TestNotifyLanding_FailureIsReportedNotRaised(t *testing.T) {
	failing := &recordingNotifier{name: "webhook", err: errors.New("502")}
	ok := &recordingNotifier{name: "telegram"}
	svc := newNotificationService(failing, ok)

	outcome := svc.NotifyLanding(context.Background(), domain.PersonalizationContext{
		IndustryKey:   "retail",
		CompanyName:   "Acme",
		ReferenceCode: "r1",
	})
	assert.Equal(t, OutcomeFailed, outcome)
	assert.Len(t, failing.received(), 1, "no retry")
	assert.Len(t, ok.received(), 1, "other notifiers still run")
}

func TestNotificationService_LogsOutcomeSummary(t *testing.T) {
	var buf bytes.Buffer
	log, err := logger.NewAdapter(&logger.Config{Level: "debug", JSONFormat: true, Output: &buf})
	require.NoError(t, err)

	pc := domain.PersonalizationContext{IndustryKey: "retail", CompanyName: "Acme", ReferenceCode: "r1"}

	ok := NewNotificationService(event.NewManager("test"), time.Second, log, &recordingNotifier{name: "webhook"})
	require.Equal(t, OutcomeDelivered, ok.NotifyLanding(context.Background(), pc))
	assert.Contains(t, buf.String(), `"message":"Lead alert delivered via webhook"`)

	buf.Reset()
	mixed := NewNotificationService(event.NewManager("test"), time.Second, log,
		&recordingNotifier{name: "webhook", err: errors.New("502")},
		&recordingNotifier{name: "telegram"},
	)
	require.Equal(t, OutcomeFailed, mixed.NotifyLanding(context.Background(), pc))
	assert.Contains(t, buf.String(), `"level":"error"`)
	assert.Contains(t, buf.String(), "Lead alert failed on webhook (1 of 2 notifiers)")
	assert.NotContains(t, buf.String(), "delivered via")
}

func TestNotifyIntake(t *testing.T) {
	rec := &recordingNotifier{name: "rec"}
	svc := newNotificationService(rec)

	outcome := svc.NotifyIntake(context.Background(), &domain.IntakeSubmission{
		SessionID: "s1",
		Vibe:      domain.Vibe3D,
		Name:      "Ada",
		Email:     "ada@example.com",
		Brief:     "A product launch film",
	})
	require.Equal(t, OutcomeDelivered, outcome)

	alert := rec.received()[0]
	assert.Contains(t, alert.Content, "Ada")
	assert.Equal(t, "Start Project Submitted", alert.Embeds[0].Title)
	assert.Equal(t, "3d", alert.Embeds[0].Fields[0].Value)
	assert.Equal(t, "—", alert.Embeds[0].Fields[2].Value)
}

func TestNotificationService_EventListeners(t *testing.T) {
	rec := &recordingNotifier{name: "rec"}
	events := event.NewManager("test")
	svc := NewNotificationService(events, time.Second, logger.Discard(), rec)
	svc.RegisterEventListeners()

	events.MustFire(domain.EventLandingPersonalized, event.M{
		"context": domain.PersonalizationContext{IndustryKey: "fashion", CompanyName: "Acme", ReferenceCode: "a1"},
	})
	events.MustFire(domain.EventLandingPersonalized, event.M{
		"context": domain.PersonalizationContext{IndustryKey: "fashion", CompanyName: "Acme"},
	})
	events.MustFire(domain.EventIntakeSubmitted, event.M{
		"submission": &domain.IntakeSubmission{Name: "Ada", Vibe: domain.VibeWeb},
	})
	events.MustFire(domain.EventIntakeSubmitted, event.M{"submission": "not a submission"})

	svc.Wait()

	alerts := rec.received()
	require.Len(t, alerts, 2)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", truncate("abc", 3))
	assert.Equal(t, "ab…", truncate("abc", 2))
}
