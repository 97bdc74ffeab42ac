package handler

import (
	"studio-site/internal/domain"

	"github.com/gookit/event"
)

// Publisher fires domain events for listeners outside the request path
type Publisher struct {
	eventManager *event.Manager
}

// NewPublisher creates a new publisher instance
func NewPublisher(eventManager *event.Manager) *Publisher {
	return &Publisher{
		eventManager: eventManager,
	}
}

// LandingPersonalized announces a magic link visit
func (p *Publisher) LandingPersonalized(pc domain.PersonalizationContext) {
	if p == nil || p.eventManager == nil {
		return
	}

	p.eventManager.MustFire(domain.EventLandingPersonalized, event.M{
		"context": pc,
	})
}
