package domain

import (
	"context"

	"studio-site/internal/domain/dto"
)

// Notifier delivers a lead alert to one outside channel
type Notifier interface {
	Name() string
	Notify(ctx context.Context, alert *dto.LeadAlert) error
}
