package ports

import (
	"context"

	"github.com/marketplacepro/platform/internal/core/domain"
)

// SettingsService exposes the admin settings operations. Get returns the
// current schema for a category (platform defaults when nothing has been
// saved); Update validates and persists a full replacement document.
type SettingsService interface {
	Get(ctx context.Context, category string) (domain.Settings, error)
	Update(ctx context.Context, category string, payload []byte) (domain.Settings, error)
}
