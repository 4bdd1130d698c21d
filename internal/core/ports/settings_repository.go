package ports

import (
	"context"

	"github.com/marketplacepro/platform/internal/core/domain"
)

// SettingsRepository persists one settings document per category.
// Get decodes the stored document into dst; it returns
// domain.ErrSettingsNotFound when no document has been saved yet.
type SettingsRepository interface {
	Get(ctx context.Context, category string, dst domain.Settings) error
	Upsert(ctx context.Context, settings domain.Settings) error
}
