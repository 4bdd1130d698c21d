package ports

import "context"

// SettingsCache is a read-through cache of serialized settings documents,
// keyed by category. A cache miss returns (nil, nil).
type SettingsCache interface {
	Get(ctx context.Context, category string) ([]byte, error)
	Set(ctx context.Context, category string, blob []byte) error
	Invalidate(ctx context.Context, category string) error
}
