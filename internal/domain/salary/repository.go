package salary

import "context"

// SettingsRepository is the persistence port for the salary configuration.
// A single row holds the whole tenant's settings.
type SettingsRepository interface {
	Get(ctx context.Context) (Settings, error)
	Upsert(ctx context.Context, s Settings) (Settings, error)
}
