package settings

import "context"

// SettingsRepository is the persistence port behind the app settings object.
type SettingsRepository interface {
	Get(ctx context.Context) (AppSettings, error)
	Upsert(ctx context.Context, s AppSettings) (AppSettings, error)
}
