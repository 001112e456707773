package settings

import "time"

// AppSettings is the tenant's branding configuration: an explicit object with
// an injected persistence port, loaded once at startup and updated only
// through the admin setter.
type AppSettings struct {
	AppName   string
	AppLogo   string
	Theme     string
	UpdatedAt time.Time
}

// Defaults returns the settings used until the admin saves any.
func Defaults() AppSettings {
	return AppSettings{
		AppName: "Pointage Pro",
		AppLogo: "/assets/logo.png",
		Theme:   "dark",
	}
}
