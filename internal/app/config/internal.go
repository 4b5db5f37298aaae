package config

type InternalConfig struct {
	App    App
	Engine Engine
}

type App struct {
	Env             string
	Port            string
	Version         string
	Timezone        string
	EndpointPrefix  string
	MaxRequests     int
	ShutdownTimeout int
}

// Engine holds the tunables of the matching engine itself.
type Engine struct {
	// DefaultValidityWindowInHours is used when a request does not pass
	// an explicit validity_window_hours.
	DefaultValidityWindowInHours int
	// CatalogCacheTTLInMinutes bounds staleness of the cached reference
	// catalogs (billing programs, templates).
	CatalogCacheTTLInMinutes int
	// SuggestionEventQueue is the durable queue lifecycle events go to.
	SuggestionEventQueue string
}
