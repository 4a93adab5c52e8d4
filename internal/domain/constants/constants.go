// Package constants holds the provider identifiers accepted in configuration.
package constants

// Pub/Sub providers for registration events.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Geocode providers.
const (
	GeocodeProviderBrasilAPI = "brasilapi"
	GeocodeProviderStatic    = "static"
)

// Notification providers.
const (
	NotificationProviderHTTP = "http"
	NotificationProviderLog  = "log"
)
