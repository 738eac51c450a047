// Package constants holds values shared between configuration and infrastructure.
package constants

// Environments
const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// Pub/Sub providers
const (
	PubSubProviderNoop   = "noop"
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
	PubSubProviderKafka  = "kafka"
)

// HTTP headers
const (
	HeaderIdempotencyKey = "Idempotency-Key"
)
