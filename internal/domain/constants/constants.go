// Package constants holds configuration values shared across layers.
package constants

// Pub/Sub provider names accepted by pubsub.provider.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Ledger storage drivers accepted by ledger.driver.
const (
	LedgerDriverFile = "file"
	LedgerDriverMem  = "mem"
)
