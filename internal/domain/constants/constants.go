// Package constants holds shared domain constants.
package constants

const (
	// CodeAlphabet is the fixed alphabet referral codes are drawn from.
	CodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

	// CodeLength is the fixed length of a referral code (36^8 keyspace).
	CodeLength = 8

	// DefaultMaxIssueAttempts caps the generate-and-register retry loop.
	// Operationally unreachable given the keyspace, but a defined terminal
	// failure beats an unbounded loop.
	DefaultMaxIssueAttempts = 20
)

const (
	// PubSubProviderLocal publishes events to a local HTTP endpoint.
	PubSubProviderLocal = "local"

	// PubSubProviderGoogle publishes events to Google Cloud Pub/Sub.
	PubSubProviderGoogle = "google"
)

const (
	// RoleAdmin gates the privileged code reassignment and reconciliation paths.
	RoleAdmin = "admin"
)
